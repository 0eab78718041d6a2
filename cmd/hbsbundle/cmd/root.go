// Package cmd contains the CLI commands for hbsbundle.
package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/jpequegn/hbsbundle/internal/compiler"
	"github.com/jpequegn/hbsbundle/internal/config"
	"github.com/jpequegn/hbsbundle/internal/fsutil"
	"github.com/jpequegn/hbsbundle/internal/generator"
)

var (
	// Version is set at build time
	Version = "dev"

	// Flags
	configPath       string
	dryRun           bool
	logLevel         string
	logFormat        string
	nodeBinary       string
	handlebarsModule string
)

// newCompiler builds the template compiler for the task file in dir. Tests
// replace it.
var newCompiler = func(dir, node, module string) (compiler.Compiler, error) {
	return compiler.NewNodeCompiler(
		compiler.WithNodeBinary(node),
		compiler.WithHandlebarsModule(module),
		compiler.WithDir(dir),
	)
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "hbsbundle [target...]",
		Short: "Precompile Handlebars templates into a JavaScript bundle",
		Long: `hbsbundle reads a task file and compiles every target's Handlebars
templates and partials into one JavaScript file per file group.

Files whose name starts with "_" are registered as partials, everything
else is assigned into a namespace object (JST by default). The output
can be wrapped as an AMD module, a CommonJS factory or a Node module.

Task files may be written in YAML, TOML or HCL.`,
		Version:      Version,
		SilenceUsage: true,
		RunE:         run,
	}
	bindFlags(c.Flags())
	return c
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func bindFlags(flags *pflag.FlagSet) {
	flags.StringVarP(&configPath, "config", "c", "hbsbundle.yaml", "Task file (.yaml, .yml, .toml or .hcl)")
	flags.BoolVar(&dryRun, "dry-run", false, "Print output without writing files")
	flags.StringVar(&logLevel, "log-level", "info", "Log level: debug, info, warn or error")
	flags.StringVar(&logFormat, "log-format", "text", "Log format: text or json")
	flags.StringVar(&nodeBinary, "node", compiler.DefaultNodeBinary, "Node.js executable used to run handlebars")
	flags.StringVar(&handlebarsModule, "handlebars-module", compiler.DefaultHandlebarsModule, "Module id passed to require() for handlebars")
}

func run(cmd *cobra.Command, args []string) error {
	logger, err := newLogger(logLevel, logFormat, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	file, err := config.Load(configPath)
	if err != nil {
		return err
	}

	jobs, err := file.Jobs(args...)
	if err != nil {
		return err
	}
	if len(jobs) == 0 {
		logger.Warn("No targets defined", "config", configPath)
		return nil
	}

	hbs, err := newCompiler(file.Dir, nodeBinary, handlebarsModule)
	if err != nil {
		return fmt.Errorf("failed to set up compiler: %w", err)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	fs := fsutil.NewOS(file.Dir)

	for _, job := range jobs {
		targetLogger := logger.With("target", job.Target)
		targetLogger.Debug("Running target", "groups", len(job.Groups))

		driver, err := generator.NewDriver(job.Options, hbs, fs, targetLogger)
		if err != nil {
			return fmt.Errorf("target %q: %w", job.Target, err)
		}

		if !dryRun {
			if err := driver.Run(ctx, job.Groups); err != nil {
				return err
			}
			continue
		}

		if err := preview(ctx, cmd, driver, job); err != nil {
			return err
		}
	}

	return nil
}

// preview prints each group's output instead of writing it.
func preview(ctx context.Context, cmd *cobra.Command, driver *generator.Driver, job config.Job) error {
	out := cmd.OutOrStdout()
	for _, group := range job.Groups {
		res, err := driver.Build(ctx, group)
		if err != nil {
			return err
		}
		if res.Empty {
			fmt.Fprintf(out, "--- %s (empty, not written) ---\n", group.Dest)
			continue
		}
		fmt.Fprintf(out, "--- %s ---\n", group.Dest)
		fmt.Fprintln(out, res.Content)
		fmt.Fprintln(out, "--- end ---")
	}
	return nil
}
