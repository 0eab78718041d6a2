// Package generator assembles compiled templates and partials into a single
// JavaScript file per file group.
package generator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jpequegn/hbsbundle/internal/classifier"
	"github.com/jpequegn/hbsbundle/internal/compiler"
	"github.com/jpequegn/hbsbundle/internal/fsutil"
	"github.com/jpequegn/hbsbundle/internal/models"
	"github.com/jpequegn/hbsbundle/internal/naming"
)

// ErrEmptyName is returned when a source file derives an empty registration name.
var ErrEmptyName = errors.New("empty registration name")

// Result is the outcome of building one file group.
type Result struct {
	// Dest is the destination path of the group.
	Dest string

	// Content is the emitted document. It is empty when Empty is set.
	Content string

	// Empty reports that no source produced a fragment.
	Empty bool

	// Files lists the surviving sources with their classification.
	Files []models.ClassifiedFile

	// Missing lists sources that did not exist.
	Missing []string
}

// Driver compiles file groups with one set of options.
type Driver struct {
	opts       models.Options
	compiler   compiler.Compiler
	fs         fsutil.FS
	logger     *slog.Logger
	classifier *classifier.Classifier
}

// NewDriver creates a Driver. The options are validated once here.
func NewDriver(opts models.Options, c compiler.Compiler, fs fsutil.FS, logger *slog.Logger) (*Driver, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Driver{
		opts:       opts,
		compiler:   c,
		fs:         fs,
		logger:     logger,
		classifier: classifier.FromOptions(opts),
	}, nil
}

// Run generates every group in order. It stops at the first error.
func (d *Driver) Run(ctx context.Context, groups []models.FileGroup) error {
	for _, g := range groups {
		if _, err := d.Generate(ctx, g); err != nil {
			return err
		}
	}
	return nil
}

// Generate builds the group and writes its output. An empty group is
// reported with a warning and nothing is written.
func (d *Driver) Generate(ctx context.Context, group models.FileGroup) (*Result, error) {
	res, err := d.Build(ctx, group)
	if err != nil {
		return nil, err
	}

	if res.Empty {
		d.logger.Warn("Destination not written because compiled files were empty.", "dest", group.Dest)
		return res, nil
	}

	if err := d.fs.Write(group.Dest, res.Content); err != nil {
		return nil, fmt.Errorf("failed to write %s: %w", group.Dest, err)
	}
	d.logger.Info(fmt.Sprintf("File %q created.", group.Dest))
	return res, nil
}

// Build compiles the group without writing anything. Useful for dry-run mode.
func (d *Driver) Build(ctx context.Context, group models.FileGroup) (*Result, error) {
	res := &Result{Dest: group.Dest}

	var files []string
	for _, path := range group.Src {
		if !d.fs.Exists(path) {
			d.logger.Warn(fmt.Sprintf("Source file %q not found.", path))
			res.Missing = append(res.Missing, path)
			continue
		}
		files = append(files, path)
	}

	mode := ResolveMode(d.opts, len(files))
	adapter := compiler.NewAdapter(d.compiler, d.fs, d.logger, d.opts)

	var partials, templates []string
	for _, path := range files {
		compiled, err := adapter.Compile(ctx, path)
		if err != nil {
			return nil, err
		}

		file := d.classify(path)
		if file.Name == "" {
			return nil, fmt.Errorf("%s: %w", path, ErrEmptyName)
		}
		res.Files = append(res.Files, file)

		switch file.Kind {
		case models.Partial:
			partials = append(partials, mode.PartialFragment(file.Name, compiled))
		default:
			templates = append(templates, mode.TemplateFragment(file.Name, compiled))
		}
		d.logger.Debug("Compiled source", "path", path, "kind", file.Kind, "name", file.Name)
	}

	content, ok := Emit(mode, partials, templates, d.opts.Separator)
	res.Content = content
	res.Empty = !ok
	return res, nil
}

func (d *Driver) classify(path string) models.ClassifiedFile {
	if d.classifier.Classify(path) == models.Partial {
		return models.ClassifiedFile{Path: path, Kind: models.Partial, Name: naming.PartialName(path, d.opts.ProcessPartialName)}
	}
	return models.ClassifiedFile{Path: path, Kind: models.Template, Name: naming.TemplateName(path, d.opts.ProcessName)}
}
