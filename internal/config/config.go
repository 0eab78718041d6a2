package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/jpequegn/hbsbundle/internal/fsutil"
	"github.com/jpequegn/hbsbundle/internal/models"
	"github.com/jpequegn/hbsbundle/internal/naming"
)

var (
	// ErrUnknownFormat is returned for task files with an unsupported extension.
	ErrUnknownFormat = errors.New("unsupported task file format")

	// ErrUnknownTarget is returned when a requested target is not defined.
	ErrUnknownTarget = errors.New("unknown target")
)

// File is a parsed task file.
type File struct {
	// Dir is the directory holding the task file. Source patterns and
	// destinations are relative to it.
	Dir string `yaml:"-" toml:"-"`

	Options Options  `yaml:"options" toml:"options"`
	Targets []Target `yaml:"targets" toml:"targets"`
}

// Target is a named set of file groups sharing one set of options.
type Target struct {
	Name    string  `yaml:"name" toml:"name"`
	Options Options `yaml:"options" toml:"options"`
	Files   []Files `yaml:"files" toml:"files"`
}

// Files maps source patterns to one destination.
type Files struct {
	Src  []string `yaml:"src" toml:"src"`
	Dest string   `yaml:"dest" toml:"dest"`
}

// Options are the options as written in a task file. Nil fields are unset
// and inherit from the enclosing level.
type Options struct {
	Namespace             *Namespace     `yaml:"namespace" toml:"namespace"`
	Separator             *string        `yaml:"separator" toml:"separator"`
	Wrapped               *bool          `yaml:"wrapped" toml:"wrapped"`
	AMD                   *bool          `yaml:"amd" toml:"amd"`
	CommonJS              *bool          `yaml:"commonjs" toml:"commonjs"`
	Node                  *bool          `yaml:"node" toml:"node"`
	KnownHelpers          []string       `yaml:"known_helpers" toml:"known_helpers"`
	KnownHelpersOnly      *bool          `yaml:"known_helpers_only" toml:"known_helpers_only"`
	PartialsPathRegex     *string        `yaml:"partials_path_regex" toml:"partials_path_regex"`
	PartialRegex          *string        `yaml:"partial_regex" toml:"partial_regex"`
	PartialsUseNamespace  *bool          `yaml:"partials_use_namespace" toml:"partials_use_namespace"`
	NameTrimPrefix        *string        `yaml:"name_trim_prefix" toml:"name_trim_prefix"`
	NameTrimExtension     *bool          `yaml:"name_trim_extension" toml:"name_trim_extension"`
	PartialNameTrimPrefix *string        `yaml:"partial_name_trim_prefix" toml:"partial_name_trim_prefix"`
	CompilerOptions       map[string]any `yaml:"compiler_options" toml:"compiler_options"`
}

// Job is a target ready to run: resolved options and expanded file groups.
type Job struct {
	Target  string
	Options models.Options
	Groups  []models.FileGroup
}

// Load reads a task file. The format is chosen by extension: .yaml, .yml,
// .toml or .hcl.
func Load(path string) (*File, error) {
	var (
		f   *File
		err error
	)

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		f, err = loadYAML(path)
	case ".toml":
		f, err = loadTOML(path)
	case ".hcl":
		f, err = loadHCL(path)
	default:
		return nil, fmt.Errorf("%s: %w", path, ErrUnknownFormat)
	}
	if err != nil {
		return nil, err
	}

	f.Dir = filepath.Dir(path)
	return f, nil
}

func loadYAML(path string) (*File, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse YAML file %s: %w", path, err)
	}
	return &f, nil
}

func loadTOML(path string) (*File, error) {
	var f File
	if _, err := toml.DecodeFile(path, &f); err != nil {
		return nil, fmt.Errorf("failed to parse TOML file %s: %w", path, err)
	}
	return &f, nil
}

// Jobs resolves the named targets, or every target when names is empty, in
// the order requested.
func (f *File) Jobs(names ...string) ([]Job, error) {
	targets := f.Targets
	if len(names) > 0 {
		targets = make([]Target, 0, len(names))
		for _, name := range names {
			t, ok := f.target(name)
			if !ok {
				return nil, fmt.Errorf("%q: %w", name, ErrUnknownTarget)
			}
			targets = append(targets, t)
		}
	}

	jobs := make([]Job, 0, len(targets))
	for _, t := range targets {
		job, err := f.job(t)
		if err != nil {
			return nil, fmt.Errorf("target %q: %w", t.Name, err)
		}
		jobs = append(jobs, job)
	}
	return jobs, nil
}

func (f *File) target(name string) (Target, bool) {
	for _, t := range f.Targets {
		if t.Name == name {
			return t, true
		}
	}
	return Target{}, false
}

func (f *File) job(t Target) (Job, error) {
	opts, err := Merge(f.Options, t.Options).Resolve()
	if err != nil {
		return Job{}, err
	}

	job := Job{Target: t.Name, Options: opts}
	for _, files := range t.Files {
		src, err := fsutil.Expand(f.Dir, files.Src)
		if err != nil {
			return Job{}, err
		}
		job.Groups = append(job.Groups, models.FileGroup{Src: src, Dest: filepath.ToSlash(files.Dest)})
	}
	return job, nil
}

// Merge returns base with every field set in override replacing it.
// CompilerOptions is replaced as a whole, not merged key by key.
func Merge(base, override Options) Options {
	out := base
	if override.Namespace != nil {
		out.Namespace = override.Namespace
	}
	if override.Separator != nil {
		out.Separator = override.Separator
	}
	if override.Wrapped != nil {
		out.Wrapped = override.Wrapped
	}
	if override.AMD != nil {
		out.AMD = override.AMD
	}
	if override.CommonJS != nil {
		out.CommonJS = override.CommonJS
	}
	if override.Node != nil {
		out.Node = override.Node
	}
	if override.KnownHelpers != nil {
		out.KnownHelpers = override.KnownHelpers
	}
	if override.KnownHelpersOnly != nil {
		out.KnownHelpersOnly = override.KnownHelpersOnly
	}
	if override.PartialsPathRegex != nil {
		out.PartialsPathRegex = override.PartialsPathRegex
	}
	if override.PartialRegex != nil {
		out.PartialRegex = override.PartialRegex
	}
	if override.PartialsUseNamespace != nil {
		out.PartialsUseNamespace = override.PartialsUseNamespace
	}
	if override.NameTrimPrefix != nil {
		out.NameTrimPrefix = override.NameTrimPrefix
	}
	if override.NameTrimExtension != nil {
		out.NameTrimExtension = override.NameTrimExtension
	}
	if override.PartialNameTrimPrefix != nil {
		out.PartialNameTrimPrefix = override.PartialNameTrimPrefix
	}
	if override.CompilerOptions != nil {
		out.CompilerOptions = override.CompilerOptions
	}
	return out
}

// Resolve applies the options on top of models.DefaultOptions and validates
// the result.
func (o Options) Resolve() (models.Options, error) {
	opts := models.DefaultOptions()

	if o.Namespace != nil {
		opts.Namespace = o.Namespace.Namespace
	}
	setString(&opts.Separator, o.Separator)
	setBool(&opts.Wrapped, o.Wrapped)
	setBool(&opts.AMD, o.AMD)
	setBool(&opts.CommonJS, o.CommonJS)
	setBool(&opts.Node, o.Node)
	setBool(&opts.KnownHelpersOnly, o.KnownHelpersOnly)
	setBool(&opts.PartialsUseNamespace, o.PartialsUseNamespace)
	if o.KnownHelpers != nil {
		opts.KnownHelpers = o.KnownHelpers
	}
	opts.CompilerOptions = o.CompilerOptions

	var err error
	if opts.PartialsPathRegex, err = compileRegex("partials_path_regex", o.PartialsPathRegex, opts.PartialsPathRegex); err != nil {
		return models.Options{}, err
	}
	if opts.PartialRegex, err = compileRegex("partial_regex", o.PartialRegex, opts.PartialRegex); err != nil {
		return models.Options{}, err
	}

	if o.NameTrimPrefix != nil || o.NameTrimExtension != nil {
		var prefix string
		var trimExt bool
		setString(&prefix, o.NameTrimPrefix)
		setBool(&trimExt, o.NameTrimExtension)
		opts.ProcessName = naming.TrimNames(prefix, trimExt)
	}
	if o.PartialNameTrimPrefix != nil {
		opts.ProcessPartialName = naming.TrimPartialNames(*o.PartialNameTrimPrefix)
	}

	if err := opts.Validate(); err != nil {
		return models.Options{}, err
	}
	return opts, nil
}

func compileRegex(field string, expr *string, def *regexp.Regexp) (*regexp.Regexp, error) {
	if expr == nil {
		return def, nil
	}
	re, err := regexp.Compile(*expr)
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %w", field, err)
	}
	return re, nil
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

func setBool(dst *bool, src *bool) {
	if src != nil {
		*dst = *src
	}
}

func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read task file: %w", err)
	}
	return data, nil
}
