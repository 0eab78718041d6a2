package config

import (
	"encoding/json"
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	ctyjson "github.com/zclconf/go-cty/cty/json"
)

// hclFile is the top-level structure of an HCL task file.
//
//	options {
//	  namespace = false
//	}
//
//	target "app" {
//	  options {
//	    node = true
//	  }
//	  files {
//	    src  = ["templates/*.hbs"]
//	    dest = "build/templates.js"
//	  }
//	}
type hclFile struct {
	Options *hclOptions  `hcl:"options,block"`
	Targets []*hclTarget `hcl:"target,block"`
}

type hclTarget struct {
	Name    string      `hcl:"name,label"`
	Options *hclOptions `hcl:"options,block"`
	Files   []*hclFiles `hcl:"files,block"`
}

type hclFiles struct {
	Src  []string `hcl:"src"`
	Dest string   `hcl:"dest"`
}

// hclOptions mirrors Options. namespace and compiler_options are decoded as
// raw values because their types vary.
type hclOptions struct {
	Namespace             cty.Value `hcl:"namespace,optional"`
	Separator             *string   `hcl:"separator,optional"`
	Wrapped               *bool     `hcl:"wrapped,optional"`
	AMD                   *bool     `hcl:"amd,optional"`
	CommonJS              *bool     `hcl:"commonjs,optional"`
	Node                  *bool     `hcl:"node,optional"`
	KnownHelpers          []string  `hcl:"known_helpers,optional"`
	KnownHelpersOnly      *bool     `hcl:"known_helpers_only,optional"`
	PartialsPathRegex     *string   `hcl:"partials_path_regex,optional"`
	PartialRegex          *string   `hcl:"partial_regex,optional"`
	PartialsUseNamespace  *bool     `hcl:"partials_use_namespace,optional"`
	NameTrimPrefix        *string   `hcl:"name_trim_prefix,optional"`
	NameTrimExtension     *bool     `hcl:"name_trim_extension,optional"`
	PartialNameTrimPrefix *string   `hcl:"partial_name_trim_prefix,optional"`
	CompilerOptions       cty.Value `hcl:"compiler_options,optional"`
}

func loadHCL(path string) (*File, error) {
	parser := hclparse.NewParser()
	hclF, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", path, diags)
	}

	var parsed hclFile
	diags = gohcl.DecodeBody(hclF.Body, nil, &parsed)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL file %s: %w", path, diags)
	}

	f := &File{}
	var err error
	if f.Options, err = parsed.Options.toOptions(); err != nil {
		return nil, fmt.Errorf("%s: options: %w", path, err)
	}

	for _, t := range parsed.Targets {
		target := Target{Name: t.Name}
		if target.Options, err = t.Options.toOptions(); err != nil {
			return nil, fmt.Errorf("%s: target %q: %w", path, t.Name, err)
		}
		for _, files := range t.Files {
			target.Files = append(target.Files, Files{Src: files.Src, Dest: files.Dest})
		}
		f.Targets = append(f.Targets, target)
	}

	return f, nil
}

func (h *hclOptions) toOptions() (Options, error) {
	if h == nil {
		return Options{}, nil
	}

	opts := Options{
		Separator:             h.Separator,
		Wrapped:               h.Wrapped,
		AMD:                   h.AMD,
		CommonJS:              h.CommonJS,
		Node:                  h.Node,
		KnownHelpers:          h.KnownHelpers,
		KnownHelpersOnly:      h.KnownHelpersOnly,
		PartialsPathRegex:     h.PartialsPathRegex,
		PartialRegex:          h.PartialRegex,
		PartialsUseNamespace:  h.PartialsUseNamespace,
		NameTrimPrefix:        h.NameTrimPrefix,
		NameTrimExtension:     h.NameTrimExtension,
		PartialNameTrimPrefix: h.PartialNameTrimPrefix,
	}

	ns, err := namespaceFromCty(h.Namespace)
	if err != nil {
		return Options{}, err
	}
	opts.Namespace = ns

	if opts.CompilerOptions, err = objectFromCty(h.CompilerOptions); err != nil {
		return Options{}, fmt.Errorf("compiler_options: %w", err)
	}
	return opts, nil
}

// namespaceFromCty accepts a string or false. A null value leaves the
// option unset.
func namespaceFromCty(v cty.Value) (*Namespace, error) {
	if v.IsNull() {
		return nil, nil
	}

	var (
		ns  Namespace
		err error
	)
	switch {
	case v.Type().Equals(cty.String):
		ns, err = namespaceFromString(v.AsString())
	case v.Type().Equals(cty.Bool):
		ns, err = namespaceFromBool(v.True())
	default:
		err = ErrInvalidNamespace
	}
	if err != nil {
		return nil, err
	}
	return &ns, nil
}

// objectFromCty converts an HCL object into plain Go values through its
// JSON form.
func objectFromCty(v cty.Value) (map[string]any, error) {
	if v.IsNull() {
		return nil, nil
	}
	if !v.Type().IsObjectType() && !v.Type().IsMapType() {
		return nil, fmt.Errorf("expected an object, got %s", v.Type().FriendlyName())
	}

	data, err := ctyjson.Marshal(v, v.Type())
	if err != nil {
		return nil, err
	}

	var out map[string]any
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	return out, nil
}
