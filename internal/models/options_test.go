package models

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNamespace(t *testing.T) {
	if NoNamespace().Enabled() {
		t.Error("NoNamespace().Enabled() = true")
	}
	if got := NoNamespace().String(); got != "false" {
		t.Errorf("NoNamespace().String() = %q, want false", got)
	}

	ns := NamedNamespace("App.Templates")
	if !ns.Enabled() || ns.Name() != "App.Templates" || ns.String() != "App.Templates" {
		t.Errorf("NamedNamespace() = %+v", ns)
	}
}

func TestDefaultOptions(t *testing.T) {
	o := DefaultOptions()
	if o.Namespace.Name() != "JST" {
		t.Errorf("Namespace = %q, want JST", o.Namespace.Name())
	}
	if o.Separator != "\n\n" {
		t.Errorf("Separator = %q", o.Separator)
	}
	if !o.Wrapped || o.AMD || o.CommonJS || o.Node || o.KnownHelpersOnly || o.PartialsUseNamespace {
		t.Errorf("unexpected boolean defaults: %+v", o)
	}
	if !o.PartialRegex.MatchString("_a.hbs") || o.PartialRegex.MatchString("a_.hbs") {
		t.Error("default partial regex should match a leading underscore only")
	}
	if o.PartialsPathRegex.MatchString("") || !o.PartialsPathRegex.MatchString("x") {
		t.Error("default partials path regex should match any non-empty path")
	}
}

func TestOptions_Validate(t *testing.T) {
	o := DefaultOptions()
	o.PartialsUseNamespace = true
	if err := o.Validate(); err != nil {
		t.Errorf("Validate() with namespace = %v", err)
	}

	o.Namespace = NoNamespace()
	if err := o.Validate(); !errors.Is(err, ErrPartialsNeedNamespace) {
		t.Errorf("Validate() = %v, want ErrPartialsNeedNamespace", err)
	}
}

func TestOptions_EffectiveCompilerOptions(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		want map[string]any
	}{
		{
			name: "nothing set",
			opts: DefaultOptions(),
			want: map[string]any{},
		},
		{
			name: "known helpers merged",
			opts: Options{KnownHelpers: []string{"t"}, KnownHelpersOnly: true, CompilerOptions: map[string]any{"data": false}},
			want: map[string]any{"data": false, "knownHelpers": map[string]any{"t": true}, "knownHelpersOnly": true},
		},
		{
			name: "explicit compiler options win",
			opts: Options{KnownHelpers: []string{"t"}, CompilerOptions: map[string]any{"knownHelpers": map[string]any{"x": true}}},
			want: map[string]any{"knownHelpers": map[string]any{"x": true}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, tt.opts.EffectiveCompilerOptions()); diff != "" {
				t.Errorf("EffectiveCompilerOptions() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestKind_String(t *testing.T) {
	if Partial.String() != "partial" || Template.String() != "template" {
		t.Errorf("Kind strings = %q, %q", Partial, Template)
	}
}
