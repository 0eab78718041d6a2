// Package models contains shared data structures used across the application.
package models

import (
	"errors"
	"regexp"
)

// Default option values applied when a task file leaves them unset.
const (
	DefaultNamespace = "JST"
	DefaultSeparator = "\n\n"
)

var (
	// DefaultPartialsPathRegex matches any non-empty path.
	DefaultPartialsPathRegex = regexp.MustCompile(`.`)

	// DefaultPartialRegex matches file names beginning with an underscore.
	DefaultPartialRegex = regexp.MustCompile(`^_`)
)

// ErrPartialsNeedNamespace is returned by Validate when partials are asked to be
// stored in a namespace that has been disabled.
var ErrPartialsNeedNamespace = errors.New("partialsUseNamespace requires a namespace")

// Namespace is the name of the global object templates are assigned into.
// The zero value is a disabled namespace.
type Namespace struct {
	name string
}

// NamedNamespace returns an enabled namespace with the given dotted name.
func NamedNamespace(name string) Namespace {
	return Namespace{name: name}
}

// NoNamespace returns a disabled namespace.
func NoNamespace() Namespace {
	return Namespace{}
}

// Enabled reports whether templates are assigned into a namespace object.
func (n Namespace) Enabled() bool {
	return n.name != ""
}

// Name returns the dotted namespace name, or "" when disabled.
func (n Namespace) Name() string {
	return n.name
}

// String implements fmt.Stringer.
func (n Namespace) String() string {
	if !n.Enabled() {
		return "false"
	}
	return n.name
}

// Options holds the resolved configuration for one file group.
// Options must not be mutated once processing of a group has started.
type Options struct {
	// Namespace is the object compiled templates are assigned into.
	Namespace Namespace

	// Separator joins the emitted lines. Line endings are normalised before use.
	Separator string

	// Wrapped wraps every compiled template in a Handlebars.template(...) call.
	Wrapped bool

	// AMD wraps the output in a define() module.
	AMD bool

	// CommonJS wraps the output in a module.exports = function(Handlebars) {...} factory.
	CommonJS bool

	// Node emits require('handlebars') and module.exports plumbing.
	Node bool

	// KnownHelpers and KnownHelpersOnly are forwarded to the compiler.
	KnownHelpers     []string
	KnownHelpersOnly bool

	// PartialsPathRegex restricts which paths may hold partials.
	PartialsPathRegex *regexp.Regexp

	// PartialRegex identifies a partial by its file name.
	PartialRegex *regexp.Regexp

	// PartialsUseNamespace also assigns partials into the namespace object.
	PartialsUseNamespace bool

	ProcessContent     ContentProcessor
	ProcessAST         ASTProcessor
	ProcessName        NameProcessor
	ProcessPartialName NameProcessor

	// CompilerOptions is passed verbatim to the precompiler.
	CompilerOptions map[string]any
}

// DefaultOptions returns the built-in defaults. Transform strategies are left
// nil; consumers fall back to their own defaults.
func DefaultOptions() Options {
	return Options{
		Namespace:         NamedNamespace(DefaultNamespace),
		Separator:         DefaultSeparator,
		Wrapped:           true,
		KnownHelpers:      []string{},
		PartialsPathRegex: DefaultPartialsPathRegex,
		PartialRegex:      DefaultPartialRegex,
	}
}

// Validate checks option combinations that cannot produce working output.
func (o Options) Validate() error {
	if o.PartialsUseNamespace && !o.Namespace.Enabled() {
		return ErrPartialsNeedNamespace
	}
	return nil
}

// EffectiveCompilerOptions returns CompilerOptions with the known helper
// settings merged in. Keys already present in CompilerOptions win.
func (o Options) EffectiveCompilerOptions() map[string]any {
	out := make(map[string]any, len(o.CompilerOptions)+2)
	for k, v := range o.CompilerOptions {
		out[k] = v
	}
	if _, ok := out["knownHelpers"]; !ok && len(o.KnownHelpers) > 0 {
		helpers := make(map[string]any, len(o.KnownHelpers))
		for _, h := range o.KnownHelpers {
			helpers[h] = true
		}
		out["knownHelpers"] = helpers
	}
	if _, ok := out["knownHelpersOnly"]; !ok && o.KnownHelpersOnly {
		out["knownHelpersOnly"] = true
	}
	return out
}
