package generator

import "github.com/jpequegn/hbsbundle/internal/models"

// Body selects the statements placed around the registered fragments.
type Body int

const (
	// BodyPlain emits the fragments alone.
	BodyPlain Body = iota

	// BodyNamespace declares the namespace before the fragments.
	BodyNamespace

	// BodyNamespaceNode declares the namespace, resolves Handlebars from the
	// global object or require() and exports the namespace when possible.
	BodyNamespaceNode

	// BodyNode requires handlebars before a single exported template.
	BodyNode

	// BodyNodeCollector requires handlebars and exports a templates object.
	BodyNodeCollector
)

// Envelope selects the module wrapper placed around the body.
type Envelope int

const (
	// EnvelopeNone emits the body as a plain script.
	EnvelopeNone Envelope = iota

	// EnvelopeAMD wraps the body in define(['handlebars'], function(Handlebars) {...}).
	EnvelopeAMD

	// EnvelopeCommonJS wraps the body in a module.exports = function(Handlebars) {...} factory.
	EnvelopeCommonJS

	// EnvelopeAMDCommonJS puts the define() module inside the CommonJS factory.
	EnvelopeAMDCommonJS
)

// templateForm is the statement shape of one template fragment.
type templateForm int

const (
	formBare templateForm = iota
	formNamespace
	formCollector
	formAssign
	formExport
)

// Mode is the output layout for one file group, decided once from the options
// and the number of source files.
type Mode struct {
	Body     Body
	Envelope Envelope

	// NS is only meaningful when Namespaced is set.
	NS         NamespaceInfo
	Namespaced bool

	template             templateForm
	partialsUseNamespace bool
}

// ResolveMode decides the output layout. fileCount is the number of source
// files that survived the existence check.
func ResolveMode(opts models.Options, fileCount int) Mode {
	m := Mode{
		Namespaced:           opts.Namespace.Enabled(),
		partialsUseNamespace: opts.PartialsUseNamespace,
	}
	single := fileCount == 1

	switch {
	case m.Namespaced && opts.Node:
		m.Body = BodyNamespaceNode
	case m.Namespaced:
		m.Body = BodyNamespace
	case opts.Node && !single:
		m.Body = BodyNodeCollector
	case opts.Node:
		m.Body = BodyNode
	default:
		m.Body = BodyPlain
	}

	switch {
	case opts.AMD && opts.CommonJS:
		m.Envelope = EnvelopeAMDCommonJS
	case opts.AMD:
		m.Envelope = EnvelopeAMD
	case opts.CommonJS:
		m.Envelope = EnvelopeCommonJS
	default:
		m.Envelope = EnvelopeNone
	}

	switch {
	case m.Namespaced:
		m.template = formNamespace
	case single && opts.CommonJS:
		m.template = formAssign
	case single && opts.Node:
		m.template = formExport
	case opts.CommonJS || opts.Node:
		m.template = formCollector
	default:
		m.template = formBare
	}

	if m.Namespaced {
		m.NS = NewNamespaceInfo(opts.Namespace.Name())
	}
	return m
}

// PartialFragment returns the statement registering a compiled partial.
func (m Mode) PartialFragment(name, compiled string) string {
	quoted := jsString(name)
	if m.partialsUseNamespace {
		return "Handlebars.registerPartial(" + quoted + ", " + m.NS.Namespace + "[" + quoted + "] = " + compiled + ");"
	}
	return "Handlebars.registerPartial(" + quoted + ", " + compiled + ");"
}

// TemplateFragment returns the statement registering a compiled template.
func (m Mode) TemplateFragment(name, compiled string) string {
	switch m.template {
	case formNamespace:
		return m.NS.Namespace + "[" + jsString(name) + "] = " + compiled + ";"
	case formCollector:
		return "templates[" + jsString(name) + "] = " + compiled + ";"
	case formAssign:
		return "templates = " + compiled + ";"
	case formExport:
		return "module.exports = " + compiled + ";"
	default:
		return compiled
	}
}
