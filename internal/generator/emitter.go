package generator

import "strings"

const (
	globLine          = "var glob = ('undefined' === typeof window) ? global : window,"
	globHandlebars    = "Handlebars = glob.Handlebars || require('handlebars');"
	requireHandlebars = "var Handlebars = require('handlebars');"
	collectorDecl     = "var templates = {};"
	collectorExport   = "module.exports = templates;"
	collectorReturn   = "return templates;"
	amdOpen           = "define(['handlebars'], function(Handlebars) {"
	amdClose          = "});"
	commonJSOpen      = "module.exports = function(Handlebars) {"
	commonJSClose     = "};"
)

// Emit assembles the output document. Partials come before templates and
// each list keeps its order. It returns false when there is nothing to emit.
func Emit(m Mode, partials, templates []string, separator string) (string, bool) {
	if len(partials)+len(templates) == 0 {
		return "", false
	}

	frags := make([]string, 0, len(partials)+len(templates))
	frags = append(frags, partials...)
	frags = append(frags, templates...)

	lines := m.body(frags)

	if m.Envelope == EnvelopeAMD || m.Envelope == EnvelopeAMDCommonJS {
		lines = m.wrapAMD(lines)
	}
	if m.Envelope == EnvelopeCommonJS || m.Envelope == EnvelopeAMDCommonJS {
		lines = m.wrapCommonJS(lines)
	}

	return strings.Join(lines, normalizeLF(separator)), true
}

func (m Mode) body(frags []string) []string {
	switch m.Body {
	case BodyNamespace:
		return concat([]string{m.NS.Declaration}, frags)
	case BodyNamespaceNode:
		nodeExport := "if (typeof exports === 'object' && exports) {module.exports = " + m.NS.Namespace + ";}"
		return concat([]string{globLine, globHandlebars, m.NS.Declaration}, frags, []string{nodeExport})
	case BodyNode:
		return concat([]string{requireHandlebars}, frags)
	case BodyNodeCollector:
		return concat([]string{requireHandlebars, collectorDecl}, frags, []string{collectorExport})
	default:
		return frags
	}
}

func (m Mode) wrapAMD(lines []string) []string {
	tail := []string{amdClose}
	if m.Namespaced {
		tail = []string{"return " + m.NS.Namespace + ";", amdClose}
	}
	return concat([]string{amdOpen}, lines, tail)
}

func (m Mode) wrapCommonJS(lines []string) []string {
	if m.Namespaced {
		lines = concat(lines, []string{"return " + m.NS.Namespace + ";"})
	} else {
		lines = concat([]string{collectorDecl}, lines, []string{collectorReturn})
	}
	return concat([]string{commonJSOpen}, lines, []string{commonJSClose})
}

func concat(parts ...[]string) []string {
	var n int
	for _, p := range parts {
		n += len(p)
	}
	out := make([]string, 0, n)
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

// normalizeLF rewrites CRLF line endings in the separator to LF.
func normalizeLF(s string) string {
	return strings.ReplaceAll(s, "\r\n", "\n")
}
