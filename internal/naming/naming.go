// Package naming derives registration names for templates and partials from
// their source paths.
package naming

import (
	"strings"

	"github.com/jpequegn/hbsbundle/internal/models"
)

// PartialMarker is the leading character stripped from partial names.
const PartialMarker = "_"

// TemplateName returns the name a template is registered under.
// A nil processor leaves the path unchanged.
func TemplateName(path string, p models.NameProcessor) string {
	if p == nil {
		p = models.IdentityName
	}
	return p.ProcessName(path)
}

// PartialName returns the name a partial is registered under.
// A nil processor falls back to DefaultPartialName.
func PartialName(path string, p models.NameProcessor) string {
	if p == nil {
		p = DefaultPartial
	}
	return p.ProcessName(path)
}

// DefaultPartial is DefaultPartialName as a NameProcessor.
var DefaultPartial models.NameProcessor = models.NameFunc(DefaultPartialName)

// DefaultPartialName takes the last path segment, drops its extension and
// strips one leading underscore.
//
// A segment without an extension is used whole, as is one whose only dot is
// leading (".hbs"). When stripping the underscore would leave nothing, the
// underscore is kept.
func DefaultPartialName(path string) string {
	name := lastSegment(path)
	if i := strings.LastIndex(name, "."); i > 0 {
		name = name[:i]
	}
	if len(name) > len(PartialMarker) && strings.HasPrefix(name, PartialMarker) {
		name = name[len(PartialMarker):]
	}
	return name
}

// TrimNames builds a NameProcessor that removes prefix from the path and,
// when trimExt is set, the file extension of the last segment.
func TrimNames(prefix string, trimExt bool) models.NameProcessor {
	return models.NameFunc(func(path string) string {
		name := strings.TrimPrefix(path, prefix)
		if trimExt {
			seg := lastSegment(name)
			if i := strings.LastIndex(seg, "."); i > 0 {
				name = name[:len(name)-len(seg)+i]
			}
		}
		return name
	})
}

// TrimPartialNames builds a NameProcessor for partials that keeps the
// directories below prefix. The last segment is named as in
// DefaultPartialName, so "partials/forms/_field.hbs" with prefix "partials/"
// becomes "forms/field".
func TrimPartialNames(prefix string) models.NameProcessor {
	return models.NameFunc(func(path string) string {
		rest := strings.TrimPrefix(path, prefix)
		dir := rest[:len(rest)-len(lastSegment(rest))]
		return dir + DefaultPartialName(rest)
	})
}

// lastSegment returns the text after the final "/".
func lastSegment(path string) string {
	return path[strings.LastIndex(path, "/")+1:]
}
