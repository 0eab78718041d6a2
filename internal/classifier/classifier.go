// Package classifier decides whether a source file is a partial or a template.
package classifier

import (
	"regexp"
	"strings"

	"github.com/jpequegn/hbsbundle/internal/models"
)

// Classifier holds the two patterns used to recognise partials.
type Classifier struct {
	pathRegex    *regexp.Regexp
	partialRegex *regexp.Regexp
}

// New creates a Classifier. Nil patterns fall back to
// models.DefaultPartialsPathRegex and models.DefaultPartialRegex.
func New(pathRegex, partialRegex *regexp.Regexp) *Classifier {
	if pathRegex == nil {
		pathRegex = models.DefaultPartialsPathRegex
	}
	if partialRegex == nil {
		partialRegex = models.DefaultPartialRegex
	}
	return &Classifier{pathRegex: pathRegex, partialRegex: partialRegex}
}

// FromOptions creates a Classifier from resolved options.
func FromOptions(opts models.Options) *Classifier {
	return New(opts.PartialsPathRegex, opts.PartialRegex)
}

// Classify returns models.Partial when the full path matches the path pattern
// and its last segment matches the partial pattern.
func (c *Classifier) Classify(path string) models.Kind {
	if c.pathRegex.MatchString(path) && c.partialRegex.MatchString(lastSegment(path)) {
		return models.Partial
	}
	return models.Template
}

func lastSegment(path string) string {
	return path[strings.LastIndex(path, "/")+1:]
}
