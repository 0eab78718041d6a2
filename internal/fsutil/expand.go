package fsutil

import (
	"fmt"
	"path/filepath"
	"slices"
	"strings"
)

// ExcludePrefix marks a pattern that removes earlier matches.
const ExcludePrefix = "!"

// Expand resolves source patterns relative to dir into an ordered list of
// slash-separated paths, also relative to dir.
//
// Patterns without glob metacharacters are kept even when the file is
// missing, so the caller can report them. A pattern starting with "!" removes
// every previously collected path it matches. Duplicates keep their first
// position.
func Expand(dir string, patterns []string) ([]string, error) {
	var out []string
	seen := make(map[string]bool)

	for _, pattern := range patterns {
		if rest, ok := strings.CutPrefix(pattern, ExcludePrefix); ok {
			out = slices.DeleteFunc(out, func(p string) bool {
				matched, _ := filepath.Match(filepath.ToSlash(rest), p)
				if matched {
					delete(seen, p)
				}
				return matched
			})
			continue
		}

		if !hasMeta(pattern) {
			p := filepath.ToSlash(pattern)
			if !seen[p] {
				seen[p] = true
				out = append(out, p)
			}
			continue
		}

		matches, err := filepath.Glob(join(dir, pattern))
		if err != nil {
			return nil, fmt.Errorf("invalid source pattern %q: %w", pattern, err)
		}
		for _, m := range matches {
			p := filepath.ToSlash(rel(dir, m))
			if !seen[p] {
				seen[p] = true
				out = append(out, p)
			}
		}
	}

	return out, nil
}

func hasMeta(pattern string) bool {
	return strings.ContainsAny(pattern, `*?[`)
}

func join(dir, pattern string) string {
	if dir == "" || filepath.IsAbs(pattern) {
		return pattern
	}
	return filepath.Join(dir, pattern)
}

func rel(dir, path string) string {
	if dir == "" {
		return path
	}
	r, err := filepath.Rel(dir, path)
	if err != nil {
		return path
	}
	return r
}
