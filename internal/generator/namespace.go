package generator

import (
	"strings"
)

// NamespaceInfo is the accessor expression for a namespace object and the
// statements that create it.
type NamespaceInfo struct {
	// Namespace is the accessor, e.g. this["App"]["Templates"].
	Namespace string

	// Declaration creates every level of the namespace, one statement per line.
	Declaration string
}

// NewNamespaceInfo builds the accessor and declaration for a dotted name.
// Parts equal to "this" are skipped; the name "this" itself declares nothing.
func NewNamespaceInfo(ns string) NamespaceInfo {
	path := "this"
	var decls []string

	if ns != "this" {
		for _, part := range strings.Split(ns, ".") {
			if part == "this" {
				continue
			}
			path += "[" + jsString(part) + "]"
			decls = append(decls, path+" = "+path+" || {};")
		}
	}

	return NamespaceInfo{
		Namespace:   path,
		Declaration: strings.Join(decls, "\n"),
	}
}
