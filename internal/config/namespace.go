package config

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/jpequegn/hbsbundle/internal/models"
)

// ErrInvalidNamespace is returned for namespace values other than a
// non-empty string or false.
var ErrInvalidNamespace = errors.New("namespace must be a non-empty string or false")

// Namespace is the namespace option as written in a task file: either a
// dotted name or the boolean false.
type Namespace struct {
	models.Namespace
}

func namespaceFromString(s string) (Namespace, error) {
	if s == "" {
		return Namespace{}, ErrInvalidNamespace
	}
	return Namespace{models.NamedNamespace(s)}, nil
}

func namespaceFromBool(b bool) (Namespace, error) {
	if b {
		return Namespace{}, ErrInvalidNamespace
	}
	return Namespace{models.NoNamespace()}, nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (n *Namespace) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: %w", value.Line, ErrInvalidNamespace)
	}

	var err error
	switch value.Tag {
	case "!!bool":
		var b bool
		if err := value.Decode(&b); err != nil {
			return err
		}
		*n, err = namespaceFromBool(b)
	default:
		*n, err = namespaceFromString(value.Value)
	}
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	return nil
}

// UnmarshalTOML implements toml.Unmarshaler.
func (n *Namespace) UnmarshalTOML(data any) error {
	var err error
	switch v := data.(type) {
	case bool:
		*n, err = namespaceFromBool(v)
	case string:
		*n, err = namespaceFromString(v)
	default:
		err = ErrInvalidNamespace
	}
	return err
}
