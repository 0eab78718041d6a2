// Package fsutil provides the filesystem access used while bundling templates.
package fsutil

import (
	"fmt"
	"os"
	"path/filepath"
)

// FS is the filesystem the bundler reads sources from and writes output to.
type FS interface {
	// Exists reports whether path names an existing regular file.
	Exists(path string) bool

	// Read returns the full contents of path as text.
	Read(path string) (string, error)

	// Write stores text at path, creating parent directories as needed.
	Write(path, text string) error
}

// OS is an FS backed by the local disk. Relative paths are resolved against
// Dir when it is set.
type OS struct {
	Dir string
}

// NewOS creates an OS filesystem rooted at dir.
func NewOS(dir string) *OS {
	return &OS{Dir: dir}
}

func (o *OS) resolve(path string) string {
	if o.Dir == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(o.Dir, path)
}

// Exists implements FS.
func (o *OS) Exists(path string) bool {
	info, err := os.Stat(o.resolve(path))
	return err == nil && !info.IsDir()
}

// Read implements FS.
func (o *OS) Read(path string) (string, error) {
	data, err := os.ReadFile(o.resolve(path))
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	return string(data), nil
}

// Write implements FS.
func (o *OS) Write(path, text string) error {
	full := o.resolve(path)
	if err := os.MkdirAll(filepath.Dir(full), 0755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", path, err)
	}
	if err := os.WriteFile(full, []byte(text), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
