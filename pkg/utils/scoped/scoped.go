// Package scoped runs work against scratch files and directories that
// are removed on every exit path, error or not.
package scoped

import (
	"fmt"
	"os"
)

// File writes content to path, calls fn, and removes the file before
// returning. fn's error passes through untouched.
func File(path string, content []byte, fn func() error) error {
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	defer os.Remove(path)

	return fn()
}

// Dir creates a directory under the system temp root, calls fn with its
// path, and removes the whole tree before returning.
func Dir(pattern string, fn func(dir string) error) error {
	dir, err := os.MkdirTemp("", pattern)
	if err != nil {
		return fmt.Errorf("creating scratch dir: %w", err)
	}
	defer os.RemoveAll(dir)

	return fn(dir)
}
