package scoped

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestFile(t *testing.T) {
	t.Run("removed after success", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "scratch.mk")

		var sawContent []byte
		err := File(path, []byte("report:\n"), func() error {
			var readErr error
			sawContent, readErr = os.ReadFile(path)
			return readErr
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if string(sawContent) != "report:\n" {
			t.Errorf("fn saw %q, want %q", sawContent, "report:\n")
		}
		if _, statErr := os.Stat(path); !os.IsNotExist(statErr) {
			t.Errorf("file still present after File returned")
		}
	})

	t.Run("removed after failure", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "scratch.mk")
		boom := errors.New("make failed")

		err := File(path, []byte("x"), func() error { return boom })
		if !errors.Is(err, boom) {
			t.Fatalf("error = %v, want %v", err, boom)
		}
		if _, statErr := os.Stat(path); !os.IsNotExist(statErr) {
			t.Errorf("file still present after failed fn")
		}
	})

	t.Run("unwritable path skips fn", func(t *testing.T) {
		called := false
		err := File(filepath.Join(t.TempDir(), "no", "such", "dir", "f"), nil, func() error {
			called = true
			return nil
		})
		if err == nil {
			t.Fatal("expected error for unwritable path")
		}
		if called {
			t.Error("fn ran despite write failure")
		}
	})
}

func TestDir(t *testing.T) {
	var inside string
	err := Dir("ecos-test-*", func(dir string) error {
		inside = dir
		return os.WriteFile(filepath.Join(dir, "f"), []byte("1"), 0o644)
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if inside == "" {
		t.Fatal("fn never ran")
	}
	if _, statErr := os.Stat(inside); !os.IsNotExist(statErr) {
		t.Errorf("scratch dir %s still present", inside)
	}
}
