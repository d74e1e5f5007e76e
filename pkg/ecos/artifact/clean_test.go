package artifact

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/ECOS-C1-SDK4Heke/cargo-ecos/pkg/ecos/project"
	"github.com/ECOS-C1-SDK4Heke/cargo-ecos/pkg/ecos/runner"
)

func populateProject(t *testing.T, lay *project.Layout) {
	t.Helper()
	dirs := []string{
		lay.BuildDir(),
		lay.ConfigsDir(),
		filepath.Join(lay.ConfigsDir(), "generated"),
		filepath.Join(lay.IncludeDir(), "generated"),
	}
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
	}
	files := []string{
		lay.ImageBin(),
		lay.ConfigFile(),
		lay.ConfigFile() + ".old",
		lay.ConfigStaging(),
		lay.GeneratedHeader(),
	}
	for _, file := range files {
		if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
			t.Fatalf("write: %v", err)
		}
	}
}

func TestClean(t *testing.T) {
	lay := project.NewLayout(t.TempDir(), "app")
	populateProject(t, lay)
	fake := &runner.Fake{}

	if err := Clean(lay, fake, false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !fake.Ran("cargo") {
		t.Error("cargo clean was not invoked")
	}
	if len(fake.Calls) == 1 {
		call := fake.Calls[0]
		if !slicesEqual(call.Args, []string{"clean"}) || call.Dir != lay.Root() || !call.Interactive {
			t.Errorf("cargo clean shape: args=%v dir=%q interactive=%v", call.Args, call.Dir, call.Interactive)
		}
	}

	if _, err := os.Stat(lay.BuildDir()); err == nil {
		t.Error("build directory survived")
	}
	for _, kept := range []string{lay.ConfigFile(), lay.ConfigStaging(), lay.GeneratedHeader()} {
		if _, err := os.Stat(kept); err != nil {
			t.Errorf("configuration state removed without --all: %s", kept)
		}
	}
}

func TestCleanAll(t *testing.T) {
	lay := project.NewLayout(t.TempDir(), "app")
	populateProject(t, lay)
	fake := &runner.Fake{}

	if err := Clean(lay, fake, true); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	gone := []string{
		lay.BuildDir(),
		lay.ConfigFile(),
		lay.ConfigFile() + ".old",
		lay.ConfigStaging(),
		filepath.Join(lay.ConfigsDir(), "generated"),
		lay.IncludeDir(),
	}
	for _, path := range gone {
		if _, err := os.Stat(path); err == nil {
			t.Errorf("still present after full clean: %s", path)
		}
	}
	if _, err := os.Stat(lay.ConfigsDir()); err != nil {
		t.Error("configs directory itself should survive a full clean")
	}
}

func TestCleanToleratesCargoFailure(t *testing.T) {
	lay := project.NewLayout(t.TempDir(), "app")
	populateProject(t, lay)
	fake := &runner.Fake{Handler: func(c runner.Command) ([]byte, error) {
		return nil, errors.New("cargo clean exited with code 101")
	}}

	if err := Clean(lay, fake, false); err != nil {
		t.Fatalf("cargo clean failure must not abort: %v", err)
	}
	if _, err := os.Stat(lay.BuildDir()); err == nil {
		t.Error("build directory survived despite the clean continuing")
	}
}
