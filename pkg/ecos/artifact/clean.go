package artifact

import (
	"os"
	"path/filepath"

	"github.com/ECOS-C1-SDK4Heke/cargo-ecos/pkg/ecos/project"
	"github.com/ECOS-C1-SDK4Heke/cargo-ecos/pkg/ecos/runner"
	"github.com/ECOS-C1-SDK4Heke/cargo-ecos/pkg/ecos/ui"
)

// Clean removes build outputs. With all set it also drops the saved
// configuration and the generated include tree, returning the project to
// its just-scaffolded state. Removals are best-effort.
func Clean(lay *project.Layout, run runner.Runner, all bool) error {
	if all {
		ui.Step("🧹", "Cleaning ALL ECOS project artifacts...")
	} else {
		ui.Step("🧹", "Cleaning ECOS project build artifacts...")
	}

	ui.Detail("🗑️  Running cargo clean...")
	cargoClean := runner.Command{
		Program:     "cargo",
		Args:        []string{"clean"},
		Dir:         lay.Root(),
		Interactive: true,
	}
	if err := run.Run(cargoClean); err != nil {
		ui.Warn("Cargo clean failed")
	}

	if _, err := os.Stat(lay.BuildDir()); err == nil {
		ui.Detail("🗑️  Removing build directory...")
		os.RemoveAll(lay.BuildDir())
	}

	if all {
		ui.Detail("🗑️  Removing configs and include directories...")

		targets := []string{
			lay.ConfigFile(),
			lay.ConfigFile() + ".old",
			lay.ConfigStaging(),
			filepath.Join(lay.ConfigsDir(), "generated"),
		}
		for _, target := range targets {
			if _, err := os.Stat(target); err == nil {
				ui.Detail("  Removing %s...", displayPath(lay.Root(), target))
				os.RemoveAll(target)
			}
		}

		if _, err := os.Stat(lay.IncludeDir()); err == nil {
			ui.Detail("  Removing include directory...")
			os.RemoveAll(lay.IncludeDir())
		}
	}

	ui.Success("Clean completed!")
	return nil
}

func displayPath(root, path string) string {
	if rel, err := filepath.Rel(root, path); err == nil {
		return rel
	}
	return path
}
