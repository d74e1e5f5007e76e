package scaffold

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-hclog"

	"github.com/ECOS-C1-SDK4Heke/cargo-ecos/pkg/ecos/ui"
)

// Options configures project creation. Interactive prompts fill in
// whatever the command line left unset.
type Options struct {
	// Path is the project directory. "." scaffolds into the current
	// directory; empty prompts for one.
	Path string

	// Template names the platform template. Empty prompts with a list.
	Template string

	// Flash is the flash device path written into the manifest. FlashSet
	// distinguishes an explicit empty value from an absent flag.
	Flash    string
	FlashSet bool

	// Force overwrites existing files and creates missing parents.
	Force bool
}

// Run scaffolds a new ECOS project.
func Run(opts Options, logger hclog.Logger) error {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	dir, name, err := projectInfo(opts)
	if err != nil {
		return err
	}

	available := Templates()
	if len(available) == 0 {
		return errors.New("No templates available. Please reinstall ecos.")
	}

	template, err := chooseTemplate(opts.Template, available)
	if err != nil {
		return err
	}

	if err := ensureDirectory(dir, opts.Force); err != nil {
		return err
	}

	flashPath := opts.Flash
	if !opts.FlashSet {
		flashPath, err = promptFlashPath()
		if err != nil {
			return err
		}
	}

	logger.Debug("🚀 Scaffolding project", "dir", dir, "template", template)
	ui.Step("🚀", "Creating project '%s' with template '%s'...",
		ui.Bold(name), ui.Cyan(template))

	if err := Materialize(template, dir, name, flashPath); err != nil {
		return err
	}
	if err := extraDirectories(dir); err != nil {
		return err
	}

	gitReady := true
	if err := bootstrapRepo(dir, name); err != nil {
		ui.Detail("%s: %v", ui.Yellow("Git skipped"), err)
		gitReady = false
	}

	ui.Success("%s project initialized successfully!", ui.Green("ECOS"))
	fmt.Printf("📁 Project created at: %s\n", ui.Cyan(dir))
	fmt.Printf("🎯 Target platform: %s\n", ui.Cyan(template))

	if flashPath != "" {
		fmt.Printf("⚡ Flash path: %s\n", ui.Cyan(flashPath))
		fmt.Printf("%s Use 'ecos flash' to copy firmware to this path\n", ui.Dim("💡"))
	} else {
		ui.Warn("Flash path not configured")
		ui.Detail("%s Use 'ecos flash --path <path>' to specify target when flashing", ui.Dim("💡"))
	}

	if gitReady {
		printGitHints()
	}
	return nil
}

// projectInfo resolves the target directory and project name from the
// path argument, prompting when none was given.
func projectInfo(opts Options) (string, string, error) {
	raw := opts.Path
	if raw == "" {
		var err error
		raw, err = promptProjectPath()
		if err != nil {
			return "", "", err
		}
	}

	if raw == "." {
		cwd, err := os.Getwd()
		if err != nil {
			return "", "", err
		}
		return cwd, projectName(cwd), nil
	}

	raw = strings.TrimPrefix(raw, "./")

	if parent := filepath.Dir(raw); parent != "." {
		if _, err := os.Stat(parent); err != nil {
			if !opts.Force {
				return "", "", fmt.Errorf(
					"Parent directory '%s' does not exist.\nUse -f flag to create it automatically.", parent)
			}
			if err := os.MkdirAll(parent, 0o755); err != nil {
				return "", "", fmt.Errorf("failed to create parent directory: %w", err)
			}
		}
	}

	dir := raw
	if !filepath.IsAbs(dir) {
		cwd, err := os.Getwd()
		if err != nil {
			return "", "", err
		}
		dir = filepath.Join(cwd, dir)
	}
	return dir, projectName(dir), nil
}

func projectName(dir string) string {
	name := filepath.Base(dir)
	if name == "." || name == string(filepath.Separator) {
		return "ecos-project"
	}
	return name
}

// ensureDirectory creates the target when missing and guards against
// clobbering a non-empty one.
func ensureDirectory(dir string, force bool) error {
	if _, err := os.Stat(dir); err != nil {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create project directory: %w", err)
		}
		return nil
	}

	if force || !hasContent(dir) {
		return nil
	}

	proceed, err := confirmOverwrite()
	if err != nil {
		return err
	}
	if !proceed {
		return errors.New("Operation cancelled by user")
	}
	return nil
}

// hasContent reports whether dir holds anything besides a .git entry.
func hasContent(dir string) bool {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return false
	}
	for _, entry := range entries {
		if entry.Name() != ".git" {
			return true
		}
	}
	return false
}

// extraDirectories adds the working directories the build pipeline
// expects that no template ships.
func extraDirectories(dir string) error {
	for _, sub := range []string{"configs", "include", "build"} {
		p := filepath.Join(dir, sub)
		if _, err := os.Stat(p); err == nil {
			continue
		}
		if err := os.MkdirAll(p, 0o755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", p, err)
		}
		ui.Detail("Created directory: %s", ui.Dim(p))
	}
	return nil
}

func printGitHints() {
	fmt.Printf("\n📦 %s Git repository initialized.\n", ui.Cyan(ui.Bold("Next steps:")))
	ui.Detail("%s", ui.Dim("To connect to a remote repository:"))
	ui.Detail("%s", ui.Dim("> git remote add origin git@<your remote repository>.git"))
	ui.Detail("%s", ui.Dim("To rename the default branch:"))
	ui.Detail("%s", ui.Dim("> git branch -M main"))
	ui.Detail("%s", ui.Dim("To push your changes:"))
	ui.Detail("%s", ui.Dim("> git push -u origin main"))
	ui.Detail("%s", ui.Dim("To make further changes:"))
	ui.Detail("%s", ui.Dim("> git add ."))
	ui.Detail("%s", ui.Dim("> git commit -a -m \"<type>: description\""))
	ui.Detail("%s", ui.Dim("> git push"))
}
