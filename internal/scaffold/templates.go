// Package scaffold creates new ECOS firmware projects from embedded
// platform templates.
package scaffold

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/ECOS-C1-SDK4Heke/cargo-ecos/pkg/ecos/ui"
)

//go:embed all:templates
var templatesFS embed.FS

const (
	templatesRoot = "templates"

	// templateManifest marks a template directory as usable. It becomes
	// the project's Cargo.toml on materialization.
	templateManifest = "hk.cargo.toml"

	// flashPlaceholder is written into the manifest when no flash target
	// is chosen. The flash command treats it as unconfigured.
	flashPlaceholder = "default flash path - not set"
)

// Templates lists the embedded platform templates that carry a manifest.
func Templates() []string {
	entries, err := fs.ReadDir(templatesFS, templatesRoot)
	if err != nil {
		return nil
	}

	var names []string
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		if hasManifest(entry.Name()) {
			names = append(names, entry.Name())
		}
	}
	return names
}

func hasManifest(template string) bool {
	_, err := fs.Stat(templatesFS, path.Join(templatesRoot, template, templateManifest))
	return err == nil
}

// Materialize writes the template tree into dir, renaming the manifest to
// Cargo.toml and substituting the project name and flash path tokens. An
// empty flash path substitutes the documented placeholder.
func Materialize(template, dir, projectName, flashPath string) error {
	if !hasManifest(template) {
		return fmt.Errorf("Template '%s' not found.\nAvailable templates: %s",
			template, strings.Join(Templates(), ", "))
	}
	if flashPath == "" {
		flashPath = flashPlaceholder
	}

	ui.Step("📁", "Creating project structure...")

	root := path.Join(templatesRoot, template)
	return fs.WalkDir(templatesFS, root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if p == root {
			return nil
		}

		rel := strings.TrimPrefix(p, root+"/")
		target := filepath.Join(dir, filepath.FromSlash(rel))

		if d.IsDir() {
			if err := os.MkdirAll(target, 0o755); err != nil {
				return fmt.Errorf("failed to create directory %s: %w", target, err)
			}
			return nil
		}

		if d.Name() == templateManifest {
			target = filepath.Join(filepath.Dir(target), "Cargo.toml")
		}

		data, err := templatesFS.ReadFile(p)
		if err != nil {
			return fmt.Errorf("failed to read template file %s: %w", p, err)
		}

		content := strings.ReplaceAll(string(data), "{{project_name}}", projectName)
		content = strings.ReplaceAll(content, "{{flash_path}}", flashPath)

		if err := os.WriteFile(target, []byte(content), 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", target, err)
		}

		ui.Detail("📄 Created: %s", ui.Dim(target))
		return nil
	})
}
