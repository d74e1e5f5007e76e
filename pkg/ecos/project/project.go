// Package project locates an ECOS firmware crate and reads the parts of
// its Cargo.toml the tool cares about.
package project

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	ecoserrors "github.com/ECOS-C1-SDK4Heke/cargo-ecos/pkg/ecos/errors"
)

// ManifestName is the crate manifest searched for during discovery.
const ManifestName = "Cargo.toml"

// Manifest mirrors the subset of Cargo.toml that ecos reads.
type Manifest struct {
	Package PackageSection `toml:"package"`
}

// PackageSection is the [package] table.
type PackageSection struct {
	Name     string    `toml:"name"`
	Metadata *Metadata `toml:"metadata"`
}

// Metadata is the [package.metadata] table.
type Metadata struct {
	Ecos *EcosMetadata `toml:"ecos"`
}

// EcosMetadata is the [package.metadata.ecos] table. FlashPath is a
// pointer so an absent key and an empty value stay distinguishable.
type EcosMetadata struct {
	ProjectRoot bool    `toml:"ecos_project_root"`
	FlashPath   *string `toml:"ecos_flash_cmd_to"`
}

// Project is a discovered crate rooted at the directory holding Cargo.toml.
type Project struct {
	Root     string
	Manifest Manifest
}

// Find walks up from the working directory to the ECOS project root.
func Find() (*Project, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("cannot determine working directory: %w", err)
	}
	return FindFrom(cwd)
}

// FindFrom walks up from dir until a Cargo.toml whose metadata marks the
// ECOS project root. Plain crates and workspace manifests along the way
// are skipped, not errors.
func FindFrom(dir string) (*Project, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("cannot resolve %s: %w", dir, err)
	}

	for {
		manifest := filepath.Join(dir, ManifestName)
		if _, err := os.Stat(manifest); err == nil {
			marked, err := marksRoot(manifest)
			if err != nil {
				return nil, err
			}
			if marked {
				return Load(dir)
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return nil, ecoserrors.ErrProjectNotFound
		}
		dir = parent
	}
}

// marksRoot reports whether the manifest carries ecos_project_root = true.
func marksRoot(path string) (bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return false, fmt.Errorf("%w: %v", ecoserrors.ErrManifestUnreadable, err)
	}

	var m Manifest
	if err := toml.Unmarshal(data, &m); err != nil {
		return false, fmt.Errorf("%w: %v", ecoserrors.ErrManifestUnreadable, err)
	}

	md := m.Package.Metadata
	return md != nil && md.Ecos != nil && md.Ecos.ProjectRoot, nil
}

// Load reads and decodes the manifest in root.
func Load(root string) (*Project, error) {
	data, err := os.ReadFile(filepath.Join(root, ManifestName))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ecoserrors.ErrManifestUnreadable, err)
	}

	var m Manifest
	if err := toml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("%w: %v", ecoserrors.ErrManifestUnreadable, err)
	}
	if m.Package.Name == "" {
		return nil, fmt.Errorf("%w: missing package.name", ecoserrors.ErrManifestUnreadable)
	}

	return &Project{Root: root, Manifest: m}, nil
}

// Name returns the crate name, which also names every firmware image.
func (p *Project) Name() string {
	return p.Manifest.Package.Name
}

// FlashPath returns the persisted flash destination and whether the
// ecos_flash_cmd_to key is present at all.
func (p *Project) FlashPath() (string, bool) {
	md := p.Manifest.Package.Metadata
	if md == nil || md.Ecos == nil || md.Ecos.FlashPath == nil {
		return "", false
	}
	return *md.Ecos.FlashPath, true
}

// Layout returns the path accessor for this project tree.
func (p *Project) Layout() *Layout {
	return &Layout{root: p.Root, name: p.Name()}
}
