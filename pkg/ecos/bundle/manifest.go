// Package bundle packs a built firmware image set into a single
// distributable archive with a machine-readable manifest.
package bundle

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/ECOS-C1-SDK4Heke/cargo-ecos/pkg/ecos/artifact"
	"github.com/ECOS-C1-SDK4Heke/cargo-ecos/pkg/ecos/project"
)

// ManifestName is the archive entry carrying the bundle description.
const ManifestName = "manifest.json"

// Manifest describes one firmware bundle.
type Manifest struct {
	Project     string      `json:"project"`
	Profile     string      `json:"profile"`
	Target      string      `json:"target"`
	Tool        string      `json:"tool"`
	ToolVersion string      `json:"tool_version"`
	CreatedAt   string      `json:"created_at"`
	Images      []ImageInfo `json:"images"`
}

// ImageInfo is one archived image with its integrity checksum.
type ImageInfo struct {
	Name     string `json:"name"`
	Size     int64  `json:"size"`
	Checksum string `json:"checksum"`
}

// NewManifest stats and hashes every image and assembles the bundle
// description around them.
func NewManifest(projectName, profile, toolVersion string, images []string) (*Manifest, error) {
	m := &Manifest{
		Project:     projectName,
		Profile:     profile,
		Target:      project.TargetTriple,
		Tool:        "ecos",
		ToolVersion: toolVersion,
		CreatedAt:   time.Now().UTC().Format(time.RFC3339),
	}
	for _, path := range images {
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("inspecting %s: %w", path, err)
		}
		sum, err := artifact.ChecksumFile(path, artifact.ChecksumSHA256)
		if err != nil {
			return nil, fmt.Errorf("hashing %s: %w", path, err)
		}
		m.Images = append(m.Images, ImageInfo{
			Name:     filepath.Base(path),
			Size:     info.Size(),
			Checksum: sum,
		})
	}
	return m, nil
}

// Encode renders the manifest as indented JSON.
func (m *Manifest) Encode() ([]byte, error) {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding manifest: %w", err)
	}
	return append(data, '\n'), nil
}

// DecodeManifest parses an archive manifest entry.
func DecodeManifest(data []byte) (*Manifest, error) {
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing manifest: %w", err)
	}
	return &m, nil
}
