package bundle

import (
	"archive/tar"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/hashicorp/go-hclog"

	ecoserrors "github.com/ECOS-C1-SDK4Heke/cargo-ecos/pkg/ecos/errors"
	"github.com/ECOS-C1-SDK4Heke/cargo-ecos/pkg/ecos/project"
	"github.com/ECOS-C1-SDK4Heke/cargo-ecos/pkg/ecos/ui"
)

// Packer assembles firmware bundles from a built image set.
type Packer struct {
	Layout *project.Layout
	Logger hclog.Logger

	// ToolVersion is stamped into the bundle manifest.
	ToolVersion string
}

// Create packs the profile's images plus a manifest into
// build/<name>-<profile>.<format> and returns the archive path. All
// three images must exist; bundling never triggers a build.
func (p *Packer) Create(profile string, format Format) (string, error) {
	ui.Step("📦", "Bundling firmware artifacts...")

	images := []string{p.Layout.ImageBin(), p.Layout.ImageHex(), p.Layout.Disassembly()}
	for _, image := range images {
		if _, err := os.Stat(image); err != nil {
			return "", fmt.Errorf("%w: %s\nRun 'ecos build' first.",
				ecoserrors.ErrArtifactMissing, image)
		}
	}

	manifest, err := NewManifest(p.Layout.Name(), profile, p.ToolVersion, images)
	if err != nil {
		return "", err
	}
	encoded, err := manifest.Encode()
	if err != nil {
		return "", err
	}

	archive := filepath.Join(p.Layout.BuildDir(),
		fmt.Sprintf("%s-%s.%s", p.Layout.Name(), profile, format))
	if err := p.write(archive, format, encoded, images); err != nil {
		os.Remove(archive)
		return "", err
	}

	info, err := os.Stat(archive)
	if err != nil {
		return "", fmt.Errorf("inspecting %s: %w", archive, err)
	}
	ui.Success("Bundle created: %s", ui.Dim(archive))
	ui.Detail("Size: %s (%s)",
		ui.Cyan(humanize.Bytes(uint64(info.Size()))),
		ui.Dim(fmt.Sprintf("%d images", len(images))))

	return archive, nil
}

func (p *Packer) write(path string, format Format, manifest []byte, images []string) (err error) {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer func() {
		if closeErr := out.Close(); err == nil {
			err = closeErr
		}
	}()

	comp, err := format.newWriter(out)
	if err != nil {
		return err
	}
	tw := tar.NewWriter(comp)

	if err := addBytes(tw, ManifestName, manifest, time.Now().UTC()); err != nil {
		return err
	}
	for _, image := range images {
		ui.Detail("Adding %s...", filepath.Base(image))
		p.Logger.Debug("🗂️ Archiving image", "path", image)
		if err := addFile(tw, image); err != nil {
			return err
		}
	}

	if err := tw.Close(); err != nil {
		return fmt.Errorf("closing tar writer: %w", err)
	}
	if err := comp.Close(); err != nil {
		return fmt.Errorf("closing compressor: %w", err)
	}
	return nil
}
