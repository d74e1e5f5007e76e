package pipeline

import (
	"fmt"
	"os"

	ecoserrors "github.com/ECOS-C1-SDK4Heke/cargo-ecos/pkg/ecos/errors"
	"github.com/ECOS-C1-SDK4Heke/cargo-ecos/pkg/ecos/flash"
	"github.com/ECOS-C1-SDK4Heke/cargo-ecos/pkg/ecos/project"
	"github.com/ECOS-C1-SDK4Heke/cargo-ecos/pkg/ecos/ui"
)

// FlashOptions selects what gets flashed and where.
type FlashOptions struct {
	// Safe only flashes an existing image, never builds.
	Safe bool
	// Build forces a rebuild before flashing.
	Build bool
	// Release rebuilds in release mode before flashing.
	Release bool
	// Verify reads the copy back and compares checksums.
	Verify bool
	// Path overrides the configured flash destination.
	Path string
	// File flashes an explicit image instead of the build output.
	File string
	// ExtraArgs are passed through to a triggered build.
	ExtraArgs []string
}

// Flash deploys a firmware image onto the flash target, rebuilding it
// first when the decision table calls for that.
func (p *Pipeline) Flash(opts FlashOptions) error {
	proj, lay, err := p.locate()
	if err != nil {
		return err
	}

	ui.Step("⚡", "Flashing ECOS firmware...")

	source, err := p.selectImage(lay, opts)
	if err != nil {
		return err
	}

	dest, err := flash.ResolveDestination(proj, opts.Path)
	if err != nil {
		return err
	}
	if err := flash.PrepareDestination(dest); err != nil {
		return err
	}

	deployer := &flash.Deployer{Run: p.Run, Logger: p.Logger}
	report, err := deployer.Deploy(source, dest, lay.Name())
	if err != nil {
		return err
	}

	if opts.Verify {
		if err := flash.Verify(source, report.Dest); err != nil {
			return err
		}
	}

	report.Print()
	return nil
}

// selectImage picks the image to flash: an explicit file verbatim, or
// the default build output with the rebuild decision applied.
func (p *Pipeline) selectImage(lay *project.Layout, opts FlashOptions) (string, error) {
	if opts.File != "" {
		if _, err := os.Stat(opts.File); err != nil {
			return "", fmt.Errorf("%w: Custom .bin file not found: %s",
				ecoserrors.ErrArtifactMissing, opts.File)
		}
		ui.Detail("Using custom file: %s", ui.Dim(opts.File))
		return opts.File, nil
	}

	image := lay.ImageBin()
	plan, err := flash.Decide(flash.Conditions{
		ForceBuild:     opts.Build,
		Release:        opts.Release,
		ArtifactExists: lay.ImageExists(),
		SafeMode:       opts.Safe,
	})
	if err != nil {
		return "", fmt.Errorf("%w: Build output not found: %s\nRun 'ecos build' first or drop --safe.",
			err, image)
	}
	p.Logger.Debug("⚡ Flash plan", "plan", plan.String())

	if plan == flash.Rebuild {
		ui.Substep("🔨", "Building project...")
		if err := p.Build(BuildOptions{Release: opts.Release, ExtraArgs: opts.ExtraArgs}); err != nil {
			return "", err
		}
		if _, err := os.Stat(image); err != nil {
			return "", fmt.Errorf("%w: Build output still not found after building: %s",
				ecoserrors.ErrArtifactMissing, image)
		}
		return image, nil
	}

	ui.Detail("%s Using existing build output", ui.Green("✓"))
	return image, nil
}
