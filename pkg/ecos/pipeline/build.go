package pipeline

import (
	"fmt"

	"github.com/ECOS-C1-SDK4Heke/cargo-ecos/pkg/ecos/artifact"
	ecoserrors "github.com/ECOS-C1-SDK4Heke/cargo-ecos/pkg/ecos/errors"
	"github.com/ECOS-C1-SDK4Heke/cargo-ecos/pkg/ecos/runner"
	"github.com/ECOS-C1-SDK4Heke/cargo-ecos/pkg/ecos/sdk"
	"github.com/ECOS-C1-SDK4Heke/cargo-ecos/pkg/ecos/toolchain"
	"github.com/ECOS-C1-SDK4Heke/cargo-ecos/pkg/ecos/ui"
)

// BuildOptions selects how the firmware is built.
type BuildOptions struct {
	// Release builds the release profile.
	Release bool
	// SkipMemReport leaves out the memory usage report.
	SkipMemReport bool
	// ExtraArgs are passed through to cargo build.
	ExtraArgs []string
}

// Profile names the cargo profile directory the options select.
func (o BuildOptions) Profile() string {
	if o.Release {
		return "release"
	}
	return "debug"
}

// Build compiles the firmware and regenerates the flashable image set.
// The project must be configured first; the toolchain and SDK are
// checked before cargo runs.
func (p *Pipeline) Build(opts BuildOptions) error {
	_, lay, err := p.locate()
	if err != nil {
		return err
	}

	ui.Step("🔨", "Building ECOS firmware...")

	if !lay.Configured() {
		ui.Error("include/generated/autoconf.h not found")
		return fmt.Errorf("%w: Run 'ecos config' first.", ecoserrors.ErrConfigMissing)
	}

	if err := toolchain.Probe(p.Run, p.Logger); err != nil {
		return err
	}
	s, err := sdk.Locate()
	if err != nil {
		return err
	}

	args := []string{"build"}
	if opts.Release {
		args = append(args, "--release")
	}
	ui.Detail("Mode: %s", ui.Bold(opts.Profile()))
	args = append(args, p.cargoArgs(opts.ExtraArgs)...)

	cmd := runner.Command{
		Program:     "cargo",
		Args:        args,
		Dir:         lay.Root(),
		Interactive: true,
	}
	if err := p.Run.Run(cmd); err != nil {
		return fmt.Errorf("%w: %v", ecoserrors.ErrBuildFailed, err)
	}

	gen := &artifact.Generator{Layout: lay, Run: p.Run, Logger: p.Logger}
	if err := gen.Generate(opts.Profile()); err != nil {
		return err
	}

	if !opts.SkipMemReport {
		if err := artifact.MemoryReport(lay, s, p.Run, opts.Profile()); err != nil {
			return err
		}
	}

	ui.Success("%s Build completed successfully!", ui.Green("ECOS"))
	return nil
}
