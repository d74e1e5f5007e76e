package artifact

import (
	"fmt"
	"os"
	"strings"

	"github.com/hashicorp/go-hclog"

	ecoserrors "github.com/ECOS-C1-SDK4Heke/cargo-ecos/pkg/ecos/errors"
	"github.com/ECOS-C1-SDK4Heke/cargo-ecos/pkg/ecos/project"
	"github.com/ECOS-C1-SDK4Heke/cargo-ecos/pkg/ecos/runner"
	"github.com/ECOS-C1-SDK4Heke/cargo-ecos/pkg/ecos/toolchain"
	"github.com/ECOS-C1-SDK4Heke/cargo-ecos/pkg/ecos/ui"
)

// flashWindowToken is the hex image origin emitted by objcopy for the
// execute-in-place window; the loader wants the image based at zero.
const (
	flashWindowToken = "@30000000"
	loadBaseToken    = "@00000000"
)

// Generator derives the deployable image set from one built ELF.
type Generator struct {
	Layout *project.Layout
	Run    runner.Runner
	Logger hclog.Logger
}

// imageStep is one entry in the post-build image table. The three steps
// regenerate together; the first failure aborts the set.
type imageStep struct {
	badge   string
	title   string
	produce func(*Generator, string) error
}

var imageSteps = []imageStep{
	{"📦", "Generating binary file...", (*Generator).binary},
	{"🔢", "Generating hex file...", (*Generator).hex},
	{"📝", "Generating disassembly...", (*Generator).disassembly},
}

// Generate rebuilds build/<name>.{bin,hex,txt} from the profile's ELF.
// Stale images are removed first so a failure never leaves a mixed set.
func (g *Generator) Generate(profile string) error {
	ui.Step("🛠️", "Running post-build steps...")

	elf := g.Layout.Elf(profile)
	if _, err := os.Stat(elf); err != nil {
		return fmt.Errorf("%w: ELF file not found: %s", ecoserrors.ErrArtifactMissing, elf)
	}

	if err := os.MkdirAll(g.Layout.BuildDir(), 0o755); err != nil {
		return fmt.Errorf("creating build dir: %w", err)
	}
	for _, stale := range []string{g.Layout.ImageBin(), g.Layout.ImageHex(), g.Layout.Disassembly()} {
		os.Remove(stale)
	}

	for _, step := range imageSteps {
		ui.Detail("%s %s", step.badge, step.title)
		if err := step.produce(g, elf); err != nil {
			return err
		}
	}

	ui.Success("Post-build steps completed")
	return nil
}

func (g *Generator) binary(elf string) error {
	cmd := runner.Command{
		Program: toolchain.Objcopy,
		Args:    []string{"-O", "binary", elf, g.Layout.ImageBin()},
	}
	if err := g.Run.Run(cmd); err != nil {
		return fmt.Errorf("%w: binary image: %v", ecoserrors.ErrImageConvert, err)
	}
	return nil
}

func (g *Generator) hex(elf string) error {
	cmd := runner.Command{
		Program: toolchain.Objcopy,
		Args:    []string{"-O", "verilog", elf, g.Layout.ImageHex()},
	}
	if err := g.Run.Run(cmd); err != nil {
		return fmt.Errorf("%w: hex image: %v", ecoserrors.ErrImageConvert, err)
	}
	return FixLoadAddress(g.Layout.ImageHex())
}

func (g *Generator) disassembly(elf string) error {
	out, err := g.Run.Output(runner.Command{
		Program: toolchain.Objdump,
		Args:    []string{"-d", elf},
	})
	if err != nil {
		return fmt.Errorf("%w: disassembly: %v", ecoserrors.ErrImageConvert, err)
	}
	if err := os.WriteFile(g.Layout.Disassembly(), out, 0o644); err != nil {
		return fmt.Errorf("writing disassembly: %w", err)
	}
	return nil
}

// FixLoadAddress rewrites the flash-window origin tokens in a hex image
// to the zero load base. Reapplying it is a no-op.
func FixLoadAddress(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("fixing hex origin: %w", err)
	}

	fixed := strings.ReplaceAll(string(data), flashWindowToken, loadBaseToken)
	if err := os.WriteFile(path, []byte(fixed), 0o644); err != nil {
		return fmt.Errorf("fixing hex origin: %w", err)
	}
	return nil
}
