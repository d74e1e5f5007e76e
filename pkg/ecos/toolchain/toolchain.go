// Package toolchain probes for the bare-metal RISC-V cross tools that
// builds and image generation shell out to.
package toolchain

import (
	"fmt"

	"github.com/hashicorp/go-hclog"

	ecoserrors "github.com/ECOS-C1-SDK4Heke/cargo-ecos/pkg/ecos/errors"
	"github.com/ECOS-C1-SDK4Heke/cargo-ecos/pkg/ecos/runner"
)

// CrossPrefix is the triplet prefix shared by every cross tool.
const CrossPrefix = "riscv64-unknown-elf-"

// Cross tool names, probed before every build.
const (
	GCC     = CrossPrefix + "gcc"
	Objcopy = CrossPrefix + "objcopy"
	Objdump = CrossPrefix + "objdump"
)

// Required lists the tools a build needs, in probe order.
var Required = []string{GCC, Objcopy, Objdump}

// Probe resolves each required tool against PATH. The first miss is
// fatal and names the tool.
func Probe(run runner.Runner, logger hclog.Logger) error {
	for _, tool := range Required {
		path, err := run.Look(tool)
		if err != nil {
			return fmt.Errorf("%w: '%s'\nPlease install the RISC-V toolchain and make sure it is in PATH",
				ecoserrors.ErrToolMissing, tool)
		}
		logger.Debug("🔍 Tool found", "tool", tool, "path", path)
	}
	return nil
}
