package artifact

import (
	"fmt"
	"os"

	"github.com/ECOS-C1-SDK4Heke/cargo-ecos/pkg/ecos/project"
	"github.com/ECOS-C1-SDK4Heke/cargo-ecos/pkg/ecos/runner"
	"github.com/ECOS-C1-SDK4Heke/cargo-ecos/pkg/ecos/sdk"
	"github.com/ECOS-C1-SDK4Heke/cargo-ecos/pkg/ecos/toolchain"
	"github.com/ECOS-C1-SDK4Heke/cargo-ecos/pkg/ecos/ui"
	"github.com/ECOS-C1-SDK4Heke/cargo-ecos/pkg/utils/scoped"
)

// MemoryReport prints the section usage table for the profile's ELF via
// the SDK's mem_report.mk. The whole report is best-effort: a missing
// ELF, a missing script, or a failing make only warns.
func MemoryReport(lay *project.Layout, s *sdk.SDK, run runner.Runner, profile string) error {
	ui.Step("📊", "Generating memory usage report...")

	elf := lay.Elf(profile)
	if _, err := os.Stat(elf); err != nil {
		ui.Warn("ELF file not found, skipping memory report")
		return nil
	}

	script := s.MemReportScript()
	if _, err := os.Stat(script); err != nil {
		ui.Warn("mem_report.mk not found in SDK")
		ui.Detail("Expected at: %s", script)
		return nil
	}

	makefile := fmt.Sprintf("CROSS=%s\ninclude %s\n\n.PHONY: report\nreport:\n\t$(call show_mem_usage,%s)\n",
		toolchain.CrossPrefix, script, elf)

	return scoped.File(lay.TempMakefile(), []byte(makefile), func() error {
		cmd := runner.Command{
			Program:     "make",
			Args:        []string{"-f", lay.TempMakefile(), "report"},
			Dir:         lay.Root(),
			Interactive: true,
		}
		if err := run.Run(cmd); err != nil {
			ui.Warn("Memory report generation failed")
		}
		return nil
	})
}
