package project

import (
	"os"
	"path/filepath"
)

// TargetTriple is the bare-metal RISC-V target every ECOS crate builds for.
const TargetTriple = "riscv32im-unknown-none-elf"

// tempMakefileName is the throwaway makefile used for the memory report.
const tempMakefileName = ".temp_makefile.mk"

// Layout derives every path ecos touches inside a project tree.
type Layout struct {
	root string
	name string
}

// NewLayout builds a Layout without loading a manifest. Useful when the
// crate name is already known.
func NewLayout(root, name string) *Layout {
	return &Layout{root: root, name: name}
}

// ==================== Configuration Paths ====================

// ConfigsDir returns the directory holding the saved Kconfig selection.
func (l *Layout) ConfigsDir() string {
	return filepath.Join(l.root, "configs")
}

// ConfigFile returns the saved Kconfig selection (configs/.config).
func (l *Layout) ConfigFile() string {
	return filepath.Join(l.ConfigsDir(), ".config")
}

// ConfigStaging returns the scratch directory some kconfig frontends
// leave behind under configs/.
func (l *Layout) ConfigStaging() string {
	return filepath.Join(l.ConfigsDir(), "config")
}

// IncludeDir returns the generated-header output root.
func (l *Layout) IncludeDir() string {
	return filepath.Join(l.root, "include")
}

// GeneratedHeader returns the C header produced by configuration sync.
// Its presence is what marks a project as configured.
func (l *Layout) GeneratedHeader() string {
	return filepath.Join(l.IncludeDir(), "generated", "autoconf.h")
}

// GeneratedConfig returns the make-style mirror of the selection.
func (l *Layout) GeneratedConfig() string {
	return filepath.Join(l.IncludeDir(), "config", "auto.conf")
}

// ==================== Build Output Paths ====================

// BuildDir returns the directory holding flashable images.
func (l *Layout) BuildDir() string {
	return filepath.Join(l.root, "build")
}

// ImageBin returns the raw binary image path.
func (l *Layout) ImageBin() string {
	return filepath.Join(l.BuildDir(), l.name+".bin")
}

// ImageHex returns the Intel HEX image path.
func (l *Layout) ImageHex() string {
	return filepath.Join(l.BuildDir(), l.name+".hex")
}

// Disassembly returns the disassembly listing path.
func (l *Layout) Disassembly() string {
	return filepath.Join(l.BuildDir(), l.name+".txt")
}

// TargetDir returns the cargo output root.
func (l *Layout) TargetDir() string {
	return filepath.Join(l.root, "target")
}

// Elf returns the linked ELF for the given cargo profile directory
// ("debug" or "release").
func (l *Layout) Elf(profile string) string {
	return filepath.Join(l.TargetDir(), TargetTriple, profile, l.name)
}

// TempMakefile returns the scratch makefile path used by the memory report.
func (l *Layout) TempMakefile() string {
	return filepath.Join(l.root, tempMakefileName)
}

// ==================== Utility Methods ====================

// Root returns the project root.
func (l *Layout) Root() string {
	return l.root
}

// Name returns the crate name.
func (l *Layout) Name() string {
	return l.name
}

// Configured reports whether configuration sync has produced autoconf.h.
func (l *Layout) Configured() bool {
	_, err := os.Stat(l.GeneratedHeader())
	return err == nil
}

// ImageExists reports whether the default flashable image is present.
func (l *Layout) ImageExists() bool {
	_, err := os.Stat(l.ImageBin())
	return err == nil
}
