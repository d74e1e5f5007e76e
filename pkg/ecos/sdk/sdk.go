// Package sdk locates the ECOS SDK installation named by ECOS_SDK_HOME
// and derives the paths ecos needs inside it.
package sdk

import (
	"fmt"
	"os"
	"path/filepath"

	ecoserrors "github.com/ECOS-C1-SDK4Heke/cargo-ecos/pkg/ecos/errors"
)

// EnvHome is the environment variable naming the SDK root.
const EnvHome = "ECOS_SDK_HOME"

// SDK is a located installation.
type SDK struct {
	Home string
}

// Locate resolves ECOS_SDK_HOME. Both an unset variable and a dangling
// path are fatal preconditions for configuration and builds.
func Locate() (*SDK, error) {
	home := os.Getenv(EnvHome)
	if home == "" {
		return nil, fmt.Errorf("%w\nPlease set it to your ECOS SDK installation directory.\nExample: export %s=/path/to/embedded-sdk",
			ecoserrors.ErrSDKHomeUnset, EnvHome)
	}
	if _, err := os.Stat(home); err != nil {
		return nil, fmt.Errorf("%w: '%s' does not exist", ecoserrors.ErrSDKHomeMissing, home)
	}
	return &SDK{Home: home}, nil
}

// ==================== Kconfig Paths ====================

// KconfigDir returns the kconfig frontend source directory.
func (s *SDK) KconfigDir() string {
	return filepath.Join(s.Home, "tools", "kconfig")
}

// Kconfig returns the top-level Kconfig entry file.
func (s *SDK) Kconfig() string {
	return filepath.Join(s.KconfigDir(), "Kconfig")
}

// Menuconfig returns the built mconf binary path.
func (s *SDK) Menuconfig() string {
	return filepath.Join(s.KconfigDir(), "build", "mconf")
}

// Conf returns the built conf binary path.
func (s *SDK) Conf() string {
	return filepath.Join(s.KconfigDir(), "build", "conf")
}

// FixdepDir returns the fixdep helper directory, which may be absent.
func (s *SDK) FixdepDir() string {
	return filepath.Join(s.Home, "tools", "fixdep")
}

// ==================== Configuration Paths ====================

// Defconfig returns the template config for a board profile, e.g.
// configs/c1_defconfig.
func (s *SDK) Defconfig(profile string) string {
	return filepath.Join(s.Home, "configs", profile+"_defconfig")
}

// ==================== Build Support Paths ====================

// MemReportScript returns the make include implementing show_mem_usage.
func (s *SDK) MemReportScript() string {
	return filepath.Join(s.Home, "tools", "scripts", "mem_report.mk")
}

// ScrubPaths lists the scratch files the kconfig frontends leave inside
// the SDK tree. Configuration sync removes them best-effort.
func (s *SDK) ScrubPaths() []string {
	return []string{
		filepath.Join(s.Home, "include", "generated"),
		filepath.Join(s.Home, "include", "config"),
		filepath.Join(s.Home, "configs", "config"),
		filepath.Join(s.Home, "configs", "generated"),
		filepath.Join(s.KconfigDir(), "build", ".tmp"),
		filepath.Join(s.KconfigDir(), "build", ".config.tmp"),
	}
}
