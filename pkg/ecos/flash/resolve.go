package flash

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	ecoserrors "github.com/ECOS-C1-SDK4Heke/cargo-ecos/pkg/ecos/errors"
	"github.com/ECOS-C1-SDK4Heke/cargo-ecos/pkg/ecos/project"
	"github.com/ECOS-C1-SDK4Heke/cargo-ecos/pkg/ecos/ui"
)

// destRemediation tells the user every way to configure a flash target.
const destRemediation = `
Options:
1. Run 'ecos flash --path <path>' to specify target
2. Reinitialize project with 'ecos init --flash <path>'
3. Manually edit Cargo.toml and add:
   [package.metadata.ecos]
   ecos_flash_cmd_to = "your_path_here"`

// ResolveDestination picks the flash target: the --path override when
// given, otherwise ecos_flash_cmd_to from the project manifest. Scaffolded
// placeholder values count as unconfigured.
func ResolveDestination(proj *project.Project, override string) (string, error) {
	if override != "" {
		if !filepath.IsAbs(override) {
			return "", fmt.Errorf("%w: Flash path must be absolute: %s",
				ecoserrors.ErrFlashDestInvalid, override)
		}
		return override, nil
	}

	dest, ok := proj.FlashPath()
	if !ok {
		return "", fmt.Errorf("%w: Flash configuration not found in Cargo.toml.\n%s",
			ecoserrors.ErrFlashDestUnset, destRemediation)
	}
	if isPlaceholder(dest) {
		return "", fmt.Errorf("%w: Flash path not configured.\n%s",
			ecoserrors.ErrFlashDestUnset, destRemediation)
	}
	return dest, nil
}

// isPlaceholder recognizes the values scaffolding leaves behind when no
// real target was given at init time.
func isPlaceholder(dest string) bool {
	return dest == "" ||
		strings.HasPrefix(dest, "default flash path") ||
		strings.Contains(dest, "not set") ||
		strings.Contains(dest, "TODO:")
}

// PrepareDestination makes sure the target is usable before any bytes
// move. A missing path that looks like a directory (trailing separator)
// is created; a missing file-like path is an error. An unwritable
// target only warns.
func PrepareDestination(dest string) error {
	info, err := os.Stat(dest)
	if err != nil {
		ui.Warn("Flash target does not exist: %s", dest)
		if !looksLikeDir(dest) {
			return fmt.Errorf("%w: Flash target path does not exist: %s",
				ecoserrors.ErrFlashDestInvalid, dest)
		}
		ui.Detail("Creating directory: %s", dest)
		if err := os.MkdirAll(dest, 0o755); err != nil {
			return fmt.Errorf("%w: creating %s: %v", ecoserrors.ErrFlashDestInvalid, dest, err)
		}
		return nil
	}

	if info.Mode().Perm()&0o200 == 0 {
		ui.Warn("Flash target may not be writable: %s", dest)
	}
	return nil
}

func looksLikeDir(dest string) bool {
	return strings.HasSuffix(dest, "/") ||
		strings.HasSuffix(dest, "\\") ||
		strings.HasSuffix(dest, string(os.PathSeparator))
}
