// Package flash deploys a built firmware image onto the flash target,
// a mounted device directory or an explicit destination file.
package flash

import ecoserrors "github.com/ECOS-C1-SDK4Heke/cargo-ecos/pkg/ecos/errors"

// Plan is the outcome of the rebuild decision.
type Plan int

const (
	// UseExisting flashes the image already in build/.
	UseExisting Plan = iota
	// Rebuild runs the build pipeline first, then flashes its output.
	Rebuild
)

func (p Plan) String() string {
	if p == Rebuild {
		return "rebuild"
	}
	return "use-existing"
}

// Conditions are the inputs to the rebuild decision.
type Conditions struct {
	// ForceBuild is the explicit rebuild request.
	ForceBuild bool
	// Release selects the release profile and always implies a rebuild.
	Release bool
	// ArtifactExists reports whether build/<name>.bin is already on disk.
	ArtifactExists bool
	// SafeMode forbids touching the build; only an existing image may flash.
	SafeMode bool
}

// Decide resolves what to flash. An explicit build request wins over
// everything, including safe mode. Safe mode then pins the decision to
// the existing image or fails. Without either, a missing image rebuilds
// and a present one is reused.
func Decide(c Conditions) (Plan, error) {
	if c.ForceBuild || c.Release {
		return Rebuild, nil
	}
	if c.SafeMode {
		if c.ArtifactExists {
			return UseExisting, nil
		}
		return UseExisting, ecoserrors.ErrSafeModeNoImage
	}
	if !c.ArtifactExists {
		return Rebuild, nil
	}
	return UseExisting, nil
}
