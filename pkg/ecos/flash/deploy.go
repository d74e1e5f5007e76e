package flash

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"

	"github.com/dustin/go-humanize"
	"github.com/hashicorp/go-hclog"

	"github.com/ECOS-C1-SDK4Heke/cargo-ecos/pkg/ecos/artifact"
	ecoserrors "github.com/ECOS-C1-SDK4Heke/cargo-ecos/pkg/ecos/errors"
	"github.com/ECOS-C1-SDK4Heke/cargo-ecos/pkg/ecos/runner"
	"github.com/ECOS-C1-SDK4Heke/cargo-ecos/pkg/ecos/ui"
)

// Deployer copies firmware images onto the flash target.
type Deployer struct {
	Run    runner.Runner
	Logger hclog.Logger
}

// Report describes one completed deployment.
type Report struct {
	Source string
	Dest   string
	Size   int64
}

// Print writes the flash summary block.
func (r *Report) Print() {
	ui.Success("Firmware flashed successfully!")
	ui.Detail("From: %s", ui.Dim(r.Source))
	ui.Detail("To:   %s", ui.Dim(r.Dest))
	ui.Detail("Size: %s (%s)",
		ui.Cyan(humanize.Bytes(uint64(r.Size))),
		ui.Dim(fmt.Sprintf("%d bits", r.Size*8)))
}

// Deploy copies source onto target. A directory target receives the
// image under its own basename; anything else is treated as the
// destination file itself. The display name tags the progress output.
func (d *Deployer) Deploy(source, target, name string) (*Report, error) {
	ui.Substep("📋", "Copying firmware to target...")

	dest := target
	if info, err := os.Stat(target); err == nil && info.IsDir() {
		dest = filepath.Join(target, filepath.Base(source))
	}

	if parent := filepath.Dir(dest); parent != "." {
		if err := os.MkdirAll(parent, 0o755); err != nil {
			return nil, fmt.Errorf("creating %s: %w", parent, err)
		}
	}

	d.warnIfLowSpace(dest, source)

	size, err := copyFile(source, dest)
	if err != nil {
		return nil, fmt.Errorf("copying firmware: %w", err)
	}
	ui.SubSuccess("Copied %s to %s", ui.Bold(name), ui.Dim(dest))

	d.syncFilesystem()

	return &Report{Source: source, Dest: dest, Size: size}, nil
}

// warnIfLowSpace compares the image size against the free space where the
// copy will land. Devices that cannot report space are left alone.
func (d *Deployer) warnIfLowSpace(dest, source string) {
	info, err := os.Stat(source)
	if err != nil {
		return
	}
	avail, err := availableSpace(filepath.Dir(dest))
	if err != nil {
		d.Logger.Debug("💾 Could not check disk space", "error", err)
		return
	}
	d.Logger.Debug("💾 Disk space check",
		"needed", humanize.Bytes(uint64(info.Size())),
		"available", humanize.Bytes(uint64(avail)))
	if avail < info.Size() {
		ui.Warn("Flash target is low on space: %s free, image needs %s",
			humanize.Bytes(uint64(avail)), humanize.Bytes(uint64(info.Size())))
	}
}

// syncFilesystem pushes the copy out of the page cache so the device can
// be unplugged. Removable flash targets are the normal case here.
func (d *Deployer) syncFilesystem() {
	if runtime.GOOS == "windows" {
		return
	}
	_ = d.Run.Run(runner.Command{Program: "sync"})
	ui.Detail("%s Filesystem synced", ui.Dim("🔄"))
}

// Verify reads the deployed copy back and compares it with the source
// image, checksum against checksum.
func Verify(source, dest string) error {
	ui.Substep("🔍", "Verifying flashed image...")

	sum, err := artifact.ChecksumFile(source, artifact.ChecksumSHA256)
	if err != nil {
		return fmt.Errorf("hashing %s: %w", source, err)
	}
	ok, err := artifact.VerifyFile(dest, sum)
	if err != nil {
		return fmt.Errorf("reading back %s: %w", dest, err)
	}
	if !ok {
		return fmt.Errorf("%w: %s", ecoserrors.ErrVerifyMismatch, dest)
	}
	ui.SubSuccess("Verification passed")
	return nil
}

func copyFile(source, dest string) (int64, error) {
	in, err := os.Open(source)
	if err != nil {
		return 0, err
	}
	defer in.Close()

	out, err := os.Create(dest)
	if err != nil {
		return 0, err
	}

	size, err := io.Copy(out, in)
	if closeErr := out.Close(); err == nil {
		err = closeErr
	}
	return size, err
}
