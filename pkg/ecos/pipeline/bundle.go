package pipeline

import "github.com/ECOS-C1-SDK4Heke/cargo-ecos/pkg/ecos/bundle"

// BundleOptions selects which image set gets packed and how.
type BundleOptions struct {
	// Release packs the release profile's images.
	Release bool
	// Format is the archive encoding (tar.gz or tar.bz2).
	Format string
}

// Bundle packs the current image set and manifest into one archive.
func (p *Pipeline) Bundle(opts BundleOptions) error {
	_, lay, err := p.locate()
	if err != nil {
		return err
	}

	format, err := bundle.ParseFormat(opts.Format)
	if err != nil {
		return err
	}

	profile := "debug"
	if opts.Release {
		profile = "release"
	}

	packer := &bundle.Packer{Layout: lay, Logger: p.Logger, ToolVersion: p.ToolVersion}
	_, err = packer.Create(profile, format)
	return err
}
