package pipeline

import "github.com/ECOS-C1-SDK4Heke/cargo-ecos/pkg/ecos/artifact"

// CleanOptions selects how much state gets removed.
type CleanOptions struct {
	// All additionally drops the saved configuration and generated headers.
	All bool
}

// Clean removes build outputs, and with All the configuration state too.
func (p *Pipeline) Clean(opts CleanOptions) error {
	_, lay, err := p.locate()
	if err != nil {
		return err
	}
	return artifact.Clean(lay, p.Run, opts.All)
}
