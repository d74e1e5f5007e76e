package pipeline

import (
	"github.com/ECOS-C1-SDK4Heke/cargo-ecos/pkg/ecos/kconfig"
	"github.com/ECOS-C1-SDK4Heke/cargo-ecos/pkg/ecos/sdk"
)

// ConfigOptions selects how the project gets configured.
type ConfigOptions struct {
	// Defconfig skips menuconfig and applies the profile defaults.
	Defconfig bool
	// Profile names the SDK defconfig template (c1, c2, l3).
	Profile string
}

// Config drives the Kconfig flow: interactive menuconfig by default,
// or a non-interactive defconfig when asked.
func (p *Pipeline) Config(opts ConfigOptions) error {
	_, lay, err := p.locate()
	if err != nil {
		return err
	}
	s, err := sdk.Locate()
	if err != nil {
		return err
	}

	engine := &kconfig.Engine{Layout: lay, SDK: s, Run: p.Run, Logger: p.Logger}
	if opts.Defconfig {
		return engine.Default(opts.Profile)
	}
	return engine.Interactive(opts.Profile)
}
