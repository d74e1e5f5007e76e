// Package pipeline wires the project, SDK, toolchain, and artifact
// stages into the complete command flows the CLI exposes.
package pipeline

import (
	"os"

	"github.com/hashicorp/go-hclog"

	"github.com/ECOS-C1-SDK4Heke/cargo-ecos/pkg/ecos/project"
	"github.com/ECOS-C1-SDK4Heke/cargo-ecos/pkg/ecos/runner"
	"github.com/ECOS-C1-SDK4Heke/cargo-ecos/pkg/utils/argsplit"
)

// EnvCargoFlags holds extra cargo arguments appended to every build,
// parsed with shell-style quoting.
const EnvCargoFlags = "ECOS_CARGO_FLAGS"

// Pipeline carries the shared dependencies of every command flow.
type Pipeline struct {
	Run    runner.Runner
	Logger hclog.Logger

	// ToolVersion is stamped into bundle manifests.
	ToolVersion string
}

// New builds a Pipeline around a runner and logger. A nil logger is
// replaced with a null logger.
func New(run runner.Runner, logger hclog.Logger) *Pipeline {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Pipeline{Run: run, Logger: logger}
}

// locate finds the enclosing project from the working directory.
func (p *Pipeline) locate() (*project.Project, *project.Layout, error) {
	proj, err := project.Find()
	if err != nil {
		return nil, nil, err
	}
	p.Logger.Debug("📁 Project located", "root", proj.Root, "name", proj.Name())
	return proj, proj.Layout(), nil
}

// cargoArgs merges the environment's extra cargo flags with the
// command-line passthrough arguments, environment first.
func (p *Pipeline) cargoArgs(extra []string) []string {
	var args []string
	if flags := os.Getenv(EnvCargoFlags); flags != "" {
		parsed, err := argsplit.Split(flags)
		if err != nil {
			p.Logger.Warn("⚠️ Ignoring unparsable "+EnvCargoFlags, "error", err)
		} else {
			p.Logger.Debug("🌱 Extra cargo flags from environment", "flags", parsed)
			args = append(args, parsed...)
		}
	}
	return append(args, extra...)
}
