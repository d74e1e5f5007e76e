// Package runner executes the external tools ecos orchestrates (cargo,
// the riscv64 binutils, make, kconfig frontends) behind a narrow
// interface so pipelines can be exercised without a toolchain installed.
package runner

import (
	"fmt"
	"os"
	"os/exec"
	"sort"
	"strings"

	"github.com/hashicorp/go-hclog"

	"github.com/ECOS-C1-SDK4Heke/cargo-ecos/pkg/utils/argsplit"
)

// Command describes one external tool invocation.
type Command struct {
	Program     string
	Args        []string
	Dir         string            // working directory, empty means inherit
	Env         map[string]string // overlaid on the parent environment
	Interactive bool              // inherit the terminal (menuconfig, cargo)
}

// Runner is the process-execution seam between pipelines and the host.
type Runner interface {
	// Run executes the command to completion. Interactive commands
	// inherit stdio; others have output captured and logged on failure.
	Run(cmd Command) error

	// Output executes the command and returns its captured stdout.
	Output(cmd Command) ([]byte, error)

	// Look resolves a program name against PATH.
	Look(program string) (string, error)
}

// Exec is the Runner backed by os/exec.
type Exec struct {
	logger hclog.Logger
}

// NewExec creates a host-backed runner.
func NewExec(logger hclog.Logger) *Exec {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Exec{logger: logger}
}

// Run implements Runner.
func (e *Exec) Run(c Command) error {
	cmd := e.prepare(c)

	if c.Interactive {
		cmd.Stdin = os.Stdin
		cmd.Stdout = os.Stdout
		cmd.Stderr = os.Stderr

		e.logger.Info("🚀 Running", "command", c.Program, "args", argsplit.Join(c.Args))
		if err := cmd.Start(); err != nil {
			return fmt.Errorf("failed to start %s: %w", c.Program, err)
		}
		if err := cmd.Wait(); err != nil {
			if exitErr, ok := err.(*exec.ExitError); ok {
				e.logger.Info("⏹️ Process exited", "command", c.Program, "code", exitErr.ExitCode())
				return fmt.Errorf("%s exited with code %d", c.Program, exitErr.ExitCode())
			}
			return fmt.Errorf("%s failed: %w", c.Program, err)
		}
		return nil
	}

	e.logger.Debug("🚀 Running", "command", c.Program, "args", argsplit.Join(c.Args))
	out, err := cmd.CombinedOutput()
	if err != nil {
		if len(out) > 0 {
			e.logger.Error("🪵 Tool output", "command", c.Program, "output", strings.TrimSpace(string(out)))
		}
		if exitErr, ok := err.(*exec.ExitError); ok {
			return fmt.Errorf("%s exited with code %d", c.Program, exitErr.ExitCode())
		}
		return fmt.Errorf("%s failed: %w", c.Program, err)
	}
	return nil
}

// Output implements Runner.
func (e *Exec) Output(c Command) ([]byte, error) {
	cmd := e.prepare(c)

	e.logger.Debug("🚀 Capturing", "command", c.Program, "args", argsplit.Join(c.Args))
	var stderr strings.Builder
	cmd.Stderr = &stderr

	out, err := cmd.Output()
	if err != nil {
		if stderr.Len() > 0 {
			e.logger.Error("🪵 Tool output", "command", c.Program, "output", strings.TrimSpace(stderr.String()))
		}
		if exitErr, ok := err.(*exec.ExitError); ok {
			return out, fmt.Errorf("%s exited with code %d", c.Program, exitErr.ExitCode())
		}
		return out, fmt.Errorf("%s failed: %w", c.Program, err)
	}
	return out, nil
}

// Look implements Runner.
func (e *Exec) Look(program string) (string, error) {
	return exec.LookPath(program)
}

func (e *Exec) prepare(c Command) *exec.Cmd {
	cmd := exec.Command(c.Program, c.Args...)
	cmd.Dir = c.Dir
	cmd.Env = e.mergeEnv(c.Env)
	return cmd
}

// mergeEnv overlays the command's env map on the parent environment.
// Overlay keys replace inherited values; new keys append in sorted order
// so invocations stay reproducible.
func (e *Exec) mergeEnv(overlay map[string]string) []string {
	if len(overlay) == 0 {
		return nil // inherit as-is
	}

	seen := make(map[string]bool, len(overlay))
	env := make([]string, 0, len(os.Environ())+len(overlay))
	for _, kv := range os.Environ() {
		key := kv
		if eq := strings.IndexByte(kv, '='); eq >= 0 {
			key = kv[:eq]
		}
		if val, ok := overlay[key]; ok {
			e.logger.Debug("🌱 Env override", "key", key)
			env = append(env, key+"="+val)
			seen[key] = true
			continue
		}
		env = append(env, kv)
	}

	added := make([]string, 0, len(overlay))
	for key, val := range overlay {
		if !seen[key] {
			added = append(added, key+"="+val)
		}
	}
	sort.Strings(added)
	return append(env, added...)
}
