// Package kconfig drives the SDK's Kconfig frontends to create and
// synchronize a project's configuration, then distills the result into
// the generated C header the firmware includes.
package kconfig

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-hclog"

	ecoserrors "github.com/ECOS-C1-SDK4Heke/cargo-ecos/pkg/ecos/errors"
	"github.com/ECOS-C1-SDK4Heke/cargo-ecos/pkg/ecos/project"
	"github.com/ECOS-C1-SDK4Heke/cargo-ecos/pkg/ecos/runner"
	"github.com/ECOS-C1-SDK4Heke/cargo-ecos/pkg/ecos/sdk"
	"github.com/ECOS-C1-SDK4Heke/cargo-ecos/pkg/ecos/ui"
)

// Engine ties one project tree to the SDK tools that configure it.
type Engine struct {
	Layout *project.Layout
	SDK    *sdk.SDK
	Run    runner.Runner
	Logger hclog.Logger
}

// Interactive runs the full menuconfig flow: seed a config if none is
// saved, open mconf, sync, and finalize the generated headers.
func (e *Engine) Interactive(profile string) error {
	ui.Step("📋", "Running menuconfig...")

	if err := e.EnsureDirs(); err != nil {
		return err
	}
	if _, err := os.Stat(e.Layout.ConfigFile()); err != nil {
		ui.Detail("Creating default config...")
		if err := e.EnsureConfig(profile); err != nil {
			return err
		}
	}
	if err := e.EnsureTools(); err != nil {
		return err
	}
	if err := e.Menuconfig(); err != nil {
		return err
	}
	if err := e.Sync(); err != nil {
		return err
	}
	if err := e.Finalize(); err != nil {
		return err
	}

	ui.Success("Configuration saved to %s", ui.Cyan("configs/.config"))
	ui.Success("Generated headers in %s", ui.Cyan("include/"))
	return nil
}

// Default generates the named profile configuration without opening
// menuconfig.
func (e *Engine) Default(profile string) error {
	ui.Step("⚙️", "Generating default configuration '%s'...", ui.Cyan(profile))

	if err := e.EnsureDirs(); err != nil {
		return err
	}
	if err := e.EnsureConfig(profile); err != nil {
		return err
	}
	if err := e.EnsureTools(); err != nil {
		return err
	}
	if err := e.Sync(); err != nil {
		return err
	}
	if err := e.Finalize(); err != nil {
		return err
	}

	ui.Success("Default configuration '%s' generated", ui.Cyan(profile))
	return nil
}

// EnsureDirs creates the directories the frontends write into.
func (e *Engine) EnsureDirs() error {
	dirs := []string{
		e.Layout.ConfigsDir(),
		filepath.Join(e.Layout.IncludeDir(), "generated"),
		filepath.Join(e.Layout.IncludeDir(), "config"),
	}
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating %s: %w", dir, err)
		}
	}
	return nil
}

// EnsureConfig seeds configs/.config for the profile when missing. The
// SDK's defconfig template is preferred; a minimal single-flag config is
// synthesized when the SDK does not ship one.
func (e *Engine) EnsureConfig(profile string) error {
	cfg := e.Layout.ConfigFile()
	if _, err := os.Stat(cfg); err == nil {
		return nil
	}

	template := e.SDK.Defconfig(profile)
	if data, err := os.ReadFile(template); err == nil {
		if err := os.WriteFile(cfg, data, 0o644); err != nil {
			return fmt.Errorf("seeding config: %w", err)
		}
		ui.Detail("Copied default config from SDK: %s", template)
		return nil
	}

	basic := fmt.Sprintf("# ECOS Configuration\n# Generated by ecos\nCONFIG_STARRYSKY_%s=y\n",
		strings.ToUpper(profile))
	if err := os.WriteFile(cfg, []byte(basic), 0o644); err != nil {
		return fmt.Errorf("seeding config: %w", err)
	}
	ui.Detail("Created basic config")
	return nil
}

// EnsureTools builds mconf and conf inside the SDK when either is
// missing, then builds fixdep best-effort.
func (e *Engine) EnsureTools() error {
	if fileExists(e.SDK.Menuconfig()) && fileExists(e.SDK.Conf()) {
		return nil
	}

	ui.Detail("Building Kconfig tools...")
	if _, err := os.Stat(e.SDK.KconfigDir()); err != nil {
		return fmt.Errorf("%w: kconfig directory not found: %s",
			ecoserrors.ErrKconfigToolsBuild, e.SDK.KconfigDir())
	}

	build := runner.Command{
		Program:     "make",
		Args:        []string{"mconf", "conf"},
		Dir:         e.SDK.KconfigDir(),
		Interactive: true,
	}
	if err := e.Run.Run(build); err != nil {
		return fmt.Errorf("%w: %v", ecoserrors.ErrKconfigToolsBuild, err)
	}

	if _, err := os.Stat(e.SDK.FixdepDir()); err == nil {
		fixdep := runner.Command{Program: "make", Dir: e.SDK.FixdepDir()}
		if err := e.Run.Run(fixdep); err != nil {
			e.Logger.Debug("🧩 fixdep build failed, continuing", "error", err)
		}
	}
	return nil
}

// Menuconfig opens the interactive mconf frontend against the project's
// saved config.
func (e *Engine) Menuconfig() error {
	ui.Detail("Using Kconfig: %s", ui.Dim(e.SDK.Kconfig()))

	cmd := runner.Command{
		Program:     e.SDK.Menuconfig(),
		Args:        []string{e.SDK.Kconfig()},
		Env:         map[string]string{"KCONFIG_CONFIG": e.Layout.ConfigFile()},
		Interactive: true,
	}
	if err := e.Run.Run(cmd); err != nil {
		return fmt.Errorf("%w: menuconfig: %v", ecoserrors.ErrConfigSyncFailed, err)
	}
	return nil
}

// Sync runs conf --syncconfig so the generated headers land in the
// project's include tree rather than the SDK's.
func (e *Engine) Sync() error {
	ui.Step("🔄", "Synchronizing configuration...")

	cmd := runner.Command{
		Program: e.SDK.Conf(),
		Args:    []string{"--syncconfig", e.SDK.Kconfig()},
		Env: map[string]string{
			"KCONFIG_CONFIG": e.Layout.ConfigFile(),
			"OUTPUT":         e.Layout.IncludeDir(),
			"CONFIG_":        "CONFIG_",
		},
	}
	if err := e.Run.Run(cmd); err != nil {
		return fmt.Errorf("%w: %v", ecoserrors.ErrConfigSyncFailed, err)
	}
	return nil
}

// Finalize fills in autoconf.h when the frontend produced only
// auto.conf, then scrubs the scratch paths left in the project and the
// SDK. SDK scrubbing is best-effort.
func (e *Engine) Finalize() error {
	header := e.Layout.GeneratedHeader()
	if _, err := os.Stat(header); err != nil {
		autoConf := e.Layout.GeneratedConfig()
		if _, err := os.Stat(autoConf); err == nil {
			ui.Detail("Converting auto.conf to autoconf.h...")
			if err := ConvertAutoConf(autoConf, header); err != nil {
				return err
			}
		} else {
			ui.Warn("Warning: autoconf.h not generated")
		}
	} else {
		ui.Detail("Generated: %s", ui.Dim("include/generated/autoconf.h"))
	}

	staging := e.Layout.ConfigStaging()
	if _, err := os.Stat(staging); err == nil {
		ui.Detail("Cleaning intermediate config files...")
		if err := os.RemoveAll(staging); err != nil {
			return fmt.Errorf("cleaning %s: %w", staging, err)
		}
	}

	for _, path := range e.SDK.ScrubPaths() {
		if err := os.RemoveAll(path); err != nil {
			e.Logger.Debug("🧹 Scrub skipped", "path", path, "error", err)
		}
	}
	return nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
