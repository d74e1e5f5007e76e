package pipeline

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// installKconfigTools drops prebuilt mconf and conf into the fake SDK so
// the tool bootstrap is skipped.
func (f *fixture) installKconfigTools(t *testing.T) {
	t.Helper()
	for _, tool := range []string{f.sdk.Menuconfig(), f.sdk.Conf()} {
		if err := os.MkdirAll(filepath.Dir(tool), 0o755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
		if err := os.WriteFile(tool, []byte("#!/bin/sh\n"), 0o755); err != nil {
			t.Fatalf("write: %v", err)
		}
	}
}

func TestConfigDefconfig(t *testing.T) {
	f := newFixture(t, fixtureManifest)
	f.installKconfigTools(t)

	if err := f.p.Config(ConfigOptions{Defconfig: true, Profile: "c1"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if f.fake.Ran(f.sdk.Menuconfig()) {
		t.Error("defconfig must not open menuconfig")
	}
	if !f.fake.Ran(f.sdk.Conf()) {
		t.Error("defconfig must sync the configuration")
	}

	saved, err := os.ReadFile(f.lay.ConfigFile())
	if err != nil {
		t.Fatalf("config not written: %v", err)
	}
	if !strings.Contains(string(saved), "CONFIG_STARRYSKY_C1=y") {
		t.Errorf("saved config = %q", saved)
	}
}

func TestConfigInteractive(t *testing.T) {
	f := newFixture(t, fixtureManifest)
	f.installKconfigTools(t)

	if err := f.p.Config(ConfigOptions{Profile: "c2"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !f.fake.Ran(f.sdk.Menuconfig()) {
		t.Error("interactive config must open menuconfig")
	}
	if !f.fake.Ran(f.sdk.Conf()) {
		t.Error("interactive config must sync afterwards")
	}
}
