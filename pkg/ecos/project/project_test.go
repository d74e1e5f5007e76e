package project

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	ecoserrors "github.com/ECOS-C1-SDK4Heke/cargo-ecos/pkg/ecos/errors"
)

func writeManifest(t *testing.T, dir, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, ManifestName), []byte(content), 0o644); err != nil {
		t.Fatalf("writing manifest: %v", err)
	}
}

const manifestWithFlash = `
[package]
name = "hello-world"
version = "0.1.0"

[package.metadata.ecos]
ecos_project_root = true
ecos_flash_cmd_to = "/mnt/flash"
`

func TestFindFrom(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, manifestWithFlash)

	nested := filepath.Join(root, "src", "drivers", "uart")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	t.Run("finds manifest from nested directory", func(t *testing.T) {
		p, err := FindFrom(nested)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.Root != root {
			t.Errorf("Root = %q, want %q", p.Root, root)
		}
		if p.Name() != "hello-world" {
			t.Errorf("Name = %q, want hello-world", p.Name())
		}
	})

	t.Run("finds manifest in starting directory", func(t *testing.T) {
		p, err := FindFrom(root)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.Root != root {
			t.Errorf("Root = %q, want %q", p.Root, root)
		}
	})

	t.Run("walks past an unmarked crate", func(t *testing.T) {
		dep := filepath.Join(root, "vendor", "hal")
		if err := os.MkdirAll(dep, 0o755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
		writeManifest(t, dep, "[package]\nname = \"hal\"\nversion = \"0.3.0\"\n")

		p, err := FindFrom(dep)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.Root != root {
			t.Errorf("Root = %q, want enclosing %q", p.Root, root)
		}
	})

	t.Run("reports missing project", func(t *testing.T) {
		_, err := FindFrom(t.TempDir())
		if !errors.Is(err, ecoserrors.ErrProjectNotFound) {
			t.Errorf("error = %v, want ErrProjectNotFound", err)
		}
	})

	t.Run("unmarked crate alone is not a project", func(t *testing.T) {
		dir := t.TempDir()
		writeManifest(t, dir, "[package]\nname = \"plain\"\nversion = \"1.0.0\"\n")

		_, err := FindFrom(dir)
		if !errors.Is(err, ecoserrors.ErrProjectNotFound) {
			t.Errorf("error = %v, want ErrProjectNotFound", err)
		}
	})
}

func TestLoadFlashPath(t *testing.T) {
	tests := []struct {
		name     string
		manifest string
		wantPath string
		wantKey  bool
	}{
		{
			name:     "key present with value",
			manifest: manifestWithFlash,
			wantPath: "/mnt/flash",
			wantKey:  true,
		},
		{
			name: "key present but empty",
			manifest: `
[package]
name = "blinky"

[package.metadata.ecos]
ecos_flash_cmd_to = ""
`,
			wantPath: "",
			wantKey:  true,
		},
		{
			name: "ecos table without key",
			manifest: `
[package]
name = "blinky"

[package.metadata.ecos]
`,
			wantKey: false,
		},
		{
			name: "no metadata at all",
			manifest: `
[package]
name = "blinky"
version = "0.1.0"
`,
			wantKey: false,
		},
		{
			name: "unrelated metadata table",
			manifest: `
[package]
name = "blinky"

[package.metadata.docs]
all-features = true
`,
			wantKey: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			writeManifest(t, dir, tt.manifest)

			p, err := Load(dir)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			path, ok := p.FlashPath()
			if ok != tt.wantKey {
				t.Fatalf("FlashPath key present = %v, want %v", ok, tt.wantKey)
			}
			if ok && path != tt.wantPath {
				t.Errorf("FlashPath = %q, want %q", path, tt.wantPath)
			}
		})
	}
}

func TestLoadErrors(t *testing.T) {
	t.Run("missing package name", func(t *testing.T) {
		dir := t.TempDir()
		writeManifest(t, dir, "[package]\nversion = \"0.1.0\"\n")

		_, err := Load(dir)
		if !errors.Is(err, ecoserrors.ErrManifestUnreadable) {
			t.Errorf("error = %v, want ErrManifestUnreadable", err)
		}
	})

	t.Run("malformed toml", func(t *testing.T) {
		dir := t.TempDir()
		writeManifest(t, dir, "[package\nname =")

		_, err := Load(dir)
		if !errors.Is(err, ecoserrors.ErrManifestUnreadable) {
			t.Errorf("error = %v, want ErrManifestUnreadable", err)
		}
	})

	t.Run("unreadable file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nowhere"))
		if !errors.Is(err, ecoserrors.ErrManifestUnreadable) {
			t.Errorf("error = %v, want ErrManifestUnreadable", err)
		}
	})
}

func TestLayoutPaths(t *testing.T) {
	l := NewLayout("/work/fw", "sensor-node")

	tests := []struct {
		name string
		got  string
		want string
	}{
		{"config file", l.ConfigFile(), "/work/fw/configs/.config"},
		{"generated header", l.GeneratedHeader(), "/work/fw/include/generated/autoconf.h"},
		{"generated config", l.GeneratedConfig(), "/work/fw/include/config/auto.conf"},
		{"bin image", l.ImageBin(), "/work/fw/build/sensor-node.bin"},
		{"hex image", l.ImageHex(), "/work/fw/build/sensor-node.hex"},
		{"disassembly", l.Disassembly(), "/work/fw/build/sensor-node.txt"},
		{"debug elf", l.Elf("debug"), "/work/fw/target/riscv32im-unknown-none-elf/debug/sensor-node"},
		{"release elf", l.Elf("release"), "/work/fw/target/riscv32im-unknown-none-elf/release/sensor-node"},
		{"temp makefile", l.TempMakefile(), "/work/fw/.temp_makefile.mk"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != filepath.FromSlash(tt.want) {
				t.Errorf("got %q, want %q", tt.got, tt.want)
			}
		})
	}
}

func TestLayoutProbes(t *testing.T) {
	root := t.TempDir()
	l := NewLayout(root, "app")

	if l.Configured() {
		t.Error("Configured() true before sync")
	}
	if l.ImageExists() {
		t.Error("ImageExists() true before build")
	}

	if err := os.MkdirAll(filepath.Dir(l.GeneratedHeader()), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(l.GeneratedHeader(), []byte("#define CONFIG_OK 1\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := os.MkdirAll(l.BuildDir(), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(l.ImageBin(), []byte{0xDE, 0xAD}, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	if !l.Configured() {
		t.Error("Configured() false after header written")
	}
	if !l.ImageExists() {
		t.Error("ImageExists() false after image written")
	}
}
