package kconfig

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRenderHeader(t *testing.T) {
	tests := []struct {
		name     string
		config   string
		expected []string
		absent   []string
	}{
		{
			name:   "boolean on becomes define 1",
			config: "CONFIG_UART=y\n",
			expected: []string{
				"#define CONFIG_UART 1\n",
			},
		},
		{
			name:   "quoted y still means on",
			config: "CONFIG_UART=\"y\"\n",
			expected: []string{
				"#define CONFIG_UART 1\n",
			},
		},
		{
			name:   "boolean off becomes commented undef",
			config: "CONFIG_JTAG=n\n",
			expected: []string{
				"/* #undef CONFIG_JTAG */\n",
			},
		},
		{
			name:   "quoted value becomes string define",
			config: "CONFIG_BOARD_NAME=\"starrysky-c1\"\n",
			expected: []string{
				"#define CONFIG_BOARD_NAME \"starrysky-c1\"\n",
			},
		},
		{
			name:   "numeric value passes through",
			config: "CONFIG_UART_BAUD=115200\n",
			expected: []string{
				"#define CONFIG_UART_BAUD 115200\n",
			},
		},
		{
			name:   "comments and blank lines dropped",
			config: "# Generated\n\nCONFIG_A=y\n# CONFIG_B is not set\n",
			expected: []string{
				"#define CONFIG_A 1\n",
			},
			absent: []string{"CONFIG_B", "Generated"},
		},
		{
			name:   "assignment-free line dropped",
			config: "CONFIG_BROKEN\nCONFIG_OK=y\n",
			expected: []string{
				"#define CONFIG_OK 1\n",
			},
			absent: []string{"CONFIG_BROKEN"},
		},
		{
			name:   "surrounding whitespace trimmed",
			config: "  CONFIG_PAD = 7 \n",
			expected: []string{
				"#define CONFIG_PAD 7\n",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			header := RenderHeader(tt.config)

			for _, want := range tt.expected {
				if !strings.Contains(header, want) {
					t.Errorf("header missing %q:\n%s", want, header)
				}
			}
			for _, not := range tt.absent {
				if strings.Contains(header, not) {
					t.Errorf("header unexpectedly contains %q:\n%s", not, header)
				}
			}
		})
	}
}

func TestRenderHeaderShape(t *testing.T) {
	header := RenderHeader("CONFIG_A=y\nCONFIG_B=n\nCONFIG_C=\"hello\"\nCONFIG_D=42\n")

	wantOrder := []string{
		"/* Automatically generated file; DO NOT EDIT. */",
		"#ifndef __AUTOCONF_H__",
		"#define __AUTOCONF_H__",
		"#define CONFIG_A 1",
		"/* #undef CONFIG_B */",
		"#define CONFIG_C \"hello\"",
		"#define CONFIG_D 42",
		"#endif /* __AUTOCONF_H__ */",
	}

	pos := 0
	for _, want := range wantOrder {
		idx := strings.Index(header[pos:], want)
		if idx < 0 {
			t.Fatalf("header missing %q after offset %d:\n%s", want, pos, header)
		}
		pos += idx + len(want)
	}
}

func TestConvertAutoConf(t *testing.T) {
	t.Run("writes header and creates parents", func(t *testing.T) {
		dir := t.TempDir()
		src := filepath.Join(dir, "auto.conf")
		dst := filepath.Join(dir, "generated", "autoconf.h")

		if err := os.WriteFile(src, []byte("CONFIG_X=y\n"), 0o644); err != nil {
			t.Fatalf("write: %v", err)
		}
		if err := ConvertAutoConf(src, dst); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		data, err := os.ReadFile(dst)
		if err != nil {
			t.Fatalf("read: %v", err)
		}
		if !strings.Contains(string(data), "#define CONFIG_X 1") {
			t.Errorf("converted header wrong:\n%s", data)
		}
	})

	t.Run("missing source is tolerated", func(t *testing.T) {
		dir := t.TempDir()
		dst := filepath.Join(dir, "autoconf.h")

		if err := ConvertAutoConf(filepath.Join(dir, "gone"), dst); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := os.Stat(dst); !os.IsNotExist(err) {
			t.Error("header written despite missing source")
		}
	})
}
