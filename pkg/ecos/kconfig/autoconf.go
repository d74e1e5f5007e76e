package kconfig

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ConvertAutoConf rewrites a make-style auto.conf into the C header the
// firmware includes. An unreadable source is tolerated silently; the
// frontends sometimes remove it before this runs.
func ConvertAutoConf(src, dst string) error {
	data, err := os.ReadFile(src)
	if err != nil {
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", filepath.Dir(dst), err)
	}
	if err := os.WriteFile(dst, []byte(RenderHeader(string(data))), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", dst, err)
	}
	return nil
}

// RenderHeader converts CONFIG_ assignments into preprocessor lines:
// y becomes a define to 1, n a commented-out undef, quoted values string
// defines, and anything else a literal define. Non-CONFIG_ lines are
// dropped.
func RenderHeader(config string) string {
	var b strings.Builder
	b.WriteString("/* Automatically generated file; DO NOT EDIT. */\n")
	b.WriteString("#ifndef __AUTOCONF_H__\n")
	b.WriteString("#define __AUTOCONF_H__\n\n")

	for _, line := range strings.Split(config, "\n") {
		trimmed := strings.TrimSpace(line)
		if !strings.HasPrefix(trimmed, "CONFIG_") {
			continue
		}
		name, value, found := strings.Cut(trimmed, "=")
		if !found {
			continue
		}
		name = strings.TrimSpace(name)
		value = strings.TrimSpace(value)

		switch {
		case value == "y" || value == `"y"`:
			fmt.Fprintf(&b, "#define %s 1\n", name)
		case value == "n" || value == `"n"`:
			fmt.Fprintf(&b, "/* #undef %s */\n", name)
		case len(value) >= 2 && strings.HasPrefix(value, `"`) && strings.HasSuffix(value, `"`):
			fmt.Fprintf(&b, "#define %s \"%s\"\n", name, value[1:len(value)-1])
		default:
			fmt.Fprintf(&b, "#define %s %s\n", name, value)
		}
	}

	b.WriteString("\n#endif /* __AUTOCONF_H__ */\n")
	return b.String()
}
