// Package argsplit turns flag strings such as ECOS_CARGO_FLAGS into argv
// slices using POSIX-style word splitting, and renders argv slices back
// into copy-pasteable command lines for log output.
package argsplit

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

var (
	// ErrUnterminatedQuote is returned when input ends inside a quoted word
	ErrUnterminatedQuote = errors.New("unterminated quote")

	// ErrDanglingEscape is returned when input ends right after a backslash
	ErrDanglingEscape = errors.New("dangling escape at end of input")
)

const (
	modePlain = iota
	modeSingle
	modeDouble
)

// Split parses a flag string into arguments.
//
// Rules follow shell word splitting: whitespace separates words, single
// quotes are fully literal, double quotes allow backslash escapes for the
// shell-special characters, and a bare backslash escapes the next rune.
//
//	Split(`--features "net debug"`) => ["--features", "net debug"]
//	Split(`-Z build-std=core`)      => ["-Z", "build-std=core"]
func Split(input string) ([]string, error) {
	args := []string{}
	var word strings.Builder
	mode := modePlain
	escaped := false
	quoted := false // an empty '' or "" still yields a word

	for _, r := range input {
		if escaped {
			escaped = false
			if mode == modeDouble {
				switch r {
				case '"', '\\', '$', '`':
					word.WriteRune(r)
				default:
					// Backslash is literal before non-special runes in double quotes
					word.WriteRune('\\')
					word.WriteRune(r)
				}
			} else {
				word.WriteRune(r)
			}
			continue
		}

		switch {
		case r == '\\' && mode != modeSingle:
			escaped = true
		case r == '\'' && mode == modePlain:
			mode = modeSingle
		case r == '\'' && mode == modeSingle:
			mode = modePlain
			quoted = true
		case r == '"' && mode == modePlain:
			mode = modeDouble
		case r == '"' && mode == modeDouble:
			mode = modePlain
			quoted = true
		case unicode.IsSpace(r) && mode == modePlain:
			if word.Len() > 0 || quoted {
				args = append(args, word.String())
				word.Reset()
				quoted = false
			}
		default:
			word.WriteRune(r)
		}
	}

	if escaped {
		return nil, ErrDanglingEscape
	}
	if mode != modePlain {
		kind := "single"
		if mode == modeDouble {
			kind = "double"
		}
		return nil, fmt.Errorf("%w: %s quote left open", ErrUnterminatedQuote, kind)
	}

	if word.Len() > 0 || quoted {
		args = append(args, word.String())
	}

	return args, nil
}

// Join renders arguments as a single command line, quoting any word that
// Split would break apart.
func Join(args []string) string {
	parts := make([]string, len(args))
	for i, arg := range args {
		parts[i] = Quote(arg)
	}
	return strings.Join(parts, " ")
}

// Quote wraps a single argument so that Split returns it unchanged.
func Quote(arg string) string {
	if arg == "" {
		return "''"
	}

	plain := true
	for _, r := range arg {
		if unicode.IsSpace(r) || strings.ContainsRune("'\"\\$`", r) {
			plain = false
			break
		}
	}
	if plain {
		return arg
	}

	if !strings.ContainsRune(arg, '\'') {
		return "'" + arg + "'"
	}

	var b strings.Builder
	b.WriteByte('"')
	for _, r := range arg {
		switch r {
		case '"', '\\', '$', '`':
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	b.WriteByte('"')

	return b.String()
}
