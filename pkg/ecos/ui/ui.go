// Package ui prints the user-facing progress lines the ecos commands
// share. Diagnostics go through hclog; these lines are the product.
package ui

import (
	"fmt"

	"github.com/fatih/color"
)

var (
	cyan   = color.New(color.FgCyan)
	green  = color.New(color.FgGreen)
	yellow = color.New(color.FgYellow)
	red    = color.New(color.FgRed)
	bold   = color.New(color.Bold)
	faint  = color.New(color.Faint)
)

// Step prints a top-level progress line with a colored emoji badge.
func Step(badge, format string, a ...any) {
	fmt.Printf("%s %s\n", cyan.Sprint(badge), fmt.Sprintf(format, a...))
}

// Substep prints an indented progress line with a colored emoji badge.
func Substep(badge, format string, a ...any) {
	fmt.Printf("  %s %s\n", cyan.Sprint(badge), fmt.Sprintf(format, a...))
}

// Detail prints an indented plain line.
func Detail(format string, a ...any) {
	fmt.Printf("  %s\n", fmt.Sprintf(format, a...))
}

// Success prints a checkmark line.
func Success(format string, a ...any) {
	fmt.Printf("%s %s\n", green.Sprint("✅"), fmt.Sprintf(format, a...))
}

// SubSuccess prints an indented checkmark line.
func SubSuccess(format string, a ...any) {
	fmt.Printf("  %s %s\n", green.Sprint("✅"), fmt.Sprintf(format, a...))
}

// Warn prints a warning line.
func Warn(format string, a ...any) {
	fmt.Printf("%s %s\n", yellow.Sprint("⚠️"), fmt.Sprintf(format, a...))
}

// Error prints a failure line ahead of the error that follows it.
func Error(format string, a ...any) {
	fmt.Printf("%s %s\n", red.Sprint("❌"), bold.Sprint(fmt.Sprintf(format, a...)))
}

// Cyan colors a fragment for emphasis (names, values).
func Cyan(v any) string { return cyan.Sprint(v) }

// Green colors a fragment green.
func Green(v any) string { return green.Sprint(v) }

// Yellow colors a fragment yellow.
func Yellow(v any) string { return yellow.Sprint(v) }

// Bold renders a fragment bold.
func Bold(v any) string { return bold.Sprint(v) }

// Dim renders a fragment faint (paths, incidental info).
func Dim(v any) string { return faint.Sprint(v) }
