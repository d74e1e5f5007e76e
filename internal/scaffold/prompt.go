package scaffold

import (
	"errors"
	"fmt"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/charmbracelet/huh"
)

const defaultProjectDir = "my-ecos-project"

func promptProjectPath() (string, error) {
	input := defaultProjectDir
	err := huh.NewInput().
		Title("Project directory path").
		Value(&input).
		Run()
	if err != nil {
		return "", fmt.Errorf("project path prompt failed: %w", err)
	}
	if input == "" {
		input = defaultProjectDir
	}
	return input, nil
}

// chooseTemplate validates a requested template or asks for one.
func chooseTemplate(requested string, available []string) (string, error) {
	if requested != "" {
		for _, name := range available {
			if name == requested {
				return requested, nil
			}
		}
		return "", fmt.Errorf("Template '%s' not found.\nAvailable templates: %s",
			requested, strings.Join(available, ", "))
	}

	selected := available[0]
	err := huh.NewSelect[string]().
		Title("Select target platform").
		Options(huh.NewOptions(available...)...).
		Value(&selected).
		Run()
	if err != nil {
		return "", fmt.Errorf("template selection failed: %w", err)
	}
	return selected, nil
}

// promptFlashPath asks for the flash device path. Empty skips, anything
// else must be absolute.
func promptFlashPath() (string, error) {
	hint := "/mnt/e"
	if runtime.GOOS == "windows" {
		hint = `E:\`
	}

	var input string
	err := huh.NewInput().
		Title(fmt.Sprintf("Flash device path (press Enter to skip, e.g. %s)", hint)).
		Value(&input).
		Validate(func(s string) error {
			if s == "" || filepath.IsAbs(s) {
				return nil
			}
			return errors.New("Please enter an absolute path or leave empty")
		}).
		Run()
	if err != nil {
		return "", fmt.Errorf("flash path prompt failed: %w", err)
	}
	return input, nil
}

func confirmOverwrite() (bool, error) {
	confirm := false
	err := huh.NewConfirm().
		Title("Directory is not empty. Overwrite existing files?").
		Affirmative("Yes!").
		Negative("No.").
		Value(&confirm).
		Run()
	if err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return false, nil
		}
		return false, fmt.Errorf("overwrite prompt failed: %w", err)
	}
	return confirm, nil
}
