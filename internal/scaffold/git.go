package scaffold

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"

	"github.com/ECOS-C1-SDK4Heke/cargo-ecos/pkg/ecos/ui"
)

// bootstrapRepo puts the fresh project under version control with an
// initial commit. The caller reports any error and moves on; scaffolding
// never depends on git succeeding.
func bootstrapRepo(dir, projectName string) error {
	if _, err := os.Stat(filepath.Join(dir, ".git")); err == nil {
		return fmt.Errorf("Git repository already exists at %s", dir)
	}

	ui.Detail("%s", ui.Dim("Initializing Git repository..."))

	repo, err := git.PlainInit(dir, false)
	if err != nil {
		return fmt.Errorf("Git initialization failed: %w", err)
	}
	fmt.Printf("    %s\n", ui.Green("✓ Git repository initialized"))

	wt, err := repo.Worktree()
	if err != nil {
		return fmt.Errorf("failed to open worktree: %w", err)
	}

	if err := wt.AddGlob("."); err == nil {
		fmt.Printf("    %s\n", ui.Green("✓ Added all files to staging"))
	}

	message := fmt.Sprintf("Initialized: Project [%s] at %s",
		projectName, time.Now().Format("2006-01-02 15:04:05"))
	_, err = wt.Commit(message, &git.CommitOptions{
		Author: &object.Signature{
			Name:  "ecos",
			Email: "ecos@localhost",
			When:  time.Now(),
		},
	})
	if err != nil {
		fmt.Printf("    %s\n", ui.Yellow("⚠ Initial commit failed (no changes or other issue)"))
		return nil
	}

	fmt.Printf("    %s\n", ui.Green(fmt.Sprintf("✓ Initial commit: %s", message)))
	return nil
}
