// Package cli wires up the cobra commands.
package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"gitmenu.dev/gitmenu/internal/config"
	"gitmenu.dev/gitmenu/internal/git"
	"gitmenu.dev/gitmenu/internal/github"
	"gitmenu.dev/gitmenu/internal/logging"
	"gitmenu.dev/gitmenu/internal/tui"
)

// NewRootCmd creates the root cobra command.
func NewRootCmd(version, commit, date string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "gitmenu",
		Short:   "An interactive menu for everyday git and GitHub operations",
		Version: fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMenu()
		},
	}

	rootCmd.AddCommand(newDoctorCmd())

	return rootCmd
}

func runMenu() error {
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return fmt.Errorf("gitmenu requires an interactive terminal")
	}

	logger := logging.NewLogger()
	runner := git.NewCommandRunner("", logger)

	wd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get working directory: %w", err)
	}

	info, err := git.Detect(wd)
	if err != nil {
		// Not a repository. Offer to create one; declining still opens the
		// menu with the "Not a Git Repository" header.
		initialize := false
		prompt := &survey.Confirm{
			Message: "This directory is not a git repository. Initialize one here?",
		}
		if err := survey.AskOne(prompt, &initialize); err != nil {
			if errors.Is(err, terminal.InterruptErr) {
				return nil
			}
			return err
		}
		if initialize {
			if res := runner.Run(context.Background(), "git", "init"); !res.Ok() {
				return fmt.Errorf("git init failed: %s", res.Output)
			}
			info, _ = git.Detect(wd)
		}
	}

	root := wd
	if info != nil {
		root = info.Root
	}
	cfg, err := config.GetRepoConfig(root)
	if err != nil {
		logger.Warn("ignoring malformed repo config", "error", err)
		cfg = &config.RepoConfig{}
	}

	hosting := github.NewClient(context.Background(), runner)

	model := tui.NewModel(runner, hosting, cfg, info)
	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run menu: %w", err)
	}
	return nil
}
