package tui

import (
	"context"
	"fmt"
	"strings"

	"gitmenu.dev/gitmenu/internal/git"
)

// ActionID identifies a menu action. Dispatch is on the ID, never on the
// label text.
type ActionID int

const (
	ActionCommitPushAll ActionID = iota
	ActionPullAll
	ActionCreateIssue
	ActionAdvancedMenu
	ActionCreateRepo
	ActionAddFiles
	ActionCommit
	ActionPush
	ActionPull
	ActionStatus
	ActionLog
	ActionDiff
	ActionBack
)

// Action is one selectable menu entry: an ID, a label, and the prompts to
// collect before it runs.
type Action struct {
	ID      ActionID
	Label   string
	Prompts []Prompt
}

// Prompt describes one line of input an action collects. A Required prompt
// aborts the action on empty or cancelled input; an optional one substitutes
// Default when confirmed empty.
type Prompt struct {
	Label    string
	Default  string
	Required bool
}

// step is one command in an action's sequence, with the status lines
// rendered around it. Display steps show their raw output instead of a
// status line and ignore the exit code.
type step struct {
	pending string
	success string
	failure string
	// benign is the informational line shown when the command fails with a
	// "nothing to commit" output; the sequence continues instead of erroring.
	benign  string
	display bool
	title   string
	run     func(ctx context.Context) git.Result
}

// buildSteps maps an action and its collected inputs to the command
// sequence it issues.
func (m *Model) buildSteps(action Action, inputs []string) []step {
	switch action.ID {
	case ActionCommitPushAll:
		return []step{
			m.stageAllStep(),
			m.commitStep(inputs[0], "Nothing to commit."),
			m.pushStep(),
		}

	case ActionPullAll, ActionPull:
		return []step{m.pullStep()}

	case ActionPush:
		return []step{m.pushStep()}

	case ActionCommit:
		return []step{
			m.stageAllStep(),
			m.commitStep(inputs[0], "Nothing to commit."),
		}

	case ActionAddFiles:
		args := []string{"add", "-A"}
		if pattern := inputs[0]; pattern != "" {
			args = append([]string{"add"}, strings.Fields(pattern)...)
		}
		return []step{{
			pending: "Adding files...",
			success: "Files added successfully.",
			failure: "Error adding files:",
			run: func(ctx context.Context) git.Result {
				return m.runner.Run(ctx, "git", args...)
			},
		}}

	case ActionCreateIssue:
		title, body := inputs[0], inputs[1]
		return []step{{
			pending: "Creating issue...",
			success: "Issue created successfully.",
			failure: "Error creating issue:",
			run: func(ctx context.Context) git.Result {
				return m.hosting.CreateIssue(ctx, title, body)
			},
		}}

	case ActionCreateRepo:
		name := inputs[0]
		private := strings.EqualFold(inputs[1], "y")
		visibility := "public"
		if private {
			visibility = "private"
		}
		return []step{
			m.stageAllStep(),
			{
				pending: "Creating initial commit...",
				success: "Initial commit created.",
				failure: "Error during commit:",
				benign:  "Nothing to commit, proceeding...",
				run: func(ctx context.Context) git.Result {
					return m.runner.Run(ctx, "git", "commit", "-m", "Initial commit")
				},
			},
			{
				pending: fmt.Sprintf("Creating GitHub repository '%s' as %s...", name, visibility),
				success: "GitHub repository created and pushed successfully.",
				failure: "Error creating GitHub repository:",
				run: func(ctx context.Context) git.Result {
					return m.hosting.CreateRepo(ctx, name, private)
				},
			},
		}

	case ActionStatus:
		return []step{{
			display: true,
			run: func(ctx context.Context) git.Result {
				return m.runner.Run(ctx, "git", "status")
			},
		}}

	case ActionLog:
		limit := fmt.Sprintf("%d", m.cfg.LogLimit())
		return []step{{
			display: true,
			title:   fmt.Sprintf("Recent commit log (last %d commits):", m.cfg.LogLimit()),
			run: func(ctx context.Context) git.Result {
				return m.runner.Run(ctx, "git", "log", "--oneline", "-n", limit)
			},
		}}

	case ActionDiff:
		return []step{{
			display: true,
			title:   "Diff:",
			run: func(ctx context.Context) git.Result {
				return m.runner.Run(ctx, "git", "diff")
			},
		}}
	}

	return nil
}

func (m *Model) stageAllStep() step {
	return step{
		pending: "Staging all files...",
		success: "Files staged.",
		failure: "Error staging files:",
		run: func(ctx context.Context) git.Result {
			return m.runner.Run(ctx, "git", "add", "-A")
		},
	}
}

func (m *Model) commitStep(message, benign string) step {
	return step{
		pending: "Committing changes...",
		success: "Changes committed.",
		failure: "Error during commit:",
		benign:  benign,
		run: func(ctx context.Context) git.Result {
			return m.runner.Run(ctx, "git", "commit", "-m", message)
		},
	}
}

func (m *Model) pushStep() step {
	return step{
		pending: "Pushing changes...",
		success: "Push successful.",
		failure: "Error during push:",
		run: func(ctx context.Context) git.Result {
			return m.runner.Run(ctx, "git", "push")
		},
	}
}

func (m *Model) pullStep() step {
	return step{
		pending: "Pulling changes from remote...",
		success: "Pull successful.",
		failure: "Error during pull:",
		run: func(ctx context.Context) git.Result {
			return m.runner.Run(ctx, "git", "pull")
		},
	}
}
