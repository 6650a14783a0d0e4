package tui

import (
	"fmt"

	"gitmenu.dev/gitmenu/internal/config"
)

// Menu is one level of the menu stack: an ordered list of actions and the
// current selection. The cursor always stays in [0, len(Actions)) and wraps
// on navigation.
type Menu struct {
	Title   string
	Actions []Action
	Cursor  int
}

// MoveUp moves the selection up one entry, wrapping to the bottom.
func (m *Menu) MoveUp() {
	if len(m.Actions) == 0 {
		return
	}
	m.Cursor = (m.Cursor - 1 + len(m.Actions)) % len(m.Actions)
}

// MoveDown moves the selection down one entry, wrapping to the top.
func (m *Menu) MoveDown() {
	if len(m.Actions) == 0 {
		return
	}
	m.Cursor = (m.Cursor + 1) % len(m.Actions)
}

// Selected returns the action under the cursor.
func (m *Menu) Selected() Action {
	return m.Actions[m.Cursor]
}

func commitMessagePrompt(cfg *config.RepoConfig) Prompt {
	return Prompt{
		Label:   fmt.Sprintf("Enter commit message (default: %s)", cfg.CommitMessage()),
		Default: cfg.CommitMessage(),
	}
}

// MainMenu builds the top-level menu.
func MainMenu(cfg *config.RepoConfig) *Menu {
	return &Menu{
		Title: "Main Menu",
		Actions: []Action{
			{ID: ActionCommitPushAll, Label: "Commit & Push all", Prompts: []Prompt{commitMessagePrompt(cfg)}},
			{ID: ActionPullAll, Label: "Pull all"},
			createIssueAction(),
			{ID: ActionAdvancedMenu, Label: "Advanced menu"},
		},
	}
}

// AdvancedMenu builds the secondary menu entered from the main menu.
func AdvancedMenu(cfg *config.RepoConfig) *Menu {
	return &Menu{
		Title: "Advanced Menu",
		Actions: []Action{
			{ID: ActionCreateRepo, Label: "Create GitHub Repository", Prompts: []Prompt{
				{Label: "Enter new repository name", Required: true},
				{Label: "Make repository private? (y/n)"},
			}},
			{ID: ActionAddFiles, Label: "Add Files", Prompts: []Prompt{
				{Label: "Enter file pattern to add (blank for all)"},
			}},
			{ID: ActionCommit, Label: "Commit Changes", Prompts: []Prompt{commitMessagePrompt(cfg)}},
			{ID: ActionPush, Label: "Push to Remote"},
			{ID: ActionPull, Label: "Pull from Remote"},
			{ID: ActionStatus, Label: "Git Status"},
			createIssueAction(),
			{ID: ActionLog, Label: "View Log"},
			{ID: ActionDiff, Label: "Show Diff"},
			{ID: ActionBack, Label: "Back to Main Menu"},
		},
	}
}

func createIssueAction() Action {
	return Action{ID: ActionCreateIssue, Label: "Create Issue", Prompts: []Prompt{
		{Label: "Enter issue title", Required: true},
		{Label: "Enter issue body (optional)"},
	}}
}
