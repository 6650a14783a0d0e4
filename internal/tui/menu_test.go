package tui

import (
	"testing"

	"github.com/stretchr/testify/require"

	"gitmenu.dev/gitmenu/internal/config"
)

func menuWithOptions(n int) *Menu {
	actions := make([]Action, n)
	for i := range actions {
		actions[i] = Action{ID: ActionStatus, Label: "option"}
	}
	return &Menu{Actions: actions}
}

func TestMoveUpWrapsToBottom(t *testing.T) {
	menu := menuWithOptions(4)
	menu.MoveUp()
	require.Equal(t, 3, menu.Cursor)
}

func TestMoveDownWrapsToTop(t *testing.T) {
	menu := menuWithOptions(4)
	menu.Cursor = 3
	menu.MoveDown()
	require.Equal(t, 0, menu.Cursor)
}

func TestNavigationIsModular(t *testing.T) {
	// After any sequence of moves the cursor equals the net delta modulo
	// the option count.
	moves := []int{-1, -1, 1, -1, 1, 1, 1, -1, -1, -1, -1, 1}

	for count := 1; count <= 6; count++ {
		menu := menuWithOptions(count)
		net := 0
		for _, move := range moves {
			if move < 0 {
				menu.MoveUp()
			} else {
				menu.MoveDown()
			}
			net += move

			want := ((net % count) + count) % count
			require.Equal(t, want, menu.Cursor, "count=%d net=%d", count, net)
		}
	}
}

func TestSingleOptionMenuNeverMoves(t *testing.T) {
	menu := menuWithOptions(1)
	menu.MoveUp()
	menu.MoveDown()
	require.Equal(t, 0, menu.Cursor)
}

func TestMenuLayouts(t *testing.T) {
	cfg := &config.RepoConfig{}

	main := MainMenu(cfg)
	require.Len(t, main.Actions, 4)
	require.Equal(t, ActionAdvancedMenu, main.Actions[3].ID)
	require.Equal(t, "Advanced menu", main.Actions[3].Label)

	advanced := AdvancedMenu(cfg)
	require.Len(t, advanced.Actions, 10)
	require.Equal(t, ActionBack, advanced.Actions[9].ID)
}

func TestCommitMessagePromptUsesConfiguredDefault(t *testing.T) {
	message := "wip"
	cfg := &config.RepoConfig{DefaultCommitMessage: &message}

	main := MainMenu(cfg)
	require.Equal(t, "wip", main.Actions[0].Prompts[0].Default)
	require.Contains(t, main.Actions[0].Prompts[0].Label, "default: wip")
}
