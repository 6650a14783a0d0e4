package git

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRunCombinesStdoutThenStderr(t *testing.T) {
	runner := NewCommandRunner("", nil)

	res := runner.Run(context.Background(), "sh", "-c", "echo err 1>&2; echo out")

	require.True(t, res.Ok())
	require.Equal(t, "out\nerr\n", res.Output)
}

func TestRunReportsExitCode(t *testing.T) {
	runner := NewCommandRunner("", nil)

	res := runner.Run(context.Background(), "sh", "-c", "echo broken; exit 3")

	require.False(t, res.Ok())
	require.Equal(t, 3, res.ExitCode)
	require.Equal(t, "broken\n", res.Output)
}

func TestRunUnlaunchableCommand(t *testing.T) {
	runner := NewCommandRunner("", nil)

	res := runner.Run(context.Background(), "gitmenu-no-such-binary")

	require.Equal(t, 1, res.ExitCode)
	require.NotEmpty(t, res.Output)
}

func TestRunHonorsWorkingDir(t *testing.T) {
	dir := t.TempDir()
	runner := NewCommandRunner(dir, nil)

	res := runner.Run(context.Background(), "pwd")

	require.True(t, res.Ok())
	require.Contains(t, res.Output, dir)
}

func TestNothingToCommit(t *testing.T) {
	matching := Result{
		Output:   "On branch main\nnothing to commit, working tree clean\n",
		ExitCode: 1,
	}
	require.True(t, matching.NothingToCommit())

	upperCase := Result{Output: "Nothing To Commit", ExitCode: 1}
	require.True(t, upperCase.NothingToCommit())

	other := Result{Output: "fatal: not a git repository\n", ExitCode: 128}
	require.False(t, other.NothingToCommit())
}
