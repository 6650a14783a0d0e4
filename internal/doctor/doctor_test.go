package doctor_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"gitmenu.dev/gitmenu/internal/doctor"
	"gitmenu.dev/gitmenu/internal/git"
	"gitmenu.dev/gitmenu/testhelpers"
)

func TestCheckReportsHealthyEnvironment(t *testing.T) {
	t.Setenv("GITHUB_TOKEN", "")
	t.Setenv("GH_TOKEN", "")

	runner := &testhelpers.FakeRunner{}
	runner.Stub("git version", git.Result{Output: "git version 2.44.0\n"})
	runner.Stub("gh --version", git.Result{Output: "gh version 2.49.0 (2024-05-01)\nhttps://github.com/cli/cli\n"})
	runner.Stub("gh auth token", git.Result{Output: "no oauth token\n", ExitCode: 1})

	var out bytes.Buffer
	err := doctor.Check(context.Background(), &out, runner)

	require.NoError(t, err)
	require.Contains(t, out.String(), "✅ git version 2.44.0")
	require.Contains(t, out.String(), "✅ gh version 2.49.0")
	require.Contains(t, out.String(), "no GitHub token found")
	require.Contains(t, out.String(), "0 error(s), 1 warning(s)")
}

func TestCheckFailsWithoutGit(t *testing.T) {
	t.Setenv("GITHUB_TOKEN", "")
	t.Setenv("GH_TOKEN", "")

	runner := &testhelpers.FakeRunner{}
	runner.Stub("git version", git.Result{Output: "command not found\n", ExitCode: 1})
	runner.Stub("gh --version", git.Result{Output: "command not found\n", ExitCode: 1})
	runner.Stub("gh auth token", git.Result{Output: "", ExitCode: 1})

	var out bytes.Buffer
	err := doctor.Check(context.Background(), &out, runner)

	require.Error(t, err)
	require.Contains(t, out.String(), "git is not installed")
}
