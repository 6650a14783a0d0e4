package github_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"gitmenu.dev/gitmenu/internal/git"
	"gitmenu.dev/gitmenu/internal/github"
	"gitmenu.dev/gitmenu/testhelpers"
)

func TestCLICreateIssueWithBody(t *testing.T) {
	runner := &testhelpers.FakeRunner{}
	client := github.NewCLIClient(runner)

	res := client.CreateIssue(context.Background(), "Broken build", "make fails on linux")

	require.True(t, res.Ok())
	require.Equal(t,
		[]string{"gh issue create --title Broken build --body make fails on linux"},
		runner.Calls)
}

func TestCLICreateIssueOmitsEmptyBody(t *testing.T) {
	runner := &testhelpers.FakeRunner{}
	client := github.NewCLIClient(runner)

	client.CreateIssue(context.Background(), "Broken build", "")

	require.Equal(t, []string{"gh issue create --title Broken build"}, runner.Calls)
}

func TestCLICreateRepoVisibility(t *testing.T) {
	runner := &testhelpers.FakeRunner{}
	client := github.NewCLIClient(runner)

	client.CreateRepo(context.Background(), "widgets", true)
	client.CreateRepo(context.Background(), "widgets", false)

	require.Equal(t, []string{
		"gh repo create widgets --private --source=. --remote=origin --push",
		"gh repo create widgets --public --source=. --remote=origin --push",
	}, runner.Calls)
}

func TestCLICreateIssuePropagatesFailure(t *testing.T) {
	runner := &testhelpers.FakeRunner{}
	runner.Stub("gh issue create", git.Result{Output: "gh: not logged in\n", ExitCode: 1})
	client := github.NewCLIClient(runner)

	res := client.CreateIssue(context.Background(), "Broken build", "")

	require.False(t, res.Ok())
	require.Contains(t, res.Output, "not logged in")
}
