package github

import (
	"context"

	"gitmenu.dev/gitmenu/internal/git"
)

// CLIClient shells out to the gh CLI through the command runner.
type CLIClient struct {
	runner git.Runner
}

// NewCLIClient creates a gh-CLI-backed hosting client.
func NewCLIClient(runner git.Runner) *CLIClient {
	return &CLIClient{runner: runner}
}

// CreateIssue runs `gh issue create`. The body flag is omitted when the
// body is empty so gh does not open an editor for it.
func (c *CLIClient) CreateIssue(ctx context.Context, title, body string) git.Result {
	args := []string{"issue", "create", "--title", title}
	if body != "" {
		args = append(args, "--body", body)
	}
	return c.runner.Run(ctx, "gh", args...)
}

// CreateRepo runs `gh repo create`, sourcing the current directory, adding
// the new repository as origin and pushing in one step.
func (c *CLIClient) CreateRepo(ctx context.Context, name string, private bool) git.Result {
	visibility := "--public"
	if private {
		visibility = "--private"
	}
	return c.runner.Run(ctx, "gh",
		"repo", "create", name, visibility,
		"--source=.", "--remote=origin", "--push")
}
