// Package github creates issues and repositories on the hosting service,
// either through the gh CLI or directly against the GitHub API.
package github

import (
	"context"
	"os/exec"

	"gitmenu.dev/gitmenu/internal/git"
)

// Client performs hosting-service operations. Both implementations report
// outcomes as git.Result so action handlers treat them exactly like git
// commands: exit code plus combined output, nothing richer.
type Client interface {
	// CreateIssue creates an issue with the given title and optional body.
	CreateIssue(ctx context.Context, title, body string) git.Result

	// CreateRepo creates a repository for the current directory, wires it
	// up as origin and pushes the initial commit.
	CreateRepo(ctx context.Context, name string, private bool) git.Result
}

// NewClient picks the hosting implementation: the gh CLI when it is on
// PATH, otherwise the API client when a token is available. With neither,
// the CLI client is returned anyway so the user sees gh's own "not found"
// failure when they trigger a hosting action.
func NewClient(ctx context.Context, runner git.Runner) Client {
	if _, err := exec.LookPath("gh"); err == nil {
		return NewCLIClient(runner)
	}
	if token := ResolveToken(ctx, runner); token != "" {
		return NewAPIClient(ctx, token, runner)
	}
	return NewCLIClient(runner)
}
