package github

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/go-github/v62/github"
	"golang.org/x/oauth2"

	"gitmenu.dev/gitmenu/internal/git"
)

// APIClient talks to the GitHub API directly. It is the fallback for
// machines without the gh CLI; outcomes are flattened into git.Result so
// callers cannot tell the two implementations apart.
type APIClient struct {
	gh     *github.Client
	runner git.Runner
}

// NewAPIClient creates an API-backed hosting client from an oauth2 token.
func NewAPIClient(ctx context.Context, token string, runner git.Runner) *APIClient {
	tokenSource := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	httpClient := oauth2.NewClient(ctx, tokenSource)
	return &APIClient{gh: github.NewClient(httpClient), runner: runner}
}

// CreateIssue creates an issue on the repository the origin remote points at.
func (c *APIClient) CreateIssue(ctx context.Context, title, body string) git.Result {
	owner, repo, err := c.ownerRepo(ctx)
	if err != nil {
		return failure(err)
	}

	request := &github.IssueRequest{Title: github.String(title)}
	if body != "" {
		request.Body = github.String(body)
	}

	issue, _, err := c.gh.Issues.Create(ctx, owner, repo, request)
	if err != nil {
		return failure(fmt.Errorf("failed to create issue: %w", err))
	}
	return git.Result{Output: issue.GetHTMLURL() + "\n"}
}

// CreateRepo creates the repository via the API, then wires it up as origin
// and pushes, matching what `gh repo create --source=. --push` does.
func (c *APIClient) CreateRepo(ctx context.Context, name string, private bool) git.Result {
	repo, _, err := c.gh.Repositories.Create(ctx, "", &github.Repository{
		Name:    github.String(name),
		Private: github.Bool(private),
	})
	if err != nil {
		return failure(fmt.Errorf("failed to create repository: %w", err))
	}

	if res := c.runner.Run(ctx, "git", "remote", "add", "origin", repo.GetCloneURL()); !res.Ok() {
		return res
	}
	if res := c.runner.Run(ctx, "git", "push", "-u", "origin", "HEAD"); !res.Ok() {
		return res
	}
	return git.Result{Output: repo.GetHTMLURL() + "\n"}
}

func (c *APIClient) ownerRepo(ctx context.Context) (string, string, error) {
	res := c.runner.Run(ctx, "git", "remote", "get-url", "origin")
	if !res.Ok() {
		return "", "", fmt.Errorf("no origin remote configured")
	}
	return ParseOwnerRepo(strings.TrimSpace(res.Output))
}

// ParseOwnerRepo extracts "owner" and "repo" from an https or ssh remote URL.
func ParseOwnerRepo(remoteURL string) (string, string, error) {
	path := remoteURL
	switch {
	case strings.Contains(path, "://"):
		// https://github.com/owner/repo.git
		parts := strings.SplitN(path, "://", 2)
		path = parts[1]
		if idx := strings.Index(path, "/"); idx >= 0 {
			path = path[idx+1:]
		}
	case strings.Contains(path, ":"):
		// git@github.com:owner/repo.git
		parts := strings.SplitN(path, ":", 2)
		path = parts[1]
	}

	path = strings.TrimSuffix(strings.Trim(path, "/"), ".git")
	segments := strings.Split(path, "/")
	if len(segments) < 2 || segments[0] == "" || segments[1] == "" {
		return "", "", fmt.Errorf("cannot determine owner/repo from remote %q", remoteURL)
	}
	return segments[len(segments)-2], segments[len(segments)-1], nil
}

func failure(err error) git.Result {
	return git.Result{Output: err.Error() + "\n", ExitCode: 1}
}
