package github

import (
	"context"
	"os"
	"strings"

	"gitmenu.dev/gitmenu/internal/git"
)

// ResolveToken finds a GitHub token: GITHUB_TOKEN, then GH_TOKEN, then the
// gh CLI's stored credentials. Returns "" when none is available.
func ResolveToken(ctx context.Context, runner git.Runner) string {
	if token := os.Getenv("GITHUB_TOKEN"); token != "" {
		return token
	}
	if token := os.Getenv("GH_TOKEN"); token != "" {
		return token
	}

	res := runner.Run(ctx, "gh", "auth", "token")
	if !res.Ok() {
		return ""
	}
	return strings.TrimSpace(res.Output)
}
