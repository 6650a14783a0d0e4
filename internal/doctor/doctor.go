// Package doctor checks that the environment has everything the menu needs.
package doctor

import (
	"context"
	"fmt"
	"io"
	"strings"

	gogithub "github.com/google/go-github/v62/github"
	"golang.org/x/oauth2"

	"gitmenu.dev/gitmenu/internal/git"
	"gitmenu.dev/gitmenu/internal/github"
)

// Check runs the environment checks and writes a report to out. It returns
// an error when a required tool is missing; warnings alone do not fail.
func Check(ctx context.Context, out io.Writer, runner git.Runner) error {
	var errorCount, warningCount int

	fmt.Fprintln(out, "Checking environment...")

	if res := runner.Run(ctx, "git", "version"); res.Ok() {
		fmt.Fprintf(out, "  ✅ %s\n", strings.TrimSpace(res.Output))
	} else {
		errorCount++
		fmt.Fprintln(out, "  ❌ git is not installed or not in PATH")
	}

	if res := runner.Run(ctx, "gh", "--version"); res.Ok() {
		version := strings.TrimSpace(res.Output)
		if line, _, found := strings.Cut(version, "\n"); found {
			version = line
		}
		fmt.Fprintf(out, "  ✅ %s\n", version)
	} else {
		warningCount++
		fmt.Fprintln(out, "  ⚠️  GitHub CLI (gh) is not installed; hosting actions will use the API fallback")
	}

	token := github.ResolveToken(ctx, runner)
	if token == "" {
		warningCount++
		fmt.Fprintln(out, "  ⚠️  no GitHub token found (GITHUB_TOKEN, GH_TOKEN, or gh auth login)")
	} else if err := probeAPI(ctx, token); err != nil {
		warningCount++
		fmt.Fprintf(out, "  ⚠️  GitHub authentication failed: %v\n", err)
	} else {
		fmt.Fprintln(out, "  ✅ GitHub authentication successful")
	}

	fmt.Fprintf(out, "\n%d error(s), %d warning(s)\n", errorCount, warningCount)
	if errorCount > 0 {
		return fmt.Errorf("doctor found %d error(s)", errorCount)
	}
	return nil
}

func probeAPI(ctx context.Context, token string) error {
	tokenSource := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	client := gogithub.NewClient(oauth2.NewClient(ctx, tokenSource))
	_, _, err := client.Users.Get(ctx, "")
	return err
}
