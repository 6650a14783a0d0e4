package git

import (
	"fmt"
	"strings"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

// RepoInfo describes the repository the menu is running in. It is read once
// at startup with go-git and only used for display; all mutating operations
// go through the command runner.
type RepoInfo struct {
	Root      string
	Branch    string
	RemoteURL string
}

// Detect opens the repository containing dir. It returns an error when dir
// is not inside a git repository; callers treat that as a valid state, not a
// failure.
func Detect(dir string) (*RepoInfo, error) {
	repo, err := gogit.PlainOpenWithOptions(dir, &gogit.PlainOpenOptions{
		DetectDotGit: true,
	})
	if err != nil {
		return nil, fmt.Errorf("not a git repository: %w", err)
	}

	worktree, err := repo.Worktree()
	if err != nil {
		return nil, fmt.Errorf("failed to get worktree: %w", err)
	}

	info := &RepoInfo{Root: worktree.Filesystem.Root()}

	if head, err := repo.Head(); err == nil && head.Name().IsBranch() {
		info.Branch = head.Name().Short()
	} else if err == nil && head.Name() == plumbing.HEAD {
		info.Branch = head.Hash().String()[:7]
	}

	if remote, err := repo.Remote("origin"); err == nil {
		urls := remote.Config().URLs
		if len(urls) > 0 {
			info.RemoteURL = urls[0]
		}
	}

	return info, nil
}

// DisplayName returns the name shown in the header bar: the final path
// segment of the origin URL, or "Local Git Repository" when no origin is
// configured.
func (i *RepoInfo) DisplayName() string {
	if i == nil {
		return "Not a Git Repository"
	}
	if i.RemoteURL == "" {
		return "Local Git Repository"
	}

	name := strings.TrimRight(i.RemoteURL, "/")
	if idx := strings.LastIndexAny(name, "/:"); idx >= 0 {
		name = name[idx+1:]
	}
	name = strings.TrimSuffix(name, ".git")
	if name == "" {
		return "Local Git Repository"
	}
	return name
}
