// Package testhelpers builds throwaway git repositories for tests.
package testhelpers

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
)

// GitRepo represents a git repository created for a single test.
type GitRepo struct {
	Dir string
}

// NewGitRepo initializes a new git repository in dir with a deterministic
// identity and no global config.
func NewGitRepo(dir string) (*GitRepo, error) {
	repo := &GitRepo{Dir: dir}

	if err := repo.Git("init", "-b", "main"); err != nil {
		return nil, fmt.Errorf("failed to init repo: %w", err)
	}
	if err := repo.Git("config", "user.name", "Test User"); err != nil {
		return nil, err
	}
	if err := repo.Git("config", "user.email", "test@example.com"); err != nil {
		return nil, err
	}
	return repo, nil
}

// Git runs a git command inside the repository.
func (r *GitRepo) Git(args ...string) error {
	cmd := exec.Command("git", args...)
	cmd.Dir = r.Dir
	cmd.Env = append(os.Environ(), "GIT_CONFIG_GLOBAL=/dev/null", "GIT_CONFIG_SYSTEM=/dev/null")
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("git %v failed: %s: %w", args, out, err)
	}
	return nil
}

// WriteFile creates or overwrites a file relative to the repository root.
func (r *GitRepo) WriteFile(name, contents string) error {
	path := filepath.Join(r.Dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(contents), 0o644)
}

// Commit stages everything and creates a commit with the given message.
func (r *GitRepo) Commit(message string) error {
	if err := r.Git("add", "-A"); err != nil {
		return err
	}
	return r.Git("commit", "-m", message)
}
