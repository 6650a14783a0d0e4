package testhelpers

import (
	"os"
	"testing"
)

// Scene is a test scene: a temporary directory containing a fresh git
// repository, with the working directory switched into it for the duration
// of the test.
type Scene struct {
	Dir  string
	Repo *GitRepo
}

// NewScene creates a scene and registers cleanup with t.Cleanup.
func NewScene(t *testing.T) *Scene {
	t.Helper()

	tmpDir, err := os.MkdirTemp("", "gitmenu-test-*")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}

	oldDir, err := os.Getwd()
	if err != nil {
		t.Fatalf("failed to get current directory: %v", err)
	}

	repo, err := NewGitRepo(tmpDir)
	if err != nil {
		os.RemoveAll(tmpDir)
		t.Fatalf("failed to create git repo: %v", err)
	}

	if err := os.Chdir(tmpDir); err != nil {
		os.RemoveAll(tmpDir)
		t.Fatalf("failed to change directory: %v", err)
	}

	t.Cleanup(func() {
		_ = os.Chdir(oldDir)
		_ = os.RemoveAll(tmpDir)
	})

	return &Scene{Dir: tmpDir, Repo: repo}
}
