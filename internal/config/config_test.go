package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func repoRootWithGitDir(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(root, ".git"), 0o755))
	return root
}

func TestGetRepoConfigMissingFile(t *testing.T) {
	cfg, err := GetRepoConfig(repoRootWithGitDir(t))
	require.NoError(t, err)
	require.Equal(t, DefaultCommitMessage, cfg.CommitMessage())
	require.Equal(t, DefaultLogCount, cfg.LogLimit())
}

func TestGetRepoConfigReadsValues(t *testing.T) {
	root := repoRootWithGitDir(t)
	path := filepath.Join(root, ".git", ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte(`{"defaultCommitMessage":"wip","logCount":25}`), 0o644))

	cfg, err := GetRepoConfig(root)
	require.NoError(t, err)
	require.Equal(t, "wip", cfg.CommitMessage())
	require.Equal(t, 25, cfg.LogLimit())
}

func TestGetRepoConfigMalformed(t *testing.T) {
	root := repoRootWithGitDir(t)
	path := filepath.Join(root, ".git", ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := GetRepoConfig(root)
	require.Error(t, err)
}

func TestSaveRoundTrip(t *testing.T) {
	root := repoRootWithGitDir(t)
	message := "chore: update"
	count := 3
	cfg := &RepoConfig{DefaultCommitMessage: &message, LogCount: &count}
	require.NoError(t, cfg.Save(root))

	loaded, err := GetRepoConfig(root)
	require.NoError(t, err)
	require.Equal(t, "chore: update", loaded.CommitMessage())
	require.Equal(t, 3, loaded.LogLimit())
}

func TestAccessorsIgnoreInvalidValues(t *testing.T) {
	empty := ""
	zero := 0
	cfg := &RepoConfig{DefaultCommitMessage: &empty, LogCount: &zero}
	require.Equal(t, DefaultCommitMessage, cfg.CommitMessage())
	require.Equal(t, DefaultLogCount, cfg.LogLimit())

	var nilCfg *RepoConfig
	require.Equal(t, DefaultCommitMessage, nilCfg.CommitMessage())
	require.Equal(t, DefaultLogCount, nilCfg.LogLimit())
}
