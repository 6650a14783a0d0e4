// Package config provides repository configuration management,
// including reading and writing the gitmenu configuration file.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// ConfigFileName is the name of the per-repo config file inside .git.
const ConfigFileName = ".gitmenu_config"

// Defaults applied when a field is absent from the config file.
const (
	DefaultCommitMessage = "auto commit"
	DefaultLogCount      = 10
)

// RepoConfig represents the repository configuration.
type RepoConfig struct {
	DefaultCommitMessage *string `json:"defaultCommitMessage,omitempty"`
	LogCount             *int    `json:"logCount,omitempty"`
}

// GetRepoConfig reads the repository configuration. A missing file yields
// the default config; a malformed file is an error.
func GetRepoConfig(repoRoot string) (*RepoConfig, error) {
	data, err := os.ReadFile(configPath(repoRoot))
	if err != nil {
		return &RepoConfig{}, nil
	}

	var config RepoConfig
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse repo config: %w", err)
	}
	return &config, nil
}

// Save writes the configuration back to the repository.
func (c *RepoConfig) Save(repoRoot string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal repo config: %w", err)
	}
	if err := os.WriteFile(configPath(repoRoot), data, 0o644); err != nil {
		return fmt.Errorf("failed to write repo config: %w", err)
	}
	return nil
}

// CommitMessage returns the default commit message used when the user
// confirms an empty commit-message prompt.
func (c *RepoConfig) CommitMessage() string {
	if c != nil && c.DefaultCommitMessage != nil && *c.DefaultCommitMessage != "" {
		return *c.DefaultCommitMessage
	}
	return DefaultCommitMessage
}

// LogLimit returns the number of commits shown by the log view.
func (c *RepoConfig) LogLimit() int {
	if c != nil && c.LogCount != nil && *c.LogCount > 0 {
		return *c.LogCount
	}
	return DefaultLogCount
}

func configPath(repoRoot string) string {
	return filepath.Join(repoRoot, ".git", ConfigFileName)
}
