package cli

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewRootCmd(t *testing.T) {
	root := NewRootCmd("1.2.3", "abc1234", "2026-01-02")

	require.Equal(t, "gitmenu", root.Use)
	require.Contains(t, root.Version, "1.2.3")
	require.Contains(t, root.Version, "abc1234")

	var names []string
	for _, sub := range root.Commands() {
		names = append(names, sub.Name())
	}
	require.Contains(t, names, "doctor")
}
