// Package main is the entry point for the gitmenu application.
package main

import (
	"os"

	"gitmenu.dev/gitmenu/internal/cli"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	rootCmd := cli.NewRootCmd(version, commit, date)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
