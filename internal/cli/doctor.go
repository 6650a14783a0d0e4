package cli

import (
	"github.com/spf13/cobra"

	"gitmenu.dev/gitmenu/internal/doctor"
	"gitmenu.dev/gitmenu/internal/git"
	"gitmenu.dev/gitmenu/internal/logging"
)

func newDoctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check that git, gh and GitHub credentials are available",
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := git.NewCommandRunner("", logging.NewLogger())
			return doctor.Check(cmd.Context(), cmd.OutOrStdout(), runner)
		},
	}
}
