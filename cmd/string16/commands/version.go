package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/string16/internal/build"
)

func (c *CLI) newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the application version",
		// The version is printed even when the config file is broken.
		PersistentPreRunE:  func(*cobra.Command, []string) error { return nil },
		PersistentPostRunE: func(*cobra.Command, []string) error { return nil },
		Run: func(cmd *cobra.Command, _ []string) {
			cmdo := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(cmdo, "string16 version %s (commit: %s, date: %s)\n", build.Version, build.Commit, build.Date)
		},
	}
}
