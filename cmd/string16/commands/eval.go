package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newEvalCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "eval <script>",
		Short: "Evaluate JavaScript and inspect the resulting string",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			insp, err := c.app.Eval(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			newReport(cmd.OutOrStdout()).write(insp)
			return nil
		},
	}
}

func (c *CLI) newExploreCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "explore [text]",
		Short: "Edit text interactively and watch its UTF-16 form",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var initial string
			if len(args) > 0 {
				initial = args[0]
			}

			s, err := c.app.Explore(cmd.Context(), initial)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), s.UTF8())
			return nil
		},
	}
}
