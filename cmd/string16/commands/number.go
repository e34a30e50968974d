package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newNumberCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "number",
		Short: "Format numbers the way JavaScript does",
	}
	cmd.AddCommand(c.newNumberIntCmd())
	cmd.AddCommand(c.newNumberDoubleCmd())
	return cmd
}

func (c *CLI) newNumberIntCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "int <n>",
		Short: "Format a decimal integer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := c.app.FormatInt(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), s.UTF8())
			return nil
		},
	}
}

func (c *CLI) newNumberDoubleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "double <x>",
		Short: "Format a double in shortest form or with a number of significant digits",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			precision, _ := cmd.Flags().GetInt("precision")
			if !cmd.Flags().Changed("precision") {
				precision = -1
			}

			s, err := c.app.FormatDouble(cmd.Context(), args[0], precision)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), s.UTF8())
			return nil
		},
	}
	cmd.Flags().IntP("precision", "p", 0, "Significant digits, 1 to 100; 0 for the shortest form (default: from config)")
	return cmd
}
