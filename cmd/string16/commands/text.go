package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"go.trai.ch/string16"
	"go.trai.ch/string16/internal/app"
)

func (c *CLI) newParseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse <text>",
		Short: "Parse a strict base-10 integer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := c.app.Parse(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), n)
			return nil
		},
	}
}

func (c *CLI) newFindCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "find <haystack> <needle>",
		Short: "Print the UTF-16 index of needle in haystack",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, _ := cmd.Flags().GetInt("from")
			reverse, _ := cmd.Flags().GetBool("reverse")

			idx := c.app.Find(cmd.Context(), args[0], args[1], app.FindOptions{From: from, Reverse: reverse})
			if idx == string16.NotFound {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "not found")
				return nil
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), idx)
			return nil
		},
	}
	cmd.Flags().Int("from", -1, "Start index (default: start of the string, or its end with --reverse)")
	cmd.Flags().BoolP("reverse", "r", false, "Search backwards for the last occurrence")
	return cmd
}

func (c *CLI) newStripCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "strip <text>",
		Short: "Remove leading and trailing ASCII whitespace",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := c.app.Strip(cmd.Context(), args[0])
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), strconv.Quote(s.UTF8()))
			return nil
		},
	}
}

func (c *CLI) newConcatCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "concat <part>...",
		Short: "Join text parts, then --int and --double values, through a builder",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ints, _ := cmd.Flags().GetIntSlice("int")
			doubles, _ := cmd.Flags().GetFloat64Slice("double")

			parts := make([]any, 0, len(args)+len(ints)+len(doubles))
			for _, arg := range args {
				parts = append(parts, arg)
			}
			for _, n := range ints {
				parts = append(parts, n)
			}
			for _, v := range doubles {
				parts = append(parts, v)
			}

			s := c.app.Concat(cmd.Context(), parts...)
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), s.UTF8())
			return nil
		},
	}
	cmd.Flags().IntSlice("int", nil, "Integers to append after the text parts")
	cmd.Flags().Float64Slice("double", nil, "Doubles to append after the integers")
	return cmd
}
