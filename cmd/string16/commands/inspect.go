package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.trai.ch/string16/internal/app"
	"go.trai.ch/string16/internal/core/domain"
	"golang.org/x/term"
)

func (c *CLI) newInspectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect [text...]",
		Short: "Show the UTF-16 code units, hashes and UTF-8 form of each input",
		Long: "Each argument is inspected as UTF-8 text and each --file is decoded with the configured encoding.\n" +
			"Without arguments or files, inspect reads stdin unless it is a terminal.",
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			files, _ := cmd.Flags().GetStringArray("file")

			inputs := make([]app.Input, 0, len(args)+len(files))
			for i, arg := range args {
				inputs = append(inputs, app.TextInput(fmt.Sprintf("arg[%d]", i), arg))
			}
			for _, path := range files {
				inputs = append(inputs, app.FileInput(path))
			}
			if len(inputs) == 0 {
				in := cmd.InOrStdin()
				if isTerminal(in) {
					return domain.ErrNoInput
				}
				inputs = append(inputs, app.ReaderInput("stdin", in))
			}

			results, err := c.app.Inspect(cmd.Context(), inputs)
			if err != nil {
				return err
			}
			newReport(cmd.OutOrStdout()).write(results...)
			return nil
		},
	}
	cmd.Flags().StringArrayP("file", "f", nil, "Inspect the contents of a file (repeatable)")
	return cmd
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd())) //nolint:gosec // file descriptors fit in an int
}
