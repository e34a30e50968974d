// Package commands implements the CLI commands for string16.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/string16"
	"go.trai.ch/string16/internal/app"
	"go.trai.ch/string16/internal/build"
	"go.trai.ch/string16/internal/core/domain"
)

// CLI represents the command line interface for string16.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Configure(opts app.ConfigureOptions) error
	Shutdown(ctx context.Context) error
	Inspect(ctx context.Context, inputs []app.Input) ([]domain.Inspection, error)
	FormatInt(ctx context.Context, text string) (string16.String, error)
	FormatDouble(ctx context.Context, text string, precision int) (string16.String, error)
	Parse(ctx context.Context, text string) (int, error)
	Find(ctx context.Context, haystack, needle string, opts app.FindOptions) int
	Strip(ctx context.Context, text string) string16.String
	Concat(ctx context.Context, parts ...any) string16.String
	Eval(ctx context.Context, source string) (domain.Inspection, error)
	Explore(ctx context.Context, initial string) (string16.String, error)
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	c := &CLI{app: a}

	rootCmd := &cobra.Command{
		Use:           "string16",
		Short:         "Inspect and convert UTF-16 strings",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			jsonLogs, _ := cmd.Flags().GetBool("json-logs")
			trace, _ := cmd.Flags().GetBool("trace")
			return c.app.Configure(app.ConfigureOptions{
				Path:     configPath,
				JSONLogs: jsonLogs,
				Trace:    trace,
			})
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.Shutdown(cmd.Context())
		},
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.PersistentFlags().StringP("config", "c", "", "Path to string16.yaml or string16.toml (default: discover in the working directory)")
	rootCmd.PersistentFlags().Bool("json-logs", false, "Write logs as JSON")
	rootCmd.PersistentFlags().Bool("trace", false, "Log every finished operation with its duration")

	c.rootCmd = rootCmd

	rootCmd.AddCommand(c.newInspectCmd())
	rootCmd.AddCommand(c.newNumberCmd())
	rootCmd.AddCommand(c.newParseCmd())
	rootCmd.AddCommand(c.newFindCmd())
	rootCmd.AddCommand(c.newStripCmd())
	rootCmd.AddCommand(c.newConcatCmd())
	rootCmd.AddCommand(c.newEvalCmd())
	rootCmd.AddCommand(c.newExploreCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}

// SetInput sets the stream inspect reads when it gets no arguments. Used for testing.
func (c *CLI) SetInput(in io.Reader) {
	c.rootCmd.SetIn(in)
}
