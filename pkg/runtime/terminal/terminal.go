package terminal

import (
	"io"
	"os"

	"github.com/revlytic/bplan/pkg/runtime/terminal/commands"
	"github.com/revlytic/bplan/pkg/runtime/terminal/export"

	"github.com/spf13/cobra"
)

// CLI represents the command-line interface
type CLI struct {
	reporters map[string]commands.ReportHandler
	rootCmd   *cobra.Command
}

// Options contain configuration for the CLI
type Options struct {
	Output io.Writer
}

// NewCLI creates a new CLI instance
func NewCLI(opts Options) *CLI {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	cli := &CLI{
		reporters: map[string]commands.ReportHandler{
			"table": export.NewReporter(opts.Output),
			"text":  NewReporter(opts.Output),
		},
	}

	cli.rootCmd = cli.newRootCmd()
	return cli
}

func (cli *CLI) Execute() error {
	return cli.rootCmd.Execute()
}

func (cli *CLI) newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bplan",
		Short: "Hotel business plan projection tool",
	}

	cmd.AddCommand(commands.NewAnalyzeCmd(cli.reporters))
	cmd.AddCommand(commands.NewProfilesCmd())

	return cmd
}
