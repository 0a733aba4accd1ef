package cli

import (
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/idelchi/godu/internal/godu"
	"github.com/idelchi/godu/internal/integration"
)

// CLI represents the command-line interface.
type CLI struct {
	version string
}

// New creates a new CLI instance with the given version.
func New(version string) CLI {
	return CLI{version: version}
}

// Command builds the root command.
//
// The '-h' shorthand is taken by '--human-readable', so a shorthand-less
// '--help' flag is registered up front to keep cobra from claiming it.
func (c CLI) Command() *cobra.Command {
	var opts godu.Options

	cmd := &cobra.Command{
		Use:   "godu [flags] [path...]",
		Short: "godu summarizes on-disk space usage per file and directory",
		Long: heredoc.Doc(`
			godu summarizes on-disk space usage per file and directory.

			Each path argument is walked depth-first and every qualifying entry is
			printed as one line of kilobyte-equivalent block usage followed by its
			path. Directories print after their contents, so totals accumulate
			bottom-up. With no arguments the current directory is walked.

			The '-i' flag is available if using the integration script for shell
			usage. It will then run an interactive mode where the output of the
			tool is piped to 'fzf'.
		`),
		Version:       c.version,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.Integration {
				rendered, err := integration.Render()
				if err != nil {
					return fmt.Errorf("rendering integration script: %w", err)
				}

				//nolint:forbidigo // Integration script output to console
				fmt.Println(rendered)

				return nil
			}

			if cmd.Flags().Changed("max-depth") && opts.MaxDepth < 0 {
				return fmt.Errorf("invalid maximum depth %d\nTry '%s --help' for more information", opts.MaxDepth, cmd.Name())
			}

			opts.ProgramName = cmd.Name()

			return logic(opts, args)
		},
	}

	cmd.Flags().BoolVarP(&opts.All, "all", "a", false, "Write counts for all files, not just directories")
	cmd.Flags().BoolVarP(&opts.GrandTotal, "total", "c", false, "Produce a grand total")
	cmd.Flags().BoolVarP(&opts.HumanReadable, "human-readable", "h", false, "Print sizes in human readable format (e.g., 1.1K, 234M, 2G)")
	cmd.Flags().IntVar(&opts.MaxDepth, "max-depth", -1, "Print entries only up to N levels below each argument")
	cmd.Flags().BoolVar(&opts.Debug, "debug", false, "Enable debug output")
	cmd.Flags().BoolVarP(&opts.Integration, "init", "i", false, "Output init script for shell usage")
	cmd.Flags().Bool("help", false, "Display this help and exit")
	cmd.Flags().SortFlags = false

	cmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return fmt.Errorf("%w\nTry '%s --help' for more information", err, cmd.Name())
	})

	return cmd
}

// Execute runs the CLI with the provided arguments.
func (c CLI) Execute() error {
	return c.Command().Execute()
}
