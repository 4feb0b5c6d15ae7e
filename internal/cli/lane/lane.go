// Package lane holds the roadmap lane commands
// e.g., hito lane ...
package lane

import (
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/hito/internal/cli"
)

// LaneCmd returns the lane parent command
func LaneCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lane",
		Short: "Manage an organization's roadmap lanes",
		Long: `Manage an organization's roadmap lanes.

Organizations start on the built-in lanes (under-review, planned,
in-progress, complete). Creating the first custom lane replaces all of
them for every board of the organization; deleting the last custom lane
brings them back. Items in a deleted lane keep their reference and are
hidden until moved (see 'hito item list --dangling').`,
	}

	cmd.AddCommand(CreateCmd())
	cmd.AddCommand(ListCmd())
	cmd.AddCommand(UpdateCmd())
	cmd.AddCommand(DeleteCmd())

	return cmd
}

func withCLI(cmd *cobra.Command, fn func(c *cli.CLI, f *cli.OutputFormatter) error) error {
	formatter := cli.Formatter(cmd)
	cliInstance, err := cli.GetCLIFromContext(cmd.Context())
	if err != nil {
		return formatter.Fail("INITIALIZATION_ERROR", err)
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			slog.Error("Error closing CLI", "error", err)
		}
	}()
	return fn(cliInstance, formatter)
}
