package board

import (
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/hito/internal/cli"
	"github.com/thenoetrevino/hito/internal/launcher"
)

// WatchCmd returns the board watch subcommand
func WatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Open a live board view",
		Long: `Open an interactive board that regroups whenever the board changes.
Live updates need the event daemon (hito-daemon) to be running; without it
the board refreshes only on 'r'.`,
		RunE: runWatch,
	}
	cmd.Flags().String("board", "", "Board ID (uses HITO_BOARD env var if not specified)")
	return cmd
}

func runWatch(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.Formatter(cmd)

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return formatter.Fail("INITIALIZATION_ERROR", err)
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			slog.Error("Error closing CLI", "error", err)
		}
	}()

	boardID, err := cli.GetBoardID(cmd, cliInstance)
	if err != nil {
		return formatter.FailWithSuggestion("NO_BOARD", err, "Set board with: eval $(hito use board <board-id>)")
	}

	if err := launcher.Launch(ctx, cliInstance.App, cliInstance.Config, boardID); err != nil {
		return formatter.Fail("WATCH_ERROR", err)
	}
	return nil
}
