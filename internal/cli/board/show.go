package board

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/hito/internal/cli"
	"github.com/thenoetrevino/hito/internal/cli/styles"
	"github.com/thenoetrevino/hito/internal/converters"
)

// ShowCmd returns the board show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show a board grouped into lanes",
		Long: `Show a board's items grouped into its organization's lanes, each lane
ordered top to bottom. The backlog is hidden unless --backlog is given.

Examples:
  hito board show --board=<board-id>
  hito board show --backlog
  hito board show --json
`,
		RunE: runShow,
	}

	cmd.Flags().String("board", "", "Board ID (uses HITO_BOARD env var if not specified)")
	cmd.Flags().Bool("backlog", false, "Include the backlog column")
	cmd.Flags().Bool("dangling", false, "List items whose lane no longer exists")
	cli.AddOutputFlags(cmd)
	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.Formatter(cmd)
	showBacklog, _ := cmd.Flags().GetBool("backlog")
	showDangling, _ := cmd.Flags().GetBool("dangling")

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

	view, err := cliInstance.App.BoardService.GetBoard(ctx, boardID)
	if err != nil {
		return formatter.Fail("BOARD_NOT_FOUND", err)
	}

	if formatter.Quiet {
		for _, b := range view.Grouping.Buckets {
			for _, it := range b.Items {
				fmt.Println(it.ID)
			}
		}
		return nil
	}
	if formatter.JSON {
		return formatter.JSONSuccess("board", converters.GroupingToJSON(view.Board, view.Lanes, view.Grouping, view.Dangling))
	}

	fmt.Println(styles.RenderBoard(view.Board, view.Grouping, showBacklog))
	if len(view.Dangling) > 0 {
		if !showDangling {
			fmt.Println(styles.SubtitleStyle.Render(fmt.Sprintf("%d item(s) reference a deleted lane (see --dangling)", len(view.Dangling))))
			return nil
		}
		fmt.Println(styles.LabelStyle.Render("Items in deleted lanes:"))
		for _, it := range view.Dangling {
			fmt.Printf("  %s (ID: %s, lane: %s)\n", it.Title, it.ID, *it.Lane)
		}
	}
	return nil
}
