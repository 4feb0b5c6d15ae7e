package item

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/hito/internal/cli"
	"github.com/thenoetrevino/hito/internal/converters"
	"github.com/thenoetrevino/hito/internal/models"
	"github.com/thenoetrevino/hito/internal/roadmap"
	"github.com/thenoetrevino/hito/internal/types"
)

// ListCmd returns the item list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List a board's items",
		Long: `List a board's items in lane order, each lane top to bottom.

Examples:
  hito item list
  hito item list --lane=planned
  hito item list --backlog
  hito item list --dangling
`,
		RunE: runList,
	}

	cmd.Flags().String("board", "", "Board ID (uses HITO_BOARD env var if not specified)")
	cmd.Flags().String("lane", "", "Only items in this lane")
	cmd.Flags().Bool("backlog", false, "Only backlog items")
	cmd.Flags().Bool("dangling", false, "Only items whose lane no longer exists")
	cmd.MarkFlagsMutuallyExclusive("lane", "backlog", "dangling")

	cli.AddOutputFlags(cmd)
	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	lane, _ := cmd.Flags().GetString("lane")
	backlog, _ := cmd.Flags().GetBool("backlog")
	dangling, _ := cmd.Flags().GetBool("dangling")

	return withCLI(cmd, func(c *cli.CLI, formatter *cli.OutputFormatter) error {
		boardID, err := cli.GetBoardID(cmd, c)
		if err != nil {
			return formatter.FailWithSuggestion("NO_BOARD", err, "Set board with: eval $(hito use board <board-id>)")
		}

		view, err := c.App.BoardService.GetBoard(cmd.Context(), boardID)
		if err != nil {
			return formatter.Fail("BOARD_NOT_FOUND", err)
		}

		var items []models.Item
		switch {
		case lane != "":
			bucket, ok := view.Grouping.Bucket(types.LaneID(lane))
			if !ok {
				return formatter.Fail("INVALID_LANE", fmt.Errorf("%w: %q", roadmap.ErrUnknownLane, lane))
			}
			items = bucket.Items
		case backlog:
			items = view.Grouping.Backlog
		case dangling:
			items = view.Dangling
		default:
			for _, b := range view.Grouping.Buckets {
				items = append(items, b.Items...)
			}
		}

		if formatter.Quiet {
			for _, it := range items {
				fmt.Println(it.ID)
			}
			return nil
		}
		if formatter.JSON {
			return formatter.JSONSuccess("items", converters.ItemsToJSON(items))
		}

		if len(items) == 0 {
			fmt.Println("No items found")
			return nil
		}
		for _, it := range items {
			where := "backlog"
			if it.Lane != nil {
				where = string(*it.Lane)
				if l, ok := view.Lanes.Lookup(*it.Lane); ok {
					where = l.Name
				}
			}
			fmt.Printf("  [%s] %s (▲%d, ID: %s)\n", where, it.Title, it.Votes, it.ID)
		}
		return nil
	})
}
