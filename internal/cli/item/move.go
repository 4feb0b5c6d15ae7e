package item

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/hito/internal/cli"
	"github.com/thenoetrevino/hito/internal/converters"
	"github.com/thenoetrevino/hito/internal/roadmap"
	"github.com/thenoetrevino/hito/internal/types"
)

// MoveCmd returns the item move subcommand
func MoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "move <item-id> <lane-id|backlog>",
		Short: "Move an item to a lane or back to the backlog",
		Long: `Move an item to the bottom of a lane, or out of every lane with 'backlog'.
Entering a done lane stamps the completion time; leaving one clears it.

Examples:
  hito item move <item-id> planned
  hito item move <item-id> backlog
  hito item move <item-id> $(hito lane list --quiet | tail -1)
`,
		Args: cobra.ExactArgs(2),
		RunE: runMove,
	}
	cli.AddOutputFlags(cmd)
	return cmd
}

func runMove(cmd *cobra.Command, args []string) error {
	id, target := types.ItemID(args[0]), args[1]

	return withCLI(cmd, func(c *cli.CLI, formatter *cli.OutputFormatter) error {
		res, err := c.App.ItemService.MoveItem(cmd.Context(), id, target)
		if err != nil {
			return formatter.FailWithSuggestion("ITEM_MOVE_ERROR", err, "List the board's lanes with: hito lane list")
		}

		if formatter.Quiet {
			fmt.Println(res.Item.ID)
			return nil
		}
		if formatter.JSON {
			return formatter.JSONSuccess("move", map[string]any{
				"item":       converters.ItemToJSON(res.Item),
				"applied":    res.Applied,
				"completion": res.Transition.Completion.String(),
			})
		}

		if !res.Applied {
			fmt.Println("Item was moved concurrently; the newer move was kept")
			return nil
		}
		if target == roadmap.Backlog {
			fmt.Printf("✓ Item '%s' moved to the backlog\n", res.Item.Title)
		} else {
			fmt.Printf("✓ Item '%s' moved to %s\n", res.Item.Title, target)
		}
		switch res.Transition.Completion {
		case roadmap.CompletionSet:
			fmt.Println("  Marked complete")
		case roadmap.CompletionCleared:
			fmt.Println("  Completion cleared")
		}
		return nil
	})
}
