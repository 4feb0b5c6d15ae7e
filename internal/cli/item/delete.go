package item

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/hito/internal/cli"
	"github.com/thenoetrevino/hito/internal/types"
)

// DeleteCmd returns the item delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <item-id>",
		Short: "Delete an item",
		Args:  cobra.ExactArgs(1),
		RunE:  runDelete,
	}
	cli.AddOutputFlags(cmd)
	return cmd
}

func runDelete(cmd *cobra.Command, args []string) error {
	id := types.ItemID(args[0])

	return withCLI(cmd, func(c *cli.CLI, formatter *cli.OutputFormatter) error {
		if err := c.App.ItemService.DeleteItem(cmd.Context(), id); err != nil {
			return formatter.Fail("ITEM_DELETE_ERROR", err)
		}

		if formatter.Quiet {
			fmt.Println(id)
			return nil
		}
		if formatter.JSON {
			return formatter.JSONSuccess("deleted", string(id))
		}
		fmt.Printf("✓ Item %s deleted\n", id)
		return nil
	})
}
