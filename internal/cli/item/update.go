package item

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/hito/internal/cli"
	"github.com/thenoetrevino/hito/internal/converters"
	itemservice "github.com/thenoetrevino/hito/internal/services/item"
	"github.com/thenoetrevino/hito/internal/types"
)

// UpdateCmd returns the item update subcommand
func UpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update <item-id>",
		Short: "Edit an item's title or description",
		Long: `Edit an item's title or description. Lane changes go through 'hito item move'.

Examples:
  hito item update <item-id> --title="Dark mode everywhere"
  hito item update <item-id> --description=""
`,
		Args: cobra.ExactArgs(1),
		RunE: runUpdate,
	}
	cmd.Flags().String("title", "", "New title")
	cmd.Flags().String("description", "", "New description (markdown)")
	cli.AddOutputFlags(cmd)
	return cmd
}

func runUpdate(cmd *cobra.Command, args []string) error {
	req := itemservice.UpdateItemRequest{ItemID: types.ItemID(args[0])}
	if cmd.Flags().Changed("title") {
		v, _ := cmd.Flags().GetString("title")
		req.Title = &v
	}
	if cmd.Flags().Changed("description") {
		v, _ := cmd.Flags().GetString("description")
		req.Description = &v
	}

	return withCLI(cmd, func(c *cli.CLI, formatter *cli.OutputFormatter) error {
		if req.Title == nil && req.Description == nil {
			return formatter.Fail("NO_UPDATES", &cli.CommandError{Code: cli.ExitUsage, Err: fmt.Errorf("nothing to update (use --title or --description)")})
		}

		it, err := c.App.ItemService.UpdateItem(cmd.Context(), req)
		if err != nil {
			return formatter.Fail("ITEM_UPDATE_ERROR", err)
		}

		if formatter.Quiet {
			fmt.Println(it.ID)
			return nil
		}
		if formatter.JSON {
			return formatter.JSONSuccess("item", converters.ItemToJSON(*it))
		}
		fmt.Printf("✓ Item '%s' updated\n", it.Title)
		return nil
	})
}
