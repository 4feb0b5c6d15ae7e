package item

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/hito/internal/cli"
	"github.com/thenoetrevino/hito/internal/converters"
	itemservice "github.com/thenoetrevino/hito/internal/services/item"
	"github.com/thenoetrevino/hito/internal/tui/huhforms"
)

// CreateCmd returns the item create subcommand
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Submit a feedback item",
		Long: `Submit a feedback item to a board. New items start in the backlog.

Examples:
  hito item create --title="Dark mode" --board=<board-id>
  ITEM_ID=$(hito item create --title="SSO" --description="SAML please" --quiet)

  # Fill in title and description in a form
  hito item create --interactive
`,
		RunE: runCreate,
	}

	cmd.Flags().String("title", "", "Item title (required unless --interactive)")
	cmd.Flags().String("description", "", "Item description (markdown)")
	cmd.Flags().BoolP("interactive", "i", false, "Prompt for the item in a form")
	cmd.Flags().String("board", "", "Board ID (uses HITO_BOARD env var if not specified)")

	cli.AddOutputFlags(cmd)
	return cmd
}

func runCreate(cmd *cobra.Command, args []string) error {
	title, _ := cmd.Flags().GetString("title")
	description, _ := cmd.Flags().GetString("description")
	interactive, _ := cmd.Flags().GetBool("interactive")

	return withCLI(cmd, func(c *cli.CLI, formatter *cli.OutputFormatter) error {
		if interactive {
			v := &huhforms.ItemFormValues{Title: title, Description: description}
			if err := huhforms.CreateItemForm(v).RunWithContext(cmd.Context()); err != nil {
				return formatter.Fail("FORM_ERROR", err)
			}
			title, description = v.Title, v.Description
		} else if title == "" {
			return formatter.Fail("MISSING_TITLE", &cli.CommandError{Code: cli.ExitUsage, Err: fmt.Errorf("--title is required")})
		}

		boardID, err := cli.GetBoardID(cmd, c)
		if err != nil {
			return formatter.FailWithSuggestion("NO_BOARD", err, "Set board with: eval $(hito use board <board-id>)")
		}

		it, err := c.App.ItemService.CreateItem(cmd.Context(), itemservice.CreateItemRequest{
			BoardID:     boardID,
			Title:       title,
			Description: description,
		})
		if err != nil {
			return formatter.Fail("ITEM_CREATE_ERROR", err)
		}

		if formatter.Quiet {
			fmt.Println(it.ID)
			return nil
		}
		if formatter.JSON {
			return formatter.JSONSuccess("item", converters.ItemToJSON(*it))
		}
		fmt.Printf("✓ Item '%s' created in the backlog (ID: %s)\n", it.Title, it.ID)
		return nil
	})
}
