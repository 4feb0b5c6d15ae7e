package item

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/hito/internal/cli"
	"github.com/thenoetrevino/hito/internal/types"
)

// VoteCmd returns the item vote subcommand
func VoteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vote <item-id>",
		Short: "Upvote an item (or remove votes with --count=-1)",
		Args:  cobra.ExactArgs(1),
		RunE:  runVote,
	}
	cmd.Flags().Int("count", 1, "Votes to add; negative removes votes")
	cli.AddOutputFlags(cmd)
	return cmd
}

func runVote(cmd *cobra.Command, args []string) error {
	id := types.ItemID(args[0])
	count, _ := cmd.Flags().GetInt("count")

	return withCLI(cmd, func(c *cli.CLI, formatter *cli.OutputFormatter) error {
		votes, err := c.App.ItemService.Vote(cmd.Context(), id, count)
		if err != nil {
			return formatter.Fail("ITEM_VOTE_ERROR", err)
		}

		if formatter.Quiet {
			fmt.Println(votes)
			return nil
		}
		if formatter.JSON {
			return formatter.JSONSuccess("votes", votes)
		}
		fmt.Printf("✓ Item now has %d vote(s)\n", votes)
		return nil
	})
}
