package lane

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/hito/internal/cli"
	"github.com/thenoetrevino/hito/internal/types"
)

// DeleteCmd returns the lane delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <lane-id>",
		Short: "Delete a custom lane",
		Long: `Delete a custom lane. Items in it are not moved: they keep the deleted
lane's id and stay hidden from the board until moved elsewhere.`,
		Args: cobra.ExactArgs(1),
		RunE: runDelete,
	}
	cli.AddOutputFlags(cmd)
	return cmd
}

func runDelete(cmd *cobra.Command, args []string) error {
	id := types.TagID(args[0])

	return withCLI(cmd, func(c *cli.CLI, formatter *cli.OutputFormatter) error {
		if err := c.App.LaneService.DeleteLane(cmd.Context(), id); err != nil {
			return formatter.Fail("LANE_DELETE_ERROR", err)
		}

		if formatter.Quiet {
			fmt.Println(id)
			return nil
		}
		if formatter.JSON {
			return formatter.JSONSuccess("deleted", string(id))
		}
		fmt.Printf("✓ Lane %s deleted\n", id)
		return nil
	})
}
