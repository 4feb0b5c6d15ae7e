package lane

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/hito/internal/cli"
	"github.com/thenoetrevino/hito/internal/cli/styles"
	"github.com/thenoetrevino/hito/internal/converters"
)

// ListCmd returns the lane list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the organization's active lanes in display order",
		RunE:  runList,
	}
	cmd.Flags().String("org", "", "Organization ID (uses HITO_ORG env var if not specified)")
	cli.AddOutputFlags(cmd)
	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	return withCLI(cmd, func(c *cli.CLI, formatter *cli.OutputFormatter) error {
		orgID, err := cli.GetOrgID(cmd, c)
		if err != nil {
			return formatter.FailWithSuggestion("NO_ORG", err, "Set organization with: eval $(hito use org <org-id>)")
		}

		set, err := c.App.LaneService.ListLanes(cmd.Context(), orgID)
		if err != nil {
			return formatter.Fail("LANE_FETCH_ERROR", err)
		}

		if formatter.Quiet {
			for _, l := range set.Lanes {
				fmt.Println(l.ID)
			}
			return nil
		}
		if formatter.JSON {
			return formatter.JSONSuccess("lanes", converters.LaneSetToJSON(set))
		}

		fmt.Printf("Lanes (%s):\n", set.Source)
		for i, l := range set.Lanes {
			fmt.Printf("  %d. %s (ID: %s)\n", i+1, styles.RenderLaneChip(l), l.ID)
		}
		return nil
	})
}
