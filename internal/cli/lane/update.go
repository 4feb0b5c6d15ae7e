package lane

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/hito/internal/cli"
	"github.com/thenoetrevino/hito/internal/converters"
	laneservice "github.com/thenoetrevino/hito/internal/services/lane"
	"github.com/thenoetrevino/hito/internal/types"
)

// UpdateCmd returns the lane update subcommand
func UpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update <lane-id>",
		Short: "Rename, recolor or flip the done flag of a custom lane",
		Long: `Rename, recolor or flip the done flag of a custom lane. Changing the done
flag affects later moves only; items already in the lane keep their
completion state.

Examples:
  hito lane update <lane-id> --name="Released"
  hito lane update <lane-id> --done=false
`,
		Args: cobra.ExactArgs(1),
		RunE: runUpdate,
	}
	cmd.Flags().String("name", "", "New lane name")
	cmd.Flags().String("color", "", "New color in hex format #RRGGBB")
	cmd.Flags().Bool("done", false, "Whether items in this lane count as done")
	cli.AddOutputFlags(cmd)
	return cmd
}

func runUpdate(cmd *cobra.Command, args []string) error {
	req := laneservice.UpdateLaneRequest{LaneID: types.TagID(args[0])}
	if cmd.Flags().Changed("name") {
		v, _ := cmd.Flags().GetString("name")
		req.Name = &v
	}
	if cmd.Flags().Changed("color") {
		v, _ := cmd.Flags().GetString("color")
		req.Color = &v
	}
	if cmd.Flags().Changed("done") {
		v, _ := cmd.Flags().GetBool("done")
		req.IsDoneStatus = &v
	}

	return withCLI(cmd, func(c *cli.CLI, formatter *cli.OutputFormatter) error {
		if req.Name == nil && req.Color == nil && req.IsDoneStatus == nil {
			return formatter.Fail("NO_UPDATES", &cli.CommandError{Code: cli.ExitUsage, Err: fmt.Errorf("nothing to update (use --name, --color or --done)")})
		}

		tag, err := c.App.LaneService.UpdateLane(cmd.Context(), req)
		if err != nil {
			return formatter.Fail("LANE_UPDATE_ERROR", err)
		}

		if formatter.Quiet {
			fmt.Println(tag.ID)
			return nil
		}
		if formatter.JSON {
			return formatter.JSONSuccess("lane", converters.TagToJSON(*tag))
		}
		fmt.Printf("✓ Lane '%s' updated\n", tag.Name)
		return nil
	})
}
