package lane

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/hito/internal/cli"
	"github.com/thenoetrevino/hito/internal/converters"
	laneservice "github.com/thenoetrevino/hito/internal/services/lane"
	"github.com/thenoetrevino/hito/internal/tui/huhforms"
)

var errCancelled = errors.New("lane creation cancelled")

// CreateCmd returns the lane create subcommand
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Add a custom lane after the organization's last lane",
		Long: `Add a custom lane after the organization's last lane.

Examples:
  hito lane create --name="Now" --color="#3B82F6"
  hito lane create --name="Shipped" --color="#22C55E" --done
  hito lane create --interactive
`,
		RunE: runCreate,
	}

	cmd.Flags().String("org", "", "Organization ID (uses HITO_ORG env var if not specified)")
	cmd.Flags().String("name", "", "Lane name (required unless --interactive)")
	cmd.Flags().String("color", "#7D56F4", "Lane color in hex format #RRGGBB")
	cmd.Flags().Bool("done", false, "Items entering this lane are marked complete")
	cmd.Flags().BoolP("interactive", "i", false, "Prompt for the lane in a form")

	cli.AddOutputFlags(cmd)
	return cmd
}

func runCreate(cmd *cobra.Command, args []string) error {
	name, _ := cmd.Flags().GetString("name")
	color, _ := cmd.Flags().GetString("color")
	done, _ := cmd.Flags().GetBool("done")
	interactive, _ := cmd.Flags().GetBool("interactive")

	return withCLI(cmd, func(c *cli.CLI, formatter *cli.OutputFormatter) error {
		orgID, err := cli.GetOrgID(cmd, c)
		if err != nil {
			return formatter.FailWithSuggestion("NO_ORG", err, "Set organization with: eval $(hito use org <org-id>)")
		}

		if interactive {
			v := &huhforms.LaneFormValues{Name: name, Color: color, IsDone: done}
			if err := huhforms.CreateLaneForm(v).RunWithContext(cmd.Context()); err != nil {
				return formatter.Fail("FORM_ERROR", err)
			}
			if !v.Confirm {
				return formatter.Fail("CANCELLED", &cli.CommandError{Code: cli.ExitError, Err: errCancelled})
			}
			name, color, done = v.Name, v.Color, v.IsDone
		}

		tag, err := c.App.LaneService.CreateLane(cmd.Context(), laneservice.CreateLaneRequest{
			OrgID:        orgID,
			Name:         name,
			Color:        color,
			IsDoneStatus: done,
		})
		if err != nil {
			return formatter.Fail("LANE_CREATE_ERROR", err)
		}

		if formatter.Quiet {
			fmt.Println(tag.ID)
			return nil
		}
		if formatter.JSON {
			return formatter.JSONSuccess("lane", converters.TagToJSON(*tag))
		}
		fmt.Printf("✓ Lane '%s' created (ID: %s)\n", tag.Name, tag.ID)
		return nil
	})
}
