package use

import (
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/hito/internal/cli"
	"github.com/thenoetrevino/hito/internal/types"
)

// OrgCmd returns the use org subcommand
func OrgCmd() *cobra.Command {
	uc := useContext{
		env:  cli.OrgEnv,
		noun: "organization",
		lookup: func(cmd *cobra.Command, c *cli.CLI, id string) (string, map[string]string, error) {
			lanes, err := c.App.LaneService.ListLanes(cmd.Context(), types.OrgID(id))
			if err != nil {
				return "", nil, err
			}
			return lanes.Source.String() + " lanes", nil, nil
		},
		save: func(c *cli.CLI, id string) { c.Config.DefaultOrg = id },
	}

	cmd := &cobra.Command{
		Use:   "org [org-id]",
		Short: "Set organization context for current shell session",
		Args:  cobra.MaximumNArgs(1),
		RunE:  uc.run,
	}
	addContextFlags(cmd)
	return cmd
}
