package use

import (
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/hito/internal/cli"
	"github.com/thenoetrevino/hito/internal/types"
)

// BoardCmd returns the use board subcommand. Selecting a board also selects
// its organization.
func BoardCmd() *cobra.Command {
	uc := useContext{
		env:  cli.BoardEnv,
		noun: "board",
		lookup: func(cmd *cobra.Command, c *cli.CLI, id string) (string, map[string]string, error) {
			view, err := c.App.BoardService.GetBoard(cmd.Context(), types.BoardID(id))
			if err != nil {
				return "", nil, err
			}
			return view.Board.Name, map[string]string{cli.OrgEnv: string(view.Board.OrgID)}, nil
		},
		save: func(c *cli.CLI, id string) { c.Config.DefaultBoard = id },
	}

	cmd := &cobra.Command{
		Use:   "board [board-id]",
		Short: "Set board context for current shell session",
		Args:  cobra.MaximumNArgs(1),
		RunE:  uc.run,
	}
	addContextFlags(cmd)
	return cmd
}
