package board

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/hito/internal/cli"
	"github.com/thenoetrevino/hito/internal/converters"
)

// CreateCmd returns the board create subcommand
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new board",
		Long: `Create a feedback board in an organization. Every board of an
organization shares its lanes.

Examples:
  hito board create --name="Feedback" --org=<org-id>

  # Organization from the environment
  eval $(hito use org <org-id>)
  BOARD_ID=$(hito board create --name="Feedback" --quiet)
`,
		RunE: runCreate,
	}

	cmd.Flags().String("name", "", "Board name (required)")
	if err := cmd.MarkFlagRequired("name"); err != nil {
		slog.Error("Error marking flag as required", "error", err)
	}
	cmd.Flags().String("org", "", "Organization ID (uses HITO_ORG env var if not specified)")

	cli.AddOutputFlags(cmd)
	return cmd
}

func runCreate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.Formatter(cmd)
	name, _ := cmd.Flags().GetString("name")

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return formatter.Fail("INITIALIZATION_ERROR", err)
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			slog.Error("Error closing CLI", "error", err)
		}
	}()

	orgID, err := cli.GetOrgID(cmd, cliInstance)
	if err != nil {
		return formatter.FailWithSuggestion("NO_ORG", err, "Set organization with: eval $(hito use org <org-id>)")
	}

	board, err := cliInstance.App.BoardService.CreateBoard(ctx, orgID, name)
	if err != nil {
		return formatter.Fail("BOARD_CREATE_ERROR", err)
	}

	if formatter.Quiet {
		fmt.Println(board.ID)
		return nil
	}
	if formatter.JSON {
		return formatter.JSONSuccess("board", converters.BoardToJSON(board))
	}

	fmt.Printf("✓ Board '%s' created (ID: %s)\n", board.Name, board.ID)
	return nil
}
