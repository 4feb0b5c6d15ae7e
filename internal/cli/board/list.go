package board

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/hito/internal/cli"
	"github.com/thenoetrevino/hito/internal/converters"
)

// ListCmd returns the board list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List boards in an organization",
		RunE:  runList,
	}
	cmd.Flags().String("org", "", "Organization ID (uses HITO_ORG env var if not specified)")
	cli.AddOutputFlags(cmd)
	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.Formatter(cmd)

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

	boards, err := cliInstance.App.BoardService.ListBoards(ctx, orgID)
	if err != nil {
		return formatter.Fail("BOARD_FETCH_ERROR", err)
	}

	if formatter.Quiet {
		for _, b := range boards {
			fmt.Println(b.ID)
		}
		return nil
	}
	if formatter.JSON {
		out := make([]converters.BoardJSON, len(boards))
		for i, b := range boards {
			out[i] = converters.BoardToJSON(b)
		}
		return formatter.JSONSuccess("boards", out)
	}

	if len(boards) == 0 {
		fmt.Println("No boards found")
		return nil
	}
	fmt.Println("Boards:")
	for _, b := range boards {
		fmt.Printf("  %s (ID: %s)\n", b.Name, b.ID)
	}
	return nil
}
