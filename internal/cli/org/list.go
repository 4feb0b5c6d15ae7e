package org

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/hito/internal/cli"
	"github.com/thenoetrevino/hito/internal/converters"
)

// ListCmd returns the org list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List organizations",
		RunE:  runList,
	}
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

	orgs, err := cliInstance.App.BoardService.ListOrganizations(ctx)
	if err != nil {
		return formatter.Fail("ORG_FETCH_ERROR", err)
	}

	if formatter.Quiet {
		for _, o := range orgs {
			fmt.Println(o.ID)
		}
		return nil
	}
	if formatter.JSON {
		out := make([]converters.OrgJSON, len(orgs))
		for i, o := range orgs {
			out[i] = converters.OrgToJSON(o)
		}
		return formatter.JSONSuccess("organizations", out)
	}

	if len(orgs) == 0 {
		fmt.Println("No organizations found")
		return nil
	}
	fmt.Println("Organizations:")
	for _, o := range orgs {
		fmt.Printf("  %s (ID: %s)\n", o.Name, o.ID)
	}
	return nil
}
