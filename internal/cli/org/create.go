package org

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/hito/internal/cli"
	"github.com/thenoetrevino/hito/internal/converters"
)

// CreateCmd returns the org create subcommand
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new organization",
		Long: `Create a new organization. New organizations use the built-in lanes
(Under Review, Planned, In Progress, Complete) until a custom lane is added.

Examples:
  hito org create --name="Acme"

  # Quiet mode for shell capture
  ORG_ID=$(hito org create --name="Acme" --quiet)
`,
		RunE: runCreate,
	}

	cmd.Flags().String("name", "", "Organization name (required)")
	if err := cmd.MarkFlagRequired("name"); err != nil {
		slog.Error("Error marking flag as required", "error", err)
	}

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

	org, err := cliInstance.App.BoardService.CreateOrganization(ctx, name)
	if err != nil {
		return formatter.Fail("ORG_CREATE_ERROR", err)
	}

	if formatter.Quiet {
		fmt.Println(org.ID)
		return nil
	}
	if formatter.JSON {
		return formatter.JSONSuccess("organization", converters.OrgToJSON(org))
	}

	fmt.Printf("✓ Organization '%s' created (ID: %s)\n", org.Name, org.ID)
	fmt.Printf("  Select it with: eval $(hito use org %s)\n", org.ID)
	return nil
}
