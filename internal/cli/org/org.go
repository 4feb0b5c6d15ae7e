// Package org holds the organization commands
// e.g., hito org ...
package org

import (
	"github.com/spf13/cobra"
)

// OrgCmd returns the org parent command
func OrgCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "org",
		Short: "Manage organizations",
	}

	cmd.AddCommand(CreateCmd())
	cmd.AddCommand(ListCmd())

	return cmd
}
