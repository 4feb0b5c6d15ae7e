// Package use holds all cli commands related to setting contextual information
// e.g., hito use ...
package use

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/hito/internal/cli"
)

// UseCmd returns the use parent command
func UseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "use",
		Short: "Manage contextual settings (organization, board)",
		Long: `Set and manage contextual information for the current shell session.

The 'use' command sets the organization or board that later commands act on,
so --org and --board can be left out.

Examples:
  eval $(hito use org <org-id>)        # Use an organization
  eval $(hito use board <board-id>)    # Use a board (and its organization)
  eval $(hito use board --clear)       # Clear board context
  hito use board <board-id> --save     # Remember the board in the config file`,
	}

	cmd.AddCommand(OrgCmd())
	cmd.AddCommand(BoardCmd())

	return cmd
}

func addContextFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("clear", false, "Clear the current context")
	cmd.Flags().Bool("show", false, "Show the current context")
	cmd.Flags().Bool("save", false, "Also store the choice as the default in the config file")
}

// useContext is one HITO_* variable managed by `hito use`
type useContext struct {
	env  string
	noun string
	// lookup validates id and returns a display name plus any extra exports
	lookup func(cmd *cobra.Command, c *cli.CLI, id string) (name string, extra map[string]string, err error)
	// save stores id as the configured default
	save func(c *cli.CLI, id string)
}

func (uc useContext) run(cmd *cobra.Command, args []string) error {
	clearFlag, _ := cmd.Flags().GetBool("clear")
	showFlag, _ := cmd.Flags().GetBool("show")
	saveFlag, _ := cmd.Flags().GetBool("save")

	if showFlag {
		if v := os.Getenv(uc.env); v != "" {
			fmt.Printf("Current %s: %s\n", uc.noun, v)
		} else {
			fmt.Printf("No %s context set\n", uc.noun)
		}
		return nil
	}

	if clearFlag {
		fmt.Printf("unset %s\n", uc.env)
		fmt.Fprintf(os.Stderr, "Cleared %s context\n", uc.noun)
		return nil
	}

	if len(args) == 0 {
		return &cli.CommandError{
			Code: cli.ExitUsage,
			Err:  fmt.Errorf("%s ID required\nUsage: eval $(hito use %s <id>)", uc.noun, cmd.Name()),
		}
	}
	id := args[0]

	cliInstance, err := cli.GetCLIFromContext(cmd.Context())
	if err != nil {
		return fmt.Errorf("initialization error: %w", err)
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			slog.Error("Error closing CLI", "error", err)
		}
	}()

	name, extra, err := uc.lookup(cmd, cliInstance, id)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s %s not found\n", uc.noun, id)
		return &cli.CommandError{Code: cli.ExitCode(err), Err: err}
	}

	for env, v := range extra {
		fmt.Printf("export %s=%s\n", env, v)
	}
	fmt.Printf("export %s=%s\n", uc.env, id)
	fmt.Fprintf(os.Stderr, "Now using %s %s: %s\n", uc.noun, id, name)

	if saveFlag {
		uc.save(cliInstance, id)
		if err := cliInstance.Config.Save(); err != nil {
			return fmt.Errorf("failed to save config: %w", err)
		}
	}
	return nil
}
