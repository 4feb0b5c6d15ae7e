package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/hito/internal/types"
)

// Context environment variables set by `hito use`
const (
	OrgEnv   = "HITO_ORG"
	BoardEnv = "HITO_BOARD"
)

// ErrNoContext is returned when neither a flag, the environment nor the
// config names the organization or board a command should act on
var ErrNoContext = errors.New("no context")

// GetOrgID resolves the organization from the --org flag, then HITO_ORG,
// then the configured default
func GetOrgID(cmd *cobra.Command, c *CLI) (types.OrgID, error) {
	var fallback string
	if c != nil && c.Config != nil {
		fallback = c.Config.DefaultOrg
	}
	id, err := resolve(cmd, "org", OrgEnv, fallback)
	if err != nil {
		return "", fmt.Errorf("%w: organization required (use --org or set %s)", err, OrgEnv)
	}
	return types.OrgID(id), nil
}

// GetBoardID resolves the board from the --board flag, then HITO_BOARD,
// then the configured default
func GetBoardID(cmd *cobra.Command, c *CLI) (types.BoardID, error) {
	var fallback string
	if c != nil && c.Config != nil {
		fallback = c.Config.DefaultBoard
	}
	id, err := resolve(cmd, "board", BoardEnv, fallback)
	if err != nil {
		return "", fmt.Errorf("%w: board required (use --board or set %s)", err, BoardEnv)
	}
	return types.BoardID(id), nil
}

func resolve(cmd *cobra.Command, flag, env, fallback string) (string, error) {
	if cmd.Flags().Lookup(flag) != nil && cmd.Flags().Changed(flag) {
		v, _ := cmd.Flags().GetString(flag)
		if v != "" {
			return v, nil
		}
	}
	if v := os.Getenv(env); v != "" {
		return v, nil
	}
	if fallback != "" {
		return fallback, nil
	}
	return "", ErrNoContext
}

// Formatter builds the OutputFormatter from the --json and --quiet flags
func Formatter(cmd *cobra.Command) *OutputFormatter {
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")
	return &OutputFormatter{JSON: jsonOutput, Quiet: quietMode}
}

// AddOutputFlags registers the agent-friendly --json and --quiet flags
func AddOutputFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (IDs only)")
}
