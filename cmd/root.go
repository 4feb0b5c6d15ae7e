package cmd

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/hito/internal/cli"
	"github.com/thenoetrevino/hito/internal/cli/board"
	"github.com/thenoetrevino/hito/internal/cli/item"
	"github.com/thenoetrevino/hito/internal/cli/lane"
	"github.com/thenoetrevino/hito/internal/cli/org"
	"github.com/thenoetrevino/hito/internal/cli/styles"
	"github.com/thenoetrevino/hito/internal/cli/use"
	"github.com/thenoetrevino/hito/internal/config"
	"github.com/thenoetrevino/hito/internal/logging"
)

// logCloser releases the log file opened by the pre-run hook
var logCloser io.Closer

var rootCmd = &cobra.Command{
	Use:   "hito",
	Short: "Hito - a public feedback roadmap in your terminal",
	Long: `Hito tracks feedback items on boards and moves them through roadmap lanes.
Organizations use the built-in lanes (Under Review, Planned, In Progress,
Complete) until they define their own.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logCloser != nil {
			_ = logCloser.Close()
		}
	},
}

func init() {
	rootCmd.AddCommand(org.OrgCmd())
	rootCmd.AddCommand(board.BoardCmd())
	rootCmd.AddCommand(item.ItemCmd())
	rootCmd.AddCommand(lane.LaneCmd())
	rootCmd.AddCommand(use.UseCmd())

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return &cli.CommandError{Code: cli.ExitUsage, Err: fmt.Errorf("%w\nRun '%s --help' for usage", err, cmd.CommandPath())}
	})
}

// setup loads the config, opens the log file and applies the color scheme
func setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	closer, err := logging.Init(cfg.LogDir(), cfg.LogLevel)
	if err != nil {
		// Logging is best effort; commands still work without the file
		slog.Warn("failed to initialize logging", "error", err)
	} else {
		logCloser = closer
	}

	styles.Init(cfg.ColorScheme)
	return nil
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}
