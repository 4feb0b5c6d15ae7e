// Package launcher starts the live board program
package launcher

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/hito/internal/app"
	"github.com/thenoetrevino/hito/internal/config"
	"github.com/thenoetrevino/hito/internal/events"
	"github.com/thenoetrevino/hito/internal/tui"
	"github.com/thenoetrevino/hito/internal/types"
)

// shutdownGrace bounds how long in-flight moves get after a signal
const shutdownGrace = 2 * time.Second

// Launch opens the live board for boardID and blocks until the user quits
// or the process is signalled
func Launch(ctx context.Context, a *app.App, cfg *config.Config, boardID types.BoardID) error {
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Resolve the board up front so a bad id fails before the screen opens
	view, err := a.BoardService.GetBoard(ctx, boardID)
	if err != nil {
		return err
	}

	eventChan := subscribe(ctx, a.Events(), view.Board.OrgID, boardID)

	model := tui.New(ctx, a, cfg, boardID, eventChan)
	p := tea.NewProgram(model, tea.WithContext(ctx))

	errChan := make(chan error, 1)
	go func() {
		_, err := p.Run()
		errChan <- err
	}()

	select {
	case err := <-errChan:
		if err != nil {
			return fmt.Errorf("error running program: %w", err)
		}
	case <-ctx.Done():
		slog.Info("shutdown signal received, cleaning up")
		select {
		case <-errChan:
		case <-time.After(shutdownGrace):
		}
	}

	return nil
}

// subscribe scopes the daemon connection to the board and starts listening.
// It returns nil when there is no daemon.
func subscribe(ctx context.Context, client events.EventPublisher, orgID types.OrgID, boardID types.BoardID) <-chan events.Event {
	if client == nil {
		slog.Info("no event daemon, live updates disabled")
		return nil
	}
	if err := client.Subscribe(orgID, boardID); err != nil {
		slog.Warn("failed to subscribe to board events", "board_id", boardID, "error", err)
		return nil
	}
	ch, err := client.Listen(ctx)
	if err != nil {
		slog.Warn("failed to listen for board events", "error", err)
		return nil
	}
	return ch
}
