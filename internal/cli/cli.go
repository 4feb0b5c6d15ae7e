// Package cli holds the shared plumbing of hito's command line: the CLI
// context, output formatting, exit codes and flag resolution helpers.
package cli

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/thenoetrevino/hito/internal/app"
	"github.com/thenoetrevino/hito/internal/config"
	"github.com/thenoetrevino/hito/internal/database"
	"github.com/thenoetrevino/hito/internal/events"
)

type appKey struct{}

// CLI represents the CLI application context
type CLI struct {
	App    *app.App
	Config *config.Config

	db *sql.DB
	// owned is false when the App was injected by the caller
	owned bool
}

// NewCLI opens the database from cfg and connects to the event daemon when
// one is running. Without a daemon, writes still succeed but nothing is
// propagated.
func NewCLI(ctx context.Context, cfg *config.Config) (*CLI, error) {
	db, err := database.InitDB(ctx, cfg.DataDir)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	opts := []app.Option{app.WithLogger(slog.Default())}
	client, err := events.NewClient(cfg.SocketPath(), cfg.EventDebounce())
	if err == nil {
		if err := client.Connect(ctx); err == nil {
			opts = append(opts, app.WithEventPublisher(client))
		} else {
			var daemonErr *events.DaemonError
			if errors.As(err, &daemonErr) {
				slog.Debug("event daemon unavailable", "reason", daemonErr.Code, "hint", daemonErr.Hint())
			} else {
				slog.Debug("event daemon unavailable", "error", err)
			}
			_ = client.Close()
		}
	}

	return &CLI{
		App:    app.New(database.NewRepository(db), opts...),
		Config: cfg,
		db:     db,
		owned:  true,
	}, nil
}

// WithApp returns a context carrying a ready App. Commands run under it use
// that App instead of opening the configured database.
func WithApp(ctx context.Context, a *app.App) context.Context {
	return context.WithValue(ctx, appKey{}, a)
}

// GetCLIFromContext returns the CLI for a command invocation: the App
// injected with WithApp if present, otherwise a fresh CLI built from the
// loaded configuration.
func GetCLIFromContext(ctx context.Context) (*CLI, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if a, ok := ctx.Value(appKey{}).(*app.App); ok && a != nil {
		return &CLI{App: a, Config: config.Default()}, nil
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	return NewCLI(ctx, cfg)
}

// Close cleans up CLI resources. Injected Apps are left to their owner.
func (c *CLI) Close() error {
	if !c.owned {
		return nil
	}
	return errors.Join(c.App.Close(), c.db.Close())
}
