package app

import (
	"log/slog"

	"github.com/thenoetrevino/hito/internal/database"
	"github.com/thenoetrevino/hito/internal/events"
	boardservice "github.com/thenoetrevino/hito/internal/services/board"
	itemservice "github.com/thenoetrevino/hito/internal/services/item"
	laneservice "github.com/thenoetrevino/hito/internal/services/lane"
)

// App holds all application services and provides dependency injection.
// Commands and the board watcher reach the database only through it.
type App struct {
	repo        database.DataStore
	eventClient events.EventPublisher
	logger      *slog.Logger

	ItemService  itemservice.Service
	LaneService  laneservice.Service
	BoardService boardservice.Service
}

// New creates a new App with all services initialized
func New(repo database.DataStore, opts ...Option) *App {
	cfg := &appConfig{logger: slog.Default()}
	for _, opt := range opts {
		opt(cfg)
	}

	var itemOpts []itemservice.Option
	var laneOpts []laneservice.Option
	var boardOpts []boardservice.Option
	if cfg.now != nil {
		itemOpts = append(itemOpts, itemservice.WithClock(cfg.now))
		laneOpts = append(laneOpts, laneservice.WithClock(cfg.now))
		boardOpts = append(boardOpts, boardservice.WithClock(cfg.now))
	}

	return &App{
		repo:         repo,
		eventClient:  cfg.eventClient,
		logger:       cfg.logger,
		ItemService:  itemservice.NewService(repo, cfg.eventClient, itemOpts...),
		LaneService:  laneservice.NewService(repo, cfg.eventClient, laneOpts...),
		BoardService: boardservice.NewService(repo, boardOpts...),
	}
}

// Events returns the event publisher, or nil when running without a daemon
func (a *App) Events() events.EventPublisher {
	return a.eventClient
}

// Logger returns the application logger
func (a *App) Logger() *slog.Logger {
	return a.logger
}

// Close releases the event client. The database is owned by the caller.
func (a *App) Close() error {
	if a.eventClient == nil {
		return nil
	}
	return a.eventClient.Close()
}
