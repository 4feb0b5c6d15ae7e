package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/thenoetrevino/hito/internal/config"
	"github.com/thenoetrevino/hito/internal/daemon"
	"github.com/thenoetrevino/hito/internal/logging"
)

func main() {
	// Set up signal handling for graceful shutdown
	ctx, cancel := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
		syscall.SIGQUIT,
	)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	if closer, err := logging.Init(cfg.LogDir(), cfg.LogLevel); err != nil {
		slog.Warn("failed to initialize logging, using stderr", "error", err)
	} else {
		defer closer.Close()
	}

	socketPath := cfg.SocketPath()

	// Ensure the data directory exists with secure permissions
	if err := os.MkdirAll(filepath.Dir(socketPath), 0700); err != nil {
		slog.Error("failed to create data directory", "error", err)
		os.Exit(1)
	}

	server, err := daemon.NewServer(socketPath)
	if err != nil {
		slog.Error("failed to create daemon", "error", err)
		os.Exit(1)
	}

	slog.Info("hito daemon starting", "socket_path", socketPath, "pid", os.Getpid())

	// Start the daemon (blocks until shutdown)
	if err := server.Start(ctx); err != nil {
		slog.Error("daemon error", "error", err)
		os.Exit(1)
	}

	snap := server.Metrics().Snapshot()
	slog.Info("hito daemon shutting down gracefully",
		"received", snap.Received,
		"broadcasts", snap.Broadcasts,
		"delivered", snap.Delivered,
		"dropped", snap.Dropped)
}
