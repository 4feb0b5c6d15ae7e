// Package daemon implements the hito event daemon: a Unix socket hub that
// fans board change notifications out to every subscribed client.
package daemon

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/thenoetrevino/hito/internal/events"
)

const (
	pingInterval   = 30 * time.Second
	healthInterval = 60 * time.Second
	staleAfter     = 90 * time.Second

	defaultBroadcastBuffer = 100
	defaultClientBuffer    = 10
)

var (
	ErrShuttingDown = errors.New("daemon is shutting down")
	ErrHubFull      = errors.New("broadcast queue full")
)

// Server is the hito event daemon
type Server struct {
	socketPath   string
	listener     net.Listener
	hub          *hub
	broadcast    chan events.Event
	metrics      *Metrics
	sequence     atomic.Int64
	nextClientID atomic.Int64
	clientBuffer int

	ctx          context.Context
	cancel       context.CancelFunc
	shutdownOnce sync.Once
}

// envInt reads a positive integer from an environment variable
func envInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		if parsed, err := strconv.Atoi(val); err == nil && parsed > 0 {
			return parsed
		}
	}
	return fallback
}

// NewServer creates the socket listener. Call Start to serve.
func NewServer(socketPath string) (*Server, error) {
	if err := os.MkdirAll(filepath.Dir(socketPath), 0o700); err != nil {
		return nil, fmt.Errorf("failed to create socket directory: %w", err)
	}

	// A socket file left by a crashed daemon blocks Listen
	if _, err := os.Stat(socketPath); err == nil {
		if err := os.Remove(socketPath); err != nil {
			return nil, fmt.Errorf("failed to remove stale socket: %w", err)
		}
	}

	listener, err := (&net.ListenConfig{}).Listen(context.Background(), "unix", socketPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create socket listener: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	return &Server{
		socketPath:   socketPath,
		listener:     listener,
		hub:          newHub(),
		broadcast:    make(chan events.Event, envInt("HITO_DAEMON_BROADCAST_BUFFER", defaultBroadcastBuffer)),
		metrics:      NewMetrics(),
		clientBuffer: envInt("HITO_DAEMON_CLIENT_BUFFER", defaultClientBuffer),
		ctx:          ctx,
		cancel:       cancel,
	}, nil
}

// Metrics exposes the live counters
func (s *Server) Metrics() *Metrics {
	return s.metrics
}

// Start runs the accept, fan-out and health loops until ctx is cancelled
// or Shutdown is called
func (s *Server) Start(ctx context.Context) error {
	slog.Info("daemon listening", "socket", s.socketPath)

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	stop := context.AfterFunc(s.ctx, cancel)
	defer stop()

	acceptErr := make(chan error, 1)
	go func() { acceptErr <- s.acceptLoop(runCtx) }()
	go s.fanOutLoop(runCtx)
	go s.healthLoop(runCtx)

	select {
	case <-runCtx.Done():
		slog.Info("daemon context cancelled, shutting down")
	case err := <-acceptErr:
		if err != nil {
			slog.Error("accept loop failed", "error", err)
		}
	}
	return s.Shutdown()
}

func (s *Server) acceptLoop(ctx context.Context) error {
	ul, _ := s.listener.(*net.UnixListener)

	for ctx.Err() == nil {
		// Wake up periodically to notice cancellation
		if ul != nil {
			_ = ul.SetDeadline(time.Now().Add(time.Second))
		}

		conn, err := s.listener.Accept()
		if err != nil {
			var netErr net.Error
			if errors.As(err, &netErr) && netErr.Timeout() {
				continue
			}
			if ctx.Err() != nil || errors.Is(err, net.ErrClosed) {
				return nil
			}
			return fmt.Errorf("accept error: %w", err)
		}

		sub := newSubscriber(s.nextClientID.Add(1), conn, s.clientBuffer)
		s.hub.add(sub)
		s.metrics.Clients.Store(int32(s.hub.len()))
		slog.Debug("client connected", "client", sub.id, "clients", s.hub.len())

		go s.readLoop(sub)
		go sub.writeLoop()
	}
	return nil
}

// fanOutLoop stamps sequence ids and delivers events to the subscribers in
// scope. Slow subscribers lose events rather than stall the hub.
func (s *Server) fanOutLoop(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case event := <-s.broadcast:
			s.fanOut(event)
		}
	}
}

func (s *Server) fanOut(event events.Event) {
	event.SequenceID = s.sequence.Add(1)
	s.metrics.Broadcasts.Add(1)
	if event.BoardID == "" {
		s.metrics.OrgWide.Add(1)
	}

	targets := s.hub.recipients(event)
	s.metrics.Filtered.Add(int64(max(s.hub.len()-len(targets), 0)))

	msg := events.Message{Version: events.ProtocolVersion, Type: "event", Event: &event}
	for _, sub := range targets {
		if sub.enqueue(msg) {
			s.metrics.Delivered.Add(1)
			continue
		}
		s.metrics.Dropped.Add(1)
		slog.Debug("client queue full, event dropped", "client", sub.id, "board_id", event.BoardID)
	}
}

// readLoop handles messages from one subscriber until it disconnects
func (s *Server) readLoop(sub *subscriber) {
	defer s.disconnect(sub)

	dec := json.NewDecoder(sub.conn)
	for {
		var msg events.Message
		if err := dec.Decode(&msg); err != nil {
			return
		}
		if msg.Version != 0 && msg.Version != events.ProtocolVersion {
			slog.Warn("protocol version mismatch", "client", sub.id, "got", msg.Version, "want", events.ProtocolVersion)
		}

		switch msg.Type {
		case "event":
			if msg.Event == nil {
				continue
			}
			s.metrics.Received.Add(1)
			if err := s.Broadcast(*msg.Event); err != nil {
				s.metrics.Dropped.Add(1)
				slog.Warn("dropping event", "client", sub.id, "error", err)
			}
		case "subscribe":
			if msg.Subscribe != nil {
				s.hub.subscribe(sub, *msg.Subscribe)
				slog.Debug("client subscribed", "client", sub.id, "org_id", msg.Subscribe.OrgID, "board_id", msg.Subscribe.BoardID)
			}
		case "pong":
			sub.touch(time.Now())
		}
	}
}

// healthLoop pings subscribers and drops the ones that stopped answering
func (s *Server) healthLoop(ctx context.Context) {
	pingTicker := time.NewTicker(pingInterval)
	defer pingTicker.Stop()
	healthTicker := time.NewTicker(healthInterval)
	defer healthTicker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-pingTicker.C:
			ping := events.Message{
				Version: events.ProtocolVersion,
				Type:    "ping",
				Event:   &events.Event{Type: events.EventPing, Timestamp: time.Now()},
			}
			for _, sub := range s.hub.list() {
				sub.enqueue(ping)
			}
		case <-healthTicker.C:
			s.evictStale(time.Now())
			slog.Debug("daemon metrics", "snapshot", s.metrics.Snapshot())
		}
	}
}

// evictStale disconnects subscribers silent for longer than staleAfter
func (s *Server) evictStale(now time.Time) int {
	evicted := 0
	for _, sub := range s.hub.list() {
		if sub.idle(now) > staleAfter {
			slog.Info("removing stale client", "client", sub.id)
			s.disconnect(sub)
			evicted++
		}
	}
	return evicted
}

func (s *Server) disconnect(sub *subscriber) {
	if s.hub.remove(sub) {
		slog.Debug("client disconnected", "client", sub.id, "clients", s.hub.len())
	}
	sub.close()
	s.metrics.Clients.Store(int32(s.hub.len()))
}

// Broadcast queues an event for fan-out without blocking
func (s *Server) Broadcast(event events.Event) error {
	if s.ctx.Err() != nil {
		return ErrShuttingDown
	}
	select {
	case s.broadcast <- event:
		return nil
	default:
		return ErrHubFull
	}
}

// Shutdown closes the listener and every client connection. It is idempotent.
func (s *Server) Shutdown() error {
	s.shutdownOnce.Do(func() {
		s.cancel()

		if err := s.listener.Close(); err != nil && !errors.Is(err, net.ErrClosed) {
			slog.Warn("error closing listener", "error", err)
		}
		for _, sub := range s.hub.drain() {
			sub.close()
		}
		s.metrics.Clients.Store(0)

		if err := os.Remove(s.socketPath); err != nil && !os.IsNotExist(err) {
			slog.Warn("failed to remove socket file", "error", err)
		}
		slog.Info("daemon stopped", "metrics", s.metrics.Snapshot())
	})
	return nil
}
