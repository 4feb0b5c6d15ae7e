package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"strings"
	"sync"
	"time"

	"github.com/thenoetrevino/hito/internal/types"
)

// DefaultDebounce is the batching window used when none is configured
const DefaultDebounce = 100 * time.Millisecond

// Client represents a connection to the hito daemon for receiving live updates.
// It handles event sending, receiving, batching, reconnection, and subscriptions.
type Client struct {
	socketPath string
	conn       net.Conn
	encoder    *json.Encoder
	decoder    *json.Decoder
	mu         sync.Mutex

	// Batching configuration
	eventQueue   chan Event
	debounce     time.Duration
	closed       bool
	batcherOnce  sync.Once
	batcherStart bool

	// Reconnection configuration
	maxRetries int
	baseDelay  time.Duration

	subscription SubscribeMessage

	lastSequence int64

	ctx    context.Context
	cancel context.CancelFunc

	batcherDone chan struct{}
}

// NewClient creates a new event client but does not connect.
// socketPath is the full path to the daemon's Unix socket; a debounce of
// zero selects DefaultDebounce.
func NewClient(socketPath string, debounce time.Duration) (*Client, error) {
	if socketPath == "" {
		return nil, errors.New("socket path is required")
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	ctx, cancel := context.WithCancel(context.Background())

	return &Client{
		socketPath:  socketPath,
		eventQueue:  make(chan Event, 100),
		debounce:    debounce,
		maxRetries:  5,
		baseDelay:   1 * time.Second,
		ctx:         ctx,
		cancel:      cancel,
		batcherDone: make(chan struct{}),
	}, nil
}

// Connect establishes a connection to the daemon socket and replays the
// current subscription.
func (c *Client) Connect(ctx context.Context) error {
	if c == nil {
		return ErrNilClient
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return ErrClosed
	}

	dialer := net.Dialer{}
	conn, err := dialer.DialContext(ctx, "unix", c.socketPath)
	if err != nil {
		return classifyDialError(err, c.socketPath)
	}

	c.conn = conn
	c.encoder = json.NewEncoder(conn)
	c.decoder = json.NewDecoder(conn)

	sub := c.subscription
	msg := Message{Version: ProtocolVersion, Type: "subscribe", Subscribe: &sub}
	if err := c.encoder.Encode(msg); err != nil {
		if closeErr := conn.Close(); closeErr != nil {
			slog.Warn("error closing connection", "error", closeErr)
		}
		c.conn = nil
		return fmt.Errorf("failed to send subscription: %w", err)
	}

	c.batcherOnce.Do(func() {
		c.batcherStart = true
		go c.startBatcher()
	})

	return nil
}

// SendEvent queues an event to be sent to the daemon.
// Events are batched and sent once per debounce window.
// Returns ErrQueueFull rather than blocking.
func (c *Client) SendEvent(event Event) error {
	if c == nil {
		return ErrNilClient
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return ErrClosed
	}

	select {
	case c.eventQueue <- event:
		return nil
	default:
		return ErrQueueFull
	}
}

// batch accumulates the scope of queued events inside one debounce window
type batch struct {
	pending bool
	orgID   types.OrgID
	boardID types.BoardID
	itemID  types.ItemID
}

// add widens the batch scope to cover e
func (b *batch) add(e Event) {
	if !b.pending {
		b.pending = true
		b.orgID, b.boardID, b.itemID = e.OrgID, e.BoardID, e.ItemID
		return
	}
	if b.itemID != e.ItemID {
		b.itemID = ""
	}
	if b.boardID != e.BoardID {
		b.boardID = ""
	}
	if b.orgID != e.OrgID {
		b.orgID = ""
		b.boardID = ""
	}
}

func (b *batch) event() Event {
	return Event{
		Type:      EventBoardChanged,
		OrgID:     b.orgID,
		BoardID:   b.boardID,
		ItemID:    b.itemID,
		Timestamp: time.Now(),
	}
}

// startBatcher runs in a goroutine and collapses queued events into at most
// one event per debounce window. Events touching several boards widen to the
// organization, and several organizations widen to everything.
func (c *Client) startBatcher() {
	defer close(c.batcherDone)

	ticker := time.NewTicker(c.debounce)
	defer ticker.Stop()

	var b batch

	flush := func() {
		if !b.pending {
			return
		}
		if err := c.sendToSocket(b.event()); err != nil && !isConnectionError(err) {
			slog.Warn("failed to send batched event", "error", err)
		}
		b = batch{}
	}

	for {
		select {
		case <-c.ctx.Done():
			flush()
			return

		case event, ok := <-c.eventQueue:
			if !ok {
				flush()
				return
			}
			b.add(event)

		case <-ticker.C:
			flush()
		}
	}
}

// sendToSocket sends an event to the daemon socket.
func (c *Client) sendToSocket(event Event) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.conn == nil {
		return ErrNotConnected
	}

	// Detect dead connections quickly
	if err := c.conn.SetWriteDeadline(time.Now().Add(5 * time.Second)); err != nil {
		return fmt.Errorf("connection error: %w", err)
	}

	msg := Message{Version: ProtocolVersion, Type: "event", Event: &event}
	return c.encoder.Encode(msg)
}

// Listen starts listening for events from the daemon.
// The returned channel is closed when ctx is done or reconnection fails.
func (c *Client) Listen(ctx context.Context) (<-chan Event, error) {
	eventChan := make(chan Event, 10)
	if c == nil {
		close(eventChan)
		return eventChan, ErrNilClient
	}
	go c.listenLoop(ctx, eventChan)
	return eventChan, nil
}

// listenLoop reads events from the daemon and handles reconnection.
func (c *Client) listenLoop(ctx context.Context, eventChan chan Event) {
	defer close(eventChan)

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		err := c.readEvents(ctx, eventChan)
		if err == nil || ctx.Err() != nil {
			return
		}
		slog.Info("daemon connection lost, reconnecting", "error", err)

		if !c.reconnect(ctx) {
			slog.Warn("failed to reconnect to daemon, giving up", "attempts", c.maxRetries)
			return
		}
		slog.Info("reconnected to daemon")
	}
}

// readEvents reads messages from the socket and forwards events to eventChan.
func (c *Client) readEvents(ctx context.Context, eventChan chan Event) error {
	for {
		var msg Message

		c.mu.Lock()
		if c.conn == nil {
			c.mu.Unlock()
			return ErrNotConnected
		}
		// The daemon pings every 30s, so a minute of silence means a hung connection
		if err := c.conn.SetReadDeadline(time.Now().Add(60 * time.Second)); err != nil {
			c.mu.Unlock()
			return fmt.Errorf("failed to set read deadline: %w", err)
		}
		decoder := c.decoder
		c.mu.Unlock()

		if err := decoder.Decode(&msg); err != nil {
			return fmt.Errorf("failed to decode message: %w", err)
		}

		switch msg.Type {
		case "event":
			if msg.Event == nil {
				continue
			}
			// Duplicate and out-of-order suppression
			c.mu.Lock()
			fresh := msg.Event.SequenceID > c.lastSequence
			if fresh {
				c.lastSequence = msg.Event.SequenceID
			}
			c.mu.Unlock()
			if !fresh {
				continue
			}
			select {
			case eventChan <- *msg.Event:
			case <-ctx.Done():
				return nil
			}

		case "ping":
			if err := c.sendPong(); err != nil && !isConnectionError(err) {
				slog.Warn("failed to send pong", "error", err)
			}
		}
	}
}

func (c *Client) sendPong() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.conn == nil {
		return ErrNotConnected
	}
	return c.encoder.Encode(Message{Version: ProtocolVersion, Type: "pong"})
}

// isConnectionError checks if an error is a network connection error
func isConnectionError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, net.ErrClosed) || errors.Is(err, ErrNotConnected) {
		return true
	}
	errStr := err.Error()
	return strings.Contains(errStr, "broken pipe") ||
		strings.Contains(errStr, "connection reset")
}

// reconnect attempts to reconnect to the daemon with exponential backoff.
func (c *Client) reconnect(ctx context.Context) bool {
	delay := c.baseDelay

	for i := 0; i < c.maxRetries; i++ {
		select {
		case <-ctx.Done():
			return false
		case <-time.After(delay):
			c.mu.Lock()
			if c.conn != nil {
				if err := c.conn.Close(); err != nil && !errors.Is(err, net.ErrClosed) {
					slog.Debug("error closing connection during reconnect", "error", err)
				}
				c.conn = nil
			}
			// The daemon restarts its sequence counter
			c.lastSequence = 0
			c.mu.Unlock()

			if err := c.Connect(ctx); err == nil {
				return true
			}

			slog.Debug("reconnection attempt failed", "attempt", i+1, "max", c.maxRetries, "next_delay", delay*2)
			delay *= 2 // 1s, 2s, 4s, 8s, 16s
		}
	}

	return false
}

// Subscribe narrows delivery to one organization and optionally one board.
// Empty ids widen the scope; both empty subscribes to everything. The
// subscription is remembered and replayed after reconnects.
func (c *Client) Subscribe(orgID types.OrgID, boardID types.BoardID) error {
	if c == nil {
		return ErrNilClient
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.subscription = SubscribeMessage{OrgID: orgID, BoardID: boardID}

	if c.conn == nil {
		return ErrNotConnected
	}

	sub := c.subscription
	return c.encoder.Encode(Message{Version: ProtocolVersion, Type: "subscribe", Subscribe: &sub})
}

// Close flushes pending events, closes the connection, and stops all goroutines.
func (c *Client) Close() error {
	if c == nil {
		return nil
	}

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return nil
	}
	c.closed = true
	started := c.batcherStart
	// Lets the batcher flush before exiting
	close(c.eventQueue)
	c.mu.Unlock()

	if started {
		<-c.batcherDone
	}
	c.cancel()

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.conn != nil {
		err := c.conn.Close()
		c.conn = nil
		if err != nil && !errors.Is(err, net.ErrClosed) {
			return err
		}
	}
	return nil
}
