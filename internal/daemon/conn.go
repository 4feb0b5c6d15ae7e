package daemon

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net"
	"sync"
	"sync/atomic"
	"time"

	"github.com/thenoetrevino/hito/internal/events"
)

// subscriber is one connected client
type subscriber struct {
	id   int64
	conn net.Conn
	send chan events.Message

	// sub is owned by the hub and only read or written under hub.mu
	sub events.SubscribeMessage

	lastPong  atomic.Int64 // unix nanos
	closeOnce sync.Once
}

func newSubscriber(id int64, conn net.Conn, buffer int) *subscriber {
	s := &subscriber{id: id, conn: conn, send: make(chan events.Message, buffer)}
	s.touch(time.Now())
	return s
}

// touch records a sign of life
func (s *subscriber) touch(now time.Time) {
	s.lastPong.Store(now.UnixNano())
}

// idle is how long the subscriber has been silent
func (s *subscriber) idle(now time.Time) time.Duration {
	return now.Sub(time.Unix(0, s.lastPong.Load()))
}

// enqueue queues msg without blocking. It reports false when the queue is
// full or the subscriber is already closed.
func (s *subscriber) enqueue(msg events.Message) (ok bool) {
	defer func() {
		// send is closed once the subscriber is gone
		if recover() != nil {
			ok = false
		}
	}()
	select {
	case s.send <- msg:
		return true
	default:
		return false
	}
}

// close releases the connection and stops the writer
func (s *subscriber) close() {
	if err := s.conn.Close(); err != nil && !errors.Is(err, net.ErrClosed) {
		slog.Debug("error closing client connection", "client", s.id, "error", err)
	}
	s.closeOnce.Do(func() { close(s.send) })
}

// writeLoop drains the send queue onto the connection
func (s *subscriber) writeLoop() {
	enc := json.NewEncoder(s.conn)
	for msg := range s.send {
		if err := enc.Encode(msg); err != nil {
			return
		}
	}
}
