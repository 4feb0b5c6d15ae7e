package events

import (
	"context"

	"github.com/thenoetrevino/hito/internal/types"
)

// EventPublisher defines the interface for sending and receiving events.
// Services depend on it rather than on *Client so tests can record events.
type EventPublisher interface {
	// Connect establishes a connection to the daemon socket
	Connect(ctx context.Context) error

	// SendEvent queues an event to be sent to the daemon
	SendEvent(event Event) error

	// Listen starts listening for events from the daemon
	Listen(ctx context.Context) (<-chan Event, error)

	// Subscribe narrows delivery to one organization or board
	Subscribe(orgID types.OrgID, boardID types.BoardID) error

	// Close closes the connection to the daemon and stops all goroutines
	Close() error
}

// Compile-time verification that *Client implements EventPublisher
var _ EventPublisher = (*Client)(nil)
