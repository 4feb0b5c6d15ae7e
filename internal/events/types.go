package events

import (
	"time"

	"github.com/thenoetrevino/hito/internal/types"
)

// ProtocolVersion is stamped on every wire message
const ProtocolVersion = 1

// EventType indicates what kind of change occurred
type EventType string

const (
	EventBoardChanged EventType = "board_changed"
	EventPing         EventType = "ping"
	EventPong         EventType = "pong"
)

// Event represents a change notification. An empty BoardID means every
// board of OrgID changed (lane edits); an empty OrgID as well means
// everything changed.
type Event struct {
	Type       EventType
	OrgID      types.OrgID   `json:",omitempty"`
	BoardID    types.BoardID `json:",omitempty"`
	ItemID     types.ItemID  `json:",omitempty"`
	Timestamp  time.Time
	SequenceID int64 // Monotonically increasing, assigned by the daemon
}

// SubscribeMessage is sent by clients to scope which events they receive.
// The zero value subscribes to everything.
type SubscribeMessage struct {
	OrgID   types.OrgID   `json:",omitempty"`
	BoardID types.BoardID `json:",omitempty"`
}

// Matches reports whether an event falls inside the subscription
func (s SubscribeMessage) Matches(e Event) bool {
	if s.OrgID == "" && s.BoardID == "" {
		return true
	}
	if e.OrgID == "" && e.BoardID == "" {
		return true
	}
	if e.BoardID != "" && s.BoardID != "" {
		return e.BoardID == s.BoardID
	}
	// Org-wide event, or a board-less subscription
	return s.OrgID != "" && e.OrgID == s.OrgID
}

// Message wraps events and control messages for wire protocol
type Message struct {
	Version   int
	Type      string            // "event", "subscribe", "ping", "pong"
	Event     *Event            `json:",omitempty"`
	Subscribe *SubscribeMessage `json:",omitempty"`
}
