package state

import (
	"time"

	"github.com/thenoetrevino/hito/internal/events"
)

// ConnectionStatus is the state of the daemon feed
type ConnectionStatus int

const (
	Offline      ConnectionStatus = iota // no daemon at startup; reloads are manual
	Connected                            // receiving board events
	Disconnected                         // the feed closed after starting
)

func (cs ConnectionStatus) String() string {
	switch cs {
	case Connected:
		return "live"
	case Disconnected:
		return "disconnected"
	default:
		return "offline"
	}
}

// ConnectionState tracks the daemon feed of the live board. Only the
// program's update loop touches it.
type ConnectionState struct {
	status    ConnectionStatus
	received  int
	lastEvent time.Time
}

// NewConnectionState creates a ConnectionState with the given status
func NewConnectionState(status ConnectionStatus) *ConnectionState {
	return &ConnectionState{status: status}
}

// Status returns the feed status
func (cs *ConnectionState) Status() ConnectionStatus {
	return cs.status
}

// Lost marks the feed as closed
func (cs *ConnectionState) Lost() {
	cs.status = Disconnected
}

// Observe records a delivered event
func (cs *ConnectionState) Observe(e events.Event) {
	cs.status = Connected
	cs.received++
	if e.Timestamp.After(cs.lastEvent) {
		cs.lastEvent = e.Timestamp
	}
}

// Received returns how many events arrived
func (cs *ConnectionState) Received() int {
	return cs.received
}

// Describe summarizes the feed for the status bar, e.g. "live, updated 14:02:11"
func (cs *ConnectionState) Describe() string {
	if cs.status == Connected && !cs.lastEvent.IsZero() {
		return cs.status.String() + ", updated " + cs.lastEvent.Local().Format(time.TimeOnly)
	}
	return cs.status.String()
}
