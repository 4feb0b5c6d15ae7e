package testutil

import (
	"context"
	"sync"

	"github.com/thenoetrevino/hito/internal/events"
	"github.com/thenoetrevino/hito/internal/types"
)

// RecordingPublisher is an events.EventPublisher that records what services
// publish instead of talking to a daemon.
type RecordingPublisher struct {
	mu     sync.Mutex
	events []events.Event
	feed   chan events.Event

	// SendErr, when set, is returned from every SendEvent call
	SendErr error
}

// NewRecordingPublisher creates an empty recorder
func NewRecordingPublisher() *RecordingPublisher {
	return &RecordingPublisher{feed: make(chan events.Event, 32)}
}

func (p *RecordingPublisher) Connect(ctx context.Context) error { return nil }

// SendEvent records the event and echoes it to listeners
func (p *RecordingPublisher) SendEvent(event events.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.SendErr != nil {
		return p.SendErr
	}
	p.events = append(p.events, event)
	select {
	case p.feed <- event:
	default:
	}
	return nil
}

// Listen returns the echo feed of sent events
func (p *RecordingPublisher) Listen(ctx context.Context) (<-chan events.Event, error) {
	return p.feed, nil
}

func (p *RecordingPublisher) Subscribe(types.OrgID, types.BoardID) error { return nil }

func (p *RecordingPublisher) Close() error { return nil }

// Events returns a copy of every recorded event
func (p *RecordingPublisher) Events() []events.Event {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]events.Event, len(p.events))
	copy(out, p.events)
	return out
}

// Count returns the number of recorded events
func (p *RecordingPublisher) Count() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.events)
}

var _ events.EventPublisher = (*RecordingPublisher)(nil)
