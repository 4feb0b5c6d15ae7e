package events

import (
	"log/slog"
	"time"
)

// Retry is a publish retry policy with exponential backoff
type Retry struct {
	Attempts  int
	BaseDelay time.Duration
}

// DefaultRetry makes three attempts, waiting 50ms then 100ms
var DefaultRetry = Retry{Attempts: 3, BaseDelay: 50 * time.Millisecond}

// Publish sends event through client, retrying per the policy, and returns
// the last error when every attempt fails. A nil client means no daemon and
// is not an error.
//
// A failure only delays live updates; callers must not fail the mutation
// that produced the event.
func (r Retry) Publish(client EventPublisher, event Event) error {
	if client == nil {
		return nil
	}

	attempts := max(r.Attempts, 1)
	var err error
	for attempt := range attempts {
		if err = client.SendEvent(event); err == nil {
			if attempt > 0 {
				slog.Debug("event published after retry", "attempt", attempt+1, "board_id", event.BoardID)
			}
			return nil
		}
		if attempt == attempts-1 {
			break
		}
		delay := r.BaseDelay << attempt
		slog.Debug("event publish failed, retrying", "attempt", attempt+1, "retry_delay", delay, "error", err)
		time.Sleep(delay)
	}

	slog.Warn("event publish failed",
		"attempts", attempts,
		"event_type", event.Type,
		"org_id", event.OrgID,
		"board_id", event.BoardID,
		"error", err)
	return err
}
