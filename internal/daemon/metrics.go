package daemon

import (
	"sync/atomic"
	"time"
)

// Metrics counts daemon traffic. Counters are atomics so the fan-out path
// never takes a lock for them.
type Metrics struct {
	Received   atomic.Int64 // events published by clients
	Broadcasts atomic.Int64 // events fanned out
	OrgWide    atomic.Int64 // broadcasts without a board, i.e. lane edits
	Delivered  atomic.Int64 // messages queued to a subscriber
	Dropped    atomic.Int64 // messages lost to full queues or a full hub
	Filtered   atomic.Int64 // subscribers skipped because the event was out of scope
	Clients    atomic.Int32
	StartTime  time.Time
}

// NewMetrics creates zeroed counters starting now
func NewMetrics() *Metrics {
	return &Metrics{StartTime: time.Now()}
}

// MetricsSnapshot is a point-in-time copy of the counters
type MetricsSnapshot struct {
	Received   int64     `json:"received"`
	Broadcasts int64     `json:"broadcasts"`
	OrgWide    int64     `json:"org_wide"`
	Delivered  int64     `json:"delivered"`
	Dropped    int64     `json:"dropped"`
	Filtered   int64     `json:"filtered"`
	Clients    int32     `json:"clients"`
	StartTime  time.Time `json:"start_time"`
	Uptime     string    `json:"uptime"`
}

// Snapshot copies the current counters
func (m *Metrics) Snapshot() MetricsSnapshot {
	return MetricsSnapshot{
		Received:   m.Received.Load(),
		Broadcasts: m.Broadcasts.Load(),
		OrgWide:    m.OrgWide.Load(),
		Delivered:  m.Delivered.Load(),
		Dropped:    m.Dropped.Load(),
		Filtered:   m.Filtered.Load(),
		Clients:    m.Clients.Load(),
		StartTime:  m.StartTime,
		Uptime:     time.Since(m.StartTime).Round(time.Second).String(),
	}
}
