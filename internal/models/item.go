package models

import (
	"time"

	"github.com/thenoetrevino/hito/internal/types"
)

// Item represents a single feedback entry placed on a board's roadmap
type Item struct {
	ID          types.ItemID
	BoardID     types.BoardID
	Title       string
	Description string
	Votes       int
	Lane        *types.LaneID // nil means the item sits in the backlog
	Order       *float64      // only meaningful relative to items in the same lane
	CompletedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// GetID returns the item ID as a string (used by the quiet output mode)
func (i *Item) GetID() string {
	return string(i.ID)
}

// InBacklog reports whether the item has no lane assigned
func (i Item) InBacklog() bool {
	return i.Lane == nil
}

// OrderKey returns the item's order, treating a missing key as zero
func (i Item) OrderKey() float64 {
	if i.Order == nil {
		return 0
	}
	return *i.Order
}

// ItemPatch is a single field-level update against an item record.
// Lane and Order are always written (nil clears them). CompletedAt is only
// written when TouchCompletedAt is set. UpdatedAt is the last-write-wins clock.
type ItemPatch struct {
	Lane             *types.LaneID
	Order            *float64
	TouchCompletedAt bool
	CompletedAt      *time.Time
	UpdatedAt        time.Time
}
