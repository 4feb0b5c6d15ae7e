package roadmap

import (
	"fmt"
	"time"

	"github.com/thenoetrevino/hito/internal/models"
	"github.com/thenoetrevino/hito/internal/types"
)

// CompletionEffect describes what a transition does to completedAt
type CompletionEffect int

const (
	CompletionUnchanged CompletionEffect = iota
	CompletionSet
	CompletionCleared
)

func (e CompletionEffect) String() string {
	switch e {
	case CompletionSet:
		return "set"
	case CompletionCleared:
		return "cleared"
	default:
		return "unchanged"
	}
}

// Transition is the computed outcome of moving one item. It is a value: the
// caller decides how to persist it.
type Transition struct {
	ItemID      types.ItemID
	From        *types.LaneID
	To          *types.LaneID // nil for the backlog
	Order       *float64
	Completion  CompletionEffect
	CompletedAt *time.Time // completedAt after the transition
	UpdatedAt   time.Time
}

// ToBacklog reports whether the transition empties the item's lane
func (t Transition) ToBacklog() bool {
	return t.To == nil
}

// Patch returns the single field-level update that persists the transition
func (t Transition) Patch() models.ItemPatch {
	return models.ItemPatch{
		Lane:             t.To,
		Order:            t.Order,
		TouchCompletedAt: t.Completion != CompletionUnchanged,
		CompletedAt:      t.CompletedAt,
		UpdatedAt:        t.UpdatedAt,
	}
}

// Apply returns a copy of item with the transition's fields written
func (t Transition) Apply(item models.Item) models.Item {
	item.Lane = t.To
	item.Order = t.Order
	if t.Completion != CompletionUnchanged {
		item.CompletedAt = t.CompletedAt
	}
	item.UpdatedAt = t.UpdatedAt
	return item
}

// PlanTransition computes the move of item into target, which is either
// Backlog or the id of a lane in lanes. grouping must be the grouping the
// caller observed before the move.
//
// Entering a lane appends: the order key is the largest key already in the
// target lane (the item itself excluded) plus OrderStep. Entering a done
// lane stamps completedAt unless it is already set; leaving a done lane for
// a lane that is not done clears it. The backlog clears lane, order and
// completedAt unconditionally.
func PlanTransition(item models.Item, target string, lanes LaneSet, grouping Grouping, now time.Time) (Transition, error) {
	t := Transition{
		ItemID:    item.ID,
		From:      item.Lane,
		UpdatedAt: now,
	}

	if target == Backlog {
		t.Completion = CompletionCleared
		return t, nil
	}

	laneID := types.LaneID(target)
	lane, ok := lanes.Lookup(laneID)
	if !ok {
		return Transition{}, fmt.Errorf("%w: %q", ErrUnknownLane, target)
	}

	var highest float64
	if bucket, ok := grouping.Bucket(laneID); ok {
		highest = bucket.MaxOrder(item.ID)
	}
	order := highest + OrderStep
	t.To = &laneID
	t.Order = &order

	wasDone := item.Lane != nil && lanes.IsDone(*item.Lane)
	switch {
	case lane.IsDoneStatus && item.CompletedAt == nil:
		stamp := now
		t.Completion = CompletionSet
		t.CompletedAt = &stamp
	case !lane.IsDoneStatus && wasDone:
		t.Completion = CompletionCleared
	default:
		t.CompletedAt = item.CompletedAt
	}

	return t, nil
}
