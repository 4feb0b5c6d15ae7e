// Package roadmap implements lane resolution, grouping and transitions for
// the feedback roadmap. Everything here is a pure function over snapshots;
// persistence and propagation belong to the callers.
package roadmap

import (
	"github.com/thenoetrevino/hito/internal/models"
	"github.com/thenoetrevino/hito/internal/types"
)

// Backlog is the target sentinel for moving an item out of every lane
const Backlog = "backlog"

// OrderStep is the gap between consecutive order keys and display orders
const OrderStep = 1000

// Built-in lane identities
const (
	LaneUnderReview types.LaneID = "under-review"
	LanePlanned     types.LaneID = "planned"
	LaneInProgress  types.LaneID = "in-progress"
	LaneComplete    types.LaneID = "complete"
)

type builtInLane struct {
	id    types.LaneID
	name  string
	color string
}

// builtInLanes is the fixed stage set used by organizations without custom
// lanes. Declaration order is display order.
var builtInLanes = [...]builtInLane{
	{LaneUnderReview, "Under Review", "#F2A93B"},
	{LanePlanned, "Planned", "#7D56F4"},
	{LaneInProgress, "In Progress", "#3B82F6"},
	{LaneComplete, "Complete", "#22C55E"},
}

// BuiltInLanes returns a fresh copy of the built-in lanes. Built-in lanes
// never count as done.
func BuiltInLanes() []models.Lane {
	lanes := make([]models.Lane, len(builtInLanes))
	for i, b := range builtInLanes {
		lanes[i] = models.Lane{
			ID:           b.id,
			Name:         b.name,
			Color:        b.color,
			DisplayOrder: float64((i + 1) * OrderStep),
			BuiltIn:      true,
		}
	}
	return lanes
}

// IsBuiltInLane reports whether id names one of the built-in lanes
func IsBuiltInLane(id types.LaneID) bool {
	for _, b := range builtInLanes {
		if b.id == id {
			return true
		}
	}
	return false
}
