package models

import (
	"time"

	"github.com/thenoetrevino/hito/internal/types"
)

// Lane is a resolved roadmap stage, either built in or backed by a Tag
type Lane struct {
	ID           types.LaneID
	Name         string
	Color        string  // Hex color code (e.g., "#7D56F4")
	DisplayOrder float64 // left-to-right column order among lanes
	IsDoneStatus bool
	BuiltIn      bool
}

// Tag is an organization-scoped, tag-like record. Tags flagged as roadmap
// lanes make up the organization's custom lane configuration.
type Tag struct {
	ID            types.TagID
	OrgID         types.OrgID
	Name          string
	Color         string
	IsRoadmapLane bool
	DisplayOrder  float64
	IsDoneStatus  bool
	CreatedAt     time.Time
}

// GetID returns the tag ID as a string (used by the quiet output mode)
func (t *Tag) GetID() string {
	return string(t.ID)
}

// AsLane converts a roadmap-lane tag into its Lane form
func (t Tag) AsLane() Lane {
	return Lane{
		ID:           t.ID.LaneID(),
		Name:         t.Name,
		Color:        t.Color,
		DisplayOrder: t.DisplayOrder,
		IsDoneStatus: t.IsDoneStatus,
	}
}
