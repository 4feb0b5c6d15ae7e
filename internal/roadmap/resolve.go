package roadmap

import (
	"sort"

	"github.com/thenoetrevino/hito/internal/models"
	"github.com/thenoetrevino/hito/internal/types"
)

// LaneSource says where a resolved lane configuration came from
type LaneSource int

const (
	SourceBuiltIn LaneSource = iota
	SourceCustom
)

func (s LaneSource) String() string {
	if s == SourceCustom {
		return "custom"
	}
	return "built-in"
}

// LaneSet is the ordered, exhaustive list of active lanes for a board.
// It never mixes built-in and custom lanes.
type LaneSet struct {
	Source LaneSource
	Lanes  []models.Lane
	byID   map[types.LaneID]int
}

func newLaneSet(source LaneSource, lanes []models.Lane) LaneSet {
	byID := make(map[types.LaneID]int, len(lanes))
	for i, l := range lanes {
		byID[l.ID] = i
	}
	return LaneSet{Source: source, Lanes: lanes, byID: byID}
}

// ResolveLanes turns an organization's tag records into the active lanes.
// If any tag is flagged as a roadmap lane, only those tags are used, sorted
// by display order (ties by id). Otherwise the built-in lanes are used.
func ResolveLanes(tags []models.Tag) LaneSet {
	var custom []models.Lane
	for _, t := range tags {
		if t.IsRoadmapLane {
			custom = append(custom, t.AsLane())
		}
	}

	if len(custom) == 0 {
		return newLaneSet(SourceBuiltIn, BuiltInLanes())
	}

	sort.SliceStable(custom, func(i, j int) bool {
		if custom[i].DisplayOrder != custom[j].DisplayOrder {
			return custom[i].DisplayOrder < custom[j].DisplayOrder
		}
		return custom[i].ID < custom[j].ID
	})
	return newLaneSet(SourceCustom, custom)
}

// Lookup returns the lane with the given id
func (s LaneSet) Lookup(id types.LaneID) (models.Lane, bool) {
	i, ok := s.byID[id]
	if !ok {
		return models.Lane{}, false
	}
	return s.Lanes[i], true
}

// Contains reports whether id is one of the resolved lanes
func (s LaneSet) Contains(id types.LaneID) bool {
	_, ok := s.byID[id]
	return ok
}

// IsDone reports whether id resolves to a done-flagged lane. Unknown ids are
// never done.
func (s LaneSet) IsDone(id types.LaneID) bool {
	l, ok := s.Lookup(id)
	return ok && l.IsDoneStatus
}

// IDs returns the lane ids in display order
func (s LaneSet) IDs() []types.LaneID {
	ids := make([]types.LaneID, len(s.Lanes))
	for i, l := range s.Lanes {
		ids[i] = l.ID
	}
	return ids
}

// Len returns the number of resolved lanes
func (s LaneSet) Len() int {
	return len(s.Lanes)
}
