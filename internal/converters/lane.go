package converters

import (
	"github.com/thenoetrevino/hito/internal/models"
	"github.com/thenoetrevino/hito/internal/roadmap"
)

// LaneJSON is the wire form of a resolved lane
type LaneJSON struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Color        string  `json:"color"`
	DisplayOrder float64 `json:"display_order"`
	IsDone       bool    `json:"is_done"`
	BuiltIn      bool    `json:"built_in"`
}

// LaneSetJSON is a resolved lane configuration
type LaneSetJSON struct {
	Source string     `json:"source"`
	Lanes  []LaneJSON `json:"lanes"`
}

// LaneToJSON converts a lane to its wire form
func LaneToJSON(l models.Lane) LaneJSON {
	return LaneJSON{
		ID:           string(l.ID),
		Name:         l.Name,
		Color:        l.Color,
		DisplayOrder: l.DisplayOrder,
		IsDone:       l.IsDoneStatus,
		BuiltIn:      l.BuiltIn,
	}
}

// TagToJSON converts a roadmap-lane tag to the lane wire form
func TagToJSON(t models.Tag) LaneJSON {
	return LaneToJSON(t.AsLane())
}

// LaneSetToJSON converts a resolved lane configuration
func LaneSetToJSON(set roadmap.LaneSet) LaneSetJSON {
	lanes := make([]LaneJSON, len(set.Lanes))
	for i, l := range set.Lanes {
		lanes[i] = LaneToJSON(l)
	}
	return LaneSetJSON{Source: set.Source.String(), Lanes: lanes}
}
