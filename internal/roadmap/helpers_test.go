package roadmap

import (
	"time"

	"github.com/thenoetrevino/hito/internal/models"
	"github.com/thenoetrevino/hito/internal/types"
)

var testNow = time.UnixMilli(1700000500000).UTC()

func laneRef(id string) *types.LaneID {
	l := types.LaneID(id)
	return &l
}

func orderRef(o float64) *float64 {
	return &o
}

func timeRef(ms int64) *time.Time {
	t := time.UnixMilli(ms).UTC()
	return &t
}

func laneTag(id, name string, displayOrder float64, done bool) models.Tag {
	return models.Tag{
		ID:            types.TagID(id),
		OrgID:         "org-1",
		Name:          name,
		Color:         "#7D56F4",
		IsRoadmapLane: true,
		DisplayOrder:  displayOrder,
		IsDoneStatus:  done,
	}
}

// customLanes returns Planned, In Progress, Shipped (done) and Released (done)
func customLanes() LaneSet {
	return ResolveLanes([]models.Tag{
		laneTag("planned", "Planned", 1000, false),
		laneTag("in-progress", "In Progress", 2000, false),
		laneTag("shipped", "Shipped", 3000, true),
		laneTag("released", "Released", 4000, true),
	})
}

func item(id, title string, lane *types.LaneID, order *float64) models.Item {
	return models.Item{
		ID:      types.ItemID(id),
		BoardID: "board-1",
		Title:   title,
		Lane:    lane,
		Order:   order,
	}
}
