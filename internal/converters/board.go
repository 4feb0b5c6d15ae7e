package converters

import (
	"github.com/thenoetrevino/hito/internal/models"
	"github.com/thenoetrevino/hito/internal/roadmap"
)

// OrgJSON is the wire form of an organization
type OrgJSON struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	CreatedAt string `json:"created_at"`
}

// BoardJSON is the wire form of a board
type BoardJSON struct {
	ID        string `json:"id"`
	OrgID     string `json:"org_id"`
	Name      string `json:"name"`
	CreatedAt string `json:"created_at"`
}

// BucketJSON is one lane column with its ordered items
type BucketJSON struct {
	Lane  LaneJSON   `json:"lane"`
	Items []ItemJSON `json:"items"`
}

// GroupedBoardJSON is a board grouped into lanes
type GroupedBoardJSON struct {
	Board    BoardJSON    `json:"board"`
	Source   string       `json:"lane_source"`
	Lanes    []BucketJSON `json:"lanes"`
	Backlog  []ItemJSON   `json:"backlog"`
	Dangling []ItemJSON   `json:"dangling"`
}

// OrgToJSON converts an organization
func OrgToJSON(o *models.Organization) OrgJSON {
	return OrgJSON{ID: string(o.ID), Name: o.Name, CreatedAt: formatTime(o.CreatedAt)}
}

// BoardToJSON converts a board
func BoardToJSON(b *models.Board) BoardJSON {
	return BoardJSON{ID: string(b.ID), OrgID: string(b.OrgID), Name: b.Name, CreatedAt: formatTime(b.CreatedAt)}
}

// GroupingToJSON converts a grouped board. Dangling items are listed
// separately and never appear in a lane.
func GroupingToJSON(b *models.Board, lanes roadmap.LaneSet, g roadmap.Grouping, dangling []models.Item) GroupedBoardJSON {
	buckets := make([]BucketJSON, len(g.Buckets))
	for i, bucket := range g.Buckets {
		buckets[i] = BucketJSON{Lane: LaneToJSON(bucket.Lane), Items: ItemsToJSON(bucket.Items)}
	}
	return GroupedBoardJSON{
		Board:    BoardToJSON(b),
		Source:   lanes.Source.String(),
		Lanes:    buckets,
		Backlog:  ItemsToJSON(g.Backlog),
		Dangling: ItemsToJSON(dangling),
	}
}
