package roadmap

import (
	"sort"

	"github.com/thenoetrevino/hito/internal/models"
	"github.com/thenoetrevino/hito/internal/types"
)

// Bucket holds the items of one lane, sorted by order key
type Bucket struct {
	Lane  models.Lane
	Items []models.Item
}

// MaxOrder returns the largest order key in the bucket, ignoring the item
// with id skip. An empty bucket yields 0.
func (b Bucket) MaxOrder(skip types.ItemID) float64 {
	var highest float64
	seen := false
	for _, it := range b.Items {
		if it.ID == skip {
			continue
		}
		if o := it.OrderKey(); !seen || o > highest {
			highest = o
			seen = true
		}
	}
	return highest
}

// Grouping partitions a board's items by lane. Buckets follow lane display
// order; the backlog holds every item without a lane.
type Grouping struct {
	Buckets []Bucket
	Backlog []models.Item
	index   map[types.LaneID]int
}

// GroupByLane partitions items into one bucket per resolved lane plus the
// backlog. Items referencing a lane outside the set are dropped. The input
// slice is not modified.
func GroupByLane(lanes LaneSet, items []models.Item) Grouping {
	g := Grouping{
		Buckets: make([]Bucket, len(lanes.Lanes)),
		Backlog: []models.Item{},
		index:   make(map[types.LaneID]int, len(lanes.Lanes)),
	}
	for i, l := range lanes.Lanes {
		g.Buckets[i] = Bucket{Lane: l, Items: []models.Item{}}
		g.index[l.ID] = i
	}

	for _, it := range items {
		if it.Lane == nil {
			g.Backlog = append(g.Backlog, it)
			continue
		}
		if i, ok := g.index[*it.Lane]; ok {
			g.Buckets[i].Items = append(g.Buckets[i].Items, it)
		}
	}

	for i := range g.Buckets {
		bucket := g.Buckets[i].Items
		sort.SliceStable(bucket, func(a, b int) bool {
			oa, ob := bucket[a].OrderKey(), bucket[b].OrderKey()
			if oa != ob {
				return oa < ob
			}
			return bucket[a].ID < bucket[b].ID
		})
	}
	sort.SliceStable(g.Backlog, func(a, b int) bool {
		if g.Backlog[a].Title != g.Backlog[b].Title {
			return g.Backlog[a].Title < g.Backlog[b].Title
		}
		return g.Backlog[a].ID < g.Backlog[b].ID
	})

	return g
}

// Bucket returns the bucket for a lane id
func (g Grouping) Bucket(id types.LaneID) (Bucket, bool) {
	i, ok := g.index[id]
	if !ok {
		return Bucket{}, false
	}
	return g.Buckets[i], true
}

// Placed returns the number of items sitting in a visible lane
func (g Grouping) Placed() int {
	n := 0
	for _, b := range g.Buckets {
		n += len(b.Items)
	}
	return n
}

// Total returns the number of items visible in the grouping, backlog included
func (g Grouping) Total() int {
	return g.Placed() + len(g.Backlog)
}

// Dangling returns the items whose lane is not part of the resolved set.
// Grouping drops these; callers use this to surface them.
func Dangling(lanes LaneSet, items []models.Item) []models.Item {
	var out []models.Item
	for _, it := range items {
		if it.Lane != nil && !lanes.Contains(*it.Lane) {
			out = append(out, it)
		}
	}
	return out
}
