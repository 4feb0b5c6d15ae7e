package roadmap

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/thenoetrevino/hito/internal/models"
	"github.com/thenoetrevino/hito/internal/types"
)

func ids(items []models.Item) []types.ItemID {
	out := make([]types.ItemID, len(items))
	for i, it := range items {
		out[i] = it.ID
	}
	return out
}

func TestGroupByLane_Partitions(t *testing.T) {
	t.Parallel()

	lanes := customLanes()
	items := []models.Item{
		item("i1", "Dark mode", laneRef("planned"), orderRef(2000)),
		item("i2", "SSO", laneRef("planned"), orderRef(1000)),
		item("i3", "Zapier", nil, nil),
		item("i4", "API keys", nil, nil),
		item("i5", "Exports", laneRef("shipped"), orderRef(1000)),
		item("i6", "Ghost", laneRef("deleted-lane"), orderRef(1000)),
		item("i7", "Tie b", laneRef("in-progress"), orderRef(1000)),
		item("i0", "Tie a", laneRef("in-progress"), orderRef(1000)),
	}

	g := GroupByLane(lanes, items)

	if len(g.Buckets) != lanes.Len() {
		t.Fatalf("got %d buckets, want %d", len(g.Buckets), lanes.Len())
	}

	planned, ok := g.Bucket("planned")
	if !ok {
		t.Fatal("planned bucket missing")
	}
	if diff := cmp.Diff([]types.ItemID{"i2", "i1"}, ids(planned.Items)); diff != "" {
		t.Errorf("planned order mismatch (-want +got):\n%s", diff)
	}

	inProgress, _ := g.Bucket("in-progress")
	if diff := cmp.Diff([]types.ItemID{"i0", "i7"}, ids(inProgress.Items)); diff != "" {
		t.Errorf("tie order mismatch (-want +got):\n%s", diff)
	}

	if diff := cmp.Diff([]types.ItemID{"i4", "i3"}, ids(g.Backlog)); diff != "" {
		t.Errorf("backlog should be sorted by title (-want +got):\n%s", diff)
	}

	released, _ := g.Bucket("released")
	if len(released.Items) != 0 {
		t.Errorf("released bucket should be empty, got %d", len(released.Items))
	}

	if _, ok := g.Bucket("deleted-lane"); ok {
		t.Error("grouping fabricated a bucket for an unknown lane")
	}
}

func TestGroupByLane_Totals(t *testing.T) {
	t.Parallel()

	lanes := ResolveLanes(nil)
	items := []models.Item{
		item("a", "A", laneRef(string(LanePlanned)), orderRef(1000)),
		item("b", "B", nil, nil),
		item("c", "C", laneRef("custom-gone"), orderRef(1000)),
		item("d", "D", laneRef(string(LaneComplete)), orderRef(1000)),
		item("e", "E", laneRef("other-gone"), nil),
	}

	g := GroupByLane(lanes, items)
	dangling := Dangling(lanes, items)

	if got, want := g.Total(), len(items)-len(dangling); got != want {
		t.Errorf("Total() = %d, want %d", got, want)
	}
	if g.Placed() != 2 {
		t.Errorf("Placed() = %d, want 2", g.Placed())
	}
	if diff := cmp.Diff([]types.ItemID{"c", "e"}, ids(dangling)); diff != "" {
		t.Errorf("dangling mismatch (-want +got):\n%s", diff)
	}
}

func TestGroupByLane_Pure(t *testing.T) {
	t.Parallel()

	lanes := customLanes()
	items := []models.Item{
		item("b", "B", laneRef("planned"), orderRef(2000)),
		item("a", "A", laneRef("planned"), orderRef(1000)),
	}
	before := append([]models.Item(nil), items...)

	first := GroupByLane(lanes, items)
	second := GroupByLane(lanes, items)

	if diff := cmp.Diff(before, items); diff != "" {
		t.Errorf("input mutated (-before +after):\n%s", diff)
	}
	if diff := cmp.Diff(first.Buckets, second.Buckets); diff != "" {
		t.Errorf("grouping not deterministic:\n%s", diff)
	}
}

func TestGroupByLane_Empty(t *testing.T) {
	t.Parallel()

	g := GroupByLane(customLanes(), nil)

	if g.Total() != 0 {
		t.Errorf("Total() = %d, want 0", g.Total())
	}
	if g.Backlog == nil {
		t.Error("backlog bucket should be initialized")
	}
	for _, b := range g.Buckets {
		if b.Items == nil {
			t.Errorf("bucket %s not initialized", b.Lane.ID)
		}
	}
}
