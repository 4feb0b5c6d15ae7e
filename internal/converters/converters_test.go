package converters

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/hito/internal/models"
	"github.com/thenoetrevino/hito/internal/roadmap"
	"github.com/thenoetrevino/hito/internal/types"
)

var ts = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func TestItemToJSON(t *testing.T) {
	t.Parallel()

	lane := roadmap.LanePlanned
	order := 2000.0
	tests := []struct {
		name     string
		input    models.Item
		expected ItemJSON
	}{
		{
			name:  "backlog item",
			input: models.Item{ID: "i1", BoardID: "b1", Title: "SSO", Votes: 3, CreatedAt: ts, UpdatedAt: ts},
			expected: ItemJSON{
				ID: "i1", BoardID: "b1", Title: "SSO", Votes: 3,
				CreatedAt: "2024-03-01T12:00:00Z", UpdatedAt: "2024-03-01T12:00:00Z",
			},
		},
		{
			name: "completed item in lane",
			input: models.Item{
				ID: "i2", BoardID: "b1", Title: "Export", Lane: &lane, Order: &order,
				CompletedAt: &ts, CreatedAt: ts, UpdatedAt: ts,
			},
			expected: ItemJSON{
				ID: "i2", BoardID: "b1", Title: "Export",
				Lane: strPtr("planned"), Order: &order, CompletedAt: strPtr("2024-03-01T12:00:00Z"),
				CreatedAt: "2024-03-01T12:00:00Z", UpdatedAt: "2024-03-01T12:00:00Z",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if diff := cmp.Diff(tt.expected, ItemToJSON(tt.input)); diff != "" {
				t.Errorf("ItemToJSON() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestItemJSON_BacklogEncodesNullLane(t *testing.T) {
	t.Parallel()

	data, err := json.Marshal(ItemToJSON(models.Item{ID: "i1", CreatedAt: ts, UpdatedAt: ts}))
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	lane, ok := decoded["lane"]
	assert.True(t, ok)
	assert.Nil(t, lane)
	assert.NotContains(t, decoded, "description")
}

func TestItemsToJSON_NeverNil(t *testing.T) {
	t.Parallel()
	assert.NotNil(t, ItemsToJSON(nil))
}

func TestLaneSetToJSON(t *testing.T) {
	t.Parallel()

	got := LaneSetToJSON(roadmap.ResolveLanes(nil))
	assert.Equal(t, "built-in", got.Source)
	require.Len(t, got.Lanes, 4)
	assert.Equal(t, "under-review", got.Lanes[0].ID)
	assert.True(t, got.Lanes[0].BuiltIn)

	tag := models.Tag{ID: "t1", OrgID: "o1", Name: "Shipped", Color: "#22C55E", IsRoadmapLane: true, DisplayOrder: 1000, IsDoneStatus: true}
	custom := LaneSetToJSON(roadmap.ResolveLanes([]models.Tag{tag}))
	assert.Equal(t, "custom", custom.Source)
	assert.Equal(t, []LaneJSON{TagToJSON(tag)}, custom.Lanes)
	assert.True(t, custom.Lanes[0].IsDone)
	assert.False(t, custom.Lanes[0].BuiltIn)
}

func TestGroupingToJSON(t *testing.T) {
	t.Parallel()

	board := &models.Board{ID: "b1", OrgID: "o1", Name: "Feedback", CreatedAt: ts}
	lanes := roadmap.ResolveLanes(nil)
	planned := roadmap.LanePlanned
	ghost := types.LaneID("ghost")
	items := []models.Item{
		{ID: "a", BoardID: "b1", Title: "A", Lane: &planned},
		{ID: "b", BoardID: "b1", Title: "B"},
		{ID: "c", BoardID: "b1", Title: "C", Lane: &ghost},
	}

	got := GroupingToJSON(board, lanes, roadmap.GroupByLane(lanes, items), roadmap.Dangling(lanes, items))
	assert.Equal(t, "o1", got.Board.OrgID)
	require.Len(t, got.Lanes, 4)
	assert.Empty(t, got.Lanes[0].Items)
	require.Len(t, got.Lanes[1].Items, 1)
	assert.Equal(t, "a", got.Lanes[1].Items[0].ID)
	require.Len(t, got.Backlog, 1)
	assert.Equal(t, "b", got.Backlog[0].ID)
	require.Len(t, got.Dangling, 1)
	assert.Equal(t, "c", got.Dangling[0].ID)
}

func strPtr(s string) *string { return &s }
