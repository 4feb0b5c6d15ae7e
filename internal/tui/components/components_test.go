package components

import (
	"testing"
	"time"

	"charm.land/lipgloss/v2"
	"github.com/stretchr/testify/assert"
	"github.com/thenoetrevino/hito/internal/config/colors"
	"github.com/thenoetrevino/hito/internal/models"
	"github.com/thenoetrevino/hito/internal/tui/state"
)

func TestScrollOffset(t *testing.T) {
	tests := []struct {
		name                     string
		selected, visible, total int
		want                     int
	}{
		{"everything fits", 3, 10, 5, 0},
		{"selection in first window", 2, 3, 10, 0},
		{"selection past window", 5, 3, 10, 3},
		{"last item", 9, 3, 10, 7},
		{"no selection", -1, 3, 10, 0},
		{"zero visible", 4, 0, 10, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ScrollOffset(tt.selected, tt.visible, tt.total))
		})
	}
}

func TestRenderColumn(t *testing.T) {
	s := NewStyles(*colors.Default())
	lane := models.Lane{ID: "shipped", Name: "Shipped", Color: "#22C55E", IsDoneStatus: true}
	done := time.Date(2025, 3, 4, 12, 0, 0, 0, time.UTC)

	out := RenderColumn(s, ColumnProps{
		Column: state.Column{Lane: &lane, Items: []models.Item{
			{ID: "a", Title: "Dark mode", Votes: 12, CompletedAt: &done},
		}},
		Width: 30,
	})

	assert.Contains(t, out, "Shipped ✓ (1)")
	assert.Contains(t, out, "Dark mode")
	assert.Contains(t, out, "▲ 12")
}

func TestRenderColumn_EmptyBacklog(t *testing.T) {
	s := NewStyles(*colors.Default())
	out := RenderColumn(s, ColumnProps{Column: state.Column{}, Width: 30})

	assert.Contains(t, out, "Backlog (0)")
	assert.Contains(t, out, "No items")
}

func TestRenderColumn_ScrollIndicators(t *testing.T) {
	s := NewStyles(*colors.Default())
	lane := models.Lane{ID: "planned", Name: "Planned", Color: "#7D56F4"}
	items := make([]models.Item, 8)
	for i := range items {
		items[i] = models.Item{Title: "item"}
	}

	out := RenderColumn(s, ColumnProps{
		Column:       state.Column{Lane: &lane, Items: items},
		Selected:     true,
		SelectedItem: 7,
		Width:        30,
		Height:       20,
	})

	assert.Contains(t, out, "▲ more above")
	assert.NotContains(t, out, "▼ more below")
}

func TestRenderItem_Truncates(t *testing.T) {
	s := NewStyles(*colors.Default())
	out := RenderItem(s, models.Item{Title: "an extremely long feature request title that keeps going"}, false, 30)
	assert.Contains(t, out, "…")
}

func TestRenderStatusBar(t *testing.T) {
	s := NewStyles(*colors.Default())
	out := RenderStatusBar(s, StatusBarProps{
		Width:      120,
		Board:      "Public roadmap",
		LaneSource: "custom",
		Connection: "live",
		Dangling:   2,
		HelpKey:    "?",
	})

	assert.Contains(t, out, "Public roadmap · custom lanes")
	assert.Contains(t, out, "2 hidden items")
	assert.Contains(t, out, "live · press ? for help")
	assert.Equal(t, 120, lipgloss.Width(out))
}
