package styles

import (
	"testing"

	"charm.land/lipgloss/v2"
	"github.com/stretchr/testify/assert"
	"github.com/thenoetrevino/hito/internal/config/colors"
	"github.com/thenoetrevino/hito/internal/models"
	"github.com/thenoetrevino/hito/internal/roadmap"
)

func TestRenderLaneChip_MarksDoneLanes(t *testing.T) {
	assert.Contains(t, RenderLaneChip(models.Lane{Name: "Shipped", Color: "#22C55E", IsDoneStatus: true}), "Shipped ✓")
	assert.NotContains(t, RenderLaneChip(models.Lane{Name: "Now", Color: "#22C55E"}), "✓")
}

func TestRenderBoard(t *testing.T) {
	Init(*colors.Monochrome())
	defer Init(*colors.Default())

	lanes := roadmap.ResolveLanes(nil)
	planned := roadmap.LanePlanned
	items := []models.Item{
		{ID: "a", Title: "Dark mode", Votes: 7, Lane: &planned},
		{ID: "b", Title: "Idea"},
	}
	g := roadmap.GroupByLane(lanes, items)
	board := &models.Board{Name: "Feedback"}

	out := RenderBoard(board, g, false)
	assert.Contains(t, out, "Feedback")
	assert.Contains(t, out, "Planned")
	assert.Contains(t, out, "Dark mode")
	assert.Contains(t, out, "▲7")
	assert.NotContains(t, out, "Backlog")

	withBacklog := RenderBoard(board, g, true)
	assert.Contains(t, withBacklog, "Backlog")
	assert.Contains(t, withBacklog, "Idea")
	assert.Greater(t, lipgloss.Width(withBacklog), lipgloss.Width(out))
}
