package state

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/thenoetrevino/hito/internal/events"
	"github.com/thenoetrevino/hito/internal/models"
	"github.com/thenoetrevino/hito/internal/roadmap"
	"github.com/thenoetrevino/hito/internal/types"
)

func TestUIState_Clamp(t *testing.T) {
	s := NewUIState()
	s.Select(5, 9)
	s.Clamp([]int{2, 3})
	assert.Equal(t, 1, s.SelectedColumn())
	assert.Equal(t, 2, s.SelectedItem())

	s.Select(0, 4)
	s.Clamp([]int{0, 3})
	assert.Equal(t, 0, s.SelectedItem())

	s.Clamp(nil)
	assert.Equal(t, 0, s.SelectedColumn())
}

func TestUIState_ToggleBacklogKeepsLane(t *testing.T) {
	s := NewUIState()
	s.Select(1, 0)
	s.ToggleBacklog()
	assert.True(t, s.ShowBacklog())
	assert.Equal(t, 2, s.SelectedColumn())
	s.ToggleBacklog()
	assert.False(t, s.ShowBacklog())
	assert.Equal(t, 1, s.SelectedColumn())
}

func TestBoardState_Columns(t *testing.T) {
	lanes := roadmap.ResolveLanes(nil)
	planned := roadmap.LanePlanned
	items := []models.Item{
		{ID: "a", Lane: &planned},
		{ID: "b"},
	}
	s := NewBoardState()
	assert.False(t, s.Loaded())
	s.Set(&models.Board{ID: "b1"}, lanes, roadmap.GroupByLane(lanes, items), 0)
	assert.True(t, s.Loaded())

	cols := s.Columns(false)
	assert.Len(t, cols, 4)
	assert.Equal(t, "planned", cols[1].Target())

	withBacklog := s.Columns(true)
	assert.Len(t, withBacklog, 5)
	assert.Equal(t, roadmap.Backlog, withBacklog[0].Target())

	col, row, ok := s.Locate(types.ItemID("a"), true)
	assert.True(t, ok)
	assert.Equal(t, 2, col)
	assert.Equal(t, 0, row)

	_, _, ok = s.Locate(types.ItemID("b"), false)
	assert.False(t, ok)
}

func TestConnectionState(t *testing.T) {
	cs := NewConnectionState(Offline)
	assert.Equal(t, "offline", cs.Describe())

	cs = NewConnectionState(Connected)
	assert.Equal(t, "live", cs.Describe())

	at := time.Date(2025, 6, 1, 14, 2, 11, 0, time.Local)
	cs.Observe(events.Event{Type: events.EventBoardChanged, Timestamp: at})
	cs.Observe(events.Event{Type: events.EventBoardChanged, Timestamp: at.Add(-time.Minute)})
	assert.Equal(t, 2, cs.Received())
	assert.Equal(t, "live, updated 14:02:11", cs.Describe(), "older events do not move the clock back")

	cs.Lost()
	assert.Equal(t, Disconnected, cs.Status())
	assert.Equal(t, "disconnected", cs.Describe())
}
