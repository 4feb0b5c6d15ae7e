package tui

import (
	"log/slog"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/hito/internal/roadmap"
	"github.com/thenoetrevino/hito/internal/tui/state"
)

// Update handles all messages and updates the model accordingly
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	select {
	case <-m.ctx.Done():
		return m, tea.Quit
	default:
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ui.SetSize(msg.Width, msg.Height)
		return m, nil

	case boardLoadedMsg:
		if msg.err != nil {
			slog.Error("failed to load board", "board_id", m.boardID, "error", msg.err)
			m.setError(msg.err.Error())
			return m, nil
		}
		m.applyBoard(msg)
		return m, nil

	case RefreshMsg:
		m.conn.Observe(msg.Event)
		// Events for other boards of the org can still arrive when the
		// subscription is org-wide
		if msg.Event.BoardID != "" && msg.Event.BoardID != m.boardID {
			return m, m.listen()
		}
		return m, tea.Batch(m.loadBoard(), m.listen())

	case eventsClosedMsg:
		m.conn.Lost()
		return m, nil

	case moveDoneMsg:
		return m.handleMoveDone(msg)

	case tea.KeyPressMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m *Model) applyBoard(msg boardLoadedMsg) {
	v := msg.view
	m.board.Set(v.Board, v.Lanes, v.Grouping, len(v.Dangling))
	if m.follow != "" {
		if col, row, ok := m.board.Locate(m.follow, m.ui.ShowBacklog()); ok {
			m.ui.Select(col, row)
		}
		m.follow = ""
	}
	m.ui.Clamp(m.columnSizes())
}

func (m Model) handleMoveDone(msg moveDoneMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		slog.Error("failed to move item", "item_id", msg.itemID, "error", msg.err)
		m.setError("move failed: " + msg.err.Error())
		return m, m.loadBoard()
	}

	res := msg.result
	m.follow = res.Item.ID
	switch {
	case !res.Applied:
		m.setNotice("a newer change to this item already won")
	case res.Transition.ToBacklog():
		m.setNotice("moved to the backlog")
	case res.Transition.Completion == roadmap.CompletionSet:
		m.setNotice("marked complete")
	case res.Transition.Completion == roadmap.CompletionCleared:
		m.setNotice("completion cleared")
	}
	return m, m.loadBoard()
}

func (m Model) handleKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	if m.ui.Mode() == state.HelpMode {
		switch {
		case key.Matches(msg, m.keys.Quit) && msg.String() == "ctrl+c":
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help, m.keys.Quit), msg.String() == "esc":
			m.ui.SetMode(state.NormalMode)
		}
		return m, nil
	}

	m.setNotice("")
	col, row := m.ui.SelectedColumn(), m.ui.SelectedItem()

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.ui.SetMode(state.HelpMode)
	case key.Matches(msg, m.keys.PrevLane):
		m.ui.Select(col-1, row)
	case key.Matches(msg, m.keys.NextLane):
		m.ui.Select(col+1, row)
	case key.Matches(msg, m.keys.PrevItem):
		m.ui.Select(col, row-1)
	case key.Matches(msg, m.keys.NextItem):
		m.ui.Select(col, row+1)
	case key.Matches(msg, m.keys.MoveLeft):
		return m, m.moveToColumn(col - 1)
	case key.Matches(msg, m.keys.MoveRight):
		return m, m.moveToColumn(col + 1)
	case key.Matches(msg, m.keys.MoveBacklog):
		if it := m.selectedItem(); it != nil && !it.InBacklog() {
			return m, m.move(it.ID, roadmap.Backlog)
		}
	case key.Matches(msg, m.keys.ToggleBacklog):
		m.ui.ToggleBacklog()
	case key.Matches(msg, m.keys.Refresh):
		return m, m.loadBoard()
	}

	m.ui.Clamp(m.columnSizes())
	return m, nil
}

// moveToColumn moves the selected item into the column at index col.
// Nothing happens past either edge of the board.
func (m Model) moveToColumn(col int) tea.Cmd {
	cols := m.columns()
	if col < 0 || col >= len(cols) {
		return nil
	}
	it := m.selectedItem()
	if it == nil {
		return nil
	}
	return m.move(it.ID, cols[col].Target())
}
