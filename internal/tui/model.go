// Package tui implements the live board: lanes rendered side by side,
// regrouped whenever the daemon reports a change.
package tui

import (
	"context"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/hito/internal/app"
	"github.com/thenoetrevino/hito/internal/config"
	"github.com/thenoetrevino/hito/internal/events"
	"github.com/thenoetrevino/hito/internal/models"
	boardservice "github.com/thenoetrevino/hito/internal/services/board"
	itemservice "github.com/thenoetrevino/hito/internal/services/item"
	"github.com/thenoetrevino/hito/internal/tui/components"
	"github.com/thenoetrevino/hito/internal/tui/state"
	"github.com/thenoetrevino/hito/internal/types"
)

// RefreshMsg is sent when the daemon reports a change
type RefreshMsg struct {
	Event events.Event
}

type boardLoadedMsg struct {
	view *boardservice.BoardView
	err  error
}

type moveDoneMsg struct {
	itemID types.ItemID
	result *itemservice.MoveResult
	err    error
}

// eventsClosedMsg reports that the event channel closed
type eventsClosedMsg struct{}

// Model is the live board
type Model struct {
	ctx     context.Context
	app     *app.App
	boardID types.BoardID
	keys    KeyMap
	styles  components.Styles

	ui    *state.UIState
	board *state.BoardState
	conn  *state.ConnectionState

	eventChan <-chan events.Event

	follow  types.ItemID // item to reselect after the next load
	message string
	isError bool
}

// New creates the live board model. eventChan may be nil when no daemon is
// running; the board then only reloads on demand.
func New(ctx context.Context, a *app.App, cfg *config.Config, boardID types.BoardID, eventChan <-chan events.Event) Model {
	status := state.Offline
	if eventChan != nil {
		status = state.Connected
	}
	return Model{
		ctx:       ctx,
		app:       a,
		boardID:   boardID,
		keys:      NewKeyMap(cfg.KeyMappings),
		styles:    components.NewStyles(cfg.ColorScheme),
		ui:        state.NewUIState(),
		board:     state.NewBoardState(),
		conn:      state.NewConnectionState(status),
		eventChan: eventChan,
	}
}

// Init loads the board and starts listening for changes
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.loadBoard(), m.listen())
}

// loadBoard fetches and regroups the board
func (m Model) loadBoard() tea.Cmd {
	return func() tea.Msg {
		view, err := m.app.BoardService.GetBoard(m.ctx, m.boardID)
		return boardLoadedMsg{view: view, err: err}
	}
}

// listen waits for the next daemon event
func (m Model) listen() tea.Cmd {
	if m.eventChan == nil {
		return nil
	}
	return func() tea.Msg {
		select {
		case event, ok := <-m.eventChan:
			if !ok {
				return eventsClosedMsg{}
			}
			return RefreshMsg{Event: event}
		case <-m.ctx.Done():
			return nil
		}
	}
}

// move sends an item to target through the item service
func (m Model) move(id types.ItemID, target string) tea.Cmd {
	return func() tea.Msg {
		result, err := m.app.ItemService.MoveItem(m.ctx, id, target)
		return moveDoneMsg{itemID: id, result: result, err: err}
	}
}

func (m Model) columns() []state.Column {
	return m.board.Columns(m.ui.ShowBacklog())
}

func (m Model) columnSizes() []int {
	cols := m.columns()
	sizes := make([]int, len(cols))
	for i, c := range cols {
		sizes[i] = len(c.Items)
	}
	return sizes
}

// selectedItem returns the item under the cursor, or nil
func (m Model) selectedItem() *models.Item {
	cols := m.columns()
	col := m.ui.SelectedColumn()
	if col < 0 || col >= len(cols) {
		return nil
	}
	items := cols[col].Items
	row := m.ui.SelectedItem()
	if row < 0 || row >= len(items) {
		return nil
	}
	return &items[row]
}

func (m *Model) setError(msg string) {
	m.message = msg
	m.isError = true
}

func (m *Model) setNotice(msg string) {
	m.message = msg
	m.isError = false
}
