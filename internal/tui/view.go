package tui

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/hito/internal/tui/components"
	"github.com/thenoetrevino/hito/internal/tui/state"
)

const (
	statusBarHeight = 1
	helpBoxWidth    = 50
)

// View renders the board, with the help overlay on top in HelpMode
func (m Model) View() tea.View {
	var view tea.View
	view.AltScreen = true

	if m.ui.Width() == 0 {
		view.Content = "Loading..."
		return view
	}
	if !m.board.Loaded() {
		if m.isError {
			view.Content = m.styles.Error.Render("Error: " + m.message)
		} else {
			view.Content = "Loading board..."
		}
		return view
	}

	layers := []*lipgloss.Layer{lipgloss.NewLayer(m.renderBoard())}
	if m.ui.Mode() == state.HelpMode {
		if l := centeredLayer(m.renderHelp(), m.ui.Width(), m.ui.Height()); l != nil {
			layers = append(layers, l)
		}
	}
	view.Content = lipgloss.NewCompositor(layers...).Render()
	return view
}

func (m Model) renderBoard() string {
	cols := m.columns()
	height := m.ui.Height() - statusBarHeight

	var body string
	if len(cols) == 0 {
		body = m.styles.Subtle.Render("No lanes. Press " + m.keys.ToggleBacklog.Help().Key + " to show the backlog.")
	} else {
		width := max(m.ui.Width()/len(cols), components.MinColumnWidth)
		visible := max(m.ui.Width()/width, 1)
		offset := components.ScrollOffset(m.ui.SelectedColumn(), visible, len(cols))
		end := min(offset+visible, len(cols))

		rendered := make([]string, 0, end-offset)
		for i := offset; i < end; i++ {
			rendered = append(rendered, components.RenderColumn(m.styles, components.ColumnProps{
				Column:       cols[i],
				Selected:     i == m.ui.SelectedColumn(),
				SelectedItem: m.ui.SelectedItem(),
				Width:        width,
				Height:       height,
			}))
		}
		body = lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
	}

	status := components.RenderStatusBar(m.styles, components.StatusBarProps{
		Width:      m.ui.Width(),
		Board:      m.board.Board().Name,
		LaneSource: m.board.Lanes().Source.String(),
		Connection: m.conn.Describe(),
		Dangling:   m.board.Dangling(),
		Message:    m.message,
		IsError:    m.isError,
		HelpKey:    m.keys.Help.Help().Key,
	})

	return lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.PlaceVertical(height, lipgloss.Top, body),
		status,
	)
}

// renderHelp lists the bindings grouped by section
func (m Model) renderHelp() string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render("HITO - Keyboard Shortcuts"))
	b.WriteString("\n")
	for _, section := range m.keys.helpSections() {
		b.WriteString("\n" + section.title + "\n")
		for _, binding := range section.bindings {
			h := binding.Help()
			fmt.Fprintf(&b, "  %-6s %s\n", h.Key, h.Desc)
		}
	}
	b.WriteString("\n" + m.styles.Subtle.Render("Press "+m.keys.Help.Help().Key+" or esc to close"))

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.styles.Title.GetForeground()).
		Padding(1, 2).
		Width(helpBoxWidth)
	return box.Render(b.String())
}

// centeredLayer positions content at the center of the screen
func centeredLayer(content string, screenWidth, screenHeight int) *lipgloss.Layer {
	if content == "" {
		return nil
	}
	x := max((screenWidth-lipgloss.Width(content))/2, 0)
	y := max((screenHeight-lipgloss.Height(content))/2, 0)
	return lipgloss.NewLayer(content).X(x).Y(y)
}
