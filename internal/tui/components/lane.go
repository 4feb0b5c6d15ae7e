package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/hito/internal/tui/state"
)

// ColumnProps describes one board column to render
type ColumnProps struct {
	Column       state.Column
	Selected     bool
	SelectedItem int // index of the selected item, ignored unless Selected
	Width        int
	Height       int // total box height including borders; 0 for auto
}

// RenderColumn renders a lane or the backlog with its items, scrolled so the
// selected item stays visible.
//
// Layout:
//
//	{Lane Name} ({count})
//	▲ more above (if scrolled)
//	{Item 1}
//	...
//	▼ more below (if more items below)
func RenderColumn(s Styles, p ColumnProps) string {
	col := p.Column
	style := s.Backlog
	name := "Backlog"
	if col.Lane != nil {
		name = col.Lane.Name
		style = s.Lane
		if col.Lane.IsDoneStatus {
			name += " ✓"
			style = s.DoneLane
		}
		style = style.BorderForeground(lipgloss.Color(col.Lane.Color))
	}
	if p.Selected {
		style = style.BorderForeground(lipgloss.Color(s.selectedBorder))
	}

	var b strings.Builder
	b.WriteString(s.Title.Render(fmt.Sprintf("%s (%d)", name, len(col.Items))))
	b.WriteString("\n")

	inner := max(p.Width-4, 0)
	if len(col.Items) == 0 {
		b.WriteString(s.Subtle.Italic(true).Render("No items"))
	} else {
		visible := len(col.Items)
		if p.Height > 0 {
			avail := p.Height - columnBorderOverhead - headerLines - indicatorLines
			visible = max(avail/ItemCardHeight, 1)
		}
		selected := -1
		if p.Selected {
			selected = p.SelectedItem
		}
		offset := ScrollOffset(selected, visible, len(col.Items))
		end := min(offset+visible, len(col.Items))

		if offset > 0 {
			b.WriteString(s.Subtle.Render("▲ more above"))
		}
		b.WriteString("\n")
		for i := offset; i < end; i++ {
			b.WriteString(RenderItem(s, col.Items[i], i == selected, inner))
			b.WriteString("\n")
		}
		if end < len(col.Items) {
			b.WriteString(s.Subtle.Render("▼ more below"))
		}
	}

	style = style.Width(p.Width)
	if p.Height > 0 {
		style = style.Height(p.Height - 2)
	}
	return style.Render(strings.TrimRight(b.String(), "\n"))
}

// ScrollOffset returns the first visible row that keeps selected in a
// window of visible rows
func ScrollOffset(selected, visible, total int) int {
	if visible <= 0 || total <= visible || selected < visible {
		return 0
	}
	return min(selected-visible+1, total-visible)
}
