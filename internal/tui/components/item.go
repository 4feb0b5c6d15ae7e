package components

import (
	"fmt"

	"github.com/thenoetrevino/hito/internal/models"
)

// RenderItem renders one item card
func RenderItem(s Styles, it models.Item, selected bool, width int) string {
	title := truncate(it.Title, max(width-6, itemTitleMaxLength))
	votes := s.Votes.Render(fmt.Sprintf("▲ %d", it.Votes))
	if it.CompletedAt != nil {
		votes += s.Subtle.Render("  ✓ " + it.CompletedAt.Local().Format("Jan 2"))
	}

	style := s.Item
	if selected {
		style = s.SelectedItem
	}
	return style.Width(max(width-2, 0)).Render(title + "\n" + votes)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
