package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
)

// StatusBarProps describes the bottom status line
type StatusBarProps struct {
	Width      int
	Board      string
	LaneSource string
	Connection string
	Dangling   int
	Message    string
	IsError    bool
	HelpKey    string
}

// RenderStatusBar renders a status bar with left and right aligned text
func RenderStatusBar(s Styles, p StatusBarProps) string {
	left := s.Title.Render("hito") + " " + s.Subtle.Render(p.Board+" · "+p.LaneSource+" lanes")
	if p.Dangling > 0 {
		left += s.Subtle.Render(" · ") + s.Error.Render(plural(p.Dangling, "hidden item"))
	}
	if p.Message != "" {
		msgStyle := s.Subtle
		if p.IsError {
			msgStyle = s.Error
		}
		left += "  " + msgStyle.Render(p.Message)
	}
	right := s.Subtle.Render(p.Connection + " · press " + p.HelpKey + " for help")

	gapWidth := max(p.Width-lipgloss.Width(left)-lipgloss.Width(right), 1)
	return lipgloss.JoinHorizontal(lipgloss.Top, left, strings.Repeat(" ", gapWidth), right)
}

func plural(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
