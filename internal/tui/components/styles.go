// Package components renders the pieces of the live board
package components

import (
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/hito/internal/config/colors"
)

// Styles are the lipgloss styles derived from a color scheme
type Styles struct {
	Lane         lipgloss.Style
	DoneLane     lipgloss.Style
	Backlog      lipgloss.Style
	Item         lipgloss.Style
	SelectedItem lipgloss.Style
	Title        lipgloss.Style
	Subtle       lipgloss.Style
	Votes        lipgloss.Style
	Error        lipgloss.Style

	selectedBorder string
}

// NewStyles builds the board styles for a color scheme
func NewStyles(c colors.ColorScheme) Styles {
	c.ApplyDefaults()

	column := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1).
		PaddingBottom(1)

	item := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color(c.ItemBorder)).
		Foreground(lipgloss.Color(c.Normal)).
		Padding(0, 1)

	return Styles{
		Lane:         column.BorderForeground(lipgloss.Color(c.LaneBorder)),
		DoneLane:     column.BorderForeground(lipgloss.Color(c.DoneLaneBorder)),
		Backlog:      column.BorderForeground(lipgloss.Color(c.BacklogBorder)),
		Item:         item,
		SelectedItem: item.BorderForeground(lipgloss.Color(c.SelectedBorder)).Bold(true),
		Title:        lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(c.Title)),
		Subtle:       lipgloss.NewStyle().Foreground(lipgloss.Color(c.Subtle)),
		Votes:        lipgloss.NewStyle().Foreground(lipgloss.Color(c.Votes)),
		Error:        lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(c.ErrorFg)),

		selectedBorder: c.SelectedBorder,
	}
}
