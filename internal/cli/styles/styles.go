// Package styles renders the CLI's human-readable board and item output
package styles

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/hito/internal/config/colors"
	"github.com/thenoetrevino/hito/internal/models"
	"github.com/thenoetrevino/hito/internal/roadmap"
)

var (
	// Card styles
	CardStyle lipgloss.Style
	CardWidth = 80

	// LaneWidth is the width of one lane column in `board show`
	LaneWidth = 28

	// Text styles
	TitleStyle    lipgloss.Style
	SubtitleStyle lipgloss.Style
	LabelStyle    lipgloss.Style // For field labels like "Lane:", "Votes:"
	ValueStyle    lipgloss.Style
	VotesStyle    lipgloss.Style
	ErrorStyle    lipgloss.Style

	scheme colors.ColorScheme
)

func init() {
	Init(*colors.Default())
}

// Init initializes all CLI styles with the given color scheme
func Init(c colors.ColorScheme) {
	c.ApplyDefaults()
	scheme = c

	CardStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(c.Accent)).
		Padding(1, 2).
		Width(CardWidth)

	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(c.Title))

	SubtitleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(c.Subtle))

	LabelStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(c.Accent))

	ValueStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(c.Normal))

	VotesStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(c.Votes))

	ErrorStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(c.ErrorFg))
}

// ColoredText renders text with a hex color
func ColoredText(text, hexColor string) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(hexColor)).
		Render(text)
}

// RenderLaneChip renders a lane as "[name]" with the lane's color
func RenderLaneChip(lane models.Lane) string {
	name := lane.Name
	if lane.IsDoneStatus {
		name += " ✓"
	}
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(lane.Color)).
		Bold(true).
		Render("[" + name + "]")
}

// RenderCard wraps content in a styled card border
func RenderCard(content string) string {
	return CardStyle.Render(content)
}

// RenderItemLine renders one item as a single column entry
func RenderItemLine(it models.Item) string {
	return fmt.Sprintf("%s %s", VotesStyle.Render(fmt.Sprintf("▲%d", it.Votes)), it.Title)
}

// RenderLaneColumn renders one lane bucket as a bordered column
func RenderLaneColumn(b roadmap.Bucket) string {
	border := scheme.LaneBorder
	if b.Lane.IsDoneStatus {
		border = scheme.DoneLaneBorder
	}
	return renderColumn(RenderLaneChip(b.Lane), b.Items, border)
}

// RenderBacklogColumn renders the backlog as a bordered column
func RenderBacklogColumn(items []models.Item) string {
	return renderColumn(SubtitleStyle.Bold(true).Render("[Backlog]"), items, scheme.BacklogBorder)
}

func renderColumn(header string, items []models.Item, border string) string {
	lines := []string{header, SubtitleStyle.Render(fmt.Sprintf("%d items", len(items))), ""}
	for _, it := range items {
		lines = append(lines, RenderItemLine(it))
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(border)).
		Padding(0, 1).
		Width(LaneWidth).
		Render(strings.Join(lines, "\n"))
}

// RenderBoard lays the lanes out side by side, backlog first when shown
func RenderBoard(board *models.Board, g roadmap.Grouping, showBacklog bool) string {
	var columns []string
	if showBacklog {
		columns = append(columns, RenderBacklogColumn(g.Backlog))
	}
	for _, b := range g.Buckets {
		columns = append(columns, RenderLaneColumn(b))
	}
	title := TitleStyle.Render(board.Name)
	if len(columns) == 0 {
		return title
	}
	return lipgloss.JoinVertical(lipgloss.Left, title, lipgloss.JoinHorizontal(lipgloss.Top, columns...))
}
