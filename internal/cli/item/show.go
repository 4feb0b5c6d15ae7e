package item

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/hito/internal/cli"
	"github.com/thenoetrevino/hito/internal/cli/styles"
	"github.com/thenoetrevino/hito/internal/converters"
	"github.com/thenoetrevino/hito/internal/models"
	"github.com/thenoetrevino/hito/internal/roadmap"
	"github.com/thenoetrevino/hito/internal/types"
)

// ShowCmd returns the item show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <item-id>",
		Short: "Show an item with its rendered description",
		Args:  cobra.ExactArgs(1),
		RunE:  runShow,
	}
	cli.AddOutputFlags(cmd)
	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
	id := types.ItemID(args[0])

	return withCLI(cmd, func(c *cli.CLI, formatter *cli.OutputFormatter) error {
		ctx := cmd.Context()
		it, err := c.App.ItemService.GetItem(ctx, id)
		if err != nil {
			return formatter.Fail("ITEM_NOT_FOUND", err)
		}

		if formatter.Quiet {
			fmt.Println(it.ID)
			return nil
		}
		if formatter.JSON {
			return formatter.JSONSuccess("item", converters.ItemToJSON(*it))
		}

		view, err := c.App.BoardService.GetBoard(ctx, it.BoardID)
		if err != nil {
			return formatter.Fail("BOARD_NOT_FOUND", err)
		}
		fmt.Println(styles.RenderCard(renderItem(*it, view.Lanes)))
		return nil
	})
}

func renderItem(it models.Item, lanes roadmap.LaneSet) string {
	var b strings.Builder
	b.WriteString(styles.TitleStyle.Render(it.Title))
	b.WriteString("\n\n")

	lane := styles.SubtitleStyle.Render("backlog")
	if it.Lane != nil {
		if l, ok := lanes.Lookup(*it.Lane); ok {
			lane = styles.RenderLaneChip(l)
		} else {
			lane = styles.ErrorStyle.Render(fmt.Sprintf("%s (deleted)", *it.Lane))
		}
	}
	fmt.Fprintf(&b, "%s %s\n", styles.LabelStyle.Render("Lane:"), lane)
	fmt.Fprintf(&b, "%s %s\n", styles.LabelStyle.Render("Votes:"), styles.VotesStyle.Render(fmt.Sprint(it.Votes)))
	if it.CompletedAt != nil {
		fmt.Fprintf(&b, "%s %s\n", styles.LabelStyle.Render("Completed:"), styles.ValueStyle.Render(it.CompletedAt.Local().Format("2006-01-02 15:04")))
	}
	fmt.Fprintf(&b, "%s %s\n", styles.LabelStyle.Render("ID:"), styles.SubtitleStyle.Render(string(it.ID)))

	if it.Description != "" {
		b.WriteString("\n")
		b.WriteString(renderMarkdown(it.Description, styles.CardWidth-6))
	}
	return strings.TrimRight(b.String(), "\n")
}

// renderMarkdown renders a description, falling back to the raw text
func renderMarkdown(md string, width int) string {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return strings.TrimSpace(out)
}
