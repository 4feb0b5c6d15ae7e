// Package converters turns domain models into the JSON shapes printed by
// the CLI's --json mode
package converters

import (
	"time"

	"github.com/thenoetrevino/hito/internal/models"
)

// ItemJSON is the wire form of an item. A null lane means backlog.
type ItemJSON struct {
	ID          string   `json:"id"`
	BoardID     string   `json:"board_id"`
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Votes       int      `json:"votes"`
	Lane        *string  `json:"lane"`
	Order       *float64 `json:"order"`
	CompletedAt *string  `json:"completed_at"`
	CreatedAt   string   `json:"created_at"`
	UpdatedAt   string   `json:"updated_at"`
}

// ItemToJSON converts an item to its wire form
func ItemToJSON(it models.Item) ItemJSON {
	out := ItemJSON{
		ID:          string(it.ID),
		BoardID:     string(it.BoardID),
		Title:       it.Title,
		Description: it.Description,
		Votes:       it.Votes,
		Order:       it.Order,
		CreatedAt:   formatTime(it.CreatedAt),
		UpdatedAt:   formatTime(it.UpdatedAt),
	}
	if it.Lane != nil {
		lane := string(*it.Lane)
		out.Lane = &lane
	}
	if it.CompletedAt != nil {
		ts := formatTime(*it.CompletedAt)
		out.CompletedAt = &ts
	}
	return out
}

// ItemsToJSON converts a slice of items. It never returns nil.
func ItemsToJSON(items []models.Item) []ItemJSON {
	out := make([]ItemJSON, len(items))
	for i, it := range items {
		out[i] = ItemToJSON(it)
	}
	return out
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}
