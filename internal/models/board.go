package models

import (
	"time"

	"github.com/thenoetrevino/hito/internal/types"
)

// Organization is the tenant owning boards and custom lanes
type Organization struct {
	ID        types.OrgID
	Name      string
	CreatedAt time.Time
}

// GetID returns the organization ID as a string
func (o *Organization) GetID() string {
	return string(o.ID)
}

// Board is a feedback board; its items share the organization's lanes
type Board struct {
	ID        types.BoardID
	OrgID     types.OrgID
	Name      string
	CreatedAt time.Time
}

// GetID returns the board ID as a string
func (b *Board) GetID() string {
	return string(b.ID)
}
