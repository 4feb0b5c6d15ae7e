package database

import (
	"context"
	"time"

	"github.com/thenoetrevino/hito/internal/models"
	"github.com/thenoetrevino/hito/internal/types"
)

// OrgRepository covers organizations and their boards
type OrgRepository interface {
	CreateOrganization(ctx context.Context, org *models.Organization) error
	GetOrganization(ctx context.Context, id types.OrgID) (*models.Organization, error)
	ListOrganizations(ctx context.Context) ([]*models.Organization, error)
	CreateBoard(ctx context.Context, board *models.Board) error
	GetBoard(ctx context.Context, id types.BoardID) (*models.Board, error)
	ListBoards(ctx context.Context, orgID types.OrgID) ([]*models.Board, error)
}

// ItemReader defines read operations for items
type ItemReader interface {
	GetItem(ctx context.Context, id types.ItemID) (*models.Item, error)
	ListItemsByBoard(ctx context.Context, boardID types.BoardID) ([]models.Item, error)
}

// ItemWriter defines write operations for items
type ItemWriter interface {
	CreateItem(ctx context.Context, item *models.Item) error
	UpdateItem(ctx context.Context, id types.ItemID, patch models.ItemPatch) (bool, error)
	UpdateItemDetails(ctx context.Context, id types.ItemID, title, description string, now time.Time) error
	AddVotes(ctx context.Context, id types.ItemID, delta int, now time.Time) (int, error)
	DeleteItem(ctx context.Context, id types.ItemID) error
}

// ItemRepository combines all item operations
type ItemRepository interface {
	ItemReader
	ItemWriter
}

// TagReader defines read operations for tags
type TagReader interface {
	GetTag(ctx context.Context, id types.TagID) (*models.Tag, error)
	ListTagsByOrg(ctx context.Context, orgID types.OrgID) ([]models.Tag, error)
}

// TagWriter defines write operations for tags
type TagWriter interface {
	InsertTag(ctx context.Context, tag *models.Tag) error
	UpdateTag(ctx context.Context, tag *models.Tag) error
	DeleteTag(ctx context.Context, id types.TagID) error
}

// TagRepository combines all tag operations
type TagRepository interface {
	TagReader
	TagWriter
}

// DataStore defines the unified interface for all data operations.
// Consumers should depend on the smaller interfaces where they can.
type DataStore interface {
	OrgRepository
	ItemRepository
	TagRepository
}

// Compile-time verification that *Repository implements DataStore
var _ DataStore = (*Repository)(nil)
