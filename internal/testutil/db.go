// Package testutil holds shared fixtures for hito's package tests
package testutil

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/thenoetrevino/hito/internal/database"
	"github.com/thenoetrevino/hito/internal/models"
	"github.com/thenoetrevino/hito/internal/types"
	_ "modernc.org/sqlite"
)

// BaseTime is a fixed instant seeded rows are stamped with
var BaseTime = time.UnixMilli(1700000000000).UTC()

// SetupTestDB creates an in-memory database with the full schema
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}

	// Every pooled connection would otherwise open its own empty database
	db.SetMaxOpenConns(1)

	ctx := context.Background()
	if err := database.Configure(ctx, db); err != nil {
		t.Fatalf("Failed to configure database: %v", err)
	}
	if err := database.RunMigrations(ctx, db); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	t.Cleanup(func() { _ = db.Close() })
	return db
}

// SetupTestRepo returns a repository over a fresh in-memory database
func SetupTestRepo(t *testing.T) *database.Repository {
	t.Helper()
	return database.NewRepository(SetupTestDB(t))
}

// SeedOrgBoard inserts an organization with one board
func SeedOrgBoard(t *testing.T, repo database.OrgRepository, orgName, boardName string) (*models.Organization, *models.Board) {
	t.Helper()
	ctx := context.Background()

	org := &models.Organization{ID: types.NewOrgID(), Name: orgName, CreatedAt: BaseTime}
	if err := repo.CreateOrganization(ctx, org); err != nil {
		t.Fatalf("Failed to seed organization: %v", err)
	}
	board := &models.Board{ID: types.NewBoardID(), OrgID: org.ID, Name: boardName, CreatedAt: BaseTime}
	if err := repo.CreateBoard(ctx, board); err != nil {
		t.Fatalf("Failed to seed board: %v", err)
	}
	return org, board
}

// SeedLane inserts a custom roadmap lane
func SeedLane(t *testing.T, repo database.TagWriter, orgID types.OrgID, name string, order float64, done bool) *models.Tag {
	t.Helper()
	tag := &models.Tag{
		ID:            types.NewTagID(),
		OrgID:         orgID,
		Name:          name,
		Color:         "#7D56F4",
		IsRoadmapLane: true,
		DisplayOrder:  order,
		IsDoneStatus:  done,
		CreatedAt:     BaseTime,
	}
	if err := repo.InsertTag(context.Background(), tag); err != nil {
		t.Fatalf("Failed to seed lane: %v", err)
	}
	return tag
}

// SeedItem inserts an item. A nil lane leaves it in the backlog.
func SeedItem(t *testing.T, repo database.DataStore, boardID types.BoardID, title string, lane *types.LaneID, order *float64) *models.Item {
	t.Helper()
	ctx := context.Background()

	it := &models.Item{
		ID:        types.NewItemID(),
		BoardID:   boardID,
		Title:     title,
		CreatedAt: BaseTime,
		UpdatedAt: BaseTime,
	}
	if err := repo.CreateItem(ctx, it); err != nil {
		t.Fatalf("Failed to seed item: %v", err)
	}
	if lane != nil {
		if _, err := repo.UpdateItem(ctx, it.ID, models.ItemPatch{Lane: lane, Order: order, UpdatedAt: BaseTime}); err != nil {
			t.Fatalf("Failed to place seeded item: %v", err)
		}
		it.Lane, it.Order = lane, order
	}
	return it
}

// LanePtr returns a pointer to a lane id
func LanePtr[T ~string](id T) *types.LaneID {
	l := types.LaneID(id)
	return &l
}

// FloatPtr returns a pointer to f
func FloatPtr(f float64) *float64 {
	return &f
}
