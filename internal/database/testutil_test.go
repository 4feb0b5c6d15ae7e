package database

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/hito/internal/models"
	"github.com/thenoetrevino/hito/internal/types"
	_ "modernc.org/sqlite"
)

// setupTestDB creates an in-memory database and runs migrations
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)

	// Every pooled connection would otherwise get its own empty memory db
	db.SetMaxOpenConns(1)

	ctx := context.Background()
	require.NoError(t, Configure(ctx, db))
	require.NoError(t, RunMigrations(ctx, db))

	t.Cleanup(func() { _ = db.Close() })
	return db
}

var baseTime = time.UnixMilli(1700000000000).UTC()

// seedBoard creates an organization with one board
func seedBoard(t *testing.T, repo *Repository) (types.OrgID, types.BoardID) {
	t.Helper()
	ctx := context.Background()

	org := &models.Organization{ID: types.NewOrgID(), Name: "Acme", CreatedAt: baseTime}
	require.NoError(t, repo.CreateOrganization(ctx, org))

	board := &models.Board{ID: types.NewBoardID(), OrgID: org.ID, Name: "Feedback", CreatedAt: baseTime}
	require.NoError(t, repo.CreateBoard(ctx, board))

	return org.ID, board.ID
}

// seedItem creates a backlog item on the board
func seedItem(t *testing.T, repo *Repository, boardID types.BoardID, title string) *models.Item {
	t.Helper()
	it := &models.Item{
		ID:        types.NewItemID(),
		BoardID:   boardID,
		Title:     title,
		CreatedAt: baseTime,
		UpdatedAt: baseTime,
	}
	require.NoError(t, repo.CreateItem(context.Background(), it))
	return it
}
