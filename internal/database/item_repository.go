package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/thenoetrevino/hito/internal/models"
	"github.com/thenoetrevino/hito/internal/types"
)

// ItemRepo handles all item-related database operations
type ItemRepo struct {
	db *sql.DB
}

const itemColumns = `id, board_id, title, description, votes, lane_id, order_key, completed_at, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanItem(row rowScanner) (*models.Item, error) {
	var (
		it          models.Item
		lane        sql.NullString
		order       sql.NullFloat64
		completedAt sql.NullInt64
		createdAt   int64
		updatedAt   int64
	)
	if err := row.Scan(&it.ID, &it.BoardID, &it.Title, &it.Description, &it.Votes,
		&lane, &order, &completedAt, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	it.Lane = nullLaneToPtr(lane)
	it.Order = nullFloatToPtr(order)
	it.CompletedAt = nullMillisToPtr(completedAt)
	it.CreatedAt = fromMillis(createdAt)
	it.UpdatedAt = fromMillis(updatedAt)
	return &it, nil
}

// CreateItem inserts a new item. Items start in the backlog.
func (r *ItemRepo) CreateItem(ctx context.Context, item *models.Item) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO items (id, board_id, title, description, votes, lane_id, order_key, completed_at, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		string(item.ID), string(item.BoardID), item.Title, item.Description, item.Votes,
		lanePtrToNull(item.Lane), floatPtrToNull(item.Order), nullMillis(item.CompletedAt),
		toMillis(item.CreatedAt), toMillis(item.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("failed to create item: %w", err)
	}
	return nil
}

// GetItem retrieves an item by ID
func (r *ItemRepo) GetItem(ctx context.Context, id types.ItemID) (*models.Item, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+itemColumns+` FROM items WHERE id = ?`, string(id))
	it, err := scanItem(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.ErrItemNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get item: %w", err)
	}
	return it, nil
}

// ListItemsByBoard retrieves every item on a board. Ordering is left to the
// caller's grouping.
func (r *ItemRepo) ListItemsByBoard(ctx context.Context, boardID types.BoardID) ([]models.Item, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+itemColumns+` FROM items WHERE board_id = ? ORDER BY created_at, id`, string(boardID))
	if err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}
	defer rows.Close()

	items := []models.Item{}
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *it)
	}
	return items, rows.Err()
}

// UpdateItemDetails updates the inert display attributes of an item
func (r *ItemRepo) UpdateItemDetails(ctx context.Context, id types.ItemID, title, description string, now time.Time) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE items SET title = ?, description = ?, updated_at = ? WHERE id = ?`,
		title, description, toMillis(now), string(id))
	if err != nil {
		return fmt.Errorf("failed to update item: %w", err)
	}
	return requireRow(result, models.ErrItemNotFound)
}

// AddVotes adjusts an item's vote count by delta, never going below zero
func (r *ItemRepo) AddVotes(ctx context.Context, id types.ItemID, delta int, now time.Time) (int, error) {
	var votes int
	err := r.db.QueryRowContext(ctx,
		`UPDATE items SET votes = MAX(votes + ?, 0), updated_at = ? WHERE id = ? RETURNING votes`,
		delta, toMillis(now), string(id)).Scan(&votes)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, models.ErrItemNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("failed to vote on item: %w", err)
	}
	return votes, nil
}

// DeleteItem removes an item
func (r *ItemRepo) DeleteItem(ctx context.Context, id types.ItemID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM items WHERE id = ?`, string(id))
	if err != nil {
		return fmt.Errorf("failed to delete item: %w", err)
	}
	return requireRow(result, models.ErrItemNotFound)
}

// UpdateItem applies a field-level patch to an item as one statement.
// Concurrent patches resolve by last-write-wins on patch.UpdatedAt: a patch
// older than the last applied one is discarded in full and applied is false.
func (r *ItemRepo) UpdateItem(ctx context.Context, id types.ItemID, patch models.ItemPatch) (bool, error) {
	clock := toMillis(patch.UpdatedAt)

	query := `UPDATE items SET lane_id = ?, order_key = ?, transition_at = ?, updated_at = MAX(updated_at, ?)`
	args := []any{lanePtrToNull(patch.Lane), floatPtrToNull(patch.Order), clock, clock}
	if patch.TouchCompletedAt {
		query += `, completed_at = ?`
		args = append(args, nullMillis(patch.CompletedAt))
	}
	query += ` WHERE id = ? AND transition_at <= ?`
	args = append(args, string(id), clock)

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("failed to apply item patch: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	if n > 0 {
		return true, nil
	}

	// Either the item is gone or a newer transition already landed
	var exists int
	err = r.db.QueryRowContext(ctx, `SELECT 1 FROM items WHERE id = ?`, string(id)).Scan(&exists)
	if errors.Is(err, sql.ErrNoRows) {
		return false, models.ErrItemNotFound
	}
	if err != nil {
		return false, fmt.Errorf("failed to check item: %w", err)
	}
	return false, nil
}

// requireRow maps a zero-row write result to notFound
func requireRow(result sql.Result, notFound error) error {
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return notFound
	}
	return nil
}
