package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/thenoetrevino/hito/internal/models"
	"github.com/thenoetrevino/hito/internal/types"
)

// OrgRepo handles organization and board persistence
type OrgRepo struct {
	db *sql.DB
}

// CreateOrganization inserts an organization record
func (r *OrgRepo) CreateOrganization(ctx context.Context, org *models.Organization) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO organizations (id, name, created_at) VALUES (?, ?, ?)`,
		string(org.ID), org.Name, toMillis(org.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("failed to create organization: %w", err)
	}
	return nil
}

// GetOrganization retrieves an organization by ID
func (r *OrgRepo) GetOrganization(ctx context.Context, id types.OrgID) (*models.Organization, error) {
	var org models.Organization
	var createdAt int64
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, created_at FROM organizations WHERE id = ?`, string(id),
	).Scan(&org.ID, &org.Name, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.ErrOrganizationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get organization: %w", err)
	}
	org.CreatedAt = fromMillis(createdAt)
	return &org, nil
}

// ListOrganizations retrieves all organizations ordered by name
func (r *OrgRepo) ListOrganizations(ctx context.Context) ([]*models.Organization, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, created_at FROM organizations ORDER BY name, id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list organizations: %w", err)
	}
	defer rows.Close()

	var orgs []*models.Organization
	for rows.Next() {
		org := &models.Organization{}
		var createdAt int64
		if err := rows.Scan(&org.ID, &org.Name, &createdAt); err != nil {
			return nil, err
		}
		org.CreatedAt = fromMillis(createdAt)
		orgs = append(orgs, org)
	}
	return orgs, rows.Err()
}

// CreateBoard inserts a board record
func (r *OrgRepo) CreateBoard(ctx context.Context, board *models.Board) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO boards (id, org_id, name, created_at) VALUES (?, ?, ?, ?)`,
		string(board.ID), string(board.OrgID), board.Name, toMillis(board.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("failed to create board: %w", err)
	}
	return nil
}

// GetBoard retrieves a board by ID
func (r *OrgRepo) GetBoard(ctx context.Context, id types.BoardID) (*models.Board, error) {
	var board models.Board
	var createdAt int64
	err := r.db.QueryRowContext(ctx,
		`SELECT id, org_id, name, created_at FROM boards WHERE id = ?`, string(id),
	).Scan(&board.ID, &board.OrgID, &board.Name, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.ErrBoardNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get board: %w", err)
	}
	board.CreatedAt = fromMillis(createdAt)
	return &board, nil
}

// ListBoards retrieves all boards of an organization ordered by name
func (r *OrgRepo) ListBoards(ctx context.Context, orgID types.OrgID) ([]*models.Board, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, org_id, name, created_at FROM boards WHERE org_id = ? ORDER BY name, id`,
		string(orgID))
	if err != nil {
		return nil, fmt.Errorf("failed to list boards: %w", err)
	}
	defer rows.Close()

	var boards []*models.Board
	for rows.Next() {
		board := &models.Board{}
		var createdAt int64
		if err := rows.Scan(&board.ID, &board.OrgID, &board.Name, &createdAt); err != nil {
			return nil, err
		}
		board.CreatedAt = fromMillis(createdAt)
		boards = append(boards, board)
	}
	return boards, rows.Err()
}
