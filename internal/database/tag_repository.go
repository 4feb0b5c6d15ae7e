package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/thenoetrevino/hito/internal/models"
	"github.com/thenoetrevino/hito/internal/types"
)

// TagRepo handles organization tag records, including custom lanes
type TagRepo struct {
	db *sql.DB
}

const tagColumns = `id, org_id, name, color, is_roadmap_lane, display_order, is_done_status, created_at`

func scanTag(row rowScanner) (*models.Tag, error) {
	var (
		tag       models.Tag
		createdAt int64
	)
	if err := row.Scan(&tag.ID, &tag.OrgID, &tag.Name, &tag.Color, &tag.IsRoadmapLane,
		&tag.DisplayOrder, &tag.IsDoneStatus, &createdAt); err != nil {
		return nil, err
	}
	tag.CreatedAt = fromMillis(createdAt)
	return &tag, nil
}

// InsertTag creates a tag record
func (r *TagRepo) InsertTag(ctx context.Context, tag *models.Tag) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO tags (`+tagColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		string(tag.ID), string(tag.OrgID), tag.Name, tag.Color, tag.IsRoadmapLane,
		tag.DisplayOrder, tag.IsDoneStatus, toMillis(tag.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("failed to insert tag: %w", err)
	}
	return nil
}

// GetTag retrieves a tag by ID
func (r *TagRepo) GetTag(ctx context.Context, id types.TagID) (*models.Tag, error) {
	tag, err := scanTag(r.db.QueryRowContext(ctx,
		`SELECT `+tagColumns+` FROM tags WHERE id = ?`, string(id)))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.ErrTagNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get tag: %w", err)
	}
	return tag, nil
}

// ListTagsByOrg retrieves every tag of an organization, lanes and plain labels alike
func (r *TagRepo) ListTagsByOrg(ctx context.Context, orgID types.OrgID) ([]models.Tag, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+tagColumns+` FROM tags WHERE org_id = ? ORDER BY display_order, id`, string(orgID))
	if err != nil {
		return nil, fmt.Errorf("failed to list tags: %w", err)
	}
	defer rows.Close()

	tags := []models.Tag{}
	for rows.Next() {
		tag, err := scanTag(rows)
		if err != nil {
			return nil, err
		}
		tags = append(tags, *tag)
	}
	return tags, rows.Err()
}

// UpdateTag overwrites the mutable fields of a tag
func (r *TagRepo) UpdateTag(ctx context.Context, tag *models.Tag) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE tags SET name = ?, color = ?, is_done_status = ? WHERE id = ?`,
		tag.Name, tag.Color, tag.IsDoneStatus, string(tag.ID))
	if err != nil {
		return fmt.Errorf("failed to update tag: %w", err)
	}
	return requireRow(result, models.ErrTagNotFound)
}

// DeleteTag removes a tag. Items referencing it keep their lane id.
func (r *TagRepo) DeleteTag(ctx context.Context, id types.TagID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM tags WHERE id = ?`, string(id))
	if err != nil {
		return fmt.Errorf("failed to delete tag: %w", err)
	}
	return requireRow(result, models.ErrTagNotFound)
}
