package database

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/hito/internal/models"
	"github.com/thenoetrevino/hito/internal/types"
)

func TestTagRepo_Lifecycle(t *testing.T) {
	t.Parallel()
	repo := NewRepository(setupTestDB(t))
	ctx := context.Background()
	orgID, boardID := seedBoard(t, repo)

	shipped := &models.Tag{
		ID: types.NewTagID(), OrgID: orgID, Name: "Shipped", Color: "#22C55E",
		IsRoadmapLane: true, DisplayOrder: 2000, IsDoneStatus: true, CreatedAt: baseTime,
	}
	planned := &models.Tag{
		ID: types.NewTagID(), OrgID: orgID, Name: "Planned", Color: "#7D56F4",
		IsRoadmapLane: true, DisplayOrder: 1000, CreatedAt: baseTime,
	}
	label := &models.Tag{ID: types.NewTagID(), OrgID: orgID, Name: "Bug", Color: "#FF0000", CreatedAt: baseTime}
	for _, tag := range []*models.Tag{shipped, planned, label} {
		require.NoError(t, repo.InsertTag(ctx, tag))
	}

	tags, err := repo.ListTagsByOrg(ctx, orgID)
	require.NoError(t, err)
	require.Len(t, tags, 3)
	assert.Equal(t, "Bug", tags[0].Name)
	assert.Equal(t, "Planned", tags[1].Name)
	assert.Equal(t, "Shipped", tags[2].Name)
	assert.True(t, tags[2].IsRoadmapLane)
	assert.True(t, tags[2].IsDoneStatus)
	assert.False(t, tags[0].IsRoadmapLane)

	shipped.Name = "Released"
	shipped.IsDoneStatus = false
	require.NoError(t, repo.UpdateTag(ctx, shipped))

	got, err := repo.GetTag(ctx, shipped.ID)
	require.NoError(t, err)
	assert.Equal(t, "Released", got.Name)
	assert.False(t, got.IsDoneStatus)
	assert.Equal(t, float64(2000), got.DisplayOrder)

	// Deleting a lane leaves items pointing at it
	it := seedItem(t, repo, boardID, "Pinned")
	_, err = repo.UpdateItem(ctx, it.ID, models.ItemPatch{
		Lane: lanePtr(string(planned.ID)), Order: floatPtr(1000), UpdatedAt: baseTime,
	})
	require.NoError(t, err)
	require.NoError(t, repo.DeleteTag(ctx, planned.ID))

	orphan, err := repo.GetItem(ctx, it.ID)
	require.NoError(t, err)
	require.NotNil(t, orphan.Lane)
	assert.Equal(t, planned.ID.LaneID(), *orphan.Lane)

	_, err = repo.GetTag(ctx, planned.ID)
	assert.ErrorIs(t, err, models.ErrTagNotFound)
	assert.ErrorIs(t, repo.DeleteTag(ctx, planned.ID), models.ErrTagNotFound)
}
