package roadmap

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/hito/internal/models"
)

func TestNextDisplayOrder(t *testing.T) {
	t.Parallel()

	assert.Equal(t, float64(1000), NextDisplayOrder(nil))

	tags := []models.Tag{
		laneTag("a", "A", 1000, false),
		laneTag("b", "B", 4500, true),
		{ID: "label", Name: "Label", DisplayOrder: 99000},
	}
	assert.Equal(t, float64(5500), NextDisplayOrder(tags), "plain labels must not count")

	negative := []models.Tag{
		laneTag("a", "A", -3000, false),
		laneTag("b", "B", -4000, false),
		{ID: "label", Name: "Label", DisplayOrder: 500},
	}
	assert.Equal(t, float64(-2000), NextDisplayOrder(negative))
}

func TestNewLane(t *testing.T) {
	t.Parallel()

	existing := []models.Tag{laneTag("a", "Planned", 1000, false)}

	tag, err := NewLane(NewLaneRequest{
		OrgID:        "org-1",
		Name:         "  Shipped ",
		Color:        "#22C55E",
		IsDoneStatus: true,
	}, existing, testNow)
	require.NoError(t, err)

	assert.NotEmpty(t, tag.ID)
	assert.Equal(t, "Shipped", tag.Name)
	assert.True(t, tag.IsRoadmapLane)
	assert.True(t, tag.IsDoneStatus)
	assert.Equal(t, float64(2000), tag.DisplayOrder)
	assert.Equal(t, testNow, tag.CreatedAt)

	// Monotonic in creation order
	next, err := NewLane(NewLaneRequest{OrgID: "org-1", Name: "Later", Color: "#000000"},
		append(existing, tag), testNow)
	require.NoError(t, err)
	assert.Greater(t, next.DisplayOrder, tag.DisplayOrder)
	assert.NotEqual(t, tag.ID, next.ID)
}

func TestNewLane_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		req  NewLaneRequest
		want error
	}{
		{"empty name", NewLaneRequest{Name: "   ", Color: "#FFFFFF"}, ErrEmptyName},
		{"long name", NewLaneRequest{Name: strings.Repeat("a", 51), Color: "#FFFFFF"}, ErrNameTooLong},
		{"long multibyte name", NewLaneRequest{Name: strings.Repeat("完", 51), Color: "#FFFFFF"}, ErrNameTooLong},
		{"bad color", NewLaneRequest{Name: "Ok", Color: "red"}, ErrInvalidColor},
		{"short color", NewLaneRequest{Name: "Ok", Color: "#FFF"}, ErrInvalidColor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := NewLane(tt.req, nil, testNow)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestValidateLaneName_CountsCharacters(t *testing.T) {
	t.Parallel()

	assert.NoError(t, ValidateLaneName(strings.Repeat("完", MaxLaneNameLength)))
	assert.NoError(t, ValidateLaneName(strings.Repeat("é", MaxLaneNameLength)))
	assert.ErrorIs(t, ValidateLaneName(strings.Repeat("é", MaxLaneNameLength+1)), ErrNameTooLong)
}

func TestNewLane_SwitchesResolverToCustom(t *testing.T) {
	t.Parallel()

	tag, err := NewLane(NewLaneRequest{OrgID: "org-1", Name: "Now", Color: "#123456"}, nil, testNow)
	require.NoError(t, err)

	set := ResolveLanes([]models.Tag{tag})
	assert.Equal(t, SourceCustom, set.Source)
	assert.Equal(t, 1, set.Len())
}
