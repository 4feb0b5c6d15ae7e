package roadmap

import (
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/thenoetrevino/hito/internal/models"
	"github.com/thenoetrevino/hito/internal/types"
)

// MaxLaneNameLength bounds custom lane names
const MaxLaneNameLength = 50

var hexColor = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// NewLaneRequest describes a custom lane to provision
type NewLaneRequest struct {
	OrgID        types.OrgID
	Name         string
	Color        string
	IsDoneStatus bool
}

// NextDisplayOrder allocates the display order for a new custom lane: the
// largest display order among the existing roadmap lanes plus OrderStep.
// Two lanes provisioned concurrently may receive the same value.
func NextDisplayOrder(tags []models.Tag) float64 {
	var highest float64
	seen := false
	for _, t := range tags {
		if !t.IsRoadmapLane {
			continue
		}
		if !seen || t.DisplayOrder > highest {
			highest = t.DisplayOrder
			seen = true
		}
	}
	return highest + OrderStep
}

// ValidateLaneName checks a lane name against the naming rules
func ValidateLaneName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrEmptyName
	}
	if utf8.RuneCountInString(name) > MaxLaneNameLength {
		return ErrNameTooLong
	}
	return nil
}

// ValidateColor checks that color is a #RRGGBB hex string
func ValidateColor(color string) error {
	if !hexColor.MatchString(color) {
		return ErrInvalidColor
	}
	return nil
}

// NewLane builds the tag record for a new custom lane. It does not persist
// anything.
func NewLane(req NewLaneRequest, existing []models.Tag, now time.Time) (models.Tag, error) {
	name := strings.TrimSpace(req.Name)
	if err := ValidateLaneName(name); err != nil {
		return models.Tag{}, err
	}
	if err := ValidateColor(req.Color); err != nil {
		return models.Tag{}, err
	}

	return models.Tag{
		ID:            types.NewTagID(),
		OrgID:         req.OrgID,
		Name:          name,
		Color:         req.Color,
		IsRoadmapLane: true,
		DisplayOrder:  NextDisplayOrder(existing),
		IsDoneStatus:  req.IsDoneStatus,
		CreatedAt:     now,
	}, nil
}
