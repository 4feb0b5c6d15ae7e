package lane

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/thenoetrevino/hito/internal/database"
	"github.com/thenoetrevino/hito/internal/events"
	"github.com/thenoetrevino/hito/internal/models"
	"github.com/thenoetrevino/hito/internal/roadmap"
	"github.com/thenoetrevino/hito/internal/types"
)

// Service defines lane configuration operations for an organization
type Service interface {
	ListLanes(ctx context.Context, orgID types.OrgID) (roadmap.LaneSet, error)
	CreateLane(ctx context.Context, req CreateLaneRequest) (*models.Tag, error)
	UpdateLane(ctx context.Context, req UpdateLaneRequest) (*models.Tag, error)
	DeleteLane(ctx context.Context, id types.TagID) error
}

// CreateLaneRequest encapsulates all data needed to provision a custom lane
type CreateLaneRequest struct {
	OrgID        types.OrgID
	Name         string
	Color        string
	IsDoneStatus bool
}

// UpdateLaneRequest edits a custom lane.
// Fields with pointers are optional - nil means don't update
type UpdateLaneRequest struct {
	LaneID       types.TagID
	Name         *string
	Color        *string
	IsDoneStatus *bool
}

type service struct {
	repo        database.DataStore
	eventClient events.EventPublisher
	now         func() time.Time
}

// Option configures the lane service
type Option func(*service)

// WithClock overrides the time source used to stamp new lanes
func WithClock(now func() time.Time) Option {
	return func(s *service) { s.now = now }
}

// NewService creates a new lane service
func NewService(repo database.DataStore, eventClient events.EventPublisher, opts ...Option) Service {
	s := &service{
		repo:        repo,
		eventClient: eventClient,
		now:         func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ListLanes resolves the organization's lane configuration
func (s *service) ListLanes(ctx context.Context, orgID types.OrgID) (roadmap.LaneSet, error) {
	if orgID == "" {
		return roadmap.LaneSet{}, ErrInvalidOrgID
	}
	if _, err := s.repo.GetOrganization(ctx, orgID); err != nil {
		return roadmap.LaneSet{}, err
	}
	tags, err := s.repo.ListTagsByOrg(ctx, orgID)
	if err != nil {
		return roadmap.LaneSet{}, fmt.Errorf("failed to list lanes: %w", err)
	}
	return roadmap.ResolveLanes(tags), nil
}

// CreateLane provisions a custom lane after the organization's last one.
// The first custom lane switches every board of the organization off the
// built-in lanes.
func (s *service) CreateLane(ctx context.Context, req CreateLaneRequest) (*models.Tag, error) {
	if req.OrgID == "" {
		return nil, ErrInvalidOrgID
	}
	if _, err := s.repo.GetOrganization(ctx, req.OrgID); err != nil {
		return nil, err
	}

	existing, err := s.repo.ListTagsByOrg(ctx, req.OrgID)
	if err != nil {
		return nil, fmt.Errorf("failed to list lanes: %w", err)
	}

	tag, err := roadmap.NewLane(roadmap.NewLaneRequest{
		OrgID:        req.OrgID,
		Name:         req.Name,
		Color:        req.Color,
		IsDoneStatus: req.IsDoneStatus,
	}, existing, s.now())
	if err != nil {
		return nil, err
	}

	if err := s.repo.InsertTag(ctx, &tag); err != nil {
		return nil, fmt.Errorf("failed to create lane: %w", err)
	}

	s.publishLaneEvent(req.OrgID)
	return &tag, nil
}

// UpdateLane edits a custom lane. Changing the done flag does not touch the
// completion timestamps of items already in the lane.
func (s *service) UpdateLane(ctx context.Context, req UpdateLaneRequest) (*models.Tag, error) {
	tag, err := s.loadLane(ctx, req.LaneID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if err := roadmap.ValidateLaneName(name); err != nil {
			return nil, err
		}
		tag.Name = name
	}
	if req.Color != nil {
		if err := roadmap.ValidateColor(*req.Color); err != nil {
			return nil, err
		}
		tag.Color = *req.Color
	}
	if req.IsDoneStatus != nil {
		tag.IsDoneStatus = *req.IsDoneStatus
	}

	if err := s.repo.UpdateTag(ctx, tag); err != nil {
		return nil, fmt.Errorf("failed to update lane: %w", err)
	}

	s.publishLaneEvent(tag.OrgID)
	return tag, nil
}

// DeleteLane removes a custom lane. Items in it keep the now dangling lane
// reference and drop out of the grouped board until moved.
func (s *service) DeleteLane(ctx context.Context, id types.TagID) error {
	tag, err := s.loadLane(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repo.DeleteTag(ctx, tag.ID); err != nil {
		return fmt.Errorf("failed to delete lane: %w", err)
	}

	s.publishLaneEvent(tag.OrgID)
	return nil
}

// loadLane fetches a tag and checks that it is an editable roadmap lane
func (s *service) loadLane(ctx context.Context, id types.TagID) (*models.Tag, error) {
	if id == "" {
		return nil, ErrInvalidLaneID
	}
	if roadmap.IsBuiltInLane(id.LaneID()) {
		return nil, ErrBuiltInLane
	}
	tag, err := s.repo.GetTag(ctx, id)
	if err != nil {
		return nil, err
	}
	if !tag.IsRoadmapLane {
		return nil, ErrNotRoadmapLane
	}
	return tag, nil
}

// publishLaneEvent tells every board of the organization to regroup
func (s *service) publishLaneEvent(orgID types.OrgID) {
	if s.eventClient == nil {
		return
	}
	_ = events.DefaultRetry.Publish(s.eventClient, events.Event{
		Type:      events.EventBoardChanged,
		OrgID:     orgID,
		Timestamp: s.now(),
	})
}
