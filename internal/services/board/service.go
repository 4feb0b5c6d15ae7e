package board

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/thenoetrevino/hito/internal/database"
	"github.com/thenoetrevino/hito/internal/models"
	"github.com/thenoetrevino/hito/internal/roadmap"
	"github.com/thenoetrevino/hito/internal/types"
)

const maxNameLength = 100

// Service defines organization and board operations
type Service interface {
	CreateOrganization(ctx context.Context, name string) (*models.Organization, error)
	ListOrganizations(ctx context.Context) ([]*models.Organization, error)
	CreateBoard(ctx context.Context, orgID types.OrgID, name string) (*models.Board, error)
	ListBoards(ctx context.Context, orgID types.OrgID) ([]*models.Board, error)
	GetBoard(ctx context.Context, id types.BoardID) (*BoardView, error)
}

// BoardView is a board grouped into its organization's lanes
type BoardView struct {
	Board    *models.Board
	Lanes    roadmap.LaneSet
	Grouping roadmap.Grouping
	// Dangling lists items whose lane no longer exists. They are not part
	// of Grouping.
	Dangling []models.Item
}

type service struct {
	repo database.DataStore
	now  func() time.Time
}

// Option configures the board service
type Option func(*service)

// WithClock overrides the time source used to stamp new records
func WithClock(now func() time.Time) Option {
	return func(s *service) { s.now = now }
}

// NewService creates a new board service
func NewService(repo database.DataStore, opts ...Option) Service {
	s := &service{
		repo: repo,
		now:  func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreateOrganization creates a tenant with no custom lanes
func (s *service) CreateOrganization(ctx context.Context, name string) (*models.Organization, error) {
	name, err := validateName(name)
	if err != nil {
		return nil, err
	}

	org := &models.Organization{
		ID:        types.NewOrgID(),
		Name:      name,
		CreatedAt: s.now(),
	}
	if err := s.repo.CreateOrganization(ctx, org); err != nil {
		return nil, err
	}
	return org, nil
}

// ListOrganizations retrieves all organizations
func (s *service) ListOrganizations(ctx context.Context) ([]*models.Organization, error) {
	return s.repo.ListOrganizations(ctx)
}

// CreateBoard creates a board under an existing organization
func (s *service) CreateBoard(ctx context.Context, orgID types.OrgID, name string) (*models.Board, error) {
	if orgID == "" {
		return nil, ErrInvalidOrgID
	}
	name, err := validateName(name)
	if err != nil {
		return nil, err
	}
	if _, err := s.repo.GetOrganization(ctx, orgID); err != nil {
		return nil, err
	}

	board := &models.Board{
		ID:        types.NewBoardID(),
		OrgID:     orgID,
		Name:      name,
		CreatedAt: s.now(),
	}
	if err := s.repo.CreateBoard(ctx, board); err != nil {
		return nil, err
	}
	return board, nil
}

// ListBoards retrieves the boards of an organization
func (s *service) ListBoards(ctx context.Context, orgID types.OrgID) ([]*models.Board, error) {
	if orgID == "" {
		return nil, ErrInvalidOrgID
	}
	if _, err := s.repo.GetOrganization(ctx, orgID); err != nil {
		return nil, err
	}
	return s.repo.ListBoards(ctx, orgID)
}

// GetBoard loads a board with its items grouped by lane
func (s *service) GetBoard(ctx context.Context, id types.BoardID) (*BoardView, error) {
	if id == "" {
		return nil, ErrInvalidBoardID
	}
	board, err := s.repo.GetBoard(ctx, id)
	if err != nil {
		return nil, err
	}

	tags, err := s.repo.ListTagsByOrg(ctx, board.OrgID)
	if err != nil {
		return nil, fmt.Errorf("failed to load lanes: %w", err)
	}
	items, err := s.repo.ListItemsByBoard(ctx, board.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load items: %w", err)
	}

	lanes := roadmap.ResolveLanes(tags)
	return &BoardView{
		Board:    board,
		Lanes:    lanes,
		Grouping: roadmap.GroupByLane(lanes, items),
		Dangling: roadmap.Dangling(lanes, items),
	}, nil
}

func validateName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", ErrEmptyName
	}
	if utf8.RuneCountInString(name) > maxNameLength {
		return "", ErrNameTooLong
	}
	return name, nil
}
