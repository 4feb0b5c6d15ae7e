package item

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/thenoetrevino/hito/internal/database"
	"github.com/thenoetrevino/hito/internal/events"
	"github.com/thenoetrevino/hito/internal/models"
	"github.com/thenoetrevino/hito/internal/roadmap"
	"github.com/thenoetrevino/hito/internal/types"
)

const maxTitleLength = 255

// Service defines all item-related business operations
type Service interface {
	// Read operations
	GetItem(ctx context.Context, id types.ItemID) (*models.Item, error)
	ListItems(ctx context.Context, boardID types.BoardID) ([]models.Item, error)

	// Write operations
	CreateItem(ctx context.Context, req CreateItemRequest) (*models.Item, error)
	UpdateItem(ctx context.Context, req UpdateItemRequest) (*models.Item, error)
	Vote(ctx context.Context, id types.ItemID, delta int) (int, error)
	DeleteItem(ctx context.Context, id types.ItemID) error

	// Lane transitions
	MoveItem(ctx context.Context, id types.ItemID, target string) (*MoveResult, error)
}

// Mutator persists transition patches. Implementations resolve concurrent
// patches to the same item by last-write-wins on patch.UpdatedAt and report
// whether the patch was applied.
type Mutator interface {
	UpdateItem(ctx context.Context, id types.ItemID, patch models.ItemPatch) (bool, error)
}

// CreateItemRequest encapsulates all data needed to create an item
type CreateItemRequest struct {
	BoardID     types.BoardID
	Title       string
	Description string
}

// UpdateItemRequest encapsulates an item edit.
// Fields with pointers are optional - nil means don't update
type UpdateItemRequest struct {
	ItemID      types.ItemID
	Title       *string
	Description *string
}

// MoveResult is the outcome of MoveItem
type MoveResult struct {
	Transition roadmap.Transition
	// Applied is false when a newer concurrent transition already won
	Applied bool
	// Item is the item as stored afterwards. When Applied is false it holds
	// the state written by the newer transition, not this one.
	Item models.Item
}

// service implements Service interface
type service struct {
	repo        database.DataStore
	mutator     Mutator
	eventClient events.EventPublisher
	now         func() time.Time
}

// Option configures the item service
type Option func(*service)

// WithClock overrides the time source used to stamp writes
func WithClock(now func() time.Time) Option {
	return func(s *service) { s.now = now }
}

// WithMutator routes transition patches through m instead of the repository
func WithMutator(m Mutator) Option {
	return func(s *service) { s.mutator = m }
}

// NewService creates a new item service
func NewService(repo database.DataStore, eventClient events.EventPublisher, opts ...Option) Service {
	s := &service{
		repo:        repo,
		mutator:     repo,
		eventClient: eventClient,
		now:         func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// GetItem retrieves one item
func (s *service) GetItem(ctx context.Context, id types.ItemID) (*models.Item, error) {
	if id == "" {
		return nil, ErrInvalidItemID
	}
	return s.repo.GetItem(ctx, id)
}

// ListItems retrieves every item on a board
func (s *service) ListItems(ctx context.Context, boardID types.BoardID) ([]models.Item, error) {
	if boardID == "" {
		return nil, ErrInvalidBoardID
	}
	if _, err := s.repo.GetBoard(ctx, boardID); err != nil {
		return nil, err
	}
	return s.repo.ListItemsByBoard(ctx, boardID)
}

// CreateItem adds an item to a board. New items start in the backlog.
func (s *service) CreateItem(ctx context.Context, req CreateItemRequest) (*models.Item, error) {
	title := strings.TrimSpace(req.Title)
	if err := validateTitle(title); err != nil {
		return nil, err
	}
	if req.BoardID == "" {
		return nil, ErrInvalidBoardID
	}

	board, err := s.repo.GetBoard(ctx, req.BoardID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	it := &models.Item{
		ID:          types.NewItemID(),
		BoardID:     board.ID,
		Title:       title,
		Description: req.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.repo.CreateItem(ctx, it); err != nil {
		return nil, fmt.Errorf("failed to create item: %w", err)
	}

	s.publishItemEvent(board, it.ID)
	return it, nil
}

// UpdateItem edits an item's title or description. Lane, order and
// completion only change through MoveItem.
func (s *service) UpdateItem(ctx context.Context, req UpdateItemRequest) (*models.Item, error) {
	if req.ItemID == "" {
		return nil, ErrInvalidItemID
	}

	current, err := s.repo.GetItem(ctx, req.ItemID)
	if err != nil {
		return nil, err
	}

	title, description := current.Title, current.Description
	if req.Title != nil {
		title = strings.TrimSpace(*req.Title)
		if err := validateTitle(title); err != nil {
			return nil, err
		}
	}
	if req.Description != nil {
		description = *req.Description
	}

	now := s.now()
	if err := s.repo.UpdateItemDetails(ctx, current.ID, title, description, now); err != nil {
		return nil, fmt.Errorf("failed to update item: %w", err)
	}

	current.Title, current.Description, current.UpdatedAt = title, description, now
	s.publishForBoard(ctx, current.BoardID, current.ID)
	return current, nil
}

// Vote adjusts an item's votes by delta and returns the new total
func (s *service) Vote(ctx context.Context, id types.ItemID, delta int) (int, error) {
	if id == "" {
		return 0, ErrInvalidItemID
	}
	if delta == 0 {
		return 0, ErrNothingToVote
	}

	current, err := s.repo.GetItem(ctx, id)
	if err != nil {
		return 0, err
	}

	votes, err := s.repo.AddVotes(ctx, id, delta, s.now())
	if err != nil {
		return 0, err
	}

	s.publishForBoard(ctx, current.BoardID, id)
	return votes, nil
}

// DeleteItem removes an item
func (s *service) DeleteItem(ctx context.Context, id types.ItemID) error {
	if id == "" {
		return ErrInvalidItemID
	}

	current, err := s.repo.GetItem(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repo.DeleteItem(ctx, id); err != nil {
		return fmt.Errorf("failed to delete item: %w", err)
	}

	s.publishForBoard(ctx, current.BoardID, id)
	return nil
}

// MoveItem moves an item into target, a lane id of the board's resolved
// configuration or roadmap.Backlog. The move is planned against the board
// as currently stored and persisted as one patch.
func (s *service) MoveItem(ctx context.Context, id types.ItemID, target string) (*MoveResult, error) {
	if id == "" {
		return nil, ErrInvalidItemID
	}
	target = strings.TrimSpace(target)
	if target == "" {
		return nil, ErrEmptyTarget
	}

	current, err := s.repo.GetItem(ctx, id)
	if err != nil {
		return nil, err
	}
	board, err := s.repo.GetBoard(ctx, current.BoardID)
	if err != nil {
		return nil, err
	}
	tags, err := s.repo.ListTagsByOrg(ctx, board.OrgID)
	if err != nil {
		return nil, fmt.Errorf("failed to load lanes: %w", err)
	}
	items, err := s.repo.ListItemsByBoard(ctx, board.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load board items: %w", err)
	}

	lanes := roadmap.ResolveLanes(tags)
	grouping := roadmap.GroupByLane(lanes, items)

	tr, err := roadmap.PlanTransition(*current, target, lanes, grouping, s.now())
	if err != nil {
		return nil, err
	}

	applied, err := s.mutator.UpdateItem(ctx, current.ID, tr.Patch())
	if err != nil {
		return nil, fmt.Errorf("failed to move item: %w", err)
	}

	moved := tr.Apply(*current)
	if applied {
		s.publishItemEvent(board, current.ID)
	} else {
		slog.Info("item move superseded by a newer transition",
			"item_id", current.ID, "target", target)
		stored, err := s.repo.GetItem(ctx, current.ID)
		if err != nil {
			return nil, err
		}
		moved = *stored
	}

	return &MoveResult{
		Transition: tr,
		Applied:    applied,
		Item:       moved,
	}, nil
}

func validateTitle(title string) error {
	if title == "" {
		return ErrEmptyTitle
	}
	if utf8.RuneCountInString(title) > maxTitleLength {
		return ErrTitleTooLong
	}
	return nil
}

// publishForBoard looks up the board's organization and publishes a change
func (s *service) publishForBoard(ctx context.Context, boardID types.BoardID, itemID types.ItemID) {
	if s.eventClient == nil {
		return
	}
	board, err := s.repo.GetBoard(ctx, boardID)
	if err != nil {
		slog.Warn("skipping item event", "board_id", boardID, "error", err)
		return
	}
	s.publishItemEvent(board, itemID)
}

// publishItemEvent notifies live boards. Failures never fail the write.
func (s *service) publishItemEvent(board *models.Board, itemID types.ItemID) {
	if s.eventClient == nil {
		return
	}
	_ = events.DefaultRetry.Publish(s.eventClient, events.Event{
		Type:      events.EventBoardChanged,
		OrgID:     board.OrgID,
		BoardID:   board.ID,
		ItemID:    itemID,
		Timestamp: s.now(),
	})
}
