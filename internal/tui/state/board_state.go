// Package state holds the live board's data and cursor state
package state

import (
	"github.com/thenoetrevino/hito/internal/models"
	"github.com/thenoetrevino/hito/internal/roadmap"
	"github.com/thenoetrevino/hito/internal/types"
)

// Column is one navigable column of the live board: a lane bucket, or the
// backlog when Lane is nil
type Column struct {
	Lane  *models.Lane
	Items []models.Item
}

// Target is the move target naming this column
func (c Column) Target() string {
	if c.Lane == nil {
		return roadmap.Backlog
	}
	return string(c.Lane.ID)
}

// BoardState is the last loaded snapshot of the board
type BoardState struct {
	board    *models.Board
	lanes    roadmap.LaneSet
	grouping roadmap.Grouping
	dangling int
}

// NewBoardState creates an empty BoardState
func NewBoardState() *BoardState {
	return &BoardState{}
}

// Set replaces the snapshot
func (s *BoardState) Set(board *models.Board, lanes roadmap.LaneSet, grouping roadmap.Grouping, dangling int) {
	s.board = board
	s.lanes = lanes
	s.grouping = grouping
	s.dangling = dangling
}

// Loaded reports whether a snapshot has been set
func (s *BoardState) Loaded() bool {
	return s.board != nil
}

// Board returns the board record
func (s *BoardState) Board() *models.Board {
	return s.board
}

// Lanes returns the resolved lanes
func (s *BoardState) Lanes() roadmap.LaneSet {
	return s.lanes
}

// Dangling returns how many items sit in deleted lanes
func (s *BoardState) Dangling() int {
	return s.dangling
}

// Columns lists the navigable columns, the backlog first when shown
func (s *BoardState) Columns(showBacklog bool) []Column {
	cols := make([]Column, 0, len(s.grouping.Buckets)+1)
	if showBacklog {
		cols = append(cols, Column{Items: s.grouping.Backlog})
	}
	for i := range s.grouping.Buckets {
		b := s.grouping.Buckets[i]
		cols = append(cols, Column{Lane: &b.Lane, Items: b.Items})
	}
	return cols
}

// Locate finds the column and row of an item
func (s *BoardState) Locate(id types.ItemID, showBacklog bool) (col, row int, ok bool) {
	for c, column := range s.Columns(showBacklog) {
		for r, it := range column.Items {
			if it.ID == id {
				return c, r, true
			}
		}
	}
	return 0, 0, false
}
