package item

import "errors"

// Item-related errors
var (
	ErrEmptyTitle     = errors.New("item title cannot be empty")
	ErrTitleTooLong   = errors.New("item title cannot exceed 255 characters")
	ErrInvalidItemID  = errors.New("invalid item ID")
	ErrInvalidBoardID = errors.New("invalid board ID")
	ErrEmptyTarget    = errors.New("target lane cannot be empty")
	ErrNothingToVote  = errors.New("vote delta cannot be zero")
)
