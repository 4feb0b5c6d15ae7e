package board

import "errors"

// Organization and board validation errors
var (
	ErrEmptyName      = errors.New("name cannot be empty")
	ErrNameTooLong    = errors.New("name cannot exceed 100 characters")
	ErrInvalidOrgID   = errors.New("invalid organization ID")
	ErrInvalidBoardID = errors.New("invalid board ID")
)
