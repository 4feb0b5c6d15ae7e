package models

import "errors"

// Lookup errors shared by the repositories and services
var (
	ErrOrganizationNotFound = errors.New("organization not found")
	ErrBoardNotFound        = errors.New("board not found")
	ErrItemNotFound         = errors.New("item not found")
	ErrTagNotFound          = errors.New("tag not found")
)
