package roadmap

import "errors"

var (
	// ErrUnknownLane is returned when a transition targets a lane that is not
	// part of the resolved configuration
	ErrUnknownLane = errors.New("unknown lane")

	// Lane provisioning validation errors
	ErrEmptyName    = errors.New("name cannot be empty")
	ErrNameTooLong  = errors.New("name cannot exceed 50 characters")
	ErrInvalidColor = errors.New("color must be in hex format #RRGGBB")
)
