package lane

import "errors"

// Lane-related errors
var (
	ErrInvalidOrgID   = errors.New("invalid organization ID")
	ErrInvalidLaneID  = errors.New("invalid lane ID")
	ErrNotRoadmapLane = errors.New("tag is not a roadmap lane")
	ErrBuiltInLane    = errors.New("built-in lanes cannot be modified")
)
