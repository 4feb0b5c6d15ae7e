package types

import "github.com/google/uuid"

// ID types give each identifier its meaning in the domain model. All ids
// are opaque strings so that built-in lane keys and record UUIDs share a
// representation.

// OrgID identifies an organization (the tenant that owns boards and lanes)
type OrgID string

// BoardID identifies a feedback board within an organization
type BoardID string

// ItemID identifies a feedback item on a board
type ItemID string

// LaneID identifies a roadmap lane: either a built-in stage key or the id of
// an organization's custom lane record
type LaneID string

// TagID identifies an organization-scoped tag record
type TagID string

func (id OrgID) String() string   { return string(id) }
func (id BoardID) String() string { return string(id) }
func (id ItemID) String() string  { return string(id) }
func (id LaneID) String() string  { return string(id) }
func (id TagID) String() string   { return string(id) }

// LaneID returns the lane identity a tag record carries when it is a lane
func (id TagID) LaneID() LaneID { return LaneID(id) }

// NewOrgID allocates a fresh organization id
func NewOrgID() OrgID { return OrgID(uuid.NewString()) }

// NewBoardID allocates a fresh board id
func NewBoardID() BoardID { return BoardID(uuid.NewString()) }

// NewItemID allocates a fresh item id
func NewItemID() ItemID { return ItemID(uuid.NewString()) }

// NewTagID allocates a fresh tag id
func NewTagID() TagID { return TagID(uuid.NewString()) }
