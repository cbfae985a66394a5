package config

import "github.com/m-mizutani/goerr/v2"

// Sentinel errors for schema validation
var (
	ErrMissingAttributeID   = goerr.New("attribute ID is required")
	ErrReservedAttributeID  = goerr.New("attribute ID is reserved")
	ErrDuplicateAttributeID = goerr.New("duplicate attribute ID")
	ErrInvalidValueType     = goerr.New("invalid value type")
	ErrMissingSectionID     = goerr.New("section ID is required")
	ErrDuplicateSectionID   = goerr.New("duplicate section ID")
	ErrUnknownMoveSource    = goerr.New("move source is not declared in the section")
)

// Context keys for error values
const (
	AttributeIDKey = "attribute_id"
	SectionIDKey   = "section_id"
	ValueTypeKey   = "value_type"
	MoveSourceKey  = "move_source"
)
