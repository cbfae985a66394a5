package config

import (
	"strings"
	"unicode"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/faultline/pkg/domain/types"
)

// AttributeDefinition declares one attribute of a subject
type AttributeDefinition struct {
	ID          string
	Label       string // Optional: display label, derived from ID when empty
	Type        types.ValueType
	Required    bool
	Description string
}

// SectionDefinition declares a nested sub-subject whose failures are
// merged back into the parent. Moves remaps section attribute names to
// parent attribute names during that merge; attributes absent from Moves
// keep their own name.
type SectionDefinition struct {
	ID         string
	Label      string
	Attributes []AttributeDefinition
	Moves      map[string]string
}

// Schema declares the attributes a subject exposes. Schema and
// SectionDefinition both act as the subject their collection is bound to.
type Schema struct {
	Attributes []AttributeDefinition
	Sections   []SectionDefinition
}

// Validate checks if the attribute definition is valid
func (d *AttributeDefinition) Validate() error {
	if d.ID == "" {
		return goerr.Wrap(ErrMissingAttributeID, "invalid attribute")
	}
	if types.Attribute(d.ID).IsBase() {
		return goerr.Wrap(ErrReservedAttributeID, "invalid attribute",
			goerr.V(AttributeIDKey, d.ID))
	}
	if !d.Type.IsValid() {
		return goerr.Wrap(ErrInvalidValueType, "invalid attribute",
			goerr.V(AttributeIDKey, d.ID),
			goerr.V(ValueTypeKey, d.Type))
	}
	return nil
}

// Validate checks if the section definition is valid
func (s *SectionDefinition) Validate() error {
	if s.ID == "" {
		return goerr.Wrap(ErrMissingSectionID, "invalid section")
	}
	if err := validateAttributes(s.Attributes); err != nil {
		return goerr.Wrap(err, "invalid section", goerr.V(SectionIDKey, s.ID))
	}
	declared := make(map[string]bool, len(s.Attributes))
	for _, attr := range s.Attributes {
		declared[attr.ID] = true
	}
	for src := range s.Moves {
		if !declared[src] {
			return goerr.Wrap(ErrUnknownMoveSource, "invalid section",
				goerr.V(SectionIDKey, s.ID),
				goerr.V(MoveSourceKey, src))
		}
	}
	return nil
}

// Validate checks if the schema is valid
func (s *Schema) Validate() error {
	if err := validateAttributes(s.Attributes); err != nil {
		return goerr.Wrap(err, "invalid schema")
	}
	sectionIDs := make(map[string]bool, len(s.Sections))
	for i := range s.Sections {
		sec := &s.Sections[i]
		if err := sec.Validate(); err != nil {
			return goerr.Wrap(err, "invalid schema")
		}
		if sectionIDs[sec.ID] {
			return goerr.Wrap(ErrDuplicateSectionID, "invalid schema",
				goerr.V(SectionIDKey, sec.ID))
		}
		sectionIDs[sec.ID] = true
	}
	return nil
}

func validateAttributes(attrs []AttributeDefinition) error {
	ids := make(map[string]bool, len(attrs))
	for i := range attrs {
		if err := attrs[i].Validate(); err != nil {
			return err
		}
		if ids[attrs[i].ID] {
			return goerr.Wrap(ErrDuplicateAttributeID,
				"duplicate attribute", goerr.V(AttributeIDKey, attrs[i].ID))
		}
		ids[attrs[i].ID] = true
	}
	return nil
}

// Definition returns the attribute definition for id
func (s *Schema) Definition(id string) (*AttributeDefinition, bool) {
	return findDefinition(s.Attributes, id)
}

// Section returns the section definition for id
func (s *Schema) Section(id string) (*SectionDefinition, bool) {
	for i := range s.Sections {
		if s.Sections[i].ID == id {
			return &s.Sections[i], true
		}
	}
	return nil, false
}

// Definition returns the section's attribute definition for id
func (s *SectionDefinition) Definition(id string) (*AttributeDefinition, bool) {
	return findDefinition(s.Attributes, id)
}

func findDefinition(attrs []AttributeDefinition, id string) (*AttributeDefinition, bool) {
	for i := range attrs {
		if attrs[i].ID == id {
			return &attrs[i], true
		}
	}
	return nil, false
}

// HasAttribute reports whether the schema declares the attribute
func (s *Schema) HasAttribute(name types.Attribute) bool {
	_, ok := s.Definition(name.String())
	return ok
}

// FullMessage renders message prefixed with the attribute's display label
func (s *Schema) FullMessage(name types.Attribute, message string) string {
	if def, ok := s.Definition(name.String()); ok {
		return def.DisplayLabel() + " " + message
	}
	return humanize(name.String()) + " " + message
}

// HasAttribute reports whether the section declares the attribute
func (s *SectionDefinition) HasAttribute(name types.Attribute) bool {
	_, ok := s.Definition(name.String())
	return ok
}

// FullMessage renders message prefixed with the attribute's display label
func (s *SectionDefinition) FullMessage(name types.Attribute, message string) string {
	if def, ok := s.Definition(name.String()); ok {
		return def.DisplayLabel() + " " + message
	}
	return humanize(name.String()) + " " + message
}

// DisplayLabel returns the label, falling back to the humanized ID
func (d *AttributeDefinition) DisplayLabel() string {
	if d.Label != "" {
		return d.Label
	}
	return humanize(d.ID)
}

// humanize turns an attribute ID into a display label, e.g.
// "street_address" -> "Street address".
func humanize(id string) string {
	s := strings.ReplaceAll(id, "_", " ")
	r := []rune(s)
	if len(r) > 0 {
		r[0] = unicode.ToUpper(r[0])
	}
	return string(r)
}
