package inspect

import (
	"fmt"
	"sort"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/faultline/pkg/domain/interfaces"
	"github.com/secmon-lab/faultline/pkg/domain/model"
	"github.com/secmon-lab/faultline/pkg/domain/model/config"
	"github.com/secmon-lab/faultline/pkg/domain/types"
)

// Schemas act as the subject of the collections they are inspected with.
var (
	_ interfaces.Subject = &config.Schema{}
	_ interfaces.Subject = &config.SectionDefinition{}
)

// Service validates decoded documents against an attribute schema.
// Each section of the schema is inspected into its own collection bound
// to the section, then merged back into the document's collection with
// the section's move table.
type Service struct {
	schema *config.Schema
}

// New creates an inspection service for the schema
func New(schema *config.Schema) *Service {
	return &Service{schema: schema}
}

// Inspect validates doc and returns the merged failure collection.
// An empty collection means the document passed.
func (s *Service) Inspect(doc map[string]any) (*model.ErrorCollection, error) {
	col := model.New(s.schema)

	known := make(map[string]bool, len(s.schema.Sections))
	for i := range s.schema.Sections {
		known[s.schema.Sections[i].ID] = true
	}
	if err := collectFailures(col, s.schema.Attributes, doc, known); err != nil {
		return nil, err
	}

	for i := range s.schema.Sections {
		sec := &s.schema.Sections[i]

		var sub map[string]any
		if raw, ok := doc[sec.ID]; ok {
			table, ok := raw.(map[string]any)
			if !ok {
				if err := col.AddDetail(types.Attribute(sec.ID), types.CodeInvalid, map[string]any{
					"expected": types.ValueTypeTable.String(),
					"actual":   fmt.Sprintf("%T", raw),
				}); err != nil {
					return nil, goerr.Wrap(err, "failed to record section failure")
				}
				continue
			}
			sub = table
		}

		child := model.New(sec)
		if err := collectFailures(child, sec.Attributes, sub, nil); err != nil {
			return nil, err
		}
		col.Merge(child, moveMap(sec.Moves))
	}

	return col, nil
}

// collectFailures records failures for one attribute list against doc.
// extraKnown marks document keys that are handled elsewhere (sections).
func collectFailures(col *model.ErrorCollection, defs []config.AttributeDefinition, doc map[string]any, extraKnown map[string]bool) error {
	known := make(map[string]bool, len(defs)+len(extraKnown))
	for k := range extraKnown {
		known[k] = true
	}

	for i := range defs {
		def := &defs[i]
		known[def.ID] = true
		attr := types.Attribute(def.ID)

		value, ok := doc[def.ID]
		if !ok {
			if def.Required {
				if err := col.AddDetail(attr, types.CodeBlank, nil); err != nil {
					return goerr.Wrap(err, "failed to record missing value")
				}
			}
			continue
		}

		if !matchesType(value, def.Type) {
			if err := col.AddDetail(attr, types.CodeInvalid, map[string]any{
				"expected": def.Type.String(),
				"actual":   fmt.Sprintf("%T", value),
			}); err != nil {
				return goerr.Wrap(err, "failed to record invalid value")
			}
		}
	}

	// Keys the schema does not declare. The entries land under the
	// unknown name; merging demotes them to base with the name folded
	// into the message. Sorted for deterministic output.
	var unknown []string
	for key := range doc {
		if !known[key] {
			unknown = append(unknown, key)
		}
	}
	sort.Strings(unknown)
	for _, key := range unknown {
		if err := col.AddDetail(types.Attribute(key), types.CodeUnknownAttribute, nil); err != nil {
			return goerr.Wrap(err, "failed to record unknown attribute")
		}
	}

	return nil
}

// matchesType checks a decoded TOML value against the declared type
func matchesType(value any, t types.ValueType) bool {
	switch t {
	case types.ValueTypeText:
		_, ok := value.(string)
		return ok
	case types.ValueTypeNumber:
		switch value.(type) {
		case int, int64, float64:
			return true
		}
		return false
	case types.ValueTypeBool:
		_, ok := value.(bool)
		return ok
	case types.ValueTypeList:
		_, ok := value.([]any)
		return ok
	case types.ValueTypeTable:
		_, ok := value.(map[string]any)
		return ok
	default:
		return false
	}
}

func moveMap(moves map[string]string) model.MoveMap {
	if len(moves) == 0 {
		return nil
	}
	mm := make(model.MoveMap, len(moves))
	for from, to := range moves {
		mm[types.Attribute(from)] = types.Attribute(to)
	}
	return mm
}
