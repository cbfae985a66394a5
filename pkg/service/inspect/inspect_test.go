package inspect_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/faultline/pkg/domain/model/config"
	"github.com/secmon-lab/faultline/pkg/domain/types"
	"github.com/secmon-lab/faultline/pkg/service/inspect"
)

func testSchema() *config.Schema {
	return &config.Schema{
		Attributes: []config.AttributeDefinition{
			{ID: "title", Type: types.ValueTypeText, Required: true},
			{ID: "priority", Type: types.ValueTypeNumber},
			{ID: "summary", Type: types.ValueTypeText},
		},
		Sections: []config.SectionDefinition{
			{
				ID: "contact",
				Attributes: []config.AttributeDefinition{
					{ID: "email", Type: types.ValueTypeText, Required: true},
					{ID: "note", Type: types.ValueTypeText},
				},
				Moves: map[string]string{"note": "summary"},
			},
		},
	}
}

func TestInspect_ValidDocument(t *testing.T) {
	svc := inspect.New(testSchema())
	col, err := svc.Inspect(map[string]any{
		"title":    "incident report",
		"priority": int64(3),
		"contact": map[string]any{
			"email": "sre@example.com",
			"note":  "page on-call first",
		},
	})
	gt.NoError(t, err).Required()
	gt.Bool(t, col.IsEmpty()).True()
}

func TestInspect_MissingRequired(t *testing.T) {
	svc := inspect.New(testSchema())
	col, err := svc.Inspect(map[string]any{
		"contact": map[string]any{"email": "sre@example.com"},
	})
	gt.NoError(t, err).Required()

	details := col.Details()
	gt.Array(t, details["title"]).Length(1)
	gt.Value(t, details["title"][0].Code).Equal(types.CodeBlank)
	gt.Value(t, col.FullMessages()).Equal([]string{"Title can't be blank"})
}

func TestInspect_WrongType(t *testing.T) {
	svc := inspect.New(testSchema())
	col, err := svc.Inspect(map[string]any{
		"title":    "incident report",
		"priority": "high",
		"contact":  map[string]any{"email": "sre@example.com"},
	})
	gt.NoError(t, err).Required()

	details := col.Details()
	gt.Array(t, details["priority"]).Length(1)
	gt.Value(t, details["priority"][0].Code).Equal(types.CodeInvalid)
	gt.Value(t, details["priority"][0].Options["expected"]).Equal(any("number"))
	gt.Value(t, details["priority"][0].Options["actual"]).Equal(any("string"))
}

func TestInspect_SectionFailureDemotesToBase(t *testing.T) {
	// The parent schema does not declare "email", so the section's
	// failure loses its attribute slot and lands under base with the
	// label folded in.
	svc := inspect.New(testSchema())
	col, err := svc.Inspect(map[string]any{
		"title":   "incident report",
		"contact": map[string]any{},
	})
	gt.NoError(t, err).Required()

	gt.Value(t, col.MessagesFor(types.AttrBase)).Equal([]string{"Email can't be blank"})
	gt.Array(t, col.Details()[types.AttrBase]).Length(0)
}

func TestInspect_SectionMove(t *testing.T) {
	// "note" is remapped to the parent's "summary" attribute, which is
	// recognized, so the detail survives the merge intact.
	svc := inspect.New(testSchema())
	col, err := svc.Inspect(map[string]any{
		"title": "incident report",
		"contact": map[string]any{
			"email": "sre@example.com",
			"note":  int64(42),
		},
	})
	gt.NoError(t, err).Required()

	details := col.Details()
	gt.Array(t, details["summary"]).Length(1)
	gt.Value(t, details["summary"][0].Code).Equal(types.CodeInvalid)
}

func TestInspect_UnknownSectionKey(t *testing.T) {
	svc := inspect.New(testSchema())
	col, err := svc.Inspect(map[string]any{
		"title": "incident report",
		"contact": map[string]any{
			"email": "sre@example.com",
			"phone": "555-0100",
		},
	})
	gt.NoError(t, err).Required()

	gt.Value(t, col.MessagesFor(types.AttrBase)).Equal([]string{
		"Phone is not a recognized attribute",
	})
}

func TestInspect_UnknownTopLevelKey(t *testing.T) {
	svc := inspect.New(testSchema())
	col, err := svc.Inspect(map[string]any{
		"title":    "incident report",
		"nickname": "bob",
		"contact":  map[string]any{"email": "sre@example.com"},
	})
	gt.NoError(t, err).Required()

	details := col.Details()
	gt.Array(t, details["nickname"]).Length(1)
	gt.Value(t, details["nickname"][0].Code).Equal(types.CodeUnknownAttribute)
	gt.Value(t, col.FullMessages()).Equal([]string{
		"Nickname is not a recognized attribute",
	})
}

func TestInspect_SectionNotATable(t *testing.T) {
	svc := inspect.New(testSchema())
	col, err := svc.Inspect(map[string]any{
		"title":   "incident report",
		"contact": "call me",
	})
	gt.NoError(t, err).Required()

	details := col.Details()
	gt.Array(t, details["contact"]).Length(1)
	gt.Value(t, details["contact"][0].Code).Equal(types.CodeInvalid)
	gt.Value(t, details["contact"][0].Options["expected"]).Equal(any("table"))
}
