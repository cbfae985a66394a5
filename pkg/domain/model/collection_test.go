package model_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/faultline/pkg/domain/model"
	"github.com/secmon-lab/faultline/pkg/domain/types"
)

// testSubject recognizes a fixed attribute set and prefixes messages
// with the attribute's label.
type testSubject struct {
	attrs map[types.Attribute]string
}

func (x *testSubject) HasAttribute(name types.Attribute) bool {
	_, ok := x.attrs[name]
	return ok
}

func (x *testSubject) FullMessage(name types.Attribute, message string) string {
	if label, ok := x.attrs[name]; ok {
		return label + " " + message
	}
	return name.String() + " " + message
}

func newSubject(attrs ...string) *testSubject {
	s := &testSubject{attrs: make(map[types.Attribute]string)}
	for i := 0; i+1 < len(attrs); i += 2 {
		s.attrs[types.Attribute(attrs[i])] = attrs[i+1]
	}
	return s
}

func TestAdd_Dedup(t *testing.T) {
	col := model.New(newSubject("email", "Email"))

	col.Add("email", "can't be blank")
	col.Add("email", "can't be blank")
	gt.Array(t, col.MessagesFor("email")).Length(1)

	col.Add("email", "is invalid")
	gt.Array(t, col.MessagesFor("email")).Length(2)
	gt.Value(t, col.MessagesFor("email")).Equal([]string{"can't be blank", "is invalid"})
}

func TestAddDetail(t *testing.T) {
	col := model.New(newSubject("email", "Email"))

	gt.NoError(t, col.AddDetail("email", types.CodeBlank, nil)).Required()
	gt.Value(t, col.MessagesFor("email")).Equal([]string{"can't be blank"})

	details := col.Details()
	gt.Array(t, details["email"]).Length(1)
	gt.Value(t, details["email"][0].Code).Equal(types.CodeBlank)
}

func TestAddDetail_Dedup(t *testing.T) {
	col := model.New(newSubject("name", "Name"))

	gt.NoError(t, col.AddDetail("name", types.CodeTooLong, map[string]any{"maximum": 64}))
	gt.NoError(t, col.AddDetail("name", types.CodeTooLong, map[string]any{"maximum": 64}))
	gt.Array(t, col.Entries("name")).Length(1)

	// Same code with different options is a distinct failure
	gt.NoError(t, col.AddDetail("name", types.CodeTooLong, map[string]any{"maximum": 128}))
	gt.Array(t, col.Entries("name")).Length(2)
}

func TestAddDetail_MalformedDetail(t *testing.T) {
	col := model.New(newSubject("email", "Email"))

	tests := []struct {
		name    string
		code    types.ErrorCode
		options map[string]any
		wantErr error
	}{
		{
			name:    "empty error code",
			code:    "",
			options: map[string]any{"hint": "required"},
			wantErr: model.ErrEmptyErrorCode,
		},
		{
			name:    "reserved message key",
			code:    types.CodeInvalid,
			options: map[string]any{"message": "boom"},
			wantErr: model.ErrReservedOptionKey,
		},
		{
			name:    "reserved error key",
			code:    types.CodeInvalid,
			options: map[string]any{"error": "invalid"},
			wantErr: model.ErrReservedOptionKey,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := col.AddDetail("email", tt.code, tt.options)
			gt.Error(t, err).Is(tt.wantErr)
			gt.Bool(t, col.IsEmpty()).True()
		})
	}
}

func TestMerge_Identity(t *testing.T) {
	subject := newSubject("email", "Email", "name", "Name")
	col := model.New(subject)
	col.Add("email", "can't be blank")
	gt.NoError(t, col.AddDetail("name", types.CodeTooShort, nil))

	col.Merge(model.New(subject), nil)

	gt.Value(t, col.Attributes()).Equal([]types.Attribute{"email", "name"})
	gt.Value(t, col.Size()).Equal(2)
	gt.Value(t, col.MessagesFor("email")).Equal([]string{"can't be blank"})
	gt.Value(t, col.MessagesFor("name")).Equal([]string{"is too short"})
}

func TestMerge_DisjointUnion(t *testing.T) {
	subject := newSubject("email", "Email", "name", "Name", "age", "Age")
	col := model.New(subject)
	col.Add("email", "can't be blank")

	other := model.New(subject)
	other.Add("name", "is too short")
	other.Add("name", "is invalid")
	other.Add("age", "is not a number")

	got := col.Merge(other, nil)

	gt.Bool(t, got == col).True() // merge returns the receiver
	gt.Value(t, col.Attributes()).Equal([]types.Attribute{"email", "name", "age"})
	gt.Value(t, col.MessagesFor("name")).Equal([]string{"is too short", "is invalid"})
}

func TestMerge_MoveMapPresence(t *testing.T) {
	subject := newSubject("a", "A", "b", "B", "c", "C")
	other := model.New(subject)
	other.Add("a", "moved entry")
	other.Add("c", "unmoved entry")

	col := model.New(subject)
	col.Merge(other, model.MoveMap{"a": "b"})

	// "a" is remapped to "b"; "c" is absent from the move map and keeps
	// its own name rather than being defaulted anywhere else.
	gt.Array(t, col.MessagesFor("a")).Length(0)
	gt.Value(t, col.MessagesFor("b")).Equal([]string{"moved entry"})
	gt.Value(t, col.MessagesFor("c")).Equal([]string{"unmoved entry"})
}

func TestMerge_ExplicitBaseDemotion(t *testing.T) {
	subject := newSubject("name", "Name")
	other := model.New(subject)
	gt.NoError(t, other.AddDetail("name", types.CodeBlank, nil))

	col := model.New(subject)
	col.Merge(other, model.MoveMap{"name": types.AttrBase})

	// The detail is demoted to a message-only entry with the attribute
	// label folded in.
	gt.Value(t, col.MessagesFor(types.AttrBase)).Equal([]string{"Name can't be blank"})
	gt.Array(t, col.Details()[types.AttrBase]).Length(0)

	// Merging the result into another collection must not wrap the
	// message a second time.
	again := model.New(newSubject())
	again.Merge(col, nil)
	gt.Value(t, again.MessagesFor(types.AttrBase)).Equal([]string{"Name can't be blank"})
}

func TestMerge_UnrecognizedAttributeDemotion(t *testing.T) {
	// The source subject knows "email"; the receiving subject does not.
	other := model.New(newSubject("email", "Email"))
	gt.NoError(t, other.AddDetail("email", types.CodeBlank, nil))

	col := model.New(newSubject("name", "Name"))
	col.Merge(other, nil)

	gt.Value(t, col.Attributes()).Equal([]types.Attribute{types.AttrBase})
	gt.Value(t, col.MessagesFor(types.AttrBase)).Equal([]string{"Email can't be blank"})
}

func TestMerge_DetailIntoRecognizedAttribute(t *testing.T) {
	subject := newSubject("name", "Name")
	other := model.New(subject)
	gt.NoError(t, other.AddDetail("name", types.CodeTooLong, map[string]any{"maximum": 64}))

	col := model.New(subject)
	col.Merge(other, nil)

	details := col.Details()
	gt.Array(t, details["name"]).Length(1)
	gt.Value(t, details["name"][0].Code).Equal(types.CodeTooLong)
	gt.Value(t, details["name"][0].Options["maximum"]).Equal(any(64))
	// The originating message travels in the copied options
	gt.Value(t, details["name"][0].Options["message"]).Equal(any("is too long"))

	// Re-merging the same source is a no-op under the detail dedup key
	col.Merge(other, nil)
	gt.Array(t, col.Entries("name")).Length(1)
}

func TestMerge_OptionsCopiedShallowly(t *testing.T) {
	subject := newSubject("name", "Name")
	opts := map[string]any{"maximum": 64}
	other := model.New(subject)
	gt.NoError(t, other.AddDetail("name", types.CodeTooLong, opts))

	col := model.New(subject)
	col.Merge(other, nil)

	// Mutating the caller's map after the fact must not leak into the
	// merged entry.
	opts["maximum"] = 1
	gt.Value(t, col.Details()["name"][0].Options["maximum"]).Equal(any(64))
}

func TestMerge_BaseToBaseKeepsDetail(t *testing.T) {
	subject := newSubject()
	other := model.New(subject)
	gt.NoError(t, other.AddDetail(types.AttrBase, types.CodeInvalid, nil))

	col := model.New(subject)
	col.Merge(other, nil)

	// A base-origin detail merged into base keeps its structure; there
	// was never an attribute context to fold in.
	gt.Array(t, col.Details()[types.AttrBase]).Length(1)
	gt.Value(t, col.MessagesFor(types.AttrBase)).Equal([]string{"is invalid"})
}

func TestMerge_Chaining(t *testing.T) {
	subject := newSubject("a", "A", "b", "B")
	first := model.New(subject)
	first.Add("a", "first failure")
	second := model.New(subject)
	second.Add("b", "second failure")

	col := model.New(subject).Merge(first, nil).Merge(second, nil)
	gt.Value(t, col.Attributes()).Equal([]types.Attribute{"a", "b"})
}

func TestFullMessages(t *testing.T) {
	col := model.New(newSubject("email", "Email"))
	col.Add("email", "can't be blank")
	col.Add(types.AttrBase, "something went wrong")

	gt.Value(t, col.FullMessages()).Equal([]string{
		"Email can't be blank",
		"something went wrong",
	})
	gt.Value(t, col.FullMessagesFor("email")).Equal([]string{"Email can't be blank"})
}

func TestIsRecognized(t *testing.T) {
	col := model.New(newSubject("email", "Email"))
	gt.Bool(t, col.IsRecognized("email")).True()
	gt.Bool(t, col.IsRecognized("name")).False()
	// base is a legal destination by construction, not a recognized
	// attribute of the subject
	gt.Bool(t, col.IsRecognized(types.AttrBase)).False()
}

func TestSize(t *testing.T) {
	col := model.New(newSubject("email", "Email"))
	gt.Bool(t, col.IsEmpty()).True()
	gt.Value(t, col.Size()).Equal(0)

	col.Add("email", "can't be blank")
	gt.NoError(t, col.AddDetail("email", types.CodeInvalid, nil))
	gt.Bool(t, col.IsEmpty()).False()
	gt.Value(t, col.Size()).Equal(2)
}
