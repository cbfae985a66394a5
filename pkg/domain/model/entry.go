package model

import (
	"reflect"
	"strings"

	"github.com/secmon-lab/faultline/pkg/domain/types"
)

// Reserved option keys. The collection manages these itself: the error
// code travels in Detail.Code, and the originating message is folded into
// the options copy during a merge.
const (
	optionKeyError   = "error"
	optionKeyMessage = "message"
)

// Detail is structured failure metadata layered on a human message: an
// error code plus renderer-relevant key/value context.
type Detail struct {
	Code    types.ErrorCode
	Options map[string]any
}

// FailureEntry is a single failure recorded against an attribute. Message
// is always present; Detail is optional metadata, never a replacement.
type FailureEntry struct {
	Message string
	Detail  *Detail
}

// HasDetail reports whether the entry carries a detail with a usable
// error code.
func (e FailureEntry) HasDetail() bool {
	return e.Detail != nil && !e.Detail.Code.IsZero()
}

// defaultMessages maps common error codes to their human message.
var defaultMessages = map[types.ErrorCode]string{
	types.CodeBlank:            "can't be blank",
	types.CodeInvalid:          "is invalid",
	types.CodeTooLong:          "is too long",
	types.CodeTooShort:         "is too short",
	types.CodeTaken:            "has already been taken",
	types.CodeUnknownAttribute: "is not a recognized attribute",
}

// messageFor returns the human message for code. Codes outside the
// default table fall back to the code text with underscores spaced out.
func messageFor(code types.ErrorCode) string {
	if msg, ok := defaultMessages[code]; ok {
		return msg
	}
	return strings.ReplaceAll(code.String(), "_", " ")
}

// copyOptions returns a shallow copy of opts. A nil map copies to an
// empty one so that dedup comparison does not distinguish the two.
func copyOptions(opts map[string]any) map[string]any {
	dup := make(map[string]any, len(opts))
	for k, v := range opts {
		dup[k] = v
	}
	return dup
}

// optionsEqual compares option maps structurally, treating nil and empty
// as equal.
func optionsEqual(a, b map[string]any) bool {
	if len(a) != len(b) {
		return false
	}
	for k, av := range a {
		bv, ok := b[k]
		if !ok || !reflect.DeepEqual(av, bv) {
			return false
		}
	}
	return true
}
