package diagnostic

import (
	"github.com/secmon-lab/faultline/pkg/domain/types"
)

// ForKind returns the built-in diagnostic for a framework failure kind.
// Only usage kinds have one; validation kinds are reported through the
// collection itself.
func ForKind(k types.Kind) (*Renderer, bool) {
	r, ok := catalog[k]
	return r, ok
}

var catalog = map[types.Kind]*Renderer{
	types.KindReservedOptionKey: {
		Title: "Reserved detail option key",
		Issue: Issue{
			Desc: `A failure detail was added with an option key the collection
				manages itself. The "error" and "message" keys are set by the
				collection when entries are copied between collections, so
				caller-supplied values under those keys would be overwritten.`,
			Code: `
				col.AddDetail("email", types.CodeInvalid, map[string]any{
					"message": "please use a company address",
				})`,
			Lines: Lines(1),
		},
		Fix: &Fix{
			Desc: `Record caller context under a different key, or add the text
				as a message-only entry.`,
			Code: `
				col.Add("email", "please use a company address")`,
		},
	},
	types.KindEmptyErrorCode: {
		Title: "Empty error code",
		Issue: Issue{
			Desc: `A failure detail was added without an error code. A detail is
				an error code plus options; without the code there is nothing to
				classify the failure by, and the entry degrades to message-only.`,
			Code: `
				col.AddDetail("email", "", map[string]any{"hint": "required"})`,
			Lines: Lines(0),
		},
		Fix: &Fix{
			Desc: `Pass one of the declared error codes.`,
			Code: `
				col.AddDetail("email", types.CodeBlank, nil)`,
		},
	},
	types.KindNotStruct: {
		Title: "Subject is not a struct",
		Issue: Issue{
			Desc: `A validation subject was built from a value that is not a
				struct or a pointer to one. Attribute recognition works over
				exported struct fields, so there are no attributes to bind
				failures to.`,
			Code: `
				subject, err := validate.NewStructSubject(map[string]any{
					"email": "",
				})`,
			Lines: LineRange(0, 2),
		},
		Fix: &Fix{
			Desc: `Declare the subject as a struct type.`,
			Code: `
				type Account struct {
					Email string ` + "`validate:\"required,email\"`" + `
				}

				subject, err := validate.NewStructSubject(&Account{})`,
		},
	},
}
