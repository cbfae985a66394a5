package interfaces

import (
	"github.com/secmon-lab/faultline/pkg/domain/types"
)

// Subject is the owner of the attributes that failures are reported
// against. An ErrorCollection is bound to exactly one Subject for its
// lifetime and consults it for attribute recognition and for folding an
// attribute label into a message once the attribute context is lost.
type Subject interface {
	// HasAttribute reports whether name is a recognized attribute of the
	// subject. types.AttrBase is not required to be recognized; it is a
	// legal destination by construction.
	HasAttribute(name types.Attribute) bool

	// FullMessage renders message with the human label of name prefixed,
	// e.g. ("email", "can't be blank") -> "Email can't be blank".
	FullMessage(name types.Attribute, message string) string
}
