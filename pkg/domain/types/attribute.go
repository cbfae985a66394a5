package types

// Attribute identifies a named slot on a subject that a failure can be
// attached to.
type Attribute string

// AttrBase is the sentinel attribute meaning "the subject itself, not a
// specific attribute". It is always a legal destination for a failure
// entry, whether or not the subject recognizes it.
const AttrBase Attribute = "base"

// IsBase reports whether the attribute is the whole-subject sentinel.
func (a Attribute) IsBase() bool {
	return a == AttrBase
}

// String returns the string representation of the attribute
func (a Attribute) String() string {
	return string(a)
}
