package types

// ErrorCode classifies a failure entry (e.g. blank, invalid). A detail
// without a code degrades to a message-only entry.
type ErrorCode string

const (
	CodeBlank            ErrorCode = "blank"
	CodeInvalid          ErrorCode = "invalid"
	CodeTooLong          ErrorCode = "too_long"
	CodeTooShort         ErrorCode = "too_short"
	CodeTaken            ErrorCode = "taken"
	CodeUnknownAttribute ErrorCode = "unknown_attribute"
)

// IsZero reports whether no code is set
func (c ErrorCode) IsZero() bool {
	return c == ""
}

// String returns the string representation of the error code
func (c ErrorCode) String() string {
	return string(c)
}
