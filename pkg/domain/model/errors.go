package model

import "github.com/m-mizutani/goerr/v2"

// Programmer errors raised when a malformed detail is handed to the
// collection. These fail fast at Add time rather than corrupting entries.
var (
	ErrReservedOptionKey = goerr.New("detail options must not contain a reserved key")
	ErrEmptyErrorCode    = goerr.New("detail requires a non-empty error code")
)

// Context keys for error values
const (
	AttributeKey = "attribute"
	ErrorCodeKey = "error_code"
	OptionKeyKey = "option_key"
)
