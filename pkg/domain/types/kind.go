package types

// Kind enumerates the framework's own failure kinds. The set is closed:
// callers branch on the kind value rather than on concrete error types.
type Kind string

// BaseKind groups kinds into coarse families
type BaseKind string

const (
	// BaseUsage covers programmer errors: the API was called with
	// arguments the collection refuses to store.
	BaseUsage BaseKind = "usage"
	// BaseValidation covers failures reported against a subject's
	// attributes during inspection.
	BaseValidation BaseKind = "validation"
)

const (
	KindReservedOptionKey Kind = "reserved_option_key"
	KindEmptyErrorCode    Kind = "empty_error_code"
	KindNotStruct         Kind = "not_struct"

	KindMissingValue     Kind = "missing_value"
	KindInvalidValue     Kind = "invalid_value"
	KindUnknownAttribute Kind = "unknown_attribute"
)

// AllKinds returns all valid kinds
func AllKinds() []Kind {
	return []Kind{
		KindReservedOptionKey,
		KindEmptyErrorCode,
		KindNotStruct,
		KindMissingValue,
		KindInvalidValue,
		KindUnknownAttribute,
	}
}

// IsValid checks if the kind is valid
func (k Kind) IsValid() bool {
	switch k {
	case KindReservedOptionKey,
		KindEmptyErrorCode,
		KindNotStruct,
		KindMissingValue,
		KindInvalidValue,
		KindUnknownAttribute:
		return true
	default:
		return false
	}
}

// Base returns the base kind the kind belongs to
func (k Kind) Base() BaseKind {
	switch k {
	case KindReservedOptionKey, KindEmptyErrorCode, KindNotStruct:
		return BaseUsage
	default:
		return BaseValidation
	}
}

// String returns the string representation of the kind
func (k Kind) String() string {
	return string(k)
}
