package types

// ValueType represents the expected value type of a schema attribute
type ValueType string

const (
	ValueTypeText   ValueType = "text"
	ValueTypeNumber ValueType = "number"
	ValueTypeBool   ValueType = "bool"
	ValueTypeList   ValueType = "list"
	ValueTypeTable  ValueType = "table"
)

// AllValueTypes returns all valid value types
func AllValueTypes() []ValueType {
	return []ValueType{
		ValueTypeText,
		ValueTypeNumber,
		ValueTypeBool,
		ValueTypeList,
		ValueTypeTable,
	}
}

// IsValid checks if the value type is valid
func (t ValueType) IsValid() bool {
	switch t {
	case ValueTypeText,
		ValueTypeNumber,
		ValueTypeBool,
		ValueTypeList,
		ValueTypeTable:
		return true
	default:
		return false
	}
}

// String returns the string representation of the value type
func (t ValueType) String() string {
	return string(t)
}
