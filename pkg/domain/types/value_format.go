package types

import "fmt"

// ValueFormat names a built-in transform applied to raw values before display
type ValueFormat string

const (
	ValueFormatUpper ValueFormat = "upper"
	ValueFormatLower ValueFormat = "lower"
	ValueFormatTitle ValueFormat = "title"
	ValueFormatTrim  ValueFormat = "trim"
)

// AllValueFormats returns all valid value formats
func AllValueFormats() []ValueFormat {
	return []ValueFormat{
		ValueFormatUpper,
		ValueFormatLower,
		ValueFormatTitle,
		ValueFormatTrim,
	}
}

// IsValid checks if the value format is valid
func (f ValueFormat) IsValid() bool {
	switch f {
	case ValueFormatUpper,
		ValueFormatLower,
		ValueFormatTitle,
		ValueFormatTrim:
		return true
	default:
		return false
	}
}

// String returns the string representation of the value format
func (f ValueFormat) String() string {
	return string(f)
}

// ParseValueFormat parses a string into a ValueFormat
func ParseValueFormat(s string) (ValueFormat, error) {
	format := ValueFormat(s)
	if !format.IsValid() {
		return "", fmt.Errorf("invalid value format: %s", s)
	}
	return format, nil
}
