package usecase

import "errors"

// Sentinel errors for use case layer
var (
	ErrIndicatorNotFound = errors.New("indicator not found")
)

// Context keys for error values
const (
	IndicatorIDKey = "indicator_id"
	RecordIndexKey = "record_index"
	AttributeKey   = "attribute"
)
