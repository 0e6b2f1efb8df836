package types

import (
	"regexp"

	"github.com/m-mizutani/goerr/v2"
)

// IndicatorComponent is the UI component name the indicator field renders with
const IndicatorComponent = "indicator-field"

// IndicatorID represents a unique identifier for an indicator field definition
type IndicatorID string

var idPattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// Validate checks if the IndicatorID is valid
func (id IndicatorID) Validate() error {
	if id == "" {
		return goerr.New("indicator ID cannot be empty")
	}
	if !idPattern.MatchString(string(id)) {
		return goerr.New("indicator ID must be lowercase alphanumeric with hyphens", goerr.V("id", id))
	}
	return nil
}

// String returns the string representation of IndicatorID
func (id IndicatorID) String() string {
	return string(id)
}
