package config

import (
	"github.com/secmon-lab/indicator/pkg/domain/model/indicator"
	"github.com/secmon-lab/indicator/pkg/domain/types"
)

// IndicatorDefinition pairs a configured indicator field with its ID
type IndicatorDefinition struct {
	ID          types.IndicatorID
	Description string
	Field       *indicator.Field
}

// IndicatorSet holds the complete indicator configuration, in file order
type IndicatorSet struct {
	Definitions []IndicatorDefinition
}

// Lookup returns the definition with the given ID
func (s *IndicatorSet) Lookup(id types.IndicatorID) (*IndicatorDefinition, bool) {
	for i := range s.Definitions {
		if s.Definitions[i].ID == id {
			return &s.Definitions[i], true
		}
	}
	return nil, false
}

// Len returns the number of definitions
func (s *IndicatorSet) Len() int {
	return len(s.Definitions)
}
