package usecase_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/indicator/pkg/usecase"
)

func TestErrors_SentinelErrors(t *testing.T) {
	// Test that sentinel errors are not nil
	tests := []struct {
		name string
		err  error
	}{
		{"ErrIndicatorNotFound", usecase.ErrIndicatorNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gt.Value(t, tt.err).NotNil()
		})
	}
}
