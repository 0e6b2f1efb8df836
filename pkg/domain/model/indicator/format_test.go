package indicator_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/indicator/pkg/domain/model/indicator"
	"github.com/secmon-lab/indicator/pkg/domain/types"
)

func TestFormatter(t *testing.T) {
	tests := []struct {
		name   string
		format types.ValueFormat
		input  any
		want   any
	}{
		{"upper", types.ValueFormatUpper, "active", "ACTIVE"},
		{"lower", types.ValueFormatLower, "ACTIVE", "active"},
		{"title", types.ValueFormatTitle, "in progress", "In Progress"},
		{"trim", types.ValueFormatTrim, "  done ", "done"},
		{"non-string passes through", types.ValueFormatUpper, 42, 42},
		{"nil passes through", types.ValueFormatTitle, nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fn, err := indicator.Formatter(tt.format)
			gt.NoError(t, err).Required()

			got, err := fn(tt.input, nil)
			gt.NoError(t, err).Required()
			gt.Value(t, got).Equal(tt.want)
		})
	}
}

func TestFormatter_Unknown(t *testing.T) {
	_, err := indicator.Formatter(types.ValueFormat("reverse"))
	gt.Error(t, err).Is(indicator.ErrUnknownValueFormat)
}

func TestFormatter_WithField(t *testing.T) {
	fn, err := indicator.Formatter(types.ValueFormatUpper)
	gt.NoError(t, err).Required()

	f := indicator.New("Plan", "").
		Colors(map[any]string{"pro": "purple"}).
		UseValues(fn)

	d, err := f.Resolve("pro", nil)
	gt.NoError(t, err).Required()
	gt.Value(t, d.Value).Equal(any("PRO"))
	gt.Value(t, d.Color).Equal("purple")
}
