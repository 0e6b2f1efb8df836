package indicator

import (
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/indicator/pkg/domain/types"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ErrUnknownValueFormat is returned by Formatter for an unsupported format
var ErrUnknownValueFormat = goerr.New("unknown value format")

// Formatter returns the ValueFunc for a built-in value format. String values
// are transformed; other values pass through untouched. A cases.Caser is not
// safe for concurrent use, so one is built per call.
func Formatter(format types.ValueFormat) (ValueFunc, error) {
	var fn func(string) string

	switch format {
	case types.ValueFormatUpper:
		fn = func(s string) string { return cases.Upper(language.Und).String(s) }
	case types.ValueFormatLower:
		fn = func(s string) string { return cases.Lower(language.Und).String(s) }
	case types.ValueFormatTitle:
		fn = func(s string) string { return cases.Title(language.Und).String(s) }
	case types.ValueFormatTrim:
		fn = strings.TrimSpace
	default:
		return nil, goerr.Wrap(ErrUnknownValueFormat, "cannot build formatter",
			goerr.V("format", format))
	}

	return func(value, _ any) (any, error) {
		s, ok := value.(string)
		if !ok {
			return value, nil
		}
		return fn(s), nil
	}, nil
}
