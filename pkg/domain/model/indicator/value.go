package indicator

import (
	"fmt"
	"math"
	"reflect"
	"regexp"
	"strconv"
	"strings"
)

var (
	decimalPattern = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?$`)
	integerPattern = regexp.MustCompile(`^[+-]?\d+$`)
)

// Truthy reports whether v counts as true when the field is asked to hide
// falsy values. nil, false, numeric zero, "", "0" and empty collections are
// falsy; everything else is truthy.
func Truthy(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case string:
		return x != "" && x != "0"
	}

	if f, ok := toFloat(v); ok {
		return f != 0
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Map, reflect.Array:
		return rv.Len() > 0
	case reflect.Pointer, reflect.Interface:
		return !rv.IsNil()
	}
	return true
}

// LooseEqual compares two values the way a dashboard compares submitted form
// values against configured ones: "1" equals 1, 1.0 equals 1, and comparisons
// against nil or a bool go through truthiness.
func LooseEqual(a, b any) bool {
	if a == nil || b == nil {
		if a == nil && b == nil {
			return true
		}
		// nil against a string only matches the empty string
		if s, ok := a.(string); ok {
			return s == ""
		}
		if s, ok := b.(string); ok {
			return s == ""
		}
		return !Truthy(a) && !Truthy(b)
	}

	if ab, ok := a.(bool); ok {
		return ab == Truthy(b)
	}
	if bb, ok := b.(bool); ok {
		return bb == Truthy(a)
	}

	as, aIsString := a.(string)
	bs, bIsString := b.(string)
	af, aIsNumber := toFloat(a)
	bf, bIsNumber := toFloat(b)

	// integers compare exactly; float64 cannot hold every int64/uint64
	if am, aneg, ok := integerOf(a); ok {
		if bm, bneg, ok := integerOf(b); ok {
			return am == bm && aneg == bneg
		}
	}

	switch {
	case aIsNumber && bIsNumber:
		return af == bf
	case aIsString && bIsString:
		if an, ok := parseNumeric(as); ok {
			if bn, ok := parseNumeric(bs); ok {
				return an == bn
			}
		}
		return as == bs
	case aIsNumber && bIsString:
		return numberEqualsString(a, af, bs)
	case aIsString && bIsNumber:
		return numberEqualsString(b, bf, as)
	}

	return reflect.DeepEqual(a, b)
}

// Key normalizes a value into the string used to index color and label maps,
// so that 1, int64(1), 1.0 and "1" all address the same entry.
func Key(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case bool:
		if x {
			return "1"
		}
		return "0"
	case string:
		return x
	case fmt.Stringer:
		return x.String()
	case int:
		return strconv.FormatInt(int64(x), 10)
	case int8:
		return strconv.FormatInt(int64(x), 10)
	case int16:
		return strconv.FormatInt(int64(x), 10)
	case int32:
		return strconv.FormatInt(int64(x), 10)
	case int64:
		return strconv.FormatInt(x, 10)
	case uint:
		return strconv.FormatUint(uint64(x), 10)
	case uint8:
		return strconv.FormatUint(uint64(x), 10)
	case uint16:
		return strconv.FormatUint(uint64(x), 10)
	case uint32:
		return strconv.FormatUint(uint64(x), 10)
	case uint64:
		return strconv.FormatUint(x, 10)
	}

	if f, ok := toFloat(v); ok {
		if f == math.Trunc(f) && math.Abs(f) < 1<<63 {
			return strconv.FormatInt(int64(f), 10)
		}
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	return fmt.Sprint(v)
}

func numberEqualsString(num any, f float64, s string) bool {
	if n, ok := parseNumeric(s); ok {
		return f == n
	}
	return Key(num) == s
}

// parseNumeric accepts decimal numbers only. NaN, Inf and hex literals stay
// plain strings.
func parseNumeric(s string) (float64, bool) {
	trimmed := strings.TrimSpace(s)
	if !decimalPattern.MatchString(trimmed) {
		return 0, false
	}
	f, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// integerOf splits an integer, or a string holding a decimal integer, into
// magnitude and sign. Zero is never negative.
func integerOf(v any) (uint64, bool, bool) {
	switch x := v.(type) {
	case int:
		return signed(int64(x))
	case int8:
		return signed(int64(x))
	case int16:
		return signed(int64(x))
	case int32:
		return signed(int64(x))
	case int64:
		return signed(x)
	case uint:
		return uint64(x), false, true
	case uint8:
		return uint64(x), false, true
	case uint16:
		return uint64(x), false, true
	case uint32:
		return uint64(x), false, true
	case uint64:
		return x, false, true
	case string:
		trimmed := strings.TrimSpace(x)
		if !integerPattern.MatchString(trimmed) {
			return 0, false, false
		}
		neg := strings.HasPrefix(trimmed, "-")
		mag, err := strconv.ParseUint(strings.TrimLeft(trimmed, "+-"), 10, 64)
		if err != nil {
			return 0, false, false
		}
		return mag, neg && mag != 0, true
	}
	return 0, false, false
}

func signed(x int64) (uint64, bool, bool) {
	if x < 0 {
		return uint64(-(x + 1)) + 1, true, true
	}
	return uint64(x), false, true
}

func toFloat(v any) (float64, bool) {
	switch x := v.(type) {
	case int:
		return float64(x), true
	case int8:
		return float64(x), true
	case int16:
		return float64(x), true
	case int32:
		return float64(x), true
	case int64:
		return float64(x), true
	case uint:
		return float64(x), true
	case uint8:
		return float64(x), true
	case uint16:
		return float64(x), true
	case uint32:
		return float64(x), true
	case uint64:
		return float64(x), true
	case float32:
		return float64(x), true
	case float64:
		return x, true
	default:
		return 0, false
	}
}
