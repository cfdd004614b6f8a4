package question

import (
	"fmt"
	"strconv"
	"strings"
)

// All "trust nothing from upstream" coercion lives here. Bank rows and
// import payloads routinely carry numbers where strings are expected (and
// vice versa), so the builder and normalizer only ever consume values that
// went through these helpers.

// ParseError names a failed coercion without losing the offending value.
type ParseError struct {
	Want string
	Got  interface{}
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("cannot parse %v (%T) as %s", e.Got, e.Got, e.Want)
}

// AsString stringifies any scalar. It is total: unknown shapes fall back to
// fmt.Sprintf rather than failing, because a snapshot field must always end
// up a string.
func AsString(v interface{}) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case bool:
		if x {
			return "true"
		}
		return "false"
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case float64:
		// JSON numbers decode as float64; keep integral values clean.
		if x == float64(int64(x)) {
			return strconv.FormatInt(int64(x), 10)
		}
		return strconv.FormatFloat(x, 'f', -1, 64)
	case float32:
		return AsString(float64(x))
	default:
		return fmt.Sprintf("%v", v)
	}
}

// AsNumber parses any scalar as a float64. Every integer width is handled:
// BSON decoding hands back int32 for small integers, JSON float64, and
// legacy import code passes plain ints.
func AsNumber(v interface{}) (float64, error) {
	switch x := v.(type) {
	case float64:
		return x, nil
	case float32:
		return float64(x), nil
	case int:
		return float64(x), nil
	case int8:
		return float64(x), nil
	case int16:
		return float64(x), nil
	case int32:
		return float64(x), nil
	case int64:
		return float64(x), nil
	case uint:
		return float64(x), nil
	case uint8:
		return float64(x), nil
	case uint16:
		return float64(x), nil
	case uint32:
		return float64(x), nil
	case uint64:
		return float64(x), nil
	case bool:
		if x {
			return 1, nil
		}
		return 0, nil
	case string:
		n, err := strconv.ParseFloat(strings.TrimSpace(x), 64)
		if err != nil {
			return 0, &ParseError{Want: "number", Got: v}
		}
		return n, nil
	default:
		return 0, &ParseError{Want: "number", Got: v}
	}
}

// AsInt parses any scalar as an exact integer. Fractional floats and
// non-numeric strings fail.
func AsInt(v interface{}) (int, error) {
	switch x := v.(type) {
	case int:
		return x, nil
	case int32:
		return int(x), nil
	case int64:
		return int(x), nil
	case float64:
		if x != float64(int64(x)) {
			return 0, &ParseError{Want: "integer", Got: v}
		}
		return int(x), nil
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(x))
		if err != nil {
			return 0, &ParseError{Want: "integer", Got: v}
		}
		return n, nil
	default:
		n, err := AsNumber(v)
		if err != nil {
			return 0, &ParseError{Want: "integer", Got: v}
		}
		if n != float64(int64(n)) {
			return 0, &ParseError{Want: "integer", Got: v}
		}
		return int(n), nil
	}
}

// AsFlag coerces a scalar into a 0/1 correctness flag. Booleans map
// directly, numbers are 1 when positive, and strings accept the usual
// truthy spellings before attempting a numeric parse. Anything else is 0.
func AsFlag(v interface{}) int {
	switch x := v.(type) {
	case bool:
		if x {
			return 1
		}
		return 0
	case string:
		switch strings.ToLower(strings.TrimSpace(x)) {
		case "true", "1", "yes", "correct":
			return 1
		}
		if n, err := strconv.ParseFloat(strings.TrimSpace(x), 64); err == nil && n > 0 {
			return 1
		}
		return 0
	default:
		if n, err := AsNumber(v); err == nil && n > 0 {
			return 1
		}
		return 0
	}
}

// AsStringSlice flattens a loosely typed list into strings.
func AsStringSlice(v interface{}) []string {
	switch x := v.(type) {
	case nil:
		return nil
	case []string:
		out := make([]string, len(x))
		copy(out, x)
		return out
	case []interface{}:
		out := make([]string, 0, len(x))
		for _, e := range x {
			out = append(out, AsString(e))
		}
		return out
	default:
		return []string{AsString(v)}
	}
}
