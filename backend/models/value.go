package models

import "strconv"

// CoerceValue converts a raw stored value to its natural type: numeric strings
// become int64 when whole, float64 otherwise, and anything else stays a string.
func CoerceValue(raw string) any {
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return raw
	}
	if f == float64(int64(f)) {
		return int64(f)
	}
	return f
}

// Truthy reports whether a coerced value counts as "done". Zero numbers, empty
// strings, false and nil all count as not done.
func Truthy(v any) bool {
	switch val := v.(type) {
	case nil:
		return false
	case bool:
		return val
	case int:
		return val != 0
	case int64:
		return val != 0
	case float64:
		return val != 0
	case string:
		return val != ""
	default:
		return true
	}
}

// Numeric converts a coerced value to float64 for sums and ratios. Non-numeric
// and falsy values convert to 0, never an error.
func Numeric(v any) float64 {
	switch val := v.(type) {
	case int:
		return float64(val)
	case int64:
		return float64(val)
	case float64:
		return val
	case bool:
		if val {
			return 1
		}
		return 0
	case string:
		f, err := strconv.ParseFloat(val, 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}
