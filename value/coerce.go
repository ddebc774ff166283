package value

import (
	"fmt"
	"math"
	"strconv"
)

// ToNumber implements the to-number(v) coercion of spec.md §4.1.
func ToNumber(v Value) (float64, error) {
	switch t := v.(type) {
	case Number:
		return float64(t), nil
	case Bool:
		if t {
			return 1.0, nil
		}
		return 0.0, nil
	case Null:
		return 0.0, nil
	case String:
		n, err := strconv.ParseFloat(string(t), 64)
		if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
			return 0, fmt.Errorf("Cannot convert string '%s' to number", string(t))
		}
		return n, nil
	default:
		return 0, fmt.Errorf("Cannot convert value to number")
	}
}

// ToBoolean implements the to-boolean(v) coercion of spec.md §4.1.
func ToBoolean(v Value) bool {
	switch t := v.(type) {
	case Bool:
		return bool(t)
	case Null:
		return false
	case Number:
		n := float64(t)
		return n != 0 && n == n // n == n is false for NaN
	case String:
		return len(t) > 0
	case Array:
		return len(t) > 0
	case Object:
		return len(t) > 0
	default:
		return false
	}
}

// ToDisplayString implements the to-string(v) coercion of spec.md §4.1,
// used for implicit string conversion (string concatenation, etc). It is
// distinct from Value.String only in name, kept separate so the operator
// engine can call it explicitly at coercion sites.
func ToDisplayString(v Value) string {
	return v.String()
}

// AbstractEqual implements the same-kind-only equality of spec.md §4.1.
// Strict and loose equality are not distinguished (spec.md §4.5); both
// forward here.
func AbstractEqual(a, b Value) bool {
	switch l := a.(type) {
	case Null:
		_, ok := b.(Null)
		return ok
	case Bool:
		r, ok := b.(Bool)
		return ok && l == r
	case Number:
		r, ok := b.(Number)
		return ok && l == r
	case String:
		r, ok := b.(String)
		return ok && l == r
	default:
		// Array and Object have no defined structural equality in
		// spec.md §4.1; cross- and same-kind comparisons are false.
		return false
	}
}
