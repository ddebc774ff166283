package builtins

import (
	"fmt"
	"math"

	"github.com/respectZ/exprimo/errors"
	"github.com/respectZ/exprimo/value"
)

// UnaryMath lists the math functions taking a single numeric argument.
var UnaryMath = map[string]func(float64) float64{
	"floor":      math.Floor,
	"ceil":       math.Ceil,
	"round":      math.Round,
	"sin":        math.Sin,
	"cos":        math.Cos,
	"tan":        math.Tan,
	"asin":       math.Asin,
	"acos":       math.Acos,
	"atan":       math.Atan,
	"sqrt":       math.Sqrt,
	"abs":        math.Abs,
	"clamp":      func(x float64) float64 { return clamp01(x) },
	"bitiwseNot": bitwiseNot, // misspelling preserved from the source
	"bitwiseNot": bitwiseNot, // corrected spelling also registered
}

// BinaryMath lists the math functions taking two numeric arguments.
var BinaryMath = map[string]func(a, b float64) float64{
	"atan2":         math.Atan2,
	"min":           math.Min,
	"max":           math.Max,
	"mod":           math.Mod,
	"pow":           math.Pow,
	"bitwiseAnd":    func(a, b float64) float64 { return float64(toInt64(a) & toInt64(b)) },
	"bitwiseOr":     func(a, b float64) float64 { return float64(toInt64(a) | toInt64(b)) },
	"bitshiftLeft":  func(a, b float64) float64 { return float64(toInt64(a) << uint64(toInt64(b))) },
	"bitshiftRight": func(a, b float64) float64 { return float64(toInt64(a) >> uint64(toInt64(b))) },
}

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

func toInt64(x float64) int64 {
	return int64(math.Round(x))
}

func bitwiseNot(x float64) float64 {
	return float64(^toInt64(x))
}

// IsUnary reports whether name is a registered unary math function.
func IsUnary(name string) bool {
	_, ok := UnaryMath[name]
	return ok
}

// IsBinary reports whether name is a registered binary math function.
func IsBinary(name string) bool {
	_, ok := BinaryMath[name]
	return ok
}

// CallUnary invokes the unary math function name on x.
func CallUnary(name string, x float64) (value.Value, error) {
	f, ok := UnaryMath[name]
	if !ok {
		return nil, fmt.Errorf(errors.MsgFunctionNotFound, name)
	}
	return value.Number(f(x)), nil
}

// CallBinary invokes the binary math function name on (x, y).
func CallBinary(name string, x, y float64) (value.Value, error) {
	f, ok := BinaryMath[name]
	if !ok {
		return nil, fmt.Errorf(errors.MsgFunctionNotFound, name)
	}
	return value.Number(f(x, y)), nil
}
