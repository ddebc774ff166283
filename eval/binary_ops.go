package eval

import (
	"math"

	"github.com/respectZ/exprimo/ast"
	"github.com/respectZ/exprimo/errors"
	"github.com/respectZ/exprimo/semver"
	"github.com/respectZ/exprimo/value"
)

// evalBinary evaluates a Binary node. && and || evaluate both operands
// unconditionally (spec.md §9: there is no short-circuiting, the same as
// in the source it was distilled from), so side effects in host-supplied
// functions on either side always run.
func (e *Evaluator) evalBinary(n *ast.Binary) (value.Value, *errors.NodeError) {
	left, err := e.evalNode(n.Left)
	if err != nil {
		return nil, err
	}
	right, err := e.evalNode(n.Right)
	if err != nil {
		return nil, err
	}

	switch n.Operator {
	case "&&":
		return value.Bool(value.ToBoolean(left) && value.ToBoolean(right)), nil
	case "||":
		return value.Bool(value.ToBoolean(left) || value.ToBoolean(right)), nil
	case "==", "===":
		return value.Bool(e.equalOrSemver(left, right)), nil
	case "!=", "!==":
		return value.Bool(!e.equalOrSemver(left, right)), nil
	case "+":
		return e.evalPlus(n, left, right)
	case "-", "*", "/", "%":
		return e.evalArith(n, left, right)
	case "<", "<=", ">", ">=":
		return e.evalCompare(n, left, right)
	default:
		return nil, errors.At(n, errors.MsgUnsupportedBinaryOp)
	}
}

// equalOrSemver applies the semver override (spec.md §4.3): when both
// operands decode as semver objects, equality follows version
// precedence instead of structural Object equality (which is always
// false). Any decode failure falls through silently to AbstractEqual.
func (e *Evaluator) equalOrSemver(left, right value.Value) bool {
	lv, lok := semver.FromValue(left)
	rv, rok := semver.FromValue(right)
	if lok && rok {
		return lv.Compare(rv) == 0
	}
	return value.AbstractEqual(left, right)
}

// evalPlus implements the overloaded + operator (spec.md §4.5): numeric
// addition when both operands are Number, string concatenation when
// either operand is String, and otherwise to-string concatenation of
// both operands for any remaining combination.
func (e *Evaluator) evalPlus(n *ast.Binary, left, right value.Value) (value.Value, *errors.NodeError) {
	if ln, lok := left.(value.Number); lok {
		if rn, rok := right.(value.Number); rok {
			return value.Number(ln + rn), nil
		}
	}
	if _, lok := left.(value.String); lok {
		return value.String(value.ToDisplayString(left) + value.ToDisplayString(right)), nil
	}
	if _, rok := right.(value.String); rok {
		return value.String(value.ToDisplayString(left) + value.ToDisplayString(right)), nil
	}
	return value.String(value.ToDisplayString(left) + value.ToDisplayString(right)), nil
}

func (e *Evaluator) evalArith(n *ast.Binary, left, right value.Value) (value.Value, *errors.NodeError) {
	ln, lerr := value.ToNumber(left)
	if lerr != nil {
		return nil, errors.At(n, lerr.Error())
	}
	rn, rerr := value.ToNumber(right)
	if rerr != nil {
		return nil, errors.At(n, rerr.Error())
	}
	switch n.Operator {
	case "-":
		return value.Number(ln - rn), nil
	case "*":
		return value.Number(ln * rn), nil
	case "/":
		if rn == 0 {
			return nil, errors.At(n, errors.MsgDivisionByZero)
		}
		return value.Number(ln / rn), nil
	case "%":
		if rn == 0 {
			return nil, errors.At(n, errors.MsgDivisionByZero)
		}
		return value.Number(math.Mod(ln, rn)), nil
	default:
		return nil, errors.At(n, errors.MsgUnsupportedBinaryOp)
	}
}

// evalCompare implements <, <=, >, >= with the semver override: when
// both operands decode as semver objects, ordering follows version
// precedence instead of numeric coercion.
func (e *Evaluator) evalCompare(n *ast.Binary, left, right value.Value) (value.Value, *errors.NodeError) {
	if lv, lok := semver.FromValue(left); lok {
		if rv, rok := semver.FromValue(right); rok {
			return value.Bool(compareOp(n.Operator, float64(lv.Compare(rv)), 0)), nil
		}
	}
	ln, lerr := value.ToNumber(left)
	if lerr != nil {
		return nil, errors.At(n, lerr.Error())
	}
	rn, rerr := value.ToNumber(right)
	if rerr != nil {
		return nil, errors.At(n, rerr.Error())
	}
	return value.Bool(compareOp(n.Operator, ln, rn)), nil
}

func compareOp(op string, a, b float64) bool {
	switch op {
	case "<":
		return a < b
	case "<=":
		return a <= b
	case ">":
		return a > b
	case ">=":
		return a >= b
	default:
		return false
	}
}
