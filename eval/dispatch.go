package eval

import (
	"github.com/respectZ/exprimo/ast"
	"github.com/respectZ/exprimo/builtins"
	"github.com/respectZ/exprimo/errors"
	"github.com/respectZ/exprimo/semver"
	"github.com/respectZ/exprimo/value"
)

// evalCall resolves and invokes a Call node through the dispatch chain
// of spec.md §4.4: a method call on a Dot callee, a context-supplied
// function, the semver(...) constructor, or a UFCS fallback onto the
// first evaluated argument's builtin method table.
func (e *Evaluator) evalCall(n *ast.Call) (value.Value, *errors.NodeError) {
	if dot, ok := n.Callee.(*ast.Dot); ok {
		return e.evalMethodCall(n, dot)
	}

	ident, ok := n.Callee.(*ast.Identifier)
	if !ok {
		return nil, errors.At(n, errors.MsgUnsupportedSyntaxKind)
	}

	args, err := e.evalArgs(n.Args)
	if err != nil {
		return nil, err
	}

	if entry, found := e.ctx.Lookup(ident.Name); found {
		if fn, isFunc := entry.AsFunction(); isFunc {
			e.trace("calling context function", "name", ident.Name)
			return fn(args), nil
		}
	}

	if ident.Name == "semver" {
		v, serr := semver.Parse(args)
		if serr != nil {
			return nil, errors.Atf(n, errors.MsgSemverParseFailed, serr.Error())
		}
		return v.ToValue(), nil
	}

	if result, nerr, handled := e.tryUFCS(n, ident.Name, args); handled {
		return result, nerr
	}

	return nil, errors.Atf(n, errors.MsgFunctionNotFound, ident.Name)
}

// evalMethodCall dispatches a Dot-callee call to the builtin method
// table matching the receiver's kind.
func (e *Evaluator) evalMethodCall(n *ast.Call, dot *ast.Dot) (value.Value, *errors.NodeError) {
	receiver, err := e.evalNode(dot.Object)
	if err != nil {
		return nil, err
	}
	args, err := e.evalArgs(n.Args)
	if err != nil {
		return nil, err
	}

	result, callErr := callBuiltin(receiver, dot.Property, args)
	if callErr != nil {
		return nil, errors.Atf(n, errors.MsgMethodCallFailed, dot.Property, receiver.String(), callErr.Error())
	}
	return result, nil
}

// callBuiltin dispatches method on receiver by its runtime kind,
// matching (receiver-kind, method-name) in the builtin tables.
func callBuiltin(receiver value.Value, method string, args []value.Value) (value.Value, error) {
	switch r := receiver.(type) {
	case value.String:
		return builtins.CallString(string(r), method, args)
	case value.Array:
		return builtins.CallArray(r, method, args)
	case value.Number:
		return callMath(method, r, args)
	default:
		return nil, errors.Newf(errors.MsgUnsupportedReceiver, receiver.Type())
	}
}

func callMath(method string, receiver value.Number, args []value.Value) (value.Value, error) {
	if builtins.IsUnary(method) && len(args) == 0 {
		return builtins.CallUnary(method, float64(receiver))
	}
	if builtins.IsBinary(method) && len(args) == 1 {
		other, err := value.ToNumber(args[0])
		if err != nil {
			return nil, err
		}
		return builtins.CallBinary(method, float64(receiver), other)
	}
	return nil, errors.Newf(errors.MsgUnsupportedReceiver, receiver.Type())
}

// tryUFCS implements the free-call-as-method fallback of spec.md §4.4
// step 4: when name isn't a context function or "semver", and at least
// one argument was supplied, retry it as a method call on the first
// argument with the remaining arguments, for each receiver kind that
// exposes a matching method table.
func (e *Evaluator) tryUFCS(n *ast.Call, name string, args []value.Value) (value.Value, *errors.NodeError, bool) {
	if len(args) == 0 {
		return nil, nil, false
	}
	receiver, rest := args[0], args[1:]

	switch receiver.(type) {
	case value.String:
		if !builtins.StringMethods[name] {
			return nil, nil, false
		}
	case value.Array:
		if !builtins.ArrayMethods[name] {
			return nil, nil, false
		}
	case value.Number:
		if !builtins.IsUnary(name) && !builtins.IsBinary(name) {
			return nil, nil, false
		}
	default:
		return nil, nil, false
	}

	result, err := callBuiltin(receiver, name, rest)
	if err != nil {
		return nil, errors.Atf(n, errors.MsgMethodCallFailed, name, receiver.String(), err.Error()), true
	}
	return result, nil, true
}

func (e *Evaluator) evalArgs(exprs []ast.Expression) ([]value.Value, *errors.NodeError) {
	args := make([]value.Value, len(exprs))
	for i, expr := range exprs {
		v, err := e.evalNode(expr)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}
	return args, nil
}
