package eval

import (
	"github.com/respectZ/exprimo/ast"
	"github.com/respectZ/exprimo/errors"
	"github.com/respectZ/exprimo/value"
)

// evalDot evaluates a Dot node outside call position: plain member
// access. Per spec.md §4.4, accessing a property on an Object never
// errors (missing keys yield Null); accessing one on any other kind is
// likewise Null, since exprimo has no class/struct notion outside
// Object. The leftmost identifier of a dot chain resolves the same way
// a bare identifier lookup would, except an unbound or non-Variable
// binding yields Null instead of raising: `a.b.c` with `a` unbound is
// Null, not an error.
func (e *Evaluator) evalDot(n *ast.Dot) (value.Value, *errors.NodeError) {
	obj, err := e.evalDotBase(n.Object)
	if err != nil {
		return nil, err
	}
	if o, ok := obj.(value.Object); ok {
		return o.Get(n.Property), nil
	}
	return value.NullValue, nil
}

// evalDotBase resolves the object side of a Dot node. A bare identifier
// defaults to Null on an unbound name or a Function binding rather than
// raising MsgIdentifierNotFound, since that lookup failure is itself
// part of a member access, not a standalone identifier reference; any
// other expression kind evaluates normally and may still error.
func (e *Evaluator) evalDotBase(object ast.Expression) (value.Value, *errors.NodeError) {
	if id, ok := object.(*ast.Identifier); ok {
		entry, found := e.ctx.Lookup(id.Name)
		if !found {
			return value.NullValue, nil
		}
		v, isVar := entry.AsVariable()
		if !isVar {
			return value.NullValue, nil
		}
		return v, nil
	}
	return e.evalNode(object)
}
