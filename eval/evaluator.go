// Package eval implements the tree-walking evaluator: the public entry
// point, the node-kind dispatch, and the binary-operator and call-
// dispatch engines described in spec.md §4 and §6.
package eval

import (
	"log/slog"

	"github.com/respectZ/exprimo/ast"
	"github.com/respectZ/exprimo/context"
	"github.com/respectZ/exprimo/errors"
	"github.com/respectZ/exprimo/parser"
	"github.com/respectZ/exprimo/value"
)

// Tracer receives one event per node visited, mirroring the optional,
// feature-gated logger of the original source (SPEC_FULL.md §3). A nil
// Tracer is a no-op; exprimo takes no third-party logging dependency
// here, matching its teacher repo, which carries none either (see
// DESIGN.md).
type Tracer interface {
	Trace(msg string, args ...any)
}

// slogTracer adapts a *slog.Logger to Tracer.
type slogTracer struct{ logger *slog.Logger }

func (t slogTracer) Trace(msg string, args ...any) { t.logger.Debug(msg, args...) }

// NewSlogTracer wraps logger as a Tracer.
func NewSlogTracer(logger *slog.Logger) Tracer {
	return slogTracer{logger: logger}
}

// Evaluator walks a parsed expression against a fixed context. It is
// created once per context and may evaluate many expressions
// (spec.md §3 lifecycles); it performs no interior mutation of its own
// and no locking, so it may be shared across goroutines as long as any
// context.Func entries are themselves safe for concurrent invocation
// (spec.md §5).
type Evaluator struct {
	ctx    *context.Context
	tracer Tracer
}

// New creates an Evaluator bound to ctx.
func New(ctx *context.Context) *Evaluator {
	return &Evaluator{ctx: ctx}
}

// WithTracer attaches a Tracer and returns the Evaluator for chaining.
func (e *Evaluator) WithTracer(t Tracer) *Evaluator {
	e.tracer = t
	return e
}

func (e *Evaluator) trace(msg string, args ...any) {
	if e.tracer != nil {
		e.tracer.Trace(msg, args...)
	}
}

// Evaluate parses expressionText and evaluates it against the
// Evaluator's context, returning an *errors.EvaluationError on failure.
func (e *Evaluator) Evaluate(expressionText string) (value.Value, error) {
	prog, err := parser.Parse(expressionText)
	if err != nil {
		return nil, errors.Wrap(errors.New(err.Error()))
	}
	if prog.Statement == nil {
		return nil, errors.Wrap(errors.New(errors.MsgEmptyExpression))
	}

	e.trace("evaluating expression", "text", expressionText)
	result, nerr := e.evalNode(prog.Statement.Expr)
	if nerr != nil {
		return nil, errors.Wrap(nerr)
	}
	e.trace("evaluation complete", "result", result.String())
	return result, nil
}

// evalNode is the tree walker's central dispatch, switching on the
// node's Kind (spec.md §4.5). Any kind outside this table is an error.
func (e *Evaluator) evalNode(node ast.Node) (result value.Value, nerr *errors.NodeError) {
	if e.tracer != nil {
		defer func() {
			if nerr != nil {
				e.tracer.Trace("node failed", "kind", node.Kind(), "error", nerr.Message)
			} else {
				e.tracer.Trace("node evaluated", "kind", node.Kind(), "result", result.String())
			}
		}()
	}
	switch n := node.(type) {
	case *ast.ExpressionStatement:
		return e.evalNode(n.Expr)
	case *ast.Grouping:
		return e.evalNode(n.Inner)
	case *ast.Literal:
		return e.evalLiteral(n)
	case *ast.Identifier:
		return e.evalIdentifier(n)
	case *ast.Dot:
		return e.evalDot(n)
	case *ast.Unary:
		return e.evalUnary(n)
	case *ast.Binary:
		return e.evalBinary(n)
	case *ast.Conditional:
		return e.evalConditional(n)
	case *ast.Call:
		return e.evalCall(n)
	default:
		return nil, errors.At(node, errors.MsgUnsupportedSyntaxKind)
	}
}

func (e *Evaluator) evalConditional(n *ast.Conditional) (value.Value, *errors.NodeError) {
	cond, err := e.evalNode(n.Cond)
	if err != nil {
		return nil, err
	}
	if value.ToBoolean(cond) {
		return e.evalNode(n.Consequent)
	}
	return e.evalNode(n.Alternate)
}

func (e *Evaluator) evalIdentifier(n *ast.Identifier) (value.Value, *errors.NodeError) {
	entry, ok := e.ctx.Lookup(n.Name)
	if !ok {
		return nil, errors.Atf(n, errors.MsgIdentifierNotFound, n.Name)
	}
	v, ok := entry.AsVariable()
	if !ok {
		return nil, errors.Atf(n, errors.MsgIdentifierNotFound, n.Name)
	}
	return v, nil
}

func (e *Evaluator) evalUnary(n *ast.Unary) (value.Value, *errors.NodeError) {
	operand, err := e.evalNode(n.Operand)
	if err != nil {
		return nil, err
	}
	switch n.Operator {
	case "!":
		return value.Bool(!value.ToBoolean(operand)), nil
	case "-":
		num, cerr := value.ToNumber(operand)
		if cerr != nil {
			return nil, errors.At(n, cerr.Error())
		}
		return value.Number(-num), nil
	case "+":
		num, cerr := value.ToNumber(operand)
		if cerr != nil {
			return nil, errors.At(n, cerr.Error())
		}
		return value.Number(num), nil
	default:
		return nil, errors.At(n, errors.MsgUnsupportedUnaryOp)
	}
}
