// Package errors implements the two-level error surface of the
// evaluator: a NodeError carrying a message and the offending syntax
// node, wrapped at the public boundary by an EvaluationError.
package errors

import (
	"fmt"

	"github.com/respectZ/exprimo/ast"
)

// NodeError is a single evaluation failure, optionally anchored to the
// syntax node that produced it.
type NodeError struct {
	Message string
	Node    ast.Node // nil when no specific node is implicated
}

// Error implements the error interface.
func (e *NodeError) Error() string {
	return e.Message
}

// New creates a NodeError with no node reference.
func New(message string) *NodeError {
	return &NodeError{Message: message}
}

// Newf creates a NodeError with a formatted message.
func Newf(format string, args ...any) *NodeError {
	return &NodeError{Message: fmt.Sprintf(format, args...)}
}

// At creates a NodeError anchored to node.
func At(node ast.Node, message string) *NodeError {
	return &NodeError{Message: message, Node: node}
}

// Atf creates a NodeError anchored to node with a formatted message.
func Atf(node ast.Node, format string, args ...any) *NodeError {
	return &NodeError{Message: fmt.Sprintf(format, args...), Node: node}
}

// WithPrefix returns a new NodeError with message prefixed, preserving
// the original node reference, for adding caller context (receiver text,
// method name) to an existing failure. The evaluator's own method-call
// re-wrapping builds a new error with Atf and MsgMethodCallFailed instead.
func (e *NodeError) WithPrefix(prefix string) *NodeError {
	return &NodeError{Message: prefix + e.Message, Node: e.Node}
}

// EvaluationError is the error type returned from the evaluator's public
// Evaluate entry point; it wraps the NodeError produced by the tree
// walker.
type EvaluationError struct {
	Err *NodeError
}

// Error implements the error interface.
func (e *EvaluationError) Error() string {
	return "evaluation error: " + e.Err.Error()
}

// Unwrap allows errors.As/errors.Is to reach the wrapped NodeError.
func (e *EvaluationError) Unwrap() error {
	return e.Err
}

// Wrap builds an EvaluationError from a NodeError.
func Wrap(err *NodeError) *EvaluationError {
	return &EvaluationError{Err: err}
}
