// Package context implements the evaluator's name->entry mapping: the
// read-only, flat namespace a host supplies variables and callable
// functions through (spec.md §3, §6).
package context

import "github.com/respectZ/exprimo/value"

// Func is a host-supplied callable. It must be pure from the
// evaluator's viewpoint (spec.md §3): no retained reference to the
// evaluator, no interior locking, and the evaluator takes none when
// invoking it (spec.md §9).
type Func func(args []value.Value) value.Value

// Entry is one binding in a Context: either a Variable or a Function.
type Entry struct {
	isFunc   bool
	variable value.Value
	function Func
}

// Variable wraps a plain value as a context entry.
func Variable(v value.Value) Entry {
	return Entry{variable: v}
}

// Function wraps a callable as a context entry.
func Function(f Func) Entry {
	return Entry{isFunc: true, function: f}
}

// AsVariable returns the entry's value and true if it is a Variable.
func (e Entry) AsVariable() (value.Value, bool) {
	if e.isFunc {
		return nil, false
	}
	return e.variable, true
}

// AsFunction returns the entry's callable and true if it is a Function.
func (e Entry) AsFunction() (Func, bool) {
	if !e.isFunc {
		return nil, false
	}
	return e.function, true
}

// Context is an immutable-through-its-public-surface mapping from
// identifier to Entry. The evaluator holds it by reference for the
// duration of a single Evaluate call and never mutates it.
type Context struct {
	entries map[string]Entry
}

// New creates an empty Context.
func New() *Context {
	return &Context{entries: make(map[string]Entry)}
}

// Builder incrementally constructs a Context.
type Builder struct {
	ctx *Context
}

// NewBuilder starts a fresh Builder.
func NewBuilder() *Builder {
	return &Builder{ctx: New()}
}

// SetVariable binds name to a plain value, returning the Builder for
// chaining.
func (b *Builder) SetVariable(name string, v value.Value) *Builder {
	b.ctx.entries[name] = Variable(v)
	return b
}

// SetFunction binds name to a callable, returning the Builder for
// chaining.
func (b *Builder) SetFunction(name string, f Func) *Builder {
	b.ctx.entries[name] = Function(f)
	return b
}

// Build finalizes and returns the constructed Context.
func (b *Builder) Build() *Context {
	return b.ctx
}

// Lookup returns the entry bound to name, if any.
func (c *Context) Lookup(name string) (Entry, bool) {
	e, ok := c.entries[name]
	return e, ok
}

// Len reports the number of bindings in the context.
func (c *Context) Len() int {
	return len(c.entries)
}
