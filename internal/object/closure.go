package object

import (
	"errors"

	"github.com/cwbudde/vexpr/internal/ast"
)

// forceState tracks where a Closure is in its force lifecycle.
type forceState int

const (
	unforced forceState = iota
	forcing
	forced
)

// ErrRecursivePromise is raised when forcing a Closure re-enters the
// same Closure before its first force has completed.
var ErrRecursivePromise = errors.New("object: recursive promise")

// Closure is an unevaluated expression paired with its defining
// environment — a promise. It memoizes: the first Force call evaluates
// and caches the result; later calls return the cached Value directly.
type Closure struct {
	Expr  ast.Node
	Env   *Environment
	state forceState
	value Value
	err   error
}

// NewClosure wraps expr for lazy evaluation in env.
func NewClosure(expr ast.Node, env *Environment) *Closure {
	return &Closure{Expr: expr, Env: env}
}

// NewForcedClosure wraps an already-computed value as a Closure that is
// forced from construction — Force returns value with no expr/env
// needed. Used when a `...` forwarding bucket is spliced somewhere
// whose element isn't itself a promise.
func NewForcedClosure(value Value) *Closure {
	return &Closure{state: forced, value: value}
}

func (c *Closure) Type() string { return "CLOSURE" }
func (c *Closure) String() string {
	if c.Expr == nil {
		return "<closure: " + c.value.String() + ">"
	}
	return "<closure: " + c.Expr.String() + ">"
}
func (c *Closure) valueNode() {}

// Force evaluates the wrapped expression in its captured environment on
// first call, caching the result (or error) for every subsequent call.
// eval performs the actual expr/env -> Value evaluation; it is supplied
// by the caller (internal/evaluator) to avoid a package import cycle.
func (c *Closure) Force(eval func(ast.Node, *Environment) (Value, error)) (Value, error) {
	switch c.state {
	case forced:
		return c.value, c.err
	case forcing:
		return nil, ErrRecursivePromise
	}
	c.state = forcing
	c.value, c.err = eval(c.Expr, c.Env)
	c.state = forced
	return c.value, c.err
}

// IsForced reports whether this promise has already been forced.
func (c *Closure) IsForced() bool {
	return c.state == forced
}
