// Package vexpr is the public entry point a host embeds: it wires
// together internal/evaluator, internal/builtins, and (optionally)
// internal/reader into one `evaluate(source_expr, top_env) -> (Value,
// error)` interface.
package vexpr

import (
	"context"

	"github.com/cwbudde/vexpr/internal/ast"
	"github.com/cwbudde/vexpr/internal/evaluator"
	"github.com/cwbudde/vexpr/internal/object"
	"github.com/cwbudde/vexpr/internal/reader"
)

// DefaultMaxCallDepth bounds recursion, chosen generously for a
// tree-walker with no tail-call elimination.
const DefaultMaxCallDepth = 1024

// Interpreter pairs an Evaluator with the global environment a host
// keeps alive across many evaluate() calls — the call stack itself
// starts and ends empty for each top-level call, but bindings persist.
type Interpreter struct {
	eval   *evaluator.Evaluator
	topEnv *object.Environment
}

// New builds an Interpreter with a fresh global environment seeded with
// the default primitive registry.
func New() *Interpreter {
	return &Interpreter{
		eval:   evaluator.New(nil, DefaultMaxCallDepth),
		topEnv: object.NewEnvironment(),
	}
}

// TopEnv returns the interpreter's persistent global environment, e.g.
// for a host that wants to pre-bind values before the first Eval.
func (in *Interpreter) TopEnv() *object.Environment {
	return in.topEnv
}

// Eval evaluates an already-built expression tree against the
// interpreter's global environment.
func (in *Interpreter) Eval(ctx context.Context, expr ast.Node) (object.Value, error) {
	return in.eval.Eval(ctx, expr, in.topEnv)
}

// EvalSource parses src with the package's demonstration reader and
// evaluates the result. Multiple top-level forms are sequenced as a
// Block; see internal/reader.ParseProgram.
func (in *Interpreter) EvalSource(ctx context.Context, src string) (object.Value, error) {
	expr, err := reader.ParseProgram(src)
	if err != nil {
		return nil, err
	}
	return in.Eval(ctx, expr)
}

// Evaluate is the stateless convenience form of evaluate(source_expr,
// top_env): a fresh CallStack per call, but the caller supplies (and
// keeps) the environment across calls.
func Evaluate(ctx context.Context, expr ast.Node, topEnv *object.Environment) (object.Value, error) {
	return evaluator.New(nil, DefaultMaxCallDepth).Eval(ctx, expr, topEnv)
}
