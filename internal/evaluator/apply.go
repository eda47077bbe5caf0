package evaluator

import (
	"context"

	"github.com/cwbudde/vexpr/internal/ast"
	"github.com/cwbudde/vexpr/internal/object"
	"github.com/cwbudde/vexpr/internal/signal"
)

// apply runs the function-application algorithm: match args against
// fn's formals, push a frame whose environment is a child of fn.Env
// (lexical scoping — never the caller's environment), bind every
// matched argument and default as an unforced promise, evaluate the
// body, and unwrap a Return signal into its carried value.
func (e *Evaluator) apply(ctx context.Context, fn *object.Function, args ast.ExprList, callerEnv *object.Environment, pos ast.Position, callName string) (object.Value, error) {
	expanded, err := e.expandArgs(args, callerEnv)
	if err != nil {
		return nil, err
	}
	matched, ellipsis, err := matchArgs(fn.Formals, expanded)
	if err != nil {
		return nil, err
	}

	calleeEnv := object.NewChildEnvironment(fn.Env)

	for i := 0; i < fn.Formals.Len(); i++ {
		name, def := fn.Formals.At(i)
		if name == ellipsisName {
			continue
		}
		m := matched[i]
		switch {
		case m == nil:
			// No actual, no default: leave unbound. A later read signals
			// undefined-symbol, the same Lookup error a missing argument
			// forced for its value produces.
			continue
		case m.forward != nil:
			// Spliced in from a forwarded `...`: bind the existing promise
			// unchanged, preserving whatever laziness and defining
			// environment it already carried.
			calleeEnv.Define(name, m.forward)
		case isDefaultExpr(m, def):
			// Defaults close over the callee's own environment so they may
			// reference earlier parameters.
			calleeEnv.Define(name, object.NewClosure(m.expr, calleeEnv))
		default:
			calleeEnv.Define(name, object.NewClosure(m.expr, callerEnv))
		}
	}

	if len(ellipsis) > 0 {
		names := make([]string, len(ellipsis))
		values := make([]object.Value, len(ellipsis))
		for i, a := range ellipsis {
			names[i] = a.name
			if a.forward != nil {
				values[i] = a.forward
			} else {
				values[i] = object.NewClosure(a.expr, callerEnv)
			}
		}
		calleeEnv.Define(ellipsisName, object.ListValue{Names: names, Values: values})
	}

	if err := e.Stack.Push(callName, calleeEnv, pos); err != nil {
		return nil, err
	}
	defer e.Stack.Pop()

	result, err := e.Eval(ctx, fn.Body, calleeEnv)
	if ctrl, ok := err.(*signal.Control); ok && ctrl.Kind == signal.ReturnSignal {
		if v, ok := ctrl.Value.(object.Value); ok {
			return v, nil
		}
		return object.Null{}, nil
	}
	return result, err
}
