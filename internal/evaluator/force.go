package evaluator

import (
	"context"

	"github.com/cwbudde/vexpr/internal/ast"
	"github.com/cwbudde/vexpr/internal/object"
)

// evalAdapter returns the callback object.Closure.Force needs: forcing
// always happens in the promise's OWN environment, never the forcing
// call site's.
func (e *Evaluator) evalAdapter(ctx context.Context) func(ast.Node, *object.Environment) (object.Value, error) {
	return func(n ast.Node, env *object.Environment) (object.Value, error) {
		return e.Eval(ctx, n, env)
	}
}

// force resolves v to a non-Closure value, forcing (and memoizing) any
// promise along the way.
func (e *Evaluator) force(ctx context.Context, v object.Value) (object.Value, error) {
	for {
		c, ok := v.(*object.Closure)
		if !ok {
			return v, nil
		}
		forced, err := c.Force(e.evalAdapter(ctx))
		if err != nil {
			return nil, err
		}
		v = forced
	}
}
