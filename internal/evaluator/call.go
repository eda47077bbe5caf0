package evaluator

import (
	"context"

	"github.com/cwbudde/vexpr/internal/ast"
	"github.com/cwbudde/vexpr/internal/object"
	"github.com/cwbudde/vexpr/internal/signal"
	"github.com/cwbudde/vexpr/internal/vector"
)

// evalCall dispatches a Call node. A handful of names need the
// unevaluated argument expressions — assignment, quoting, `eval`
// itself, and short-circuiting or/and — and are special-cased before
// anything reaches the eager-value primitive registry or a user
// function application, since those need access to the raw expression
// tree rather than a forced value.
func (e *Evaluator) evalCall(ctx context.Context, n *ast.Call, env *object.Environment) (object.Value, error) {
	if sym, ok := n.Head.(*ast.Symbol); ok {
		switch sym.Name {
		case "<-":
			return e.evalAssign(ctx, n, env)
		case "quote":
			return e.evalQuote(n)
		case "eval":
			return e.evalEval(ctx, n, env)
		case "or":
			return e.evalShortCircuit(ctx, n, env, false)
		case "and":
			return e.evalShortCircuit(ctx, n, env, true)
		}
		if fn, ok := e.Registry.Lookup(sym.Name); ok {
			args, names, err := e.evalArgsEager(ctx, n.Args, env)
			if err != nil {
				return nil, err
			}
			v, err := fn(args, names, callContext{stack: e.Stack, lexicalEnv: env})
			if err != nil {
				if se, ok := err.(*signal.Error); ok && se.Expr == nil {
					return nil, se.WithExpr(n)
				}
				return nil, err
			}
			return v, nil
		}
	}

	head, err := e.Eval(ctx, n.Head, env)
	if err != nil {
		return nil, err
	}
	fn, ok := head.(*object.Function)
	if !ok {
		return nil, signal.New(signal.Type, signal.ErrMsgNotCallable).WithExpr(n)
	}
	name := "<anonymous>"
	if sym, ok := n.Head.(*ast.Symbol); ok {
		name = sym.Name
	}
	return e.apply(ctx, fn, n.Args, env, n.Position, name)
}

// callContext adapts a CallStack plus the lexical environment active at
// a call site into builtins.CallContext, falling back to that lexical
// environment whenever the stack has no frame to answer from — the
// top-level case, where no function application has pushed one.
type callContext struct {
	stack      *CallStack
	lexicalEnv *object.Environment
}

func (c callContext) CurrentEnv() *object.Environment {
	if e := c.stack.CurrentEnv(); e != nil {
		return e
	}
	return c.lexicalEnv
}

func (c callContext) ParentEnv() *object.Environment {
	if e := c.stack.ParentEnv(); e != nil {
		return e
	}
	return c.lexicalEnv
}

// evalArgsEager forces every call argument to a concrete Value for the
// primitive registry, splicing a bare `...` into the forwarded
// ellipsis bucket bound in env so a variadic parameter can be passed
// straight through to another call (e.g. `g <- function(...) c(...)`).
func (e *Evaluator) evalArgsEager(ctx context.Context, args ast.ExprList, env *object.Environment) ([]object.Value, []string, error) {
	expanded, err := e.expandArgs(args, env)
	if err != nil {
		return nil, nil, err
	}
	values := make([]object.Value, len(expanded))
	names := make([]string, len(expanded))
	for i, a := range expanded {
		names[i] = a.name
		if a.forward != nil {
			v, err := e.force(ctx, a.forward)
			if err != nil {
				return nil, nil, err
			}
			values[i] = v
			continue
		}
		v, err := e.Eval(ctx, a.expr, env)
		if err != nil {
			return nil, nil, err
		}
		values[i] = v
	}
	return values, names, nil
}

// expandArgs converts a call site's raw argument list into evaluator
// args, splicing a bare, unnamed `...` reference into whatever
// forwarded ellipsis bucket is bound under that name in env — this is
// what lets `...` forward intact into another call. Every other
// argument passes through unevaluated, to be wrapped in a promise by
// the caller.
func (e *Evaluator) expandArgs(list ast.ExprList, env *object.Environment) ([]arg, error) {
	out := make([]arg, 0, list.Len())
	for i := 0; i < list.Len(); i++ {
		name, expr := list.At(i)
		sym, isEllipsisRef := expr.(*ast.Symbol)
		if name != "" || !isEllipsisRef || sym.Name != ellipsisName {
			out = append(out, arg{name: name, expr: expr})
			continue
		}

		bound, ok := env.Get(ellipsisName)
		if !ok {
			return nil, signal.New(signal.Lookup, signal.ErrMsgUndefinedSymbol, ellipsisName).WithExpr(expr)
		}
		bucket, ok := bound.(object.ListValue)
		if !ok {
			return nil, signal.New(signal.Type, "'...' used outside a variadic function").WithExpr(expr)
		}
		for j, v := range bucket.Values {
			elemName := ""
			if j < len(bucket.Names) {
				elemName = bucket.Names[j]
			}
			if cl, ok := v.(*object.Closure); ok {
				out = append(out, arg{name: elemName, forward: cl})
				continue
			}
			out = append(out, arg{name: elemName, forward: object.NewForcedClosure(v)})
		}
	}
	return out, nil
}

// evalAssign implements `<-`: evaluate value in the current frame, bind
// it under target's name in the CURRENT environment (never walking up
// to shadow an outer binding), return the value.
func (e *Evaluator) evalAssign(ctx context.Context, n *ast.Call, env *object.Environment) (object.Value, error) {
	if n.Args.Len() != 2 {
		return nil, signal.New(signal.Arity, signal.ErrMsgWrongArgCountFor, "<-", 2, n.Args.Len()).WithExpr(n)
	}
	_, targetExpr := n.Args.At(0)
	_, valueExpr := n.Args.At(1)
	target, ok := targetExpr.(*ast.Symbol)
	if !ok {
		return nil, signal.New(signal.Type, "<-: target must be a symbol, got %s", targetExpr.String()).WithExpr(n)
	}
	value, err := e.Eval(ctx, valueExpr, env)
	if err != nil {
		return nil, err
	}
	if vv, ok := value.(object.VectorValue); ok {
		vv.V.MarkShared()
	}
	env.Define(target.Name, value)
	return value, nil
}

// evalQuote implements `quote(expr)`: returns expr itself, unevaluated,
// wrapped as an ExprValue. There is no forcing involved — quote's whole
// point is to suppress it.
func (e *Evaluator) evalQuote(n *ast.Call) (object.Value, error) {
	if n.Args.Len() != 1 {
		return nil, signal.New(signal.Arity, signal.ErrMsgWrongArgCountFor, "quote", 1, n.Args.Len()).WithExpr(n)
	}
	_, expr := n.Args.At(0)
	return object.ExprValue{Expr: expr}, nil
}

// evalEval implements `eval(x, envir = parent())`: x must force to an
// ExprValue, envir to an EnvironmentValue; the named expression is
// evaluated in that environment and its result returned.
func (e *Evaluator) evalEval(ctx context.Context, n *ast.Call, env *object.Environment) (object.Value, error) {
	formals := ast.NewExprList(
		[]string{"x", "envir"},
		[]ast.Node{nil, &ast.Call{Head: &ast.Symbol{Name: "parent"}}},
	)
	matched, _, err := matchArgs(formals, plainArgs(n.Args))
	if err != nil {
		return nil, err
	}
	if matched[0] == nil {
		return nil, signal.New(signal.Lookup, signal.ErrMsgMissingArgForced, "x").WithExpr(n)
	}
	xVal, err := e.Eval(ctx, matched[0].expr, env)
	if err != nil {
		return nil, err
	}
	xVal, err = e.force(ctx, xVal)
	if err != nil {
		return nil, err
	}
	exprVal, ok := xVal.(object.ExprValue)
	if !ok {
		return nil, signal.New(signal.Type, signal.ErrMsgNotAnExpr).WithExpr(n)
	}

	envirExpr := matched[1].expr
	envirVal, err := e.Eval(ctx, envirExpr, env)
	if err != nil {
		return nil, err
	}
	envirVal, err = e.force(ctx, envirVal)
	if err != nil {
		return nil, err
	}
	envHandle, ok := envirVal.(object.EnvironmentValue)
	if !ok {
		return nil, signal.New(signal.Type, "eval: envir must be an environment, got %s", envirVal.Type()).WithExpr(n)
	}
	return e.Eval(ctx, exprVal.Expr, envHandle.Env)
}

// evalShortCircuit implements `or`/`and`: the first operand decides the
// result without forcing the second whenever it is definitive
// (true-or-anything is true, false-and-anything is false); otherwise
// the second operand is evaluated and combined following the usual
// NA rules. The word-form logical connectives short-circuit on a
// definitive operand; the `|`/`&` primitives stay strictly vectorized
// and non-short-circuiting.
func (e *Evaluator) evalShortCircuit(ctx context.Context, n *ast.Call, env *object.Environment, isAnd bool) (object.Value, error) {
	if n.Args.Len() != 2 {
		name := "or"
		if isAnd {
			name = "and"
		}
		return nil, signal.New(signal.Arity, signal.ErrMsgWrongArgCountFor, name, 2, n.Args.Len()).WithExpr(n)
	}
	_, lhsExpr := n.Args.At(0)
	_, rhsExpr := n.Args.At(1)

	lhsVal, err := e.Eval(ctx, lhsExpr, env)
	if err != nil {
		return nil, err
	}
	lhs, lhsNA, err := logicalScalar(lhsVal)
	if err != nil {
		return nil, err
	}
	if !lhsNA {
		if isAnd && !lhs {
			return boolValue(false), nil
		}
		if !isAnd && lhs {
			return boolValue(true), nil
		}
	}

	rhsVal, err := e.Eval(ctx, rhsExpr, env)
	if err != nil {
		return nil, err
	}
	rhs, rhsNA, err := logicalScalar(rhsVal)
	if err != nil {
		return nil, err
	}
	if isAnd {
		if rhsNA && lhsNA {
			return naValue(), nil
		}
		if !rhsNA && !rhs {
			return boolValue(false), nil
		}
		if lhsNA || rhsNA {
			return naValue(), nil
		}
		return boolValue(lhs && rhs), nil
	}
	if rhsNA && lhsNA {
		return naValue(), nil
	}
	if !rhsNA && rhs {
		return boolValue(true), nil
	}
	if lhsNA || rhsNA {
		return naValue(), nil
	}
	return boolValue(lhs || rhs), nil
}

func logicalScalar(v object.Value) (value bool, isNA bool, err error) {
	vv, ok := v.(object.VectorValue)
	if !ok || vv.V.Len() == 0 {
		return false, false, signal.New(signal.Type, signal.ErrMsgCannotCoerce, v.Type(), "Logical")
	}
	lv := vector.Coerce(vv.V, vector.Logical).(vector.LogicalVector)
	b, present := lv.At(0).Value()
	if !present {
		return false, true, nil
	}
	return b, false, nil
}

func boolValue(b bool) object.Value {
	return object.VectorValue{V: vector.LogicalOf(b)}
}

func naValue() object.Value {
	return object.VectorValue{V: vector.NewLogical([]vector.NA[bool]{vector.Missing[bool]()})}
}
