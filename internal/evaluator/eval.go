// Package evaluator walks an ast.Node tree against a CallStack of
// object.Environment frames, producing object.Values.
package evaluator

import (
	"context"

	"github.com/cwbudde/vexpr/internal/ast"
	"github.com/cwbudde/vexpr/internal/builtins"
	"github.com/cwbudde/vexpr/internal/object"
	"github.com/cwbudde/vexpr/internal/signal"
	"github.com/cwbudde/vexpr/internal/vector"
)

// Evaluator threads the primitive registry and call stack through a
// walk of the tree; it carries no other mutable state, so a single
// instance can be reused across many top-level evaluate() calls as
// long as the CallStack is empty between them.
type Evaluator struct {
	Registry *builtins.Registry
	Stack    *CallStack
}

// New builds an Evaluator seeded with the default primitive registry
// when registry is nil.
func New(registry *builtins.Registry, maxDepth int) *Evaluator {
	if registry == nil {
		registry = builtins.Default()
	}
	return &Evaluator{Registry: registry, Stack: NewCallStack(maxDepth)}
}

// Eval walks node, returning its value or a signal.Error / signal.Control.
func (e *Evaluator) Eval(ctx context.Context, node ast.Node, env *object.Environment) (object.Value, error) {
	if err := e.Stack.CheckInterrupt(ctx); err != nil {
		return nil, err
	}

	switch n := node.(type) {
	case *ast.Null:
		return object.Null{}, nil
	case *ast.Missing:
		return object.Missing{}, nil
	case *ast.Number:
		return object.VectorValue{V: vector.NumericOf(n.Value)}, nil
	case *ast.Integer:
		return object.VectorValue{V: vector.IntegerOf(n.Value)}, nil
	case *ast.Bool:
		return object.VectorValue{V: vector.LogicalOf(n.Value)}, nil
	case *ast.String:
		return object.VectorValue{V: vector.CharacterOf(n.Value)}, nil
	case *ast.Symbol:
		return e.evalSymbol(ctx, n, env)
	case *ast.List:
		return e.evalListLiteral(ctx, n, env)
	case *ast.Function:
		return &object.Function{Formals: n.Formals, Body: n.Body, Env: env}, nil
	case *ast.Block:
		return e.evalBlock(ctx, n, env)
	case *ast.If:
		return e.evalIf(ctx, n, env)
	case *ast.For:
		return e.evalFor(ctx, n, env)
	case *ast.While:
		return e.evalWhile(ctx, n, env)
	case *ast.Break:
		return nil, signal.NewBreak()
	case *ast.Continue:
		return nil, signal.NewContinue()
	case *ast.Return:
		var v object.Value = object.Null{}
		if n.Value != nil {
			var err error
			v, err = e.Eval(ctx, n.Value, env)
			if err != nil {
				return nil, err
			}
		}
		return nil, signal.NewReturn(v)
	case *ast.Call:
		return e.evalCall(ctx, n, env)
	default:
		return nil, signal.New(signal.Internal, signal.ErrMsgUnknownNodeKind, node).WithExpr(node)
	}
}

func (e *Evaluator) evalSymbol(ctx context.Context, n *ast.Symbol, env *object.Environment) (object.Value, error) {
	v, ok := env.Get(n.Name)
	if !ok {
		return nil, signal.New(signal.Lookup, signal.ErrMsgUndefinedSymbol, n.Name).WithExpr(n)
	}
	return e.force(ctx, v)
}

func (e *Evaluator) evalListLiteral(ctx context.Context, n *ast.List, env *object.Environment) (object.Value, error) {
	names := make([]string, n.Elements.Len())
	values := make([]object.Value, n.Elements.Len())
	for i := 0; i < n.Elements.Len(); i++ {
		name, expr := n.Elements.At(i)
		v, err := e.Eval(ctx, expr, env)
		if err != nil {
			return nil, err
		}
		names[i] = name
		values[i] = v
	}
	return object.ListValue{Names: names, Values: values}, nil
}

func (e *Evaluator) evalBlock(ctx context.Context, n *ast.Block, env *object.Environment) (object.Value, error) {
	var result object.Value = object.Null{}
	for _, stmt := range n.Body {
		v, err := e.Eval(ctx, stmt, env)
		if err != nil {
			return nil, err
		}
		result = v
	}
	return result, nil
}

func (e *Evaluator) evalIf(ctx context.Context, n *ast.If, env *object.Environment) (object.Value, error) {
	cond, err := e.Eval(ctx, n.Cond, env)
	if err != nil {
		return nil, err
	}
	truth, err := scalarTruth(cond)
	if err != nil {
		return nil, err
	}
	if truth {
		return e.Eval(ctx, n.Then, env)
	}
	if n.Else != nil {
		return e.Eval(ctx, n.Else, env)
	}
	return object.Null{}, nil
}

func (e *Evaluator) evalFor(ctx context.Context, n *ast.For, env *object.Environment) (object.Value, error) {
	seqVal, err := e.Eval(ctx, n.Seq, env)
	if err != nil {
		return nil, err
	}
	vv, ok := seqVal.(object.VectorValue)
	if !ok {
		return nil, signal.New(signal.Type, "for: sequence is not a vector (got %s)", seqVal.Type()).WithExpr(n)
	}
	for i := 0; i < vv.V.Len(); i++ {
		elem, elemErr := vv.V.Subset(vector.Index{Positions: []int{i}})
		if elemErr != nil {
			return nil, elemErr
		}
		env.Define(n.Var, object.VectorValue{V: elem})
		_, err := e.Eval(ctx, n.Body, env)
		if ctrl, ok := err.(*signal.Control); ok {
			if ctrl.Kind == signal.BreakSignal {
				break
			}
			if ctrl.Kind == signal.ContinueSignal {
				continue
			}
			return nil, err
		}
		if err != nil {
			return nil, err
		}
	}
	return object.Null{}, nil
}

func (e *Evaluator) evalWhile(ctx context.Context, n *ast.While, env *object.Environment) (object.Value, error) {
	for {
		cond, err := e.Eval(ctx, n.Cond, env)
		if err != nil {
			return nil, err
		}
		truth, err := scalarTruth(cond)
		if err != nil {
			return nil, err
		}
		if !truth {
			break
		}
		_, err = e.Eval(ctx, n.Body, env)
		if ctrl, ok := err.(*signal.Control); ok {
			if ctrl.Kind == signal.BreakSignal {
				break
			}
			if ctrl.Kind == signal.ContinueSignal {
				continue
			}
			return nil, err
		}
		if err != nil {
			return nil, err
		}
	}
	return object.Null{}, nil
}

// scalarTruth coerces v's first element to Logical, signaling Domain if
// it is NA or v has no elements.
func scalarTruth(v object.Value) (bool, error) {
	vv, ok := v.(object.VectorValue)
	if !ok || vv.V.Len() == 0 {
		return false, signal.New(signal.Domain, signal.ErrMsgNAInCondition)
	}
	lv := vector.Coerce(vv.V, vector.Logical).(vector.LogicalVector)
	b, present := lv.At(0).Value()
	if !present {
		return false, signal.New(signal.Domain, signal.ErrMsgNAInCondition)
	}
	return b, nil
}
