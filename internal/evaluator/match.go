package evaluator

import (
	"strings"

	"github.com/cwbudde/vexpr/internal/ast"
	"github.com/cwbudde/vexpr/internal/object"
	"github.com/cwbudde/vexpr/internal/signal"
)

const ellipsisName = "..."

// arg is one actual call-site argument. Ordinarily it carries a still-
// unevaluated expression to be wrapped in a promise against some
// environment; when spliced in from a forwarded `...` (see expandArgs)
// it instead carries the already-built Closure directly, so a
// forwarding chain (`g <- function(...) h(...)`) never forces early and
// never loses the forwarded argument's original defining environment.
type arg struct {
	name    string
	expr    ast.Node
	forward *object.Closure
}

// plainArgs converts a call's raw, unevaluated argument list into args
// with no ellipsis splicing — used by special forms (`eval`'s own
// x/envir formals) that never forward `...`.
func plainArgs(list ast.ExprList) []arg {
	out := make([]arg, list.Len())
	for i := range out {
		name, expr := list.At(i)
		out[i] = arg{name: name, expr: expr}
	}
	return out
}

// matchArgs runs the argument matching protocol: exact named match,
// then positional backfill, then ellipsis collection, then default
// backfill.
//
// matched runs parallel to formals (nil entry means "no actual and no
// default: stays unbound"); ellipsis holds whatever spilled past a
// `...` formal, named or not, in original order. If formals declare no
// `...` and args still leave a surplus, that surplus is a hard Arity
// error rather than spilling silently.
func matchArgs(formals ast.ExprList, args []arg) (matched []*arg, ellipsis []arg, err error) {
	n := formals.Len()
	matched = make([]*arg, n)
	taken := make([]bool, len(args))
	ellipsisIdx := -1
	for i := 0; i < n; i++ {
		if name, _ := formals.At(i); name == ellipsisName {
			ellipsisIdx = i
			break
		}
	}

	// 1. Exact named match.
	for ai := range args {
		if args[ai].name == "" {
			continue
		}
		fi := formals.IndexOfName(args[ai].name)
		if fi == -1 || fi == ellipsisIdx {
			continue
		}
		a := args[ai]
		matched[fi] = &a
		taken[ai] = true
	}

	// 2. Positional backfill over remaining unnamed args and remaining
	// non-"..." formals, in order.
	fi := 0
	for ai := range args {
		if taken[ai] || args[ai].name != "" {
			continue
		}
		for fi < n && (matched[fi] != nil || fi == ellipsisIdx) {
			fi++
		}
		if fi >= n {
			break
		}
		a := args[ai]
		matched[fi] = &a
		taken[ai] = true
		fi++
	}

	// 3. Ellipsis collection: whatever is left over.
	for ai := range args {
		if taken[ai] {
			continue
		}
		ellipsis = append(ellipsis, args[ai])
		taken[ai] = true
	}
	if ellipsisIdx == -1 && len(ellipsis) > 0 {
		return nil, nil, signal.New(signal.Arity, signal.ErrMsgSurplusArgument, describeSurplus(ellipsis))
	}

	// 4. Default backfill: formals with no matched actual and no default
	// stay nil (apply leaves them unbound in the callee environment).
	for i := 0; i < n; i++ {
		if i == ellipsisIdx || matched[i] != nil {
			continue
		}
		_, def := formals.At(i)
		if def == nil {
			continue
		}
		matched[i] = &arg{expr: def}
	}

	return matched, ellipsis, nil
}

func describeSurplus(surplus []arg) string {
	parts := make([]string, len(surplus))
	for i, a := range surplus {
		switch {
		case a.name != "":
			parts[i] = a.name
		case a.expr != nil:
			parts[i] = a.expr.String()
		default:
			parts[i] = "..."
		}
	}
	return strings.Join(parts, ", ")
}

// isDefaultExpr reports whether m is the formal's own default
// expression (as opposed to a caller-supplied actual) — true exactly
// when the two point at the same AST node.
func isDefaultExpr(m *arg, def ast.Node) bool {
	return def != nil && m.forward == nil && m.expr == def
}
