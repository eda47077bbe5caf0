package signal

import "fmt"

// Positioner is satisfied by ast.Node; declared locally so signal does
// not need an import cycle-prone dependency on the full ast.Node
// interface, only the String() rendering an Error uses in its report.
type Positioner interface {
	String() string
}

// Error is the evaluator's one error type: every Lookup/Type/Arity/
// Domain/Internal failure is a *Error, distinguished by Kind. There is
// no separate compile-time error type, since this core has no compile
// phase of its own.
type Error struct {
	Kind    Kind
	Message string
	Expr    Positioner // the AST node active when the signal was raised, if any
}

// New builds an Error of the given kind with a formatted message.
func New(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// WithExpr attaches source context to an Error, returning a new value
// so callers can annotate an error as it unwinds through a frame
// without mutating a shared instance.
func (e *Error) WithExpr(expr Positioner) *Error {
	cp := *e
	cp.Expr = expr
	return &cp
}

func (e *Error) Error() string {
	if e.Expr != nil {
		return fmt.Sprintf("%s: %s (in %s)", e.Kind, e.Message, e.Expr.String())
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}
