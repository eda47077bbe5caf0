// Package object defines the runtime Value union the evaluator produces
// and consumes, plus the Environment it threads through every call.
package object

import (
	"fmt"
	"strings"

	"github.com/cwbudde/vexpr/internal/ast"
	"github.com/cwbudde/vexpr/internal/vector"
)

// Value is the closed set of runtime values: Null, a vector, a list, a
// quoted expression, a closure (unevaluated promise), a function, or a
// first-class environment handle.
type Value interface {
	Type() string
	String() string
	valueNode()
}

// Null is the single Null value.
type Null struct{}

func (Null) Type() string   { return "NULL" }
func (Null) String() string { return "NULL" }
func (Null) valueNode()     {}

// Missing is the value an ast.Missing node evaluates to — distinct from
// Null, matching ast.Missing's role as a placeholder rather than a real
// value. An unsupplied formal with no default is left unbound instead.
type Missing struct{}

func (Missing) Type() string   { return "MISSING" }
func (Missing) String() string { return "<missing>" }
func (Missing) valueNode()     {}

// VectorValue wraps one of the four vector.Vector kinds.
type VectorValue struct {
	V vector.Vector
}

func (v VectorValue) Type() string   { return "VECTOR" }
func (v VectorValue) String() string { return v.V.String() }
func (v VectorValue) valueNode()     {}

// ListValue is an ordered, optionally-named sequence of Values — the
// result of the `list(...)` built-in, distinct from a vector (elements
// may be of any Value kind, not a single homogeneous element type).
type ListValue struct {
	Names  []string
	Values []Value
}

func (l ListValue) Type() string { return "LIST" }
func (l ListValue) String() string {
	var sb strings.Builder
	sb.WriteString("list(")
	for i, v := range l.Values {
		if i > 0 {
			sb.WriteString(", ")
		}
		if i < len(l.Names) && l.Names[i] != "" {
			sb.WriteString(l.Names[i])
			sb.WriteString(" = ")
		}
		sb.WriteString(v.String())
	}
	sb.WriteByte(')')
	return sb.String()
}
func (l ListValue) valueNode() {}

// Get returns the value bound to name and whether it was found.
func (l ListValue) Get(name string) (Value, bool) {
	for i, n := range l.Names {
		if n == name {
			return l.Values[i], true
		}
	}
	return nil, false
}

// ExprValue is a quoted (unevaluated) expression — the result of
// `quote`, and the argument `eval` expects.
type ExprValue struct {
	Expr ast.Node
}

func (e ExprValue) Type() string   { return "EXPR" }
func (e ExprValue) String() string { return e.Expr.String() }
func (e ExprValue) valueNode()     {}

// Function is a closure capturing the environment active when the
// function literal was evaluated.
type Function struct {
	Formals ast.ExprList
	Body    ast.Node
	Env     *Environment
}

func (f *Function) Type() string { return "FUNCTION" }
func (f *Function) String() string {
	return fmt.Sprintf("function(%s) %s", f.Formals.String(), f.Body.String())
}
func (f *Function) valueNode() {}

// EnvironmentValue is a first-class handle onto an Environment, returned
// by `environment()`/`parent()`/`new.env()`.
type EnvironmentValue struct {
	Env *Environment
}

func (e EnvironmentValue) Type() string   { return "ENVIRONMENT" }
func (e EnvironmentValue) String() string { return fmt.Sprintf("<environment %p>", e.Env) }
func (e EnvironmentValue) valueNode()     {}
