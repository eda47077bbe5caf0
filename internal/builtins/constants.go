package builtins

import (
	"github.com/cwbudde/vexpr/internal/object"
	"github.com/cwbudde/vexpr/internal/vector"
)

// registerConstants wires the handful of niladic primitives that stand
// in for a surface-syntax literal the closed ast.Node set has no
// dedicated variant for. `NA` is the chief example: it is a first-class
// vector element, not a value on its own, so there is no ast.NA node —
// the reader desugars a bare `NA` atom into a call to this primitive
// instead, exactly the way it already desugars `TRUE` into ast.Bool
// rather than inventing ast-level sugar.
func registerConstants(r *Registry) {
	r.Register("NA", "constant", "the logical NA scalar", func(args []object.Value, names []string, ctx CallContext) (object.Value, error) {
		if len(args) != 0 {
			return nil, wrongArgCount("NA", 0, len(args))
		}
		return object.VectorValue{V: vector.NewLogical([]vector.NA[bool]{vector.Missing[bool]()})}, nil
	})
}
