package builtins

import (
	"github.com/cwbudde/vexpr/internal/object"
	"github.com/cwbudde/vexpr/internal/vector"
)

// registerCollection wires `c()` (flatten into the highest-kind vector,
// or fall back to a heterogeneous list when an argument isn't a
// vector) and `list()` (always heterogeneous, names preserved).
func registerCollection(r *Registry) {
	r.Register("c", "collection", "concatenate arguments into one vector", func(args []object.Value, names []string, _ CallContext) (object.Value, error) {
		if len(args) == 0 {
			return vecValue(vector.NewLogical(nil)), nil
		}
		vecs := make([]vector.Vector, 0, len(args))
		allVectors := true
		for _, a := range args {
			vv, ok := a.(object.VectorValue)
			if !ok {
				allVectors = false
				break
			}
			vecs = append(vecs, vv.V)
		}
		if allVectors {
			return vecValue(vector.Concat(names, vecs...)), nil
		}
		return buildList(args, names), nil
	})

	r.Register("list", "collection", "build a heterogeneous, optionally-named list", func(args []object.Value, names []string, _ CallContext) (object.Value, error) {
		return buildList(args, names), nil
	})
}

func buildList(args []object.Value, names []string) object.ListValue {
	ns := make([]string, len(args))
	copy(ns, names)
	vs := make([]object.Value, len(args))
	copy(vs, args)
	return object.ListValue{Names: ns, Values: vs}
}
