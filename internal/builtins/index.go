package builtins

import (
	"github.com/cwbudde/vexpr/internal/object"
	"github.com/cwbudde/vexpr/internal/signal"
	"github.com/cwbudde/vexpr/internal/vector"
)

// registerIndexing wires `[` (subset) and `[<-` (scatter assignment) as
// ordinary two/three-argument callables, since this reader's prefix
// syntax has no bracket form of its own: `v[i]` is written `([ v i)` and
// `v[i] <- rhs` is `([<- v i rhs)`.
func registerIndexing(r *Registry) {
	r.Register("[", "indexing", "select elements of a vector or list by index", indexSubset)
	r.Register("[<-", "indexing", "scatter rhs into a vector at the positions index selects", indexAssign)
}

func indexSubset(args []object.Value, names []string, _ CallContext) (object.Value, error) {
	if len(args) != 2 {
		return nil, wrongArgCount("[", 2, len(args))
	}
	idxVec, err := asVector("[", args[1])
	if err != nil {
		return nil, err
	}

	switch target := args[0].(type) {
	case object.VectorValue:
		idx, err := vector.ResolveIndex(idxVec, target.V.Len(), target.V.Names())
		if err != nil {
			return nil, wrapVectorErr(err)
		}
		out, err := target.V.Subset(idx)
		if err != nil {
			return nil, wrapVectorErr(err)
		}
		return vecValue(out), nil
	case object.ListValue:
		idx, err := vector.ResolveIndex(idxVec, len(target.Values), target.Names)
		if err != nil {
			return nil, wrapVectorErr(err)
		}
		return subsetList(target, idx), nil
	default:
		return nil, signal.New(signal.Type, "[: cannot index a %s", args[0].Type())
	}
}

func subsetList(target object.ListValue, idx vector.Index) object.ListValue {
	out := object.ListValue{
		Names:  make([]string, len(idx.Positions)),
		Values: make([]object.Value, len(idx.Positions)),
	}
	for i, p := range idx.Positions {
		if p < 0 || p >= len(target.Values) {
			out.Values[i] = object.Null{}
			continue
		}
		out.Values[i] = target.Values[p]
		if p < len(target.Names) {
			out.Names[i] = target.Names[p]
		}
	}
	return out
}

func indexAssign(args []object.Value, names []string, _ CallContext) (object.Value, error) {
	if len(args) != 3 {
		return nil, wrongArgCount("[<-", 3, len(args))
	}
	target, err := asVector("[<-", args[0])
	if err != nil {
		return nil, err
	}
	idxVec, err := asVector("[<-", args[1])
	if err != nil {
		return nil, err
	}
	rhs, err := asVector("[<-", args[2])
	if err != nil {
		return nil, err
	}

	out, _, err := vector.AssignIndex(target, target.Names(), idxVec, rhs)
	if err != nil {
		return nil, wrapVectorErr(err)
	}
	return vecValue(out), nil
}
