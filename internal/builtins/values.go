package builtins

import (
	"errors"

	"github.com/cwbudde/vexpr/internal/object"
	"github.com/cwbudde/vexpr/internal/signal"
	"github.com/cwbudde/vexpr/internal/vector"
)

// asVector requires v to be a VectorValue, signaling a Type error
// naming the caller's primitive otherwise.
func asVector(name string, v object.Value) (vector.Vector, error) {
	vv, ok := v.(object.VectorValue)
	if !ok {
		return nil, signal.New(signal.Type, "%s: argument is not a vector (got %s)", name, v.Type())
	}
	return vv.V, nil
}

// wrapVectorErr classifies a sentinel error from internal/vector into
// the evaluator's Kind taxonomy: a length-mismatch or incompatible-kind
// mismatch is a Domain/Type error about the values involved, not an
// internal fault.
func wrapVectorErr(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, vector.ErrLengthMismatch):
		return signal.New(signal.Domain, signal.ErrMsgLengthMismatch)
	case errors.Is(err, vector.ErrIntegerDivByZero):
		return signal.New(signal.Domain, signal.ErrMsgIntegerDivByZero)
	case errors.Is(err, vector.ErrIncompatibleKinds):
		return signal.New(signal.Type, signal.ErrMsgCannotCoerce, "Character", "numeric")
	case errors.Is(err, vector.ErrMixedIndexSigns), errors.Is(err, vector.ErrNAIndex), errors.Is(err, vector.ErrUnsupportedIndex):
		return signal.New(signal.Type, signal.ErrMsgIncompatibleIndex, err.Error())
	default:
		return err
	}
}

func vecValue(v vector.Vector) object.Value { return object.VectorValue{V: v} }
