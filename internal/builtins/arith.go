package builtins

import (
	"github.com/cwbudde/vexpr/internal/object"
	"github.com/cwbudde/vexpr/internal/vector"
)

// binaryVectorOp adapts a two-operand vector.Vector function (Add, Sub,
// Lt, BitOr, ...) into a BuiltinFunc, the shape every arithmetic,
// comparison, and bitwise-logical primitive shares.
func binaryVectorOp(name string, op func(a, b vector.Vector) (vector.Vector, error)) BuiltinFunc {
	return func(args []object.Value, _ []string, _ CallContext) (object.Value, error) {
		if len(args) != 2 {
			return nil, wrongArgCount(name, 2, len(args))
		}
		a, err := asVector(name, args[0])
		if err != nil {
			return nil, err
		}
		b, err := asVector(name, args[1])
		if err != nil {
			return nil, err
		}
		out, err := op(a, b)
		if err != nil {
			return nil, wrapVectorErr(err)
		}
		return vecValue(out), nil
	}
}

func registerArith(r *Registry) {
	r.Register("+", "arith", "vectorized addition with recycling", binaryVectorOp("+", vector.Add))
	r.Register("-", "arith", "vectorized subtraction with recycling", binaryVectorOp("-", vector.Sub))
	r.Register("*", "arith", "vectorized multiplication with recycling", binaryVectorOp("*", vector.Mul))
	r.Register("/", "arith", "vectorized division with recycling", binaryVectorOp("/", vector.Div))
	r.Register("%", "arith", "vectorized remainder with recycling", binaryVectorOp("%", vector.Mod))
	r.Register("^", "arith", "vectorized exponentiation with recycling", binaryVectorOp("^", vector.Pow))
	r.Register("|", "logical", "vectorized, non-short-circuiting OR", binaryVectorOp("|", vector.BitOr))
	r.Register("&", "logical", "vectorized, non-short-circuiting AND", binaryVectorOp("&", vector.BitAnd))

	r.Register("neg", "arith", "unary negation", func(args []object.Value, _ []string, _ CallContext) (object.Value, error) {
		if len(args) != 1 {
			return nil, wrongArgCount("neg", 1, len(args))
		}
		a, err := asVector("neg", args[0])
		if err != nil {
			return nil, err
		}
		out, err := vector.Neg(a)
		if err != nil {
			return nil, wrapVectorErr(err)
		}
		return vecValue(out), nil
	})

	r.Register("!", "logical", "elementwise logical negation", func(args []object.Value, _ []string, _ CallContext) (object.Value, error) {
		if len(args) != 1 {
			return nil, wrongArgCount("!", 1, len(args))
		}
		a, err := asVector("!", args[0])
		if err != nil {
			return nil, err
		}
		lv := vector.Coerce(a, vector.Logical).(vector.LogicalVector)
		out := make([]vector.NA[bool], lv.Len())
		for i := 0; i < lv.Len(); i++ {
			out[i] = vector.MapNA(lv.At(i), func(b bool) bool { return !b })
		}
		return vecValue(vector.NewLogical(out)), nil
	})
}
