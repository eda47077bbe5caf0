package vector

import "math"

// recycle applies op element-wise over a and b, cycling the shorter
// vector to the length of the longer one. If either operand is empty
// the result is empty; otherwise the longer length must be a multiple
// of the shorter length or the operation signals.
func recycle[T any](a, b Vec[T], op func(NA[T], NA[T]) NA[T]) (Vec[T], error) {
	la, lb := a.Len(), b.Len()
	if la == 0 || lb == 0 {
		return Vec[T]{buf: newBuffer[T](nil)}, nil
	}
	n := la
	if lb > n {
		n = lb
	}
	short := la
	if lb < short {
		short = lb
	}
	if n%short != 0 {
		return Vec[T]{}, ErrLengthMismatch
	}
	out := make([]NA[T], n)
	for i := 0; i < n; i++ {
		out[i] = op(a.At(i%la), b.At(i%lb))
	}
	return vecFromData(out), nil
}

func addF(l, r NA[float64]) NA[float64] { return combine2(l, r, func(a, b float64) float64 { return a + b }) }
func subF(l, r NA[float64]) NA[float64] { return combine2(l, r, func(a, b float64) float64 { return a - b }) }
func mulF(l, r NA[float64]) NA[float64] { return combine2(l, r, func(a, b float64) float64 { return a * b }) }
func divF(l, r NA[float64]) NA[float64] {
	return combine2(l, r, func(a, b float64) float64 { return a / b }) // b==0 -> ±Inf, matches IEEE 754
}
func remF(l, r NA[float64]) NA[float64] {
	return combine2(l, r, func(a, b float64) float64 { return math.Mod(a, b) })
}
func powF(l, r NA[float64]) NA[float64] {
	return combine2(l, r, math.Pow)
}

func combine2[T any](l, r NA[T], f func(T, T) T) NA[T] {
	lv, lok := l.Value()
	rv, rok := r.Value()
	if !lok || !rok {
		return Missing[T]()
	}
	return Some(f(lv, rv))
}

func addI(l, r NA[int32]) NA[int32] { return combine2(l, r, func(a, b int32) int32 { return a + b }) }
func subI(l, r NA[int32]) NA[int32] { return combine2(l, r, func(a, b int32) int32 { return a - b }) }
func mulI(l, r NA[int32]) NA[int32] { return combine2(l, r, func(a, b int32) int32 { return a * b }) }

// arithKind returns the kind operands are coerced to for arithmetic
// (+ - * / % ^): the lattice join, except Logical promotes to Integer
// since boolean addition is meaningless — Logical operands behave as
// their 0/1 Integer encoding, as in the source language this core models.
func arithKind(a, b Kind) Kind {
	k := Join(a, b)
	if k == Logical {
		return Integer
	}
	return k
}

func binArith(a, b Vector, name string,
	fNum func(NA[float64], NA[float64]) NA[float64],
	fInt func(NA[int32], NA[int32]) (NA[int32], error),
) (Vector, error) {
	k := arithKind(a.Kind(), b.Kind())
	if k == Character {
		return nil, ErrIncompatibleKinds
	}
	if k == Numeric {
		na := Coerce(a, Numeric).(NumericVector)
		nb := Coerce(b, Numeric).(NumericVector)
		out, err := recycle(na.Vec, nb.Vec, fNum)
		if err != nil {
			return nil, err
		}
		return NumericVector{out}, nil
	}
	ia := Coerce(a, Integer).(IntegerVector)
	ib := Coerce(b, Integer).(IntegerVector)
	var opErr error
	out, err := recycle(ia.Vec, ib.Vec, func(l, r NA[int32]) NA[int32] {
		v, e := fInt(l, r)
		if e != nil {
			opErr = e
		}
		return v
	})
	if err != nil {
		return nil, err
	}
	if opErr != nil {
		return nil, opErr
	}
	return IntegerVector{out}, nil
}

// Add implements +.
func Add(a, b Vector) (Vector, error) {
	return binArith(a, b, "+", addF, func(l, r NA[int32]) (NA[int32], error) { return addI(l, r), nil })
}

// Sub implements -.
func Sub(a, b Vector) (Vector, error) {
	return binArith(a, b, "-", subF, func(l, r NA[int32]) (NA[int32], error) { return subI(l, r), nil })
}

// Mul implements *.
func Mul(a, b Vector) (Vector, error) {
	return binArith(a, b, "*", mulF, func(l, r NA[int32]) (NA[int32], error) { return mulI(l, r), nil })
}

// Div implements /. Numeric division by zero yields ±Inf (IEEE 754);
// Integer division by zero signals ErrIntegerDivByZero.
func Div(a, b Vector) (Vector, error) {
	return binArith(a, b, "/", divF, func(l, r NA[int32]) (NA[int32], error) {
		lv, lok := l.Value()
		rv, rok := r.Value()
		if !lok || !rok {
			return Missing[int32](), nil
		}
		if rv == 0 {
			return NA[int32]{}, ErrIntegerDivByZero
		}
		return Some(lv / rv), nil
	})
}

// Mod implements %.
func Mod(a, b Vector) (Vector, error) {
	return binArith(a, b, "%", remF, func(l, r NA[int32]) (NA[int32], error) {
		lv, lok := l.Value()
		rv, rok := r.Value()
		if !lok || !rok {
			return Missing[int32](), nil
		}
		if rv == 0 {
			return NA[int32]{}, ErrIntegerDivByZero
		}
		return Some(lv % rv), nil
	})
}

// Pow implements ^. Uses double-precision math whenever either operand is
// Numeric; otherwise computes via float64 math and rounds back to Integer.
func Pow(a, b Vector) (Vector, error) {
	k := arithKind(a.Kind(), b.Kind())
	if k == Character {
		return nil, ErrIncompatibleKinds
	}
	na := Coerce(a, Numeric).(NumericVector)
	nb := Coerce(b, Numeric).(NumericVector)
	out, err := recycle(na.Vec, nb.Vec, powF)
	if err != nil {
		return nil, err
	}
	if k == Numeric {
		return NumericVector{out}, nil
	}
	ints := make([]NA[int32], out.Len())
	for i := 0; i < out.Len(); i++ {
		ints[i] = MapNA(out.At(i), func(f float64) int32 { return int32(math.Round(f)) })
	}
	return NewInteger(ints), nil
}

// Neg implements unary -.
func Neg(a Vector) (Vector, error) {
	switch v := a.(type) {
	case NumericVector:
		out := make([]NA[float64], v.Len())
		for i := 0; i < v.Len(); i++ {
			out[i] = MapNA(v.At(i), func(f float64) float64 { return -f })
		}
		return NewNumeric(out), nil
	case LogicalVector:
		return Neg(v.AsInteger())
	default:
		iv := Coerce(a, Integer).(IntegerVector)
		out := make([]NA[int32], iv.Len())
		for i := 0; i < iv.Len(); i++ {
			out[i] = MapNA(iv.At(i), func(n int32) int32 { return -n })
		}
		return NewInteger(out), nil
	}
}

// BitOr implements vectorized, non-short-circuiting | with recycling.
// The short-circuiting `or` form is evaluated separately, in
// internal/evaluator, and does not call BitOr.
func BitOr(a, b Vector) (Vector, error) {
	la := Coerce(a, Logical).(LogicalVector)
	lb := Coerce(b, Logical).(LogicalVector)
	out, err := recycle(la.Vec, lb.Vec, func(l, r NA[bool]) NA[bool] {
		return combine2(l, r, func(a, b bool) bool { return a || b })
	})
	if err != nil {
		return nil, err
	}
	return LogicalVector{out}, nil
}

// BitAnd implements vectorized, non-short-circuiting &.
func BitAnd(a, b Vector) (Vector, error) {
	la := Coerce(a, Logical).(LogicalVector)
	lb := Coerce(b, Logical).(LogicalVector)
	out, err := recycle(la.Vec, lb.Vec, func(l, r NA[bool]) NA[bool] {
		return combine2(l, r, func(a, b bool) bool { return a && b })
	})
	if err != nil {
		return nil, err
	}
	return LogicalVector{out}, nil
}
