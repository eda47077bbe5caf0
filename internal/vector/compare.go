package vector

import (
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// collator provides the locale-aware ordering used for Character vector
// comparisons. The root (undetermined) locale gives a stable,
// general-purpose lexicographic order.
var collator = collate.New(language.Und)

// compareKind returns the kind both operands are coerced to before a
// comparison: the lattice join, except any Character operand forces
// Character on both sides (mixed numeric/character comparisons coerce
// to Character).
func compareKind(a, b Kind) Kind {
	if a == Character || b == Character {
		return Character
	}
	return Join(a, b)
}

type ordering int

const (
	lt ordering = -1
	eq ordering = 0
	gt ordering = 1
)

func compareElems(k Kind, a, b Vector, i, j int) (ordering, bool) {
	switch k {
	case Character:
		ca := a.(CharacterVector)
		cb := b.(CharacterVector)
		lv, lok := ca.At(i).Value()
		rv, rok := cb.At(j).Value()
		if !lok || !rok {
			return 0, false
		}
		return ordering(collator.CompareString(normalize(lv), normalize(rv))), true
	case Numeric:
		na := a.(NumericVector)
		nb := b.(NumericVector)
		lv, lok := na.At(i).Value()
		rv, rok := nb.At(j).Value()
		if !lok || !rok {
			return 0, false
		}
		switch {
		case lv < rv:
			return lt, true
		case lv > rv:
			return gt, true
		default:
			return eq, true
		}
	default:
		ia := Coerce(a, Integer).(IntegerVector)
		ib := Coerce(b, Integer).(IntegerVector)
		lv, lok := ia.At(i).Value()
		rv, rok := ib.At(j).Value()
		if !lok || !rok {
			return 0, false
		}
		switch {
		case lv < rv:
			return lt, true
		case lv > rv:
			return gt, true
		default:
			return eq, true
		}
	}
}

func compareOp(a, b Vector, keep func(ordering) bool) (Vector, error) {
	k := compareKind(a.Kind(), b.Kind())
	ca := Coerce(a, k)
	cb := Coerce(b, k)

	la, lbn := ca.Len(), cb.Len()
	if la == 0 || lbn == 0 {
		return NewLogical(nil), nil
	}
	n := la
	if lbn > n {
		n = lbn
	}
	short := la
	if lbn < short {
		short = lbn
	}
	if n%short != 0 {
		return nil, ErrLengthMismatch
	}

	out := make([]NA[bool], n)
	for i := 0; i < n; i++ {
		ord, ok := compareElems(k, ca, cb, i%la, i%lbn)
		if !ok {
			out[i] = Missing[bool]()
			continue
		}
		out[i] = Some(keep(ord))
	}
	return NewLogical(out), nil
}

func Lt(a, b Vector) (Vector, error) { return compareOp(a, b, func(o ordering) bool { return o == lt }) }
func Lte(a, b Vector) (Vector, error) {
	return compareOp(a, b, func(o ordering) bool { return o == lt || o == eq })
}
func Gt(a, b Vector) (Vector, error) { return compareOp(a, b, func(o ordering) bool { return o == gt }) }
func Gte(a, b Vector) (Vector, error) {
	return compareOp(a, b, func(o ordering) bool { return o == gt || o == eq })
}
func Eq(a, b Vector) (Vector, error)  { return compareOp(a, b, func(o ordering) bool { return o == eq }) }
func Neq(a, b Vector) (Vector, error) { return compareOp(a, b, func(o ordering) bool { return o != eq }) }
