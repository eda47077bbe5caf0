package vector

import (
	"strconv"
	"strings"
)

// NumericVector is an NA-aware vector of double-precision floats.
type NumericVector struct{ Vec[float64] }

// IntegerVector is an NA-aware vector of 32-bit integers.
type IntegerVector struct{ Vec[int32] }

// LogicalVector is an NA-aware vector of booleans.
type LogicalVector struct{ Vec[bool] }

// CharacterVector is an NA-aware vector of strings.
type CharacterVector struct{ Vec[string] }

func NewNumeric(data []NA[float64]) NumericVector     { return NumericVector{vecFromData(data)} }
func NewInteger(data []NA[int32]) IntegerVector       { return IntegerVector{vecFromData(data)} }
func NewLogical(data []NA[bool]) LogicalVector        { return LogicalVector{vecFromData(data)} }
func NewCharacter(data []NA[string]) CharacterVector  { return CharacterVector{vecFromData(data)} }

// NumericOf builds a Numeric vector of present values, none of them NA.
func NumericOf(vs ...float64) NumericVector {
	data := make([]NA[float64], len(vs))
	for i, v := range vs {
		data[i] = Some(v)
	}
	return NewNumeric(data)
}

func IntegerOf(vs ...int32) IntegerVector {
	data := make([]NA[int32], len(vs))
	for i, v := range vs {
		data[i] = Some(v)
	}
	return NewInteger(data)
}

func LogicalOf(vs ...bool) LogicalVector {
	data := make([]NA[bool], len(vs))
	for i, v := range vs {
		data[i] = Some(v)
	}
	return NewLogical(data)
}

func CharacterOf(vs ...string) CharacterVector {
	data := make([]NA[string], len(vs))
	for i, v := range vs {
		data[i] = Some(v)
	}
	return NewCharacter(data)
}

func (v NumericVector) Kind() Kind   { return Numeric }
func (v IntegerVector) Kind() Kind   { return Integer }
func (v LogicalVector) Kind() Kind   { return Logical }
func (v CharacterVector) Kind() Kind { return Character }

func (v NumericVector) Materialize() Vector   { return NumericVector{v.Vec.Materialize()} }
func (v IntegerVector) Materialize() Vector   { return IntegerVector{v.Vec.Materialize()} }
func (v LogicalVector) Materialize() Vector   { return LogicalVector{v.Vec.Materialize()} }
func (v CharacterVector) Materialize() Vector { return CharacterVector{v.Vec.Materialize()} }

func formatElem[T any](o NA[T], quote bool, fmtOne func(T) string) string {
	val, ok := o.Value()
	if !ok {
		return "NA"
	}
	if quote {
		return strconv.Quote(fmtOne(val))
	}
	return fmtOne(val)
}

func (v NumericVector) String() string {
	return joinElems(v.Kind(), v.Len(), func(i int) string {
		return formatElem(v.At(i), false, func(f float64) string {
			return strconv.FormatFloat(f, 'g', -1, 64)
		})
	})
}

func (v IntegerVector) String() string {
	return joinElems(v.Kind(), v.Len(), func(i int) string {
		return formatElem(v.At(i), false, func(n int32) string {
			return strconv.FormatInt(int64(n), 10)
		})
	})
}

func (v LogicalVector) String() string {
	return joinElems(v.Kind(), v.Len(), func(i int) string {
		return formatElem(v.At(i), false, func(b bool) string {
			if b {
				return "TRUE"
			}
			return "FALSE"
		})
	})
}

func (v CharacterVector) String() string {
	return joinElems(v.Kind(), v.Len(), func(i int) string {
		return formatElem(v.At(i), true, func(s string) string { return s })
	})
}

func joinElems(k Kind, n int, elem func(int) string) string {
	var sb strings.Builder
	sb.WriteString(k.String())
	sb.WriteByte('[')
	for i := 0; i < n; i++ {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(elem(i))
	}
	sb.WriteByte(']')
	return sb.String()
}
