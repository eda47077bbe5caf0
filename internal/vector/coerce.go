package vector

import (
	"strconv"

	"golang.org/x/text/unicode/norm"
)

func (v NumericVector) AsNumeric() NumericVector { return v }

func (v NumericVector) AsInteger() IntegerVector {
	out := make([]NA[int32], v.Len())
	for i := 0; i < v.Len(); i++ {
		out[i] = MapNA(v.At(i), func(f float64) int32 { return int32(f) })
	}
	return NewInteger(out)
}

func (v NumericVector) AsLogical() LogicalVector {
	out := make([]NA[bool], v.Len())
	for i := 0; i < v.Len(); i++ {
		out[i] = MapNA(v.At(i), func(f float64) bool { return f != 0 })
	}
	return NewLogical(out)
}

func (v NumericVector) AsCharacter() CharacterVector {
	out := make([]NA[string], v.Len())
	for i := 0; i < v.Len(); i++ {
		out[i] = MapNA(v.At(i), func(f float64) string {
			return strconv.FormatFloat(f, 'g', -1, 64)
		})
	}
	return NewCharacter(out)
}

func (v IntegerVector) AsInteger() IntegerVector { return v }

func (v IntegerVector) AsNumeric() NumericVector {
	out := make([]NA[float64], v.Len())
	for i := 0; i < v.Len(); i++ {
		out[i] = MapNA(v.At(i), func(n int32) float64 { return float64(n) })
	}
	return NewNumeric(out)
}

func (v IntegerVector) AsLogical() LogicalVector {
	out := make([]NA[bool], v.Len())
	for i := 0; i < v.Len(); i++ {
		out[i] = MapNA(v.At(i), func(n int32) bool { return n != 0 })
	}
	return NewLogical(out)
}

func (v IntegerVector) AsCharacter() CharacterVector {
	out := make([]NA[string], v.Len())
	for i := 0; i < v.Len(); i++ {
		out[i] = MapNA(v.At(i), func(n int32) string { return strconv.FormatInt(int64(n), 10) })
	}
	return NewCharacter(out)
}

func (v LogicalVector) AsLogical() LogicalVector { return v }

func (v LogicalVector) AsInteger() IntegerVector {
	out := make([]NA[int32], v.Len())
	for i := 0; i < v.Len(); i++ {
		out[i] = MapNA(v.At(i), func(b bool) int32 {
			if b {
				return 1
			}
			return 0
		})
	}
	return NewInteger(out)
}

func (v LogicalVector) AsNumeric() NumericVector {
	out := make([]NA[float64], v.Len())
	for i := 0; i < v.Len(); i++ {
		out[i] = MapNA(v.At(i), func(b bool) float64 {
			if b {
				return 1
			}
			return 0
		})
	}
	return NewNumeric(out)
}

func (v LogicalVector) AsCharacter() CharacterVector {
	out := make([]NA[string], v.Len())
	for i := 0; i < v.Len(); i++ {
		out[i] = MapNA(v.At(i), func(b bool) string {
			if b {
				return "TRUE"
			}
			return "FALSE"
		})
	}
	return NewCharacter(out)
}

func (v CharacterVector) AsCharacter() CharacterVector { return v }

// normalize puts a string into NFC form before any lexical comparison or
// coercion, so visually identical strings built from different Unicode
// decompositions compare equal.
func normalize(s string) string {
	return norm.NFC.String(s)
}

func (v CharacterVector) AsLogical() LogicalVector {
	out, _ := v.parseLogical()
	return out
}

func (v CharacterVector) parseLogical() (LogicalVector, bool) {
	introducedNA := false
	out := make([]NA[bool], v.Len())
	for i := 0; i < v.Len(); i++ {
		s, ok := v.At(i).Value()
		if !ok {
			out[i] = Missing[bool]()
			continue
		}
		switch normalize(s) {
		case "TRUE", "true", "T":
			out[i] = Some(true)
		case "FALSE", "false", "F":
			out[i] = Some(false)
		default:
			out[i] = Missing[bool]()
			introducedNA = true
		}
	}
	return NewLogical(out), introducedNA
}

func (v CharacterVector) AsInteger() IntegerVector {
	out, _ := v.ParseInteger()
	return out
}

// ParseInteger coerces Character to Integer, additionally reporting
// whether any element failed to parse and became NA.
func (v CharacterVector) ParseInteger() (IntegerVector, bool) {
	introducedNA := false
	out := make([]NA[int32], v.Len())
	for i := 0; i < v.Len(); i++ {
		s, ok := v.At(i).Value()
		if !ok {
			out[i] = Missing[int32]()
			continue
		}
		n, err := strconv.ParseInt(normalize(s), 10, 32)
		if err != nil {
			out[i] = Missing[int32]()
			introducedNA = true
			continue
		}
		out[i] = Some(int32(n))
	}
	return NewInteger(out), introducedNA
}

func (v CharacterVector) AsNumeric() NumericVector {
	out, _ := v.ParseNumeric()
	return out
}

// ParseNumeric coerces Character to Numeric, reporting whether any
// element was unparseable and became NA.
func (v CharacterVector) ParseNumeric() (NumericVector, bool) {
	introducedNA := false
	out := make([]NA[float64], v.Len())
	for i := 0; i < v.Len(); i++ {
		s, ok := v.At(i).Value()
		if !ok {
			out[i] = Missing[float64]()
			continue
		}
		f, err := strconv.ParseFloat(normalize(s), 64)
		if err != nil {
			out[i] = Missing[float64]()
			introducedNA = true
			continue
		}
		out[i] = Some(f)
	}
	return NewNumeric(out), introducedNA
}
