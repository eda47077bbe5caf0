package vector

// AssignIndex scatters rhs (recycled to match the number of selected
// positions) into target at the positions selected by idxVec. NA on the
// index signals ErrNAIndex. Growing assignments (a positive integer
// index past the current end) extend the vector, filling new slots
// with NA. rhs is coerced to target's kind first, so the result keeps
// target's kind; a higher-kind rhs is converted down (a Numeric rhs
// assigned into an Integer target is truncated).
func AssignIndex(target Vector, targetNames []string, idxVec Vector, rhs Vector) (Vector, []string, error) {
	switch idxVec.Kind() {
	case Logical:
		return assignLogical(target, targetNames, idxVec.(LogicalVector), rhs)
	case Character:
		return assignByName(target, targetNames, idxVec.(CharacterVector), rhs)
	case Numeric, Integer:
		return assignInteger(target, targetNames, Coerce(idxVec, Integer).(IntegerVector), rhs)
	default:
		return nil, nil, ErrUnsupportedIndex
	}
}

func assignLogical(target Vector, names []string, lv LogicalVector, rhs Vector) (Vector, []string, error) {
	n := target.Len()
	if lv.Len() > n {
		n = lv.Len()
	}
	if lv.Len() == 0 {
		return target, names, nil
	}
	positions := make([]int, 0, n)
	for i := 0; i < n; i++ {
		val, ok := lv.At(i % lv.Len()).Value()
		if !ok {
			return nil, nil, ErrNAIndex
		}
		if val {
			positions = append(positions, i)
		}
	}
	return scatterInto(target, names, positions, rhs, n)
}

func assignByName(target Vector, names []string, cv CharacterVector, rhs Vector) (Vector, []string, error) {
	positions := make([]int, cv.Len())
	newNames := append([]string(nil), names...)
	grow := target.Len()
	for i := 0; i < cv.Len(); i++ {
		name, ok := cv.At(i).Value()
		if !ok {
			return nil, nil, ErrNAIndex
		}
		p := indexOfName(newNames, name)
		if p == -1 {
			newNames = append(newNames, name)
			p = grow
			grow++
		}
		positions[i] = p
	}
	return scatterInto(target, newNames, positions, rhs, grow)
}

func assignInteger(target Vector, names []string, iv IntegerVector, rhs Vector) (Vector, []string, error) {
	hasPos, hasNeg := false, false
	for i := 0; i < iv.Len(); i++ {
		v, ok := iv.At(i).Value()
		if !ok {
			return nil, nil, ErrNAIndex
		}
		if v > 0 {
			hasPos = true
		} else if v < 0 {
			hasNeg = true
		}
	}
	if hasPos && hasNeg {
		return nil, nil, ErrMixedIndexSigns
	}
	if hasNeg {
		excluded := make(map[int]bool, iv.Len())
		for i := 0; i < iv.Len(); i++ {
			v, _ := iv.At(i).Value()
			excluded[int(-v)-1] = true
		}
		positions := make([]int, 0, target.Len())
		for i := 0; i < target.Len(); i++ {
			if !excluded[i] {
				positions = append(positions, i)
			}
		}
		return scatterInto(target, names, positions, rhs, target.Len())
	}
	positions := make([]int, 0, iv.Len())
	maxLen := target.Len()
	for i := 0; i < iv.Len(); i++ {
		v, _ := iv.At(i).Value()
		if v == 0 {
			continue
		}
		p := int(v) - 1
		positions = append(positions, p)
		if p+1 > maxLen {
			maxLen = p + 1
		}
	}
	return scatterInto(target, names, positions, rhs, maxLen)
}

func scatterInto(target Vector, names []string, positions []int, rhs Vector, newLen int) (Vector, []string, error) {
	rhsC := Coerce(rhs, target.Kind())
	var grownNames []string
	if names != nil {
		grownNames = append([]string(nil), names...)
		for len(grownNames) < newLen {
			grownNames = append(grownNames, "")
		}
	}
	switch v := target.(type) {
	case NumericVector:
		out, err := scatterGeneric(v.Vec, positions, rhsC.(NumericVector).Data(), newLen)
		return NumericVector{out}, grownNames, err
	case IntegerVector:
		out, err := scatterGeneric(v.Vec, positions, rhsC.(IntegerVector).Data(), newLen)
		return IntegerVector{out}, grownNames, err
	case LogicalVector:
		out, err := scatterGeneric(v.Vec, positions, rhsC.(LogicalVector).Data(), newLen)
		return LogicalVector{out}, grownNames, err
	case CharacterVector:
		out, err := scatterGeneric(v.Vec, positions, rhsC.(CharacterVector).Data(), newLen)
		return CharacterVector{out}, grownNames, err
	default:
		return nil, nil, ErrUnsupportedIndex
	}
}

func scatterGeneric[T any](v Vec[T], positions []int, rhsData []NA[T], newLen int) (Vec[T], error) {
	if len(positions) == 0 {
		return v, nil
	}
	if len(rhsData) == 0 || len(positions)%len(rhsData) != 0 {
		return Vec[T]{}, ErrLengthMismatch
	}
	owned := v.ensureOwned()
	if newLen > owned.Len() {
		grown := make([]NA[T], newLen)
		copy(grown, owned.buf.data)
		for i := owned.Len(); i < newLen; i++ {
			grown[i] = Missing[T]()
		}
		owned = Vec[T]{buf: newBuffer(grown), names: owned.names}
	}
	for i, p := range positions {
		owned.buf.data[p] = rhsData[i%len(rhsData)]
	}
	return owned, nil
}
