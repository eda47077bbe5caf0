package vector

// Concat implements the `c()` built-in's vector-flattening core:
// coerce every input to the highest kind among them (lattice join over
// all operands), then concatenate their elements in order, preserving
// per-element names when any input carried a name.
func Concat(names []string, vecs ...Vector) Vector {
	if len(vecs) == 0 {
		return NewLogical(nil)
	}
	k := vecs[0].Kind()
	anyNamed := false
	total := 0
	for i, v := range vecs {
		k = Join(k, v.Kind())
		total += v.Len()
		if i < len(names) && names[i] != "" {
			anyNamed = true
		}
		if v.Names() != nil {
			anyNamed = true
		}
	}

	var outNames []string
	if anyNamed {
		outNames = make([]string, 0, total)
	}

	switch k {
	case Numeric:
		data := make([]NA[float64], 0, total)
		for i, v := range vecs {
			cv := Coerce(v, Numeric).(NumericVector)
			appendElems(cv.Vec, &data, names, i, outNames != nil, &outNames)
		}
		out := NewNumeric(data)
		if outNames != nil {
			out.Vec = out.Vec.WithNames(outNames)
		}
		return out
	case Integer:
		data := make([]NA[int32], 0, total)
		for i, v := range vecs {
			cv := Coerce(v, Integer).(IntegerVector)
			appendElems(cv.Vec, &data, names, i, outNames != nil, &outNames)
		}
		out := NewInteger(data)
		if outNames != nil {
			out.Vec = out.Vec.WithNames(outNames)
		}
		return out
	case Character:
		data := make([]NA[string], 0, total)
		for i, v := range vecs {
			cv := Coerce(v, Character).(CharacterVector)
			appendElems(cv.Vec, &data, names, i, outNames != nil, &outNames)
		}
		out := NewCharacter(data)
		if outNames != nil {
			out.Vec = out.Vec.WithNames(outNames)
		}
		return out
	default: // Logical
		data := make([]NA[bool], 0, total)
		for i, v := range vecs {
			cv := Coerce(v, Logical).(LogicalVector)
			appendElems(cv.Vec, &data, names, i, outNames != nil, &outNames)
		}
		out := NewLogical(data)
		if outNames != nil {
			out.Vec = out.Vec.WithNames(outNames)
		}
		return out
	}
}

func appendElems[T any](v Vec[T], data *[]NA[T], argNames []string, argIdx int, collectNames bool, outNames *[]string) {
	for i := 0; i < v.Len(); i++ {
		*data = append(*data, v.At(i))
		if collectNames {
			name := v.Name(i)
			if name == "" && v.Len() == 1 && argIdx < len(argNames) {
				name = argNames[argIdx]
			}
			*outNames = append(*outNames, name)
		}
	}
}
