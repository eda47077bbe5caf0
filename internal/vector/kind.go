package vector

// Kind identifies a vector's element type and its position in the
// coercion lattice Logical < Integer < Numeric < Character.
type Kind int

const (
	Logical Kind = iota
	Integer
	Numeric
	Character
)

func (k Kind) String() string {
	switch k {
	case Logical:
		return "Logical"
	case Integer:
		return "Integer"
	case Numeric:
		return "Numeric"
	case Character:
		return "Character"
	default:
		return "Unknown"
	}
}

// Join returns the higher of the two kinds in the coercion lattice — the
// type both operands are promoted to before a binary op applies.
func Join(a, b Kind) Kind {
	if a > b {
		return a
	}
	return b
}

// Vector is the common interface implemented by NumericVector,
// IntegerVector, LogicalVector, and CharacterVector.
type Vector interface {
	Kind() Kind
	Len() int
	IsEmpty() bool
	String() string
	Names() []string

	AsLogical() LogicalVector
	AsInteger() IntegerVector
	AsNumeric() NumericVector
	AsCharacter() CharacterVector

	Materialize() Vector

	// Subset selects elements per idx (see ResolveIndex) and returns the
	// result as a lazy view sharing this vector's backing buffer.
	Subset(idx Index) (Vector, error)

	// MarkShared flags the backing buffer as shared, so the next in-place
	// mutation through any handle over it clones first. Called by `<-` on
	// the vector value it binds.
	MarkShared()
}

// Coerce converts v to the requested kind. Converting to the same kind is
// the identity conversion.
func Coerce(v Vector, to Kind) Vector {
	switch to {
	case Logical:
		return v.AsLogical()
	case Integer:
		return v.AsInteger()
	case Numeric:
		return v.AsNumeric()
	case Character:
		return v.AsCharacter()
	default:
		panic("vector: unknown kind")
	}
}
