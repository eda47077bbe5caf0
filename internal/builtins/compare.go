package builtins

import "github.com/cwbudde/vexpr/internal/vector"

func registerCompare(r *Registry) {
	r.Register("<", "compare", "elementwise less-than", binaryVectorOp("<", vector.Lt))
	r.Register("<=", "compare", "elementwise less-than-or-equal", binaryVectorOp("<=", vector.Lte))
	r.Register(">", "compare", "elementwise greater-than", binaryVectorOp(">", vector.Gt))
	r.Register(">=", "compare", "elementwise greater-than-or-equal", binaryVectorOp(">=", vector.Gte))
	r.Register("==", "compare", "elementwise equality", binaryVectorOp("==", vector.Eq))
	r.Register("!=", "compare", "elementwise inequality", binaryVectorOp("!=", vector.Neq))
}
