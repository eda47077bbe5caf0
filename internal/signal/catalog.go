package signal

// Error Message Catalog
//
// ErrMsgXxx constants, grouped by the Kind that uses them, covering the
// subset this language's evaluator/builtins raise.

const (
	// Lookup
	ErrMsgUndefinedSymbol    = "undefined symbol: %s"
	ErrMsgMissingArgForced   = "argument %q is missing, with no default"
	ErrMsgUndefinedInEnv     = "object %q not found"

	// Type
	ErrMsgCannotCoerce      = "cannot coerce %s to %s"
	ErrMsgIncompatibleIndex = "invalid subscript type: %s"
	ErrMsgNotCallable       = "attempt to apply non-function"
	ErrMsgNotAnExpr         = "argument is not a quoted expression"

	// Arity
	ErrMsgUnmatchedFormal  = "argument %q is missing, with no default"
	ErrMsgSurplusArgument  = "unused argument (%s)"
	ErrMsgWrongArgCountFor = "%s: expected %d argument(s), got %d"

	// Domain
	ErrMsgIntegerDivByZero = "integer division by zero"
	ErrMsgRecursivePromise = "promise already under evaluation: recursive default argument reference"
	ErrMsgNAInCondition    = "missing value where TRUE/FALSE needed"
	ErrMsgLengthMismatch   = "longer object length is not a multiple of shorter object length"

	// Interrupted
	ErrMsgInterrupted = "evaluation interrupted"

	// Internal
	ErrMsgUnknownNodeKind = "internal error: unknown expression kind %T"
	ErrMsgStackOverflow   = "evaluation nested too deeply (limit %d)"
)
