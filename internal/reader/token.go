package reader

import "github.com/cwbudde/vexpr/internal/ast"

// kind enumerates the handful of token shapes this demonstration syntax
// needs, since this reader only has to round-trip S-expressions, not a
// full grammar.
type kind int

const (
	eof kind = iota
	illegal
	lparen
	rparen
	number
	integer
	str
	symbol
)

type token struct {
	kind    kind
	literal string
	pos     ast.Position
}
