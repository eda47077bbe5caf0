// Package reader is a minimal recursive-descent S-expression surface
// syntax — `(+ (c 1 2 3) (c 10 20))`, `(function (x (y (+ x 1))) y)` —
// built only to drive cmd/vexpr and integration tests end-to-end
// without a real parser. It is explicitly not a parser for this
// language's true surface syntax (a parser frontend is out of scope);
// it plays the same host-plumbing role cmd/dwscript's own lex/parse
// subcommands play for a syntax this core never has to own.
package reader

import (
	"fmt"
	"strconv"

	"github.com/cwbudde/vexpr/internal/ast"
)

// SyntaxError reports a malformed program. It is never a signal.Error:
// parsing happens before the evaluator — and its error taxonomy — ever
// starts.
type SyntaxError struct {
	Message string
	Pos     ast.Position
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.Pos.Line, e.Pos.Column, e.Message)
}

type parser struct {
	lex  *lexer
	tok  token
	peek token
}

func newParser(input string) *parser {
	p := &parser{lex: newLexer(input)}
	p.tok = p.lex.next()
	p.peek = p.lex.next()
	return p
}

func (p *parser) advance() {
	p.tok = p.peek
	p.peek = p.lex.next()
}

func (p *parser) errorf(pos ast.Position, format string, args ...any) error {
	return &SyntaxError{Message: fmt.Sprintf(format, args...), Pos: pos}
}

// Parse reads a single top-level expression.
func Parse(src string) (ast.Node, error) {
	p := newParser(src)
	if p.tok.kind == eof {
		return &ast.Null{}, nil
	}
	n, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if p.tok.kind != eof {
		return nil, p.errorf(p.tok.pos, "unexpected trailing input %q", p.tok.literal)
	}
	return n, nil
}

// ParseProgram reads every top-level expression in src, wrapping more
// than one in an ast.Block (evaluated in order, last value wins — the
// same rule a `{...}` block already follows).
func ParseProgram(src string) (ast.Node, error) {
	p := newParser(src)
	var exprs []ast.Node
	for p.tok.kind != eof {
		n, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		exprs = append(exprs, n)
	}
	if len(exprs) == 1 {
		return exprs[0], nil
	}
	return &ast.Block{Body: exprs}, nil
}

func (p *parser) parseExpr() (ast.Node, error) {
	switch p.tok.kind {
	case lparen:
		return p.parseList()
	case number:
		return p.parseNumber()
	case integer:
		return p.parseInteger()
	case str:
		n := &ast.String{Position: p.tok.pos, Value: p.tok.literal}
		p.advance()
		return n, nil
	case symbol:
		return p.parseAtomSymbol()
	case illegal:
		return nil, p.errorf(p.tok.pos, "%s", p.tok.literal)
	case eof:
		return nil, p.errorf(p.tok.pos, "unexpected end of input")
	default:
		return nil, p.errorf(p.tok.pos, "unexpected token %q", p.tok.literal)
	}
}

func (p *parser) parseNumber() (ast.Node, error) {
	v, err := strconv.ParseFloat(p.tok.literal, 64)
	if err != nil {
		return nil, p.errorf(p.tok.pos, "invalid number %q", p.tok.literal)
	}
	n := &ast.Number{Position: p.tok.pos, Value: v}
	p.advance()
	return n, nil
}

func (p *parser) parseInteger() (ast.Node, error) {
	digits := p.tok.literal[:len(p.tok.literal)-1] // strip trailing 'L'
	v, err := strconv.ParseInt(digits, 10, 32)
	if err != nil {
		return nil, p.errorf(p.tok.pos, "invalid integer %q", p.tok.literal)
	}
	n := &ast.Integer{Position: p.tok.pos, Value: int32(v)}
	p.advance()
	return n, nil
}

// parseAtomSymbol resolves a bare symbol token to one of the fixed
// keyword literals (TRUE/FALSE/NULL), the NA niladic-call desugaring
// (see internal/builtins.registerConstants), or an ordinary Symbol.
func (p *parser) parseAtomSymbol() (ast.Node, error) {
	pos := p.tok.pos
	name := p.tok.literal
	p.advance()
	switch name {
	case "TRUE":
		return &ast.Bool{Position: pos, Value: true}, nil
	case "FALSE":
		return &ast.Bool{Position: pos, Value: false}, nil
	case "NULL":
		return &ast.Null{Position: pos}, nil
	case "NA":
		return &ast.Call{Position: pos, Head: &ast.Symbol{Position: pos, Name: "NA"}}, nil
	default:
		return &ast.Symbol{Position: pos, Name: name}, nil
	}
}

// parseList reads a parenthesized form. The caller only calls this with
// p.tok == lparen; parseList consumes that opening paren itself.
// A bare leading symbol matching one of the fixed control-flow keywords
// dispatches to a dedicated ast.Node; anything else is an ordinary Call,
// whose Head may itself be any expression (so `((function (x) x) 5)`
// applies an inline lambda).
func (p *parser) parseList() (ast.Node, error) {
	pos := p.tok.pos
	p.advance() // consume '('

	if p.tok.kind == symbol {
		switch p.tok.literal {
		case "function":
			return p.parseFunction(pos)
		case "if":
			return p.parseIf(pos)
		case "for":
			return p.parseFor(pos)
		case "while":
			return p.parseWhile(pos)
		case "block":
			return p.parseBlock(pos)
		case "break":
			p.advance()
			return p.closeSimple(pos, &ast.Break{Position: pos})
		case "continue":
			p.advance()
			return p.closeSimple(pos, &ast.Continue{Position: pos})
		case "return":
			return p.parseReturn(pos)
		case "list":
			return p.parseListLiteral(pos)
		}
	}

	head, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	var names []string
	var args []ast.Node
	for p.tok.kind != rparen {
		if p.tok.kind == eof {
			return nil, p.errorf(p.tok.pos, "unterminated call starting at %d:%d", pos.Line, pos.Column)
		}
		arg, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		names = append(names, "")
		args = append(args, arg)
	}
	p.advance() // consume ')'
	return &ast.Call{Position: pos, Head: head, Args: ast.NewExprList(names, args)}, nil
}

// closeSimple expects and consumes the list's closing paren, returning
// node unchanged — shared by the zero-argument keyword forms.
func (p *parser) closeSimple(pos ast.Position, node ast.Node) (ast.Node, error) {
	if p.tok.kind != rparen {
		return nil, p.errorf(p.tok.pos, "expected ')' after %s", node.String())
	}
	p.advance()
	return node, nil
}

func (p *parser) expectRParen(openedAt ast.Position) error {
	if p.tok.kind != rparen {
		return p.errorf(p.tok.pos, "expected ')' to close form opened at %d:%d, got %q", openedAt.Line, openedAt.Column, p.tok.literal)
	}
	p.advance()
	return nil
}

func (p *parser) parseFunction(pos ast.Position) (ast.Node, error) {
	p.advance() // consume 'function'
	if p.tok.kind != lparen {
		return nil, p.errorf(p.tok.pos, "expected '(' to start function's formals list")
	}
	formalsPos := p.tok.pos
	p.advance()
	var names []string
	var defaults []ast.Node
	for p.tok.kind != rparen {
		if p.tok.kind == eof {
			return nil, p.errorf(p.tok.pos, "unterminated formals list opened at %d:%d", formalsPos.Line, formalsPos.Column)
		}
		if p.tok.kind == lparen {
			defaultPos := p.tok.pos
			p.advance()
			if p.tok.kind != symbol {
				return nil, p.errorf(p.tok.pos, "expected a formal name, got %q", p.tok.literal)
			}
			name := p.tok.literal
			p.advance()
			def, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			if err := p.expectRParen(defaultPos); err != nil {
				return nil, err
			}
			names = append(names, name)
			defaults = append(defaults, def)
			continue
		}
		if p.tok.kind != symbol {
			return nil, p.errorf(p.tok.pos, "expected a formal name, got %q", p.tok.literal)
		}
		names = append(names, p.tok.literal)
		defaults = append(defaults, nil)
		p.advance()
	}
	p.advance() // consume formals' ')'

	body, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if err := p.expectRParen(pos); err != nil {
		return nil, err
	}
	return &ast.Function{Position: pos, Formals: ast.NewExprList(names, defaults), Body: body}, nil
}

func (p *parser) parseIf(pos ast.Position) (ast.Node, error) {
	p.advance() // consume 'if'
	cond, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	then, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	var elseNode ast.Node
	if p.tok.kind != rparen {
		elseNode, err = p.parseExpr()
		if err != nil {
			return nil, err
		}
	}
	if err := p.expectRParen(pos); err != nil {
		return nil, err
	}
	return &ast.If{Position: pos, Cond: cond, Then: then, Else: elseNode}, nil
}

func (p *parser) parseFor(pos ast.Position) (ast.Node, error) {
	p.advance() // consume 'for'
	if p.tok.kind != symbol {
		return nil, p.errorf(p.tok.pos, "expected a loop variable name, got %q", p.tok.literal)
	}
	varName := p.tok.literal
	p.advance()
	seq, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	body, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if err := p.expectRParen(pos); err != nil {
		return nil, err
	}
	return &ast.For{Position: pos, Var: varName, Seq: seq, Body: body}, nil
}

func (p *parser) parseWhile(pos ast.Position) (ast.Node, error) {
	p.advance() // consume 'while'
	cond, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	body, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if err := p.expectRParen(pos); err != nil {
		return nil, err
	}
	return &ast.While{Position: pos, Cond: cond, Body: body}, nil
}

func (p *parser) parseBlock(pos ast.Position) (ast.Node, error) {
	p.advance() // consume 'block'
	var body []ast.Node
	for p.tok.kind != rparen {
		if p.tok.kind == eof {
			return nil, p.errorf(p.tok.pos, "unterminated block opened at %d:%d", pos.Line, pos.Column)
		}
		n, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		body = append(body, n)
	}
	p.advance()
	return &ast.Block{Position: pos, Body: body}, nil
}

func (p *parser) parseReturn(pos ast.Position) (ast.Node, error) {
	p.advance() // consume 'return'
	if p.tok.kind == rparen {
		p.advance()
		return &ast.Return{Position: pos}, nil
	}
	v, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if err := p.expectRParen(pos); err != nil {
		return nil, err
	}
	return &ast.Return{Position: pos, Value: v}, nil
}

func (p *parser) parseListLiteral(pos ast.Position) (ast.Node, error) {
	p.advance() // consume 'list'
	var names []string
	var elems []ast.Node
	for p.tok.kind != rparen {
		if p.tok.kind == eof {
			return nil, p.errorf(p.tok.pos, "unterminated list opened at %d:%d", pos.Line, pos.Column)
		}
		n, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		names = append(names, "")
		elems = append(elems, n)
	}
	p.advance()
	return &ast.List{Position: pos, Elements: ast.NewExprList(names, elems)}, nil
}
