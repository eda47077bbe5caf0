package reader

import (
	"strings"
	"unicode/utf8"

	"github.com/cwbudde/vexpr/internal/ast"
)

// lexer is a rune scanner producing the handful of token kinds this
// demonstration syntax needs: parens, numbers, strings, and symbol runs
// (identifiers and operator tokens alike, since a call head like `+` or
// `<-` is just another symbol in this prefix syntax).
type lexer struct {
	input        string
	position     int
	readPosition int
	line, column int
	ch           rune
}

func newLexer(input string) *lexer {
	l := &lexer{input: input, line: 1, column: 0}
	l.readChar()
	return l
}

func (l *lexer) readChar() {
	if l.readPosition >= len(l.input) {
		l.ch = 0
		l.position = l.readPosition
		l.column++
		return
	}
	r, size := utf8.DecodeRuneInString(l.input[l.readPosition:])
	l.ch = r
	l.position = l.readPosition
	l.readPosition += size
	l.column++
	if r == '\n' {
		l.line++
		l.column = 0
	}
}

func (l *lexer) peekChar() rune {
	if l.readPosition >= len(l.input) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(l.input[l.readPosition:])
	return r
}

func (l *lexer) currentPos() ast.Position {
	return ast.Position{Line: l.line, Column: l.column, Offset: l.position}
}

func isSpace(ch rune) bool { return ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r' }

func isDelimiter(ch rune) bool {
	return ch == 0 || isSpace(ch) || ch == '(' || ch == ')' || ch == '"'
}

func (l *lexer) skipWhitespaceAndComments() {
	for {
		for isSpace(l.ch) {
			l.readChar()
		}
		if l.ch == '/' && l.peekChar() == '/' {
			for l.ch != '\n' && l.ch != 0 {
				l.readChar()
			}
			continue
		}
		return
	}
}

func (l *lexer) readString() (string, bool) {
	var b strings.Builder
	l.readChar() // skip opening quote
	for l.ch != '"' && l.ch != 0 {
		if l.ch == '\\' {
			l.readChar()
			switch l.ch {
			case 'n':
				b.WriteRune('\n')
			case 't':
				b.WriteRune('\t')
			case '"':
				b.WriteRune('"')
			case '\\':
				b.WriteRune('\\')
			default:
				b.WriteRune(l.ch)
			}
			l.readChar()
			continue
		}
		b.WriteRune(l.ch)
		l.readChar()
	}
	if l.ch != '"' {
		return b.String(), false
	}
	l.readChar() // skip closing quote
	return b.String(), true
}

func (l *lexer) readSymbolRun() string {
	start := l.position
	for !isDelimiter(l.ch) {
		l.readChar()
	}
	return l.input[start:l.position]
}

// classify decides whether a bare run is a Number, Integer, or Symbol
// token. A leading sign is only a number when immediately followed by a
// digit; otherwise the whole run is an operator/identifier symbol like
// "-" or "<-".
func classify(run string) kind {
	if run == "" {
		return symbol
	}
	i := 0
	if run[0] == '+' || run[0] == '-' {
		i++
	}
	if i >= len(run) || run[i] < '0' || run[i] > '9' {
		return symbol
	}
	if strings.HasSuffix(run, "L") && isDecimalDigits(run[i:len(run)-1]) {
		return integer
	}
	return number
}

func isDecimalDigits(s string) bool {
	if s == "" {
		return false
	}
	seenDot := false
	for _, ch := range s {
		if ch == '.' && !seenDot {
			seenDot = true
			continue
		}
		if ch < '0' || ch > '9' {
			return false
		}
	}
	return true
}

func (l *lexer) next() token {
	l.skipWhitespaceAndComments()
	pos := l.currentPos()

	switch {
	case l.ch == 0:
		return token{kind: eof, pos: pos}
	case l.ch == '(':
		l.readChar()
		return token{kind: lparen, literal: "(", pos: pos}
	case l.ch == ')':
		l.readChar()
		return token{kind: rparen, literal: ")", pos: pos}
	case l.ch == '"':
		s, ok := l.readString()
		if !ok {
			return token{kind: illegal, literal: "unterminated string literal", pos: pos}
		}
		return token{kind: str, literal: s, pos: pos}
	default:
		run := l.readSymbolRun()
		if run == "" {
			// A delimiter landed here that next() doesn't special-case
			// (shouldn't happen given the cases above, but don't loop).
			l.readChar()
			return token{kind: illegal, literal: string(l.ch), pos: pos}
		}
		return token{kind: classify(run), literal: run, pos: pos}
	}
}
