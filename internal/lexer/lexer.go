// Package lexer tokenizes the small OO-scripting surface syntax the parser
// and installer need to exercise spec.md §8's scenarios: classes, defs,
// instance variables, literals, assignment, and method calls.
package lexer

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/methodray/methodray/internal/token"
)

var keywords = map[string]token.Kind{
	"class": token.KEYWORD_CLASS,
	"def":   token.KEYWORD_DEF,
	"end":   token.KEYWORD_END,
	"self":  token.KEYWORD_SELF,
	"nil":   token.KEYWORD_NIL,
	"true":  token.KEYWORD_TRUE,
	"false": token.KEYWORD_FALSE,
}

// Lexer tokenizes one source file, byte offset by byte offset.
type Lexer struct {
	file string
	src  string
	pos  int // byte offset of the next unread rune
	line int
	col  int // 0-based column, in bytes, of the next unread rune
}

// New creates a Lexer over src, attributing positions to file.
func New(file, src string) *Lexer {
	return &Lexer{file: file, src: src, pos: 0, line: 1, col: 0}
}

func (l *Lexer) peekByte() byte {
	if l.pos >= len(l.src) {
		return 0
	}
	return l.src[l.pos]
}

func (l *Lexer) peekByteAt(offset int) byte {
	if l.pos+offset >= len(l.src) {
		return 0
	}
	return l.src[l.pos+offset]
}

func (l *Lexer) advance() byte {
	b := l.src[l.pos]
	l.pos++
	if b == '\n' {
		l.line++
		l.col = 0
	} else {
		l.col++
	}
	return b
}

func (l *Lexer) here() token.Position {
	return token.Position{Line: l.line, Column: l.col, Offset: l.pos}
}

func (l *Lexer) loc(start token.Position) token.Location {
	return token.Location{File: l.file, Start: start, End: l.here()}
}

func (l *Lexer) make(start token.Position, kind token.Kind, lexeme string) token.Token {
	return token.Token{Kind: kind, Lexeme: lexeme, Loc: l.loc(start)}
}

// NextToken returns the next token, or an EOF token once the input is
// exhausted.
func (l *Lexer) NextToken() token.Token {
	l.skipInsignificant()

	start := l.here()
	if l.pos >= len(l.src) {
		return l.make(start, token.EOF, "")
	}

	c := l.peekByte()
	switch {
	case c == '\n' || c == ';':
		l.advance()
		return l.make(start, token.SEMI, string(c))
	case c == '@':
		return l.lexIVar(start)
	case c == ':':
		return l.lexSymbol(start)
	case c == '"':
		return l.lexString(start)
	case isDigit(c):
		return l.lexNumber(start)
	case c == '=':
		l.advance()
		return l.make(start, token.ASSIGN, "=")
	case c == '.':
		l.advance()
		return l.make(start, token.DOT, ".")
	case c == ',':
		l.advance()
		return l.make(start, token.COMMA, ",")
	case c == '(':
		l.advance()
		return l.make(start, token.LPAREN, "(")
	case c == ')':
		l.advance()
		return l.make(start, token.RPAREN, ")")
	case isIdentStart(c):
		return l.lexIdent(start)
	default:
		l.advance()
		return l.make(start, token.ILLEGAL, string(c))
	}
}

// skipInsignificant consumes spaces, tabs, carriage returns, and `#`
// comments; newlines are significant (they terminate statements) and are
// left for NextToken to emit as SEMI.
func (l *Lexer) skipInsignificant() {
	for l.pos < len(l.src) {
		switch l.peekByte() {
		case ' ', '\t', '\r':
			l.advance()
		case '#':
			for l.pos < len(l.src) && l.peekByte() != '\n' {
				l.advance()
			}
		default:
			return
		}
	}
}

func (l *Lexer) lexIdent(start token.Position) token.Token {
	begin := l.pos
	for l.pos < len(l.src) && isIdentPart(l.peekByte()) {
		l.advance()
	}
	// Trailing `?`/`!` are conventional in method names (e.g. `empty?`,
	// `save!`); swallow one if present. A trailing `=` is not part of the
	// name: it lexes as its own ASSIGN token, so `x=1` is an assignment.
	if l.pos < len(l.src) {
		switch l.peekByte() {
		case '?', '!':
			l.advance()
		}
	}
	lexeme := l.src[begin:l.pos]
	kind := token.IDENT
	if k, ok := keywords[lexeme]; ok {
		kind = k
	} else if isUpper(lexeme) {
		kind = token.CONST
	}
	return l.make(start, kind, lexeme)
}

func (l *Lexer) lexIVar(start token.Position) token.Token {
	l.advance() // consume '@'
	begin := l.pos
	for l.pos < len(l.src) && isIdentPart(l.peekByte()) {
		l.advance()
	}
	return l.make(start, token.IVAR, l.src[begin:l.pos])
}

func (l *Lexer) lexSymbol(start token.Position) token.Token {
	l.advance() // consume ':'
	begin := l.pos
	for l.pos < len(l.src) && isIdentPart(l.peekByte()) {
		l.advance()
	}
	return l.make(start, token.SYMBOL, l.src[begin:l.pos])
}

func (l *Lexer) lexString(start token.Position) token.Token {
	l.advance() // opening quote
	var sb strings.Builder
	for l.pos < len(l.src) && l.peekByte() != '"' {
		c := l.advance()
		if c == '\\' && l.pos < len(l.src) {
			esc := l.advance()
			switch esc {
			case 'n':
				sb.WriteByte('\n')
			case 't':
				sb.WriteByte('\t')
			case '"':
				sb.WriteByte('"')
			case '\\':
				sb.WriteByte('\\')
			default:
				sb.WriteByte(esc)
			}
			continue
		}
		sb.WriteByte(c)
	}
	if l.pos < len(l.src) {
		l.advance() // closing quote
	}
	return l.make(start, token.STRING, sb.String())
}

func (l *Lexer) lexNumber(start token.Position) token.Token {
	begin := l.pos
	for l.pos < len(l.src) && isDigit(l.peekByte()) {
		l.advance()
	}
	return l.make(start, token.INT, l.src[begin:l.pos])
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c >= utf8.RuneSelf
}

func isIdentPart(c byte) bool {
	return isIdentStart(c) || isDigit(c)
}

func isUpper(s string) bool {
	if s == "" {
		return false
	}
	r, _ := utf8.DecodeRuneInString(s)
	return unicode.IsUpper(r)
}
