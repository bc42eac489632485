// Package token defines the source-location value type shared by the lexer,
// parser, ast and diagnostics packages.
package token

import "fmt"

// Kind identifies a lexical token category.
type Kind int

const (
	EOF Kind = iota
	ILLEGAL

	IDENT   // foo, bar
	IVAR    // @foo
	CONST   // User, Post (leading uppercase identifier)
	SYMBOL  // :foo
	INT     // 123
	STRING  // "hello"

	ASSIGN // =
	DOT    // .
	COMMA  // ,
	LPAREN
	RPAREN
	SEMI // ; or newline

	KEYWORD_CLASS
	KEYWORD_DEF
	KEYWORD_END
	KEYWORD_SELF
	KEYWORD_NIL
	KEYWORD_TRUE
	KEYWORD_FALSE
)

var names = map[Kind]string{
	EOF: "EOF", ILLEGAL: "ILLEGAL",
	IDENT: "IDENT", IVAR: "IVAR", CONST: "CONST", SYMBOL: "SYMBOL",
	INT: "INT", STRING: "STRING",
	ASSIGN: "=", DOT: ".", COMMA: ",", LPAREN: "(", RPAREN: ")", SEMI: ";",
	KEYWORD_CLASS: "class", KEYWORD_DEF: "def", KEYWORD_END: "end",
	KEYWORD_SELF: "self", KEYWORD_NIL: "nil", KEYWORD_TRUE: "true", KEYWORD_FALSE: "false",
}

func (k Kind) String() string {
	if n, ok := names[k]; ok {
		return n
	}
	return "UNKNOWN"
}

// Position is a single point in a source file: 1-based line, 0-based column,
// 0-based byte offset.
type Position struct {
	Line   int
	Column int
	Offset int
}

// Location is a start/end span within a named source file. All coordinates
// follow the §6 SourceLocation contract: lines are 1-based, columns and
// offsets are 0-based.
type Location struct {
	File  string
	Start Position
	End   Position
}

func (l Location) String() string {
	return fmt.Sprintf("%s:%d:%d", l.File, l.Start.Line, l.Start.Column)
}

// Token is one lexical unit: a kind, its literal text, and where it came from.
type Token struct {
	Kind    Kind
	Lexeme  string
	Loc     Location
}
