// Package parser builds an internal/ast tree from a internal/lexer token
// stream: a minimal recursive-descent parser for the OO-scripting surface
// syntax spec.md §8's scenarios use. It is the concrete "AST provider"
// spec.md §1 assumes the core is handed.
package parser

import (
	"strconv"

	"github.com/methodray/methodray/internal/ast"
	"github.com/methodray/methodray/internal/lexer"
	"github.com/methodray/methodray/internal/token"
)

// Parser holds one token of lookahead over a lexer's stream.
type Parser struct {
	l   *lexer.Lexer
	cur token.Token
}

// New creates a Parser over src, attributing locations to file.
func New(file, src string) *Parser {
	p := &Parser{l: lexer.New(file, src)}
	p.next()
	return p
}

func (p *Parser) next() {
	p.cur = p.l.NextToken()
}

func (p *Parser) skipSemis() {
	for p.cur.Kind == token.SEMI {
		p.next()
	}
}

// ParseProgram parses the entire input and returns the root Program node.
func (p *Parser) ParseProgram(file string) *ast.Program {
	p.skipSemis()
	stmts := p.parseStatementList(token.EOF)
	return &ast.Program{File: file, Statements: stmts}
}

func (p *Parser) parseStatementList(stop token.Kind) []ast.Statement {
	var stmts []ast.Statement
	p.skipSemis()
	for p.cur.Kind != stop && p.cur.Kind != token.EOF {
		stmts = append(stmts, p.parseStatement())
		p.skipSemis()
	}
	return stmts
}

func (p *Parser) parseStatement() ast.Statement {
	switch p.cur.Kind {
	case token.KEYWORD_CLASS:
		return p.parseClassStatement()
	case token.KEYWORD_DEF:
		return p.parseMethodStatement()
	default:
		tok := p.cur
		expr := p.parseExpression()
		return &ast.ExpressionStatement{Token: tok, Expression: expr}
	}
}

func (p *Parser) parseClassStatement() *ast.ClassStatement {
	tok := p.cur
	p.next() // consume 'class'

	name := "UnknownClass"
	if p.cur.Kind == token.CONST {
		name = p.cur.Lexeme
		p.next()
	}

	body := p.parseStatementList(token.KEYWORD_END)
	if p.cur.Kind == token.KEYWORD_END {
		p.next()
	}
	return &ast.ClassStatement{Token: tok, Name: name, Body: body}
}

func (p *Parser) parseMethodStatement() *ast.MethodStatement {
	tok := p.cur
	p.next() // consume 'def'

	name := ""
	if p.cur.Kind == token.IDENT {
		name = p.cur.Lexeme
		p.next()
	}
	// Parameter lists are parsed and discarded: parameter typing is out of
	// scope (spec.md §4.8).
	if p.cur.Kind == token.LPAREN {
		p.next()
		for p.cur.Kind != token.RPAREN && p.cur.Kind != token.EOF {
			p.next()
		}
		if p.cur.Kind == token.RPAREN {
			p.next()
		}
	}

	body := p.parseStatementList(token.KEYWORD_END)
	if p.cur.Kind == token.KEYWORD_END {
		p.next()
	}
	return &ast.MethodStatement{Token: tok, Name: name, Body: body}
}

func (p *Parser) parseExpression() ast.Expression {
	return p.parseAssignment()
}

func (p *Parser) parseAssignment() ast.Expression {
	expr := p.parsePostfix()
	if p.cur.Kind == token.ASSIGN {
		if ident, ok := expr.(*ast.Identifier); ok {
			tok := p.cur
			p.next()
			value := p.parseAssignment()
			return &ast.AssignExpression{Token: tok, Name: ident.Name, Value: value}
		}
		// Assignment to a non-identifier target isn't modeled; consume the
		// `=` and its value so parsing can continue past malformed input.
		p.next()
		p.parseAssignment()
	}
	return expr
}

func (p *Parser) parsePostfix() ast.Expression {
	expr := p.parsePrimary()
	for p.cur.Kind == token.DOT {
		tok := p.cur
		p.next()
		name := ""
		if p.cur.Kind == token.IDENT || p.cur.Kind == token.CONST {
			name = p.cur.Lexeme
			p.next()
		}
		var args []ast.Expression
		if p.cur.Kind == token.LPAREN {
			p.next()
			args = p.parseParenArgList()
		}
		expr = &ast.MethodCallExpression{Token: tok, Receiver: expr, Name: name, Arguments: args}
	}
	return expr
}

func (p *Parser) parsePrimary() ast.Expression {
	switch p.cur.Kind {
	case token.IDENT:
		tok := p.cur
		name := tok.Lexeme
		p.next()
		if p.cur.Kind == token.LPAREN {
			p.next()
			args := p.parseParenArgList()
			return &ast.MethodCallExpression{Token: tok, Receiver: nil, Name: name, Arguments: args}
		}
		if p.cur.Kind == token.SYMBOL {
			// Bare command syntax: `attr_accessor :a, :b` — a receiver-less
			// call whose arguments have no parentheses.
			args := p.parseBareArgList()
			return &ast.MethodCallExpression{Token: tok, Receiver: nil, Name: name, Arguments: args}
		}
		return &ast.Identifier{Token: tok, Name: name}

	case token.CONST:
		tok := p.cur
		p.next()
		return &ast.Identifier{Token: tok, Name: tok.Lexeme}

	case token.IVAR:
		tok := p.cur
		name := tok.Lexeme
		p.next()
		if p.cur.Kind == token.ASSIGN {
			p.next()
			value := p.parseAssignment()
			return &ast.InstanceVarAssignExpression{Token: tok, Name: name, Value: value}
		}
		return &ast.InstanceVarExpression{Token: tok, Name: name}

	case token.KEYWORD_SELF:
		tok := p.cur
		p.next()
		return &ast.SelfExpression{Token: tok}

	case token.KEYWORD_NIL:
		tok := p.cur
		p.next()
		return &ast.NilLiteral{Token: tok}

	case token.KEYWORD_TRUE:
		tok := p.cur
		p.next()
		return &ast.TrueLiteral{Token: tok}

	case token.KEYWORD_FALSE:
		tok := p.cur
		p.next()
		return &ast.FalseLiteral{Token: tok}

	case token.STRING:
		tok := p.cur
		p.next()
		return &ast.StringLiteral{Token: tok, Value: tok.Lexeme}

	case token.INT:
		tok := p.cur
		p.next()
		n, _ := strconv.ParseInt(tok.Lexeme, 10, 64)
		return &ast.IntegerLiteral{Token: tok, Value: n}

	case token.SYMBOL:
		tok := p.cur
		p.next()
		return &ast.SymbolLiteral{Token: tok, Name: tok.Lexeme}

	case token.LPAREN:
		p.next()
		expr := p.parseExpression()
		if p.cur.Kind == token.RPAREN {
			p.next()
		}
		return expr

	default:
		tok := p.cur
		p.next()
		return &ast.NilLiteral{Token: tok}
	}
}

// parseParenArgList parses comma-separated arguments up to a closing `)`.
func (p *Parser) parseParenArgList() []ast.Expression {
	var args []ast.Expression
	if p.cur.Kind == token.RPAREN {
		p.next()
		return args
	}
	args = append(args, p.parseExpression())
	for p.cur.Kind == token.COMMA {
		p.next()
		args = append(args, p.parseExpression())
	}
	if p.cur.Kind == token.RPAREN {
		p.next()
	}
	return args
}

// parseBareArgList parses comma-separated arguments with no surrounding
// parentheses, stopping at a statement terminator.
func (p *Parser) parseBareArgList() []ast.Expression {
	var args []ast.Expression
	if p.cur.Kind == token.SEMI || p.cur.Kind == token.EOF || p.cur.Kind == token.KEYWORD_END {
		return args
	}
	args = append(args, p.parseExpression())
	for p.cur.Kind == token.COMMA {
		p.next()
		args = append(args, p.parseExpression())
	}
	return args
}
