package ast

import "github.com/methodray/methodray/internal/token"

// ClassStatement is `class Name ... end`. Name is taken from the leftmost
// constant in the class's constant path (the parser only produces simple
// single-identifier names); an unparseable name falls back to
// "UnknownClass" per spec.md §4.8.
type ClassStatement struct {
	Token token.Token
	Name  string
	Body  []Statement
}

func (c *ClassStatement) Accept(v Visitor)      { v.VisitClassStatement(c) }
func (c *ClassStatement) statementNode()        {}
func (c *ClassStatement) TokenLiteral() string  { return c.Token.Lexeme }
func (c *ClassStatement) GetToken() token.Token { return c.Token }

// MethodStatement is `def name ... end`. Parameter typing is out of scope
// (spec.md §4.8).
type MethodStatement struct {
	Token token.Token
	Name  string
	Body  []Statement
}

func (m *MethodStatement) Accept(v Visitor)      { v.VisitMethodStatement(m) }
func (m *MethodStatement) statementNode()        {}
func (m *MethodStatement) TokenLiteral() string  { return m.Token.Lexeme }
func (m *MethodStatement) GetToken() token.Token { return m.Token }

// ExpressionStatement wraps a bare expression used as a statement, e.g. a
// method call on its own line.
type ExpressionStatement struct {
	Token      token.Token
	Expression Expression
}

func (e *ExpressionStatement) Accept(v Visitor)      { v.VisitExpressionStatement(e) }
func (e *ExpressionStatement) statementNode()        {}
func (e *ExpressionStatement) TokenLiteral() string  { return e.Token.Lexeme }
func (e *ExpressionStatement) GetToken() token.Token { return e.Token }
