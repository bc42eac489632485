package ast

import "github.com/methodray/methodray/internal/token"

// Identifier is a local variable read, `x`.
type Identifier struct {
	Token token.Token
	Name  string
}

func (i *Identifier) Accept(v Visitor)      { v.VisitIdentifier(i) }
func (i *Identifier) expressionNode()       {}
func (i *Identifier) TokenLiteral() string  { return i.Token.Lexeme }
func (i *Identifier) GetToken() token.Token { return i.Token }

// AssignExpression is a local write, `x = e`.
type AssignExpression struct {
	Token token.Token
	Name  string
	Value Expression
}

func (a *AssignExpression) Accept(v Visitor)      { v.VisitAssignExpression(a) }
func (a *AssignExpression) expressionNode()       {}
func (a *AssignExpression) TokenLiteral() string  { return a.Token.Lexeme }
func (a *AssignExpression) GetToken() token.Token { return a.Token }

// InstanceVarExpression is an instance-variable read, `@a`.
type InstanceVarExpression struct {
	Token token.Token
	Name  string
}

func (i *InstanceVarExpression) Accept(v Visitor)      { v.VisitInstanceVarExpression(i) }
func (i *InstanceVarExpression) expressionNode()       {}
func (i *InstanceVarExpression) TokenLiteral() string  { return i.Token.Lexeme }
func (i *InstanceVarExpression) GetToken() token.Token { return i.Token }

// InstanceVarAssignExpression is an instance-variable write, `@a = e`.
type InstanceVarAssignExpression struct {
	Token token.Token
	Name  string
	Value Expression
}

func (i *InstanceVarAssignExpression) Accept(v Visitor)      { v.VisitInstanceVarAssignExpression(i) }
func (i *InstanceVarAssignExpression) expressionNode()       {}
func (i *InstanceVarAssignExpression) TokenLiteral() string  { return i.Token.Lexeme }
func (i *InstanceVarAssignExpression) GetToken() token.Token { return i.Token }

// SelfExpression is the `self` keyword.
type SelfExpression struct {
	Token token.Token
}

func (s *SelfExpression) Accept(v Visitor)      { v.VisitSelfExpression(s) }
func (s *SelfExpression) expressionNode()       {}
func (s *SelfExpression) TokenLiteral() string  { return s.Token.Lexeme }
func (s *SelfExpression) GetToken() token.Token { return s.Token }

// MethodCallExpression is `r.m(...)`, or a receiver-less call `m(...)` when
// Receiver is nil (only attr_reader/attr_writer/attr_accessor are modeled
// for the receiver-less form; spec.md §4.8, §4.9).
type MethodCallExpression struct {
	Token     token.Token
	Receiver  Expression // nil for a receiver-less call
	Name      string
	Arguments []Expression
}

func (m *MethodCallExpression) Accept(v Visitor)      { v.VisitMethodCallExpression(m) }
func (m *MethodCallExpression) expressionNode()       {}
func (m *MethodCallExpression) TokenLiteral() string  { return m.Token.Lexeme }
func (m *MethodCallExpression) GetToken() token.Token { return m.Token }
