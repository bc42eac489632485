package ast

import "github.com/methodray/methodray/internal/token"

// StringLiteral is a double-quoted string literal.
type StringLiteral struct {
	Token token.Token
	Value string
}

func (s *StringLiteral) Accept(v Visitor)      { v.VisitStringLiteral(s) }
func (s *StringLiteral) expressionNode()       {}
func (s *StringLiteral) TokenLiteral() string  { return s.Token.Lexeme }
func (s *StringLiteral) GetToken() token.Token { return s.Token }

// IntegerLiteral is a decimal integer literal.
type IntegerLiteral struct {
	Token token.Token
	Value int64
}

func (i *IntegerLiteral) Accept(v Visitor)      { v.VisitIntegerLiteral(i) }
func (i *IntegerLiteral) expressionNode()       {}
func (i *IntegerLiteral) TokenLiteral() string  { return i.Token.Lexeme }
func (i *IntegerLiteral) GetToken() token.Token { return i.Token }

// ArrayLiteral is `[e1, e2, ...]`.
type ArrayLiteral struct {
	Token    token.Token
	Elements []Expression
}

func (a *ArrayLiteral) Accept(v Visitor)      { v.VisitArrayLiteral(a) }
func (a *ArrayLiteral) expressionNode()       {}
func (a *ArrayLiteral) TokenLiteral() string  { return a.Token.Lexeme }
func (a *ArrayLiteral) GetToken() token.Token { return a.Token }

// HashPair is one key/value pair of a HashLiteral.
type HashPair struct {
	Key   Expression
	Value Expression
}

// HashLiteral is `{k1 => v1, k2 => v2}`.
type HashLiteral struct {
	Token token.Token
	Pairs []HashPair
}

func (h *HashLiteral) Accept(v Visitor)      { v.VisitHashLiteral(h) }
func (h *HashLiteral) expressionNode()       {}
func (h *HashLiteral) TokenLiteral() string  { return h.Token.Lexeme }
func (h *HashLiteral) GetToken() token.Token { return h.Token }

// NilLiteral is the literal `nil`.
type NilLiteral struct{ Token token.Token }

func (n *NilLiteral) Accept(v Visitor)      { v.VisitNilLiteral(n) }
func (n *NilLiteral) expressionNode()       {}
func (n *NilLiteral) TokenLiteral() string  { return n.Token.Lexeme }
func (n *NilLiteral) GetToken() token.Token { return n.Token }

// TrueLiteral is the literal `true`.
type TrueLiteral struct{ Token token.Token }

func (t *TrueLiteral) Accept(v Visitor)      { v.VisitTrueLiteral(t) }
func (t *TrueLiteral) expressionNode()       {}
func (t *TrueLiteral) TokenLiteral() string  { return t.Token.Lexeme }
func (t *TrueLiteral) GetToken() token.Token { return t.Token }

// FalseLiteral is the literal `false`.
type FalseLiteral struct{ Token token.Token }

func (f *FalseLiteral) Accept(v Visitor)      { v.VisitFalseLiteral(f) }
func (f *FalseLiteral) expressionNode()       {}
func (f *FalseLiteral) TokenLiteral() string  { return f.Token.Lexeme }
func (f *FalseLiteral) GetToken() token.Token { return f.Token }

// SymbolLiteral is `:name`, used as attr_reader/writer/accessor arguments.
type SymbolLiteral struct {
	Token token.Token
	Name  string
}

func (s *SymbolLiteral) Accept(v Visitor)      { v.VisitSymbolLiteral(s) }
func (s *SymbolLiteral) expressionNode()       {}
func (s *SymbolLiteral) TokenLiteral() string  { return s.Token.Lexeme }
func (s *SymbolLiteral) GetToken() token.Token { return s.Token }
