// Package ast defines the node set the installer walks: the concrete shapes
// enumerated in spec.md §4.8, dispatched through a Visitor.
package ast

import "github.com/methodray/methodray/internal/token"

// Node is the base interface every AST node satisfies.
type Node interface {
	TokenLiteral() string
	GetToken() token.Token
	Accept(v Visitor)
}

// Statement is a Node that stands on its own inside a body.
type Statement interface {
	Node
	statementNode()
}

// Expression is a Node that yields a value.
type Expression interface {
	Node
	expressionNode()
}

// Program is the root of every parsed source file.
type Program struct {
	File       string
	Statements []Statement
}

func (p *Program) Accept(v Visitor) { v.VisitProgram(p) }
func (p *Program) TokenLiteral() string {
	if len(p.Statements) > 0 {
		return p.Statements[0].TokenLiteral()
	}
	return ""
}
func (p *Program) GetToken() token.Token {
	if len(p.Statements) > 0 {
		return p.Statements[0].GetToken()
	}
	return token.Token{}
}

// Visitor is implemented by anything that walks the AST (currently only the
// installer). Every method is void; results are communicated back through
// fields on the visitor itself rather than return values.
type Visitor interface {
	VisitProgram(*Program)
	VisitClassStatement(*ClassStatement)
	VisitMethodStatement(*MethodStatement)
	VisitExpressionStatement(*ExpressionStatement)

	VisitAssignExpression(*AssignExpression)
	VisitInstanceVarAssignExpression(*InstanceVarAssignExpression)
	VisitInstanceVarExpression(*InstanceVarExpression)
	VisitSelfExpression(*SelfExpression)
	VisitIdentifier(*Identifier)
	VisitMethodCallExpression(*MethodCallExpression)

	VisitStringLiteral(*StringLiteral)
	VisitIntegerLiteral(*IntegerLiteral)
	VisitArrayLiteral(*ArrayLiteral)
	VisitHashLiteral(*HashLiteral)
	VisitNilLiteral(*NilLiteral)
	VisitTrueLiteral(*TrueLiteral)
	VisitFalseLiteral(*FalseLiteral)
	VisitSymbolLiteral(*SymbolLiteral)
}
