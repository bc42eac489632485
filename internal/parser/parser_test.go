package parser

import (
	"testing"

	"github.com/methodray/methodray/internal/ast"
)

func TestParseLocalAssignAndCallChain(t *testing.T) {
	p := New("t.rb", `x = "hello"; y = x.upcase.downcase`)
	prog := p.ParseProgram("t.rb")
	if len(prog.Statements) != 2 {
		t.Fatalf("expected 2 statements, got %d", len(prog.Statements))
	}

	first, ok := prog.Statements[0].(*ast.ExpressionStatement)
	if !ok {
		t.Fatalf("expected ExpressionStatement, got %T", prog.Statements[0])
	}
	assign, ok := first.Expression.(*ast.AssignExpression)
	if !ok || assign.Name != "x" {
		t.Fatalf("expected assignment to x, got %#v", first.Expression)
	}
	if _, ok := assign.Value.(*ast.StringLiteral); !ok {
		t.Fatalf("expected string literal value, got %T", assign.Value)
	}

	second := prog.Statements[1].(*ast.ExpressionStatement)
	yAssign := second.Expression.(*ast.AssignExpression)
	outer, ok := yAssign.Value.(*ast.MethodCallExpression)
	if !ok || outer.Name != "downcase" {
		t.Fatalf("expected outer call downcase, got %#v", yAssign.Value)
	}
	inner, ok := outer.Receiver.(*ast.MethodCallExpression)
	if !ok || inner.Name != "upcase" {
		t.Fatalf("expected inner call upcase, got %#v", outer.Receiver)
	}
	if _, ok := inner.Receiver.(*ast.Identifier); !ok {
		t.Fatalf("expected identifier receiver, got %T", inner.Receiver)
	}
}

func TestParseClassWithIvarAndMethod(t *testing.T) {
	src := `class User
  def initialize
    @name = "John"
  end
  def greet
    @name.upcase
  end
end`
	p := New("t.rb", src)
	prog := p.ParseProgram("t.rb")
	if len(prog.Statements) != 1 {
		t.Fatalf("expected 1 statement, got %d", len(prog.Statements))
	}
	class, ok := prog.Statements[0].(*ast.ClassStatement)
	if !ok || class.Name != "User" {
		t.Fatalf("expected class User, got %#v", prog.Statements[0])
	}
	if len(class.Body) != 2 {
		t.Fatalf("expected 2 methods in body, got %d", len(class.Body))
	}
	m0 := class.Body[0].(*ast.MethodStatement)
	if m0.Name != "initialize" {
		t.Fatalf("expected initialize, got %q", m0.Name)
	}
	stmt := m0.Body[0].(*ast.ExpressionStatement)
	ivarAssign, ok := stmt.Expression.(*ast.InstanceVarAssignExpression)
	if !ok || ivarAssign.Name != "name" {
		t.Fatalf("expected @name assignment, got %#v", stmt.Expression)
	}
}

func TestParseAttrAccessorBareCall(t *testing.T) {
	p := New("t.rb", `class User; attr_accessor :email; end`)
	prog := p.ParseProgram("t.rb")
	class := prog.Statements[0].(*ast.ClassStatement)
	stmt := class.Body[0].(*ast.ExpressionStatement)
	call, ok := stmt.Expression.(*ast.MethodCallExpression)
	if !ok || call.Receiver != nil || call.Name != "attr_accessor" {
		t.Fatalf("expected receiver-less attr_accessor call, got %#v", stmt.Expression)
	}
	if len(call.Arguments) != 1 {
		t.Fatalf("expected 1 argument, got %d", len(call.Arguments))
	}
	sym, ok := call.Arguments[0].(*ast.SymbolLiteral)
	if !ok || sym.Name != "email" {
		t.Fatalf("expected symbol :email, got %#v", call.Arguments[0])
	}
}

func TestUnknownClassNameFallback(t *testing.T) {
	p := New("t.rb", `class
end`)
	prog := p.ParseProgram("t.rb")
	class := prog.Statements[0].(*ast.ClassStatement)
	if class.Name != "UnknownClass" {
		t.Fatalf("expected UnknownClass fallback, got %q", class.Name)
	}
}
