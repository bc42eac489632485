package analyzer

import "github.com/methodray/methodray/internal/ast"

// VisitProgram installs every top-level statement in order.
func (ins *Installer) VisitProgram(p *ast.Program) {
	ins.InstallStatements(p.Statements)
}

// VisitClassStatement enters a ClassScope, installs the body, flushes any
// attr_reader/attr_writer/attr_accessor declarations seen in that body
// against the now-fully-installed instance variables, and exits the scope
// (the attr-ordering resolution described in DESIGN.md: registration is
// deferred to class-exit rather than fired eagerly at the call site).
func (ins *Installer) VisitClassStatement(c *ast.ClassStatement) {
	ins.scopes.EnterClass(c.Name)
	ctx := &classCtx{className: c.Name}
	ins.classes = append(ins.classes, ctx)

	ins.InstallStatements(c.Body)

	ins.flushAttrs(ctx)
	ins.classes = ins.classes[:len(ins.classes)-1]
	ins.scopes.ExitScope()
}

// VisitMethodStatement enters a MethodScope, installs the body, and exits.
func (ins *Installer) VisitMethodStatement(m *ast.MethodStatement) {
	ins.scopes.EnterMethod(m.Name)
	ins.InstallStatements(m.Body)
	ins.scopes.ExitScope()
}

// VisitExpressionStatement installs the wrapped expression, discarding its
// result — a statement-level expression's value has no further use.
func (ins *Installer) VisitExpressionStatement(e *ast.ExpressionStatement) {
	ins.Install(e.Expression)
}
