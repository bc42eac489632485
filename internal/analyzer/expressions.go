package analyzer

import (
	"github.com/methodray/methodray/internal/ast"
	"github.com/methodray/methodray/internal/graph"
	"github.com/methodray/methodray/internal/typesystem"
)

// VisitIdentifier installs a local-variable read. A name with no current
// binding yields no result; the installer raises nothing for it (spec.md
// §4.8 — only an undefined *method* is diagnosed, never an undefined
// local).
func (ins *Installer) VisitIdentifier(i *ast.Identifier) {
	if vtx, ok := ins.locals.Lookup(i.Name); ok {
		ins.result = vtx
		return
	}
	ins.result = graph.Invalid
}

// VisitAssignExpression installs a local write `x = e`: e is installed
// first, a fresh vertex is allocated for x, the LocalEnv rebinds x to it,
// and the e→x edge is deferred into the ChangeSet rather than wired
// immediately (spec.md §4.8).
func (ins *Installer) VisitAssignExpression(a *ast.AssignExpression) {
	vtxE := ins.Install(a.Value)
	vtxX := ins.vm.NewVertex()
	ins.locals.Bind(a.Name, vtxX)
	ins.deferEdge(vtxE, vtxX)
	ins.result = vtxX
}

// VisitInstanceVarExpression installs an instance-variable read `@a`: it
// looks @a up on the nearest ClassScope and yields whatever vertex was
// bound there by the most recent write, or no result if @a was never
// written.
func (ins *Installer) VisitInstanceVarExpression(i *ast.InstanceVarExpression) {
	if vtx, ok := ins.scopes.LookupInstanceVar(i.Name); ok {
		ins.result = vtx
		return
	}
	ins.result = graph.Invalid
}

// VisitInstanceVarAssignExpression installs an instance-variable write
// `@a = e`. Unlike a local write, no fresh vertex or deferred edge is
// needed: @a is bound directly to e's own vertex, so any type e's vertex
// later gains is visible to every future read of @a without an extra hop
// (spec.md §4.8).
func (ins *Installer) VisitInstanceVarAssignExpression(i *ast.InstanceVarAssignExpression) {
	vtxE := ins.Install(i.Value)
	ins.scopes.SetInstanceVar(i.Name, vtxE)
	ins.result = vtxE
}

// VisitSelfExpression installs a fresh Source typed as the enclosing
// class, or "Object" outside any class scope.
func (ins *Installer) VisitSelfExpression(s *ast.SelfExpression) {
	className := "Object"
	if name, ok := ins.scopes.CurrentClassName(); ok {
		className = name
	}
	ins.result = ins.vm.NewSource(typesystem.Instance{ClassName: className})
}

// VisitMethodCallExpression installs a call site. Receiver-less calls are
// modeled only for the three attr_* declaration forms (delegated to
// handleAttrDecl); every other receiver-less call is unsupported syntax
// and silently produces no result (spec.md §4.8, §7). A call with a
// receiver installs the receiver, allocates a return vertex, builds and
// registers a MethodCallBox, subscribes it to the receiver vertex, and
// immediately enqueues it so it fires at least once even if the receiver
// never gains any further types (spec.md §4.7).
func (ins *Installer) VisitMethodCallExpression(call *ast.MethodCallExpression) {
	if call.Receiver == nil {
		if isAttrDeclName(call.Name) {
			ins.handleAttrDecl(call)
		}
		ins.result = graph.Invalid
		return
	}

	recvVtx := ins.Install(call.Receiver)
	retVtx := ins.vm.NewVertex()
	loc := call.Token.Loc

	box := newMethodCallBox(ins.vm, ins.registry, ins.errors, recvVtx, call.Name, retVtx, &loc)
	boxID := ins.sched.Register(box)
	ins.vm.Subscribe(recvVtx, boxID)
	ins.sched.AddRun(boxID)

	ins.result = retVtx
}
