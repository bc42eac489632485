// Package analyzer implements the reactive core spec.md §4.7–§4.10 describe:
// MethodCallBox, AstInstaller, AttrMethods, and the Driver that owns them
// all. It walks internal/ast via the Visitor interface, a void-method
// dispatch convention with results returned through a side field rather
// than a return value.
package analyzer

import (
	"github.com/methodray/methodray/internal/ast"
	"github.com/methodray/methodray/internal/diagnostics"
	"github.com/methodray/methodray/internal/graph"
	"github.com/methodray/methodray/internal/registry"
	"github.com/methodray/methodray/internal/scheduler"
	"github.com/methodray/methodray/internal/scope"
)

// edge is one deferred (src, dst) pair awaiting commit to the VertexManager.
type edge struct {
	src, dst graph.VertexId
}

// attrKind discriminates the three attribute-declaration sugar forms.
type attrKind int

const (
	attrReader attrKind = iota
	attrWriter
	attrAccessor
)

// pendingAttr is one attr_reader/attr_writer/attr_accessor call recorded for
// deferred registration (see classCtx).
type pendingAttr struct {
	kind  attrKind
	names []string
}

// classCtx tracks one nesting level of class-body installation: the class
// name and the attr declarations seen so far, registered only once the
// whole body has been installed (the attr-ordering resolution described in
// SPEC_FULL.md §4 and DESIGN.md).
type classCtx struct {
	className string
	pending   []pendingAttr
}

// Installer is the AstInstaller: it walks the AST producing graph
// fragments, entering/exiting scopes, and batching local-write edges into a
// ChangeSet committed by the Driver's Finish.
type Installer struct {
	vm       *graph.Manager
	registry *registry.Registry
	scopes   *scope.Manager
	locals   *scope.LocalEnv
	sched    *scheduler.Manager
	errors   *[]*diagnostics.TypeError

	changeSet []edge
	classes   []*classCtx

	// result communicates one expression's VertexId back to Install(); the
	// Visitor interface itself is void.
	result graph.VertexId
}

func newInstaller(
	vm *graph.Manager,
	reg *registry.Registry,
	scopes *scope.Manager,
	locals *scope.LocalEnv,
	sched *scheduler.Manager,
	errors *[]*diagnostics.TypeError,
) *Installer {
	return &Installer{vm: vm, registry: reg, scopes: scopes, locals: locals, sched: sched, errors: errors}
}

// Install walks a single expression node and returns the VertexId it
// evaluates to, or graph.Invalid if the node produced nothing (spec.md
// §4.8's "receiver is absent... installer returns None" cases).
func (ins *Installer) Install(node ast.Node) graph.VertexId {
	if node == nil {
		return graph.Invalid
	}
	saved := ins.result
	ins.result = graph.Invalid
	node.Accept(ins)
	r := ins.result
	ins.result = saved
	return r
}

// InstallStatements walks each statement of a body in order.
func (ins *Installer) InstallStatements(stmts []ast.Statement) {
	for _, s := range stmts {
		s.Accept(ins)
	}
}

// deferEdge records a local-write edge to commit later instead of wiring it
// immediately (spec.md §4.8's local-write rule).
func (ins *Installer) deferEdge(src, dst graph.VertexId) {
	ins.changeSet = append(ins.changeSet, edge{src: src, dst: dst})
}

// commit applies every deferred edge to the VertexManager (triggering
// propagation for each) and clears the ChangeSet. Called once by the
// Driver's Finish, before draining the scheduler.
func (ins *Installer) commit() {
	pending := ins.changeSet
	ins.changeSet = nil
	for _, e := range pending {
		ins.vm.AddEdge(e.src, e.dst)
	}
}
