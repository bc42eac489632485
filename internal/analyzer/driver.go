package analyzer

import (
	"github.com/methodray/methodray/internal/ast"
	"github.com/methodray/methodray/internal/diagnostics"
	"github.com/methodray/methodray/internal/graph"
	"github.com/methodray/methodray/internal/registry"
	"github.com/methodray/methodray/internal/scheduler"
	"github.com/methodray/methodray/internal/scope"
	"github.com/methodray/methodray/internal/typesystem"
)

// Driver owns the full set of collaborating components for one analysis
// unit: the VertexManager, MethodRegistry, BoxManager, ScopeManager, the
// installer that ties them to an AST, and the TypeErrors the boxes
// accumulate along the way (spec.md §4.10).
type Driver struct {
	vm        *graph.Manager
	registry  *registry.Registry
	sched     *scheduler.Manager
	scopes    *scope.Manager
	locals    *scope.LocalEnv
	installer *Installer
	errors    []*diagnostics.TypeError
}

// New builds a Driver with fresh, empty components.
func New() *Driver {
	d := &Driver{
		registry: registry.New(),
		scopes:   scope.New(),
		locals:   scope.NewLocalEnv(),
		sched:    scheduler.New(),
	}
	d.vm = graph.NewManager(d.sched.AddRun)
	d.installer = newInstaller(d.vm, d.registry, d.scopes, d.locals, d.sched, &d.errors)
	return d
}

// RegisterBuiltinMethod seeds the MethodRegistry with a method that exists
// outside any analyzed source — the "external signature" entry point
// spec.md §1 names as a thin collaborator (backed concretely by
// internal/sigfile in this repository).
func (d *Driver) RegisterBuiltinMethod(recvTy typesystem.Type, name string, retTy typesystem.Type) {
	d.registry.Register(recvTy, name, retTy)
}

// Install walks prog, installing every class, method, and expression into
// the graph. Install may be called more than once against the same Driver
// to analyze additional compilation units sharing one registry and scope
// manager; each call's local writes land in the same ChangeSet, committed
// together on Finish.
func (d *Driver) Install(prog *ast.Program) {
	prog.Accept(d.installer)
}

// Finish commits the installer's ChangeSet — wiring every deferred local
// write edge through the VertexManager, which propagates as each edge
// lands — and then drains the BoxManager's run queue to quiescence. After
// Finish returns, TypeErrors is stable until more source is installed
// (spec.md §4.10).
func (d *Driver) Finish() {
	d.installer.commit()
	d.sched.Drain()
}

// TypeErrors returns every TypeError recorded so far, in the order the
// boxes that produced them fired.
func (d *Driver) TypeErrors() []*diagnostics.TypeError {
	return d.errors
}

// ResolveMethod exposes the MethodRegistry for callers (the CLI, the lint
// service) that want to inspect what a receiver type supports without
// re-running analysis.
func (d *Driver) ResolveMethod(recv typesystem.Type, name string) (registry.MethodInfo, bool) {
	return d.registry.Resolve(recv, name)
}

// VertexTypes returns the current inferred type set at vtx.
func (d *Driver) VertexTypes(vtx graph.VertexId) []typesystem.Type {
	return d.vm.Types(vtx)
}

// Display renders vtx's current type set using TypeLattice's canonical Show.
func (d *Driver) Display(vtx graph.VertexId) string {
	return d.vm.Display(vtx)
}

// QueueLen reports how many boxes are still pending a run, used by callers
// and tests to confirm the Driver has reached quiescence.
func (d *Driver) QueueLen() int {
	return d.sched.QueueLen()
}
