package analyzer

import (
	"github.com/methodray/methodray/internal/diagnostics"
	"github.com/methodray/methodray/internal/graph"
	"github.com/methodray/methodray/internal/registry"
	"github.com/methodray/methodray/internal/token"
	"github.com/methodray/methodray/internal/typesystem"
)

// methodCallBox is the MethodCallBox: a reactive cell for one call site
// `recv.name(...)`, subscribed to recv's vertex and re-fired whenever it
// gains a new type (spec.md §4.7).
type methodCallBox struct {
	vm       *graph.Manager
	registry *registry.Registry
	errors   *[]*diagnostics.TypeError

	receiver     graph.VertexId
	methodName   string
	returnVertex graph.VertexId
	location     *token.Location

	seen map[string]bool
}

func newMethodCallBox(
	vm *graph.Manager,
	reg *registry.Registry,
	errors *[]*diagnostics.TypeError,
	receiver graph.VertexId,
	name string,
	returnVertex graph.VertexId,
	loc *token.Location,
) *methodCallBox {
	return &methodCallBox{
		vm:           vm,
		registry:     reg,
		errors:       errors,
		receiver:     receiver,
		methodName:   name,
		returnVertex: returnVertex,
		location:     loc,
		seen:         make(map[string]bool),
	}
}

// Fire resolves the method against every type currently on the receiver
// that hasn't been processed by this box before: a resolved method wires a
// Source of its return type into the call's return vertex; an unresolved
// one records exactly one TypeError. Bot contributes no information and is
// never resolved or reported (spec.md §4.7, §7).
func (b *methodCallBox) Fire() {
	for _, t := range b.vm.Types(b.receiver) {
		key := typesystem.Key(t)
		if b.seen[key] {
			continue
		}
		b.seen[key] = true

		if typesystem.IsBot(t) {
			continue
		}

		if info, ok := b.registry.Resolve(t, b.methodName); ok {
			src := b.vm.NewSource(info.ReturnType)
			b.vm.AddEdge(src, b.returnVertex)
			continue
		}
		*b.errors = append(*b.errors, diagnostics.NewUndefinedMethod(t, b.methodName, b.location))
	}
}
