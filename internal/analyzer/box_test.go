package analyzer

import (
	"testing"

	"github.com/methodray/methodray/internal/diagnostics"
	"github.com/methodray/methodray/internal/graph"
	"github.com/methodray/methodray/internal/registry"
	"github.com/methodray/methodray/internal/typesystem"
)

// TestUnionReceiverResolvesPerMember wires two concrete types onto one
// receiver vertex directly through the VertexManager (bypassing the
// installer) and fires a methodCallBox against it, covering spec.md §8's
// union-receiver rule: one registry lookup per member, with an error
// recorded only for the member that misses.
func TestUnionReceiverResolvesPerMember(t *testing.T) {
	vm := graph.NewManager(nil)
	reg := registry.New()

	str := typesystem.Instance{ClassName: "String"}
	integer := typesystem.Instance{ClassName: "Integer"}
	reg.Register(str, "describe", str)
	// Integer.describe is deliberately left unregistered.

	receiver := vm.NewVertex()
	strSource := vm.NewSource(str)
	intSource := vm.NewSource(integer)
	vm.AddEdge(strSource, receiver)
	vm.AddEdge(intSource, receiver)

	if got := vm.Types(receiver); len(got) != 2 {
		t.Fatalf("expected receiver to carry 2 types, got %d: %v", len(got), got)
	}

	var errs []*diagnostics.TypeError
	returnVertex := vm.NewVertex()
	box := newMethodCallBox(vm, reg, &errs, receiver, "describe", returnVertex, nil)
	box.Fire()

	if len(errs) != 1 {
		t.Fatalf("expected exactly 1 error (the Integer member), got %d: %v", len(errs), errs)
	}
	if !typesystem.Equal(errs[0].ReceiverType, integer) {
		t.Fatalf("expected error receiver Integer, got %v", errs[0].ReceiverType)
	}
	if errs[0].MethodName != "describe" {
		t.Fatalf("expected method_name describe, got %q", errs[0].MethodName)
	}

	retTypes := vm.Types(returnVertex)
	if len(retTypes) != 1 || !typesystem.Equal(retTypes[0], str) {
		t.Fatalf("expected return vertex to carry only String (from the resolved member), got %v", retTypes)
	}
}

// TestUnionReceiverAllMembersResolve covers the companion case: every
// member resolves, so no error is recorded and the return vertex holds
// each distinct return type once (both members here return String).
func TestUnionReceiverAllMembersResolve(t *testing.T) {
	vm := graph.NewManager(nil)
	reg := registry.New()

	str := typesystem.Instance{ClassName: "String"}
	integer := typesystem.Instance{ClassName: "Integer"}
	reg.Register(str, "to_s", str)
	reg.Register(integer, "to_s", str)

	receiver := vm.NewVertex()
	vm.AddEdge(vm.NewSource(str), receiver)
	vm.AddEdge(vm.NewSource(integer), receiver)

	var errs []*diagnostics.TypeError
	returnVertex := vm.NewVertex()
	box := newMethodCallBox(vm, reg, &errs, receiver, "to_s", returnVertex, nil)
	box.Fire()

	if len(errs) != 0 {
		t.Fatalf("expected no errors, got %v", errs)
	}
	retTypes := vm.Types(returnVertex)
	if len(retTypes) != 1 || !typesystem.Equal(retTypes[0], str) {
		t.Fatalf("expected return vertex to carry only String, got %v", retTypes)
	}
}

// TestUnionReceiverSkipsBotMember confirms a Bot member contributes neither
// a resolved call nor an error, alongside concrete members that do.
func TestUnionReceiverSkipsBotMember(t *testing.T) {
	vm := graph.NewManager(nil)
	reg := registry.New()

	str := typesystem.Instance{ClassName: "String"}
	reg.Register(str, "upcase", str)

	receiver := vm.NewVertex()
	vm.AddEdge(vm.NewSource(str), receiver)
	vm.AddEdge(vm.NewSource(typesystem.Bot{}), receiver)

	var errs []*diagnostics.TypeError
	returnVertex := vm.NewVertex()
	box := newMethodCallBox(vm, reg, &errs, receiver, "upcase", returnVertex, nil)
	box.Fire()

	if len(errs) != 0 {
		t.Fatalf("expected no errors (Bot never resolves or reports), got %v", errs)
	}
	retTypes := vm.Types(returnVertex)
	if len(retTypes) != 1 || !typesystem.Equal(retTypes[0], str) {
		t.Fatalf("expected return vertex to carry only String, got %v", retTypes)
	}
}
