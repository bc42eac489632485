package scope

import "testing"

func TestInstanceVarBindsToClassNotMethod(t *testing.T) {
	m := New()
	m.EnterClass("User")
	m.EnterMethod("initialize")
	m.SetInstanceVar("name", 7)
	m.ExitScope() // leave initialize

	m.EnterMethod("greet")
	id, ok := m.LookupInstanceVar("name")
	if !ok || id != 7 {
		t.Fatalf("expected @name set in one method to be visible from another, got %v %v", id, ok)
	}
	m.ExitScope()
	m.ExitScope()
}

func TestCurrentClassNameSearchesTopDown(t *testing.T) {
	m := New()
	if _, ok := m.CurrentClassName(); ok {
		t.Fatal("expected no class at top level")
	}
	m.EnterClass("Post")
	m.EnterMethod("title")
	name, ok := m.CurrentClassName()
	if !ok || name != "Post" {
		t.Fatalf("expected nearest class name Post, got %q %v", name, ok)
	}
}

func TestInstanceVarOverwrites(t *testing.T) {
	m := New()
	m.EnterClass("User")
	m.SetInstanceVar("name", 1)
	m.SetInstanceVar("name", 2)
	id, _ := m.LookupInstanceVar("name")
	if id != 2 {
		t.Fatalf("expected second SetInstanceVar to overwrite the first, got %v", id)
	}
}

func TestLocalEnvReadAfterWrite(t *testing.T) {
	e := NewLocalEnv()
	e.Bind("x", 3)
	id, ok := e.Lookup("x")
	if !ok || id != 3 {
		t.Fatalf("expected x to resolve to vertex 3, got %v %v", id, ok)
	}
	if _, ok := e.Lookup("y"); ok {
		t.Fatal("expected unbound variable to report absence, not error")
	}
}
