package typesystem

import "testing"

func TestEqualStructural(t *testing.T) {
	if !Equal(Instance{ClassName: "String"}, Instance{ClassName: "String"}) {
		t.Fatal("expected two separately constructed Instance{String} to be equal")
	}
	if Equal(Instance{ClassName: "String"}, Instance{ClassName: "Integer"}) {
		t.Fatal("expected Instance{String} != Instance{Integer}")
	}
	if Equal(Instance{ClassName: "User"}, Singleton{ClassName: "User"}) {
		t.Fatal("Instance and Singleton of the same class must not be equal")
	}
	if !Equal(Nil{}, Nil{}) {
		t.Fatal("Nil must equal Nil")
	}
	if !Equal(Bot{}, Bot{}) {
		t.Fatal("Bot must equal Bot")
	}
}

func TestShow(t *testing.T) {
	cases := []struct {
		types []Type
		want  string
	}{
		{nil, "untyped"},
		{[]Type{}, "untyped"},
		{[]Type{Instance{ClassName: "String"}}, "String"},
		{[]Type{Singleton{ClassName: "User"}}, "singleton(User)"},
		{[]Type{Nil{}}, "nil"},
		{[]Type{Instance{ClassName: "Integer"}, Instance{ClassName: "String"}}, "(Integer | String)"},
		{[]Type{Instance{ClassName: "String"}, Instance{ClassName: "Integer"}}, "(Integer | String)"},
	}
	for _, c := range cases {
		got := Show(c.types)
		if got != c.want {
			t.Errorf("Show(%v) = %q, want %q", c.types, got, c.want)
		}
	}
}

func TestKeyDeterministic(t *testing.T) {
	a := Key(Instance{ClassName: "String"})
	b := Key(Instance{ClassName: "String"})
	if a != b {
		t.Fatalf("Key must be deterministic across calls: %q != %q", a, b)
	}
}
