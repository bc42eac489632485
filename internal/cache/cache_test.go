package cache

import (
	"context"
	"testing"
)

func TestMissThenStoreThenHit(t *testing.T) {
	s, err := Open(":memory:")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer s.Close()

	ctx := context.Background()
	hash := Hash([]byte(`x = "hello"; y = x.upcase`))

	if _, ok, err := s.Lookup(ctx, hash); err != nil || ok {
		t.Fatalf("expected miss, got ok=%v err=%v", ok, err)
	}

	want := []StoredTypeError{{ReceiverType: "Integer", MethodName: "upcase", File: "t.rb", Line: 1, Column: 2}}
	if err := s.Put(ctx, hash, want); err != nil {
		t.Fatalf("Put: %v", err)
	}

	got, ok, err := s.Lookup(ctx, hash)
	if err != nil || !ok {
		t.Fatalf("expected hit, got ok=%v err=%v", ok, err)
	}
	if len(got) != 1 || got[0] != want[0] {
		t.Fatalf("got %#v, want %#v", got, want)
	}
}

func TestPutOverwritesExistingEntry(t *testing.T) {
	s, err := Open(":memory:")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer s.Close()

	ctx := context.Background()
	hash := Hash([]byte("src"))

	if err := s.Put(ctx, hash, []StoredTypeError{{MethodName: "upcase"}}); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if err := s.Put(ctx, hash, nil); err != nil {
		t.Fatalf("Put: %v", err)
	}

	got, ok, err := s.Lookup(ctx, hash)
	if err != nil || !ok {
		t.Fatalf("expected hit, got ok=%v err=%v", ok, err)
	}
	if len(got) != 0 {
		t.Fatalf("expected overwritten entry to be empty, got %#v", got)
	}
}
