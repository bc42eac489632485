package graph

import "github.com/methodray/methodray/internal/typesystem"

// typeSlot records one type inhabiting a Vertex together with every upstream
// VertexId that has contributed it. Origin tracking exists so that a future
// retraction pass (spec.md §9) can know where a type came from; the current
// spec never removes a type once recorded.
type typeSlot struct {
	t       typesystem.Type
	origins map[VertexId]bool
}

// vertexEntry backs a mutable Vertex: a monotonically growing type set, an
// ordered downstream list, and the reactive cells subscribed to it.
type vertexEntry struct {
	slots     map[string]*typeSlot // keyed by typesystem.Key(t)
	order     []typesystem.Type    // insertion order, for deterministic iteration/display
	next      []VertexId           // downstream vertices, insertion order
	boxes     []BoxId              // MethodCallBoxes subscribed as this vertex's receiver
	hasBox    map[BoxId]bool       // dedup guard for Subscribe
}

func newVertexEntry() *vertexEntry {
	return &vertexEntry{
		slots:  make(map[string]*typeSlot),
		hasBox: make(map[BoxId]bool),
	}
}

// sourceEntry backs an immutable Source: a single fixed type, no inbound
// edges accepted, emits only.
type sourceEntry struct {
	fixed typesystem.Type
}
