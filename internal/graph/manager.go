package graph

import "github.com/methodray/methodray/internal/typesystem"

// RunEnqueuer is how the graph tells the scheduler that a box must re-fire.
// The graph package never imports the scheduler; the Driver wires
// BoxManager.AddRun in as this hook, keeping the two components decoupled.
type RunEnqueuer func(BoxId)

// Manager owns every Vertex and Source allocated during one analysis and is
// the sole component that mutates them. It corresponds to spec.md §4.2's
// VertexManager.
type Manager struct {
	entries map[VertexId]interface{} // *vertexEntry or *sourceEntry
	nextID  VertexId
	notify  RunEnqueuer
}

// NewManager creates an empty VertexManager. notify is invoked whenever a
// vertex that has subscribed boxes gains a new type; pass nil to ignore box
// notification (useful in isolated graph tests).
func NewManager(notify RunEnqueuer) *Manager {
	return &Manager{
		entries: make(map[VertexId]interface{}),
		notify:  notify,
	}
}

// NewVertex allocates an empty mutable Vertex and returns its id.
func (m *Manager) NewVertex() VertexId {
	id := m.nextID
	m.nextID++
	m.entries[id] = newVertexEntry()
	return id
}

// NewSource allocates an immutable Source bearing the fixed type t.
func (m *Manager) NewSource(t typesystem.Type) VertexId {
	id := m.nextID
	m.nextID++
	m.entries[id] = &sourceEntry{fixed: t}
	return id
}

// AddEdge records dst in src.next, then propagates src's current types to
// dst. A missing src is a no-op, permitting sources and vertices to share
// the id space without every id being resolvable (spec.md §4.2).
func (m *Manager) AddEdge(src, dst VertexId) {
	entry, ok := m.entries[src]
	if !ok {
		return
	}
	if ve, ok := entry.(*vertexEntry); ok {
		ve.next = append(ve.next, dst)
	}
	// Sources don't record a next list (they have no mutable next slice to
	// dedup against re-subscription), but they still propagate on add.
	m.propagateFrom(src, dst)
}

// Subscribe registers box as listening on vertex id for receiver-type
// updates. Registering the same box twice is a no-op.
func (m *Manager) Subscribe(id VertexId, box BoxId) {
	ve, ok := m.vertexEntry(id)
	if !ok {
		return
	}
	if ve.hasBox[box] {
		return
	}
	ve.hasBox[box] = true
	ve.boxes = append(ve.boxes, box)
}

// propagateFrom gathers src's current types and forwards them to dst.
func (m *Manager) propagateFrom(src, dst VertexId) {
	types := m.currentTypes(src)
	if len(types) == 0 {
		return
	}
	m.propagateTypes(src, dst, types)
}

// propagateTypes is the recursive core of forward propagation: it adds
// `types` to target (attributed to origin), and if that added anything new,
// forwards the delta to every one of target's downstream vertices in
// insertion order (spec.md §4.2, §5 ordering guarantees).
func (m *Manager) propagateTypes(origin, target VertexId, types []typesystem.Type) {
	entry, ok := m.entries[target]
	if !ok {
		return
	}
	if _, isSource := entry.(*sourceEntry); isSource {
		// Sources have a fixed type; inbound edges are inert.
		return
	}
	ve, ok := entry.(*vertexEntry)
	if !ok {
		return
	}

	delta := m.onTypeAdded(ve, target, origin, types)
	if len(delta) == 0 {
		return
	}

	if len(ve.boxes) > 0 && m.notify != nil {
		for _, b := range ve.boxes {
			m.notify(b)
		}
	}

	for _, next := range ve.next {
		m.propagateTypes(target, next, delta)
	}
}

// onTypeAdded merges `types` into ve's slot map, returning only the types
// that were genuinely new (the delta that must be forwarded downstream).
// Re-adding a type that is already present is idempotent: it still records
// the new origin, but contributes nothing to the delta (spec.md §4.2).
func (m *Manager) onTypeAdded(ve *vertexEntry, target, origin VertexId, types []typesystem.Type) []typesystem.Type {
	var delta []typesystem.Type
	for _, t := range types {
		key := typesystem.Key(t)
		slot, exists := ve.slots[key]
		if !exists {
			slot = &typeSlot{t: t, origins: map[VertexId]bool{origin: true}}
			ve.slots[key] = slot
			ve.order = append(ve.order, t)
			delta = append(delta, t)
			continue
		}
		slot.origins[origin] = true
	}
	return delta
}

// currentTypes returns the live type set of id: a Source's sole fixed type,
// or a Vertex's type keys in insertion order.
func (m *Manager) currentTypes(id VertexId) []typesystem.Type {
	entry, ok := m.entries[id]
	if !ok {
		return nil
	}
	switch e := entry.(type) {
	case *sourceEntry:
		return []typesystem.Type{e.fixed}
	case *vertexEntry:
		return append([]typesystem.Type(nil), e.order...)
	}
	return nil
}

// Types is the read-only accessor for id's current inhabited type set, in
// insertion order.
func (m *Manager) Types(id VertexId) []typesystem.Type {
	return m.currentTypes(id)
}

// Display renders id's current type set using TypeLattice's canonical Show.
func (m *Manager) Display(id VertexId) string {
	return typesystem.Show(m.currentTypes(id))
}

// Exists reports whether id refers to a live vertex or source.
func (m *Manager) Exists(id VertexId) bool {
	_, ok := m.entries[id]
	return ok
}

func (m *Manager) vertexEntry(id VertexId) (*vertexEntry, bool) {
	entry, ok := m.entries[id]
	if !ok {
		return nil, false
	}
	ve, ok := entry.(*vertexEntry)
	return ve, ok
}
