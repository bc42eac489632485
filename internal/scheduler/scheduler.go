// Package scheduler implements BoxManager: registration of reactive cells
// and a deduplicated FIFO run queue that drives them to quiescence
// (spec.md §4.6).
package scheduler

import "github.com/methodray/methodray/internal/graph"

// Box is anything that can be fired by the scheduler. MethodCallBox is the
// only implementation spec.md names, but the scheduler itself doesn't know
// that — it only knows how to hold boxes and run them in FIFO order.
type Box interface {
	Fire()
}

// Manager is the BoxManager: a handle table of boxes plus a deduplicated
// FIFO run queue. FIFO ordering plus dedup guarantees each box has at most
// one pending slot regardless of how many upstream updates arrive between
// firings (spec.md §4.6, invariant 6).
type Manager struct {
	boxes    map[graph.BoxId]Box
	queue    []graph.BoxId
	queued   map[graph.BoxId]bool
	nextID   graph.BoxId
}

// New creates an empty BoxManager.
func New() *Manager {
	return &Manager{
		boxes:  make(map[graph.BoxId]Box),
		queued: make(map[graph.BoxId]bool),
	}
}

// Register allocates a BoxId for b and stores it. The caller is responsible
// for subscribing b's receiver vertex and enqueuing the initial run, per
// spec.md §4.7's "immediately enqueued" subscription rule.
func (m *Manager) Register(b Box) graph.BoxId {
	id := m.nextID
	m.nextID++
	m.boxes[id] = b
	return id
}

// AddRun appends id to the FIFO only if it isn't already pending.
func (m *Manager) AddRun(id graph.BoxId) {
	if m.queued[id] {
		return
	}
	m.queued[id] = true
	m.queue = append(m.queue, id)
}

// PopRun dequeues the next pending BoxId, or reports false if the queue is
// empty.
func (m *Manager) PopRun() (graph.BoxId, bool) {
	if len(m.queue) == 0 {
		return 0, false
	}
	id := m.queue[0]
	m.queue = m.queue[1:]
	delete(m.queued, id)
	return id, true
}

// Execute fires the box registered under id. The box is temporarily
// detached from the handle table for the duration of the call so that its
// Fire method may mutate the graph — which may in turn touch other boxes —
// without aliasing its own table slot; it is reattached unconditionally
// afterward (spec.md §4.6, §5).
func (m *Manager) Execute(id graph.BoxId) {
	b, ok := m.boxes[id]
	if !ok {
		return
	}
	delete(m.boxes, id)
	defer func() { m.boxes[id] = b }()
	b.Fire()
}

// Drain pops and executes boxes until the run queue is empty (quiescence).
func (m *Manager) Drain() {
	for {
		id, ok := m.PopRun()
		if !ok {
			return
		}
		m.Execute(id)
	}
}

// QueueLen reports how many boxes are currently pending; used by tests to
// assert quiescence (spec.md §8, invariant 5).
func (m *Manager) QueueLen() int {
	return len(m.queue)
}
