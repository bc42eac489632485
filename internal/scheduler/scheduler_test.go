package scheduler

import (
	"testing"

	"github.com/methodray/methodray/internal/graph"
)

type countingBox struct {
	fired  *int
	onFire func()
}

func (b *countingBox) Fire() {
	*b.fired++
	if b.onFire != nil {
		b.onFire()
	}
}

func TestAddRunDedups(t *testing.T) {
	m := New()
	var fired int
	id := m.Register(&countingBox{fired: &fired})

	m.AddRun(id)
	m.AddRun(id)
	m.AddRun(id)

	if m.QueueLen() != 1 {
		t.Fatalf("expected exactly one pending slot for a repeatedly re-enqueued box, got %d", m.QueueLen())
	}

	m.Drain()
	if fired != 1 {
		t.Fatalf("expected the box to fire exactly once, fired %d times", fired)
	}
	if m.QueueLen() != 0 {
		t.Fatal("expected an empty queue at quiescence")
	}
}

func TestFIFOOrder(t *testing.T) {
	m := New()
	var order []int
	var a, b, c graph.BoxId
	a = m.Register(&countingBox{fired: new(int), onFire: func() { order = append(order, int(a)) }})
	b = m.Register(&countingBox{fired: new(int), onFire: func() { order = append(order, int(b)) }})
	c = m.Register(&countingBox{fired: new(int), onFire: func() { order = append(order, int(c)) }})

	m.AddRun(b)
	m.AddRun(a)
	m.AddRun(c)
	m.Drain()

	if len(order) != 3 || order[0] != int(b) || order[1] != int(a) || order[2] != int(c) {
		t.Fatalf("expected FIFO firing order [b a c], got %v", order)
	}
}

func TestBoxCanReenqueueDownstreamBoxDuringFiring(t *testing.T) {
	m := New()
	var secondFired int
	var second graph.BoxId
	second = m.Register(&countingBox{fired: &secondFired})

	var firstFired int
	first := m.Register(&countingBox{fired: &firstFired, onFire: func() {
		m.AddRun(second)
	}})

	m.AddRun(first)
	m.Drain()

	if firstFired != 1 || secondFired != 1 {
		t.Fatalf("expected both boxes to fire once, got first=%d second=%d", firstFired, secondFired)
	}
}
