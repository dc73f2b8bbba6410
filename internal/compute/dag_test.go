package compute

import (
	"strings"
	"testing"
)

type stubEvent struct{}

func (e *stubEvent) Wait() error { return nil }

func (e *stubEvent) ProfilingStart() (uint64, error) { return 0, ErrProfilingUnavailable }

func (e *stubEvent) ProfilingEnd() (uint64, error) { return 0, ErrProfilingUnavailable }

func (e *stubEvent) Close() error { return nil }

// TestEventGraph_SaxpyShape builds the run's DAG and checks wait-list
// assembly in the legal enqueue order.
func TestEventGraph_SaxpyShape(t *testing.T) {
	var g eventGraph
	writeX := g.addTransfer("write x")
	writeY := g.addTransfer("write y")
	dispatch := g.addDispatch("saxpy_float", writeX, writeY)
	read := g.addTransfer("read z", dispatch)

	// The writes have no dependencies.
	for _, n := range []*eventNode{writeX, writeY} {
		wait, err := n.waitList()
		if err != nil {
			t.Fatalf("waitList(%s): %v", n.label, err)
		}
		if len(wait) != 0 {
			t.Errorf("waitList(%s) = %d events, want 0", n.label, len(wait))
		}
	}

	evX, evY, evK := &stubEvent{}, &stubEvent{}, &stubEvent{}
	if err := writeX.bind(evX); err != nil {
		t.Fatalf("bind write x: %v", err)
	}
	if err := writeY.bind(evY); err != nil {
		t.Fatalf("bind write y: %v", err)
	}

	wait, err := dispatch.waitList()
	if err != nil {
		t.Fatalf("waitList(dispatch): %v", err)
	}
	if len(wait) != 2 || wait[0] != Event(evX) || wait[1] != Event(evY) {
		t.Errorf("dispatch wait-list does not carry both write events")
	}

	if err := dispatch.bind(evK); err != nil {
		t.Fatalf("bind dispatch: %v", err)
	}

	wait, err = read.waitList()
	if err != nil {
		t.Fatalf("waitList(read): %v", err)
	}
	if len(wait) != 1 || wait[0] != Event(evK) {
		t.Errorf("read wait-list should be exactly the kernel event")
	}
}

// TestEventGraph_UnboundDependency confirms that assembling a wait-list or
// binding out of dependency order is rejected.
func TestEventGraph_UnboundDependency(t *testing.T) {
	var g eventGraph
	writeX := g.addTransfer("write x")
	writeY := g.addTransfer("write y")
	dispatch := g.addDispatch("saxpy_float", writeX, writeY)

	if _, err := dispatch.waitList(); err == nil {
		t.Errorf("waitList succeeded with unbound dependencies")
	}

	if err := writeX.bind(&stubEvent{}); err != nil {
		t.Fatalf("bind write x: %v", err)
	}

	// write y still unbound
	if _, err := dispatch.waitList(); err == nil {
		t.Errorf("waitList succeeded with one unbound dependency")
	}
	if err := dispatch.bind(&stubEvent{}); err == nil {
		t.Errorf("bind succeeded before dependency was bound")
	} else if !strings.Contains(err.Error(), "write y") {
		t.Errorf("bind error %q does not name the unbound dependency", err)
	}
}

func TestEventGraph_DoubleBind(t *testing.T) {
	var g eventGraph
	n := g.addTransfer("write x")

	if err := n.bind(&stubEvent{}); err != nil {
		t.Fatalf("first bind: %v", err)
	}
	if err := n.bind(&stubEvent{}); err == nil {
		t.Errorf("second bind succeeded")
	}
	if err := g.addTransfer("again").bind(nil); err == nil {
		t.Errorf("nil bind succeeded")
	}
}

func TestEventGraph_ForeignDependencyPanics(t *testing.T) {
	var g, other eventGraph
	foreign := other.addTransfer("foreign")

	defer func() {
		if recover() == nil {
			t.Errorf("adding a node with an out-of-graph dependency did not panic")
		}
	}()
	g.addDispatch("saxpy_float", foreign)
}
