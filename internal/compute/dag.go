package compute

import "fmt"

// opKind classifies nodes in the event-dependency graph.
type opKind uint8

const (
	opTransfer opKind = iota
	opDispatch
)

func (k opKind) String() string {
	switch k {
	case opTransfer:
		return "transfer"
	case opDispatch:
		return "dispatch"
	default:
		return "unknown"
	}
}

// eventNode is one enqueued operation in the dependency graph. The node is
// created before its enqueue call and bound to the returned event afterwards.
type eventNode struct {
	kind  opKind
	label string
	deps  []*eventNode
	event Event
}

// eventGraph models a run's data-dependency DAG explicitly, so that the
// single mandatory ordering invariant (a wait-list may only reference events
// already returned by their producing enqueue calls) is enforced in one
// place instead of scattered across handle lists.
//
// Nodes can only depend on previously added nodes, so the graph is acyclic
// by construction.
type eventGraph struct {
	nodes []*eventNode
}

func (g *eventGraph) addTransfer(label string, deps ...*eventNode) *eventNode {
	return g.add(opTransfer, label, deps)
}

func (g *eventGraph) addDispatch(label string, deps ...*eventNode) *eventNode {
	return g.add(opDispatch, label, deps)
}

func (g *eventGraph) add(kind opKind, label string, deps []*eventNode) *eventNode {
	for _, dep := range deps {
		if !g.contains(dep) {
			panic(fmt.Sprintf("compute: %s node %q depends on a node outside the graph", kind, label))
		}
	}
	n := &eventNode{kind: kind, label: label, deps: deps}
	g.nodes = append(g.nodes, n)
	return n
}

func (g *eventGraph) contains(n *eventNode) bool {
	for _, candidate := range g.nodes {
		if candidate == n {
			return true
		}
	}
	return false
}

// waitList assembles the events of n's dependencies for the enqueue call.
// Every dependency must already be bound; an unbound dependency means the
// caller tried to enqueue an operation before its producers.
func (n *eventNode) waitList() ([]Event, error) {
	if len(n.deps) == 0 {
		return nil, nil
	}
	events := make([]Event, len(n.deps))
	for i, dep := range n.deps {
		if dep.event == nil {
			return nil, fmt.Errorf("%s node %q waits on %q which has no bound event yet", n.kind, n.label, dep.label)
		}
		events[i] = dep.event
	}
	return events, nil
}

// bind attaches the event returned by n's enqueue call.
func (n *eventNode) bind(ev Event) error {
	if n.event != nil {
		return fmt.Errorf("%s node %q already bound", n.kind, n.label)
	}
	if ev == nil {
		return fmt.Errorf("%s node %q bound to nil event", n.kind, n.label)
	}
	for _, dep := range n.deps {
		if dep.event == nil {
			return fmt.Errorf("%s node %q bound before its dependency %q", n.kind, n.label, dep.label)
		}
	}
	n.event = ev
	return nil
}

// closeEvents releases all bound events, last enqueued first.
func (g *eventGraph) closeEvents() {
	for i := len(g.nodes) - 1; i >= 0; i-- {
		if g.nodes[i].event != nil {
			_ = g.nodes[i].event.Close()
		}
	}
}
