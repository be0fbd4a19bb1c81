package state

import "slices"

// Topology holds the current set of links and the set of every node that has
// ever appeared. The node set only grows; removing a link never removes its
// endpoints. Links keep insertion order so iteration is deterministic.
type Topology struct {
	links []Link
	nodes map[NodeId]struct{}
}

func NewTopology() *Topology {
	return &Topology{
		nodes: make(map[NodeId]struct{}),
	}
}

// EnsureNode registers a node without attaching any link to it.
func (t *Topology) EnsureNode(id NodeId) {
	t.nodes[id] = struct{}{}
}

// HasNode reports whether id has ever appeared in the topology.
func (t *Topology) HasNode(id NodeId) bool {
	_, ok := t.nodes[id]
	return ok
}

// AddOrUpdateLink inserts a link, or overwrites the cost of the existing link
// matching the unordered pair (a, b).
func (t *Topology) AddOrUpdateLink(a, b NodeId, cost int) {
	t.EnsureNode(a)
	t.EnsureNode(b)
	for i := range t.links {
		if t.links[i].Matches(a, b) {
			t.links[i].Cost = cost
			return
		}
	}
	t.links = append(t.links, Link{A: a, B: b, Cost: cost})
}

// RemoveLink deletes any link matching the unordered pair (a, b). Removing an
// absent link is a no-op. The endpoints stay in the node set.
func (t *Topology) RemoveLink(a, b NodeId) {
	t.EnsureNode(a)
	t.EnsureNode(b)
	t.links = slices.DeleteFunc(t.links, func(l Link) bool {
		return l.Matches(a, b)
	})
}

// ToggleLink implements the link-state change semantics: remove the link if
// the unordered pair already exists, otherwise add it with the given cost.
func (t *Topology) ToggleLink(a, b NodeId, cost int) {
	if t.HasLink(a, b) {
		t.RemoveLink(a, b)
		return
	}
	t.AddOrUpdateLink(a, b, cost)
}

// HasLink reports whether a link matching the unordered pair exists.
func (t *Topology) HasLink(a, b NodeId) bool {
	return slices.ContainsFunc(t.links, func(l Link) bool {
		return l.Matches(a, b)
	})
}

// Neighbors returns the far end and cost of every link touching id, in link
// insertion order.
func (t *Topology) Neighbors(id NodeId) []Neighbor {
	var out []Neighbor
	for _, l := range t.links {
		switch id {
		case l.A:
			out = append(out, Neighbor{Id: l.B, Cost: l.Cost})
		case l.B:
			out = append(out, Neighbor{Id: l.A, Cost: l.Cost})
		}
	}
	return out
}

// Links returns a copy of the current link list in insertion order.
func (t *Topology) Links() []Link {
	return slices.Clone(t.links)
}

// Nodes returns every known node in ascending order.
func (t *Topology) Nodes() []NodeId {
	out := make([]NodeId, 0, len(t.nodes))
	for id := range t.nodes {
		out = append(out, id)
	}
	slices.Sort(out)
	return out
}
