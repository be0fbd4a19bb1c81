package core

import (
	"cmp"
	"slices"

	"github.com/routelab/routesim/perf"
	"github.com/routelab/routesim/state"
)

// DistanceVector solves routing tables by Bellman-Ford style relaxation using
// only direct-neighbor information, with split horizon and a smallest-id
// tie-break.
type DistanceVector struct{}

func (d *DistanceVector) Name() string { return "distance-vector" }

// Apply implements the distance-vector change semantics: the LinkDown sentinel
// removes the unordered pair, any other cost adds or re-costs it.
func (d *DistanceVector) Apply(t *state.Topology, c state.Change) {
	if c.Cost == state.LinkDown {
		t.RemoveLink(c.A, c.B)
		return
	}
	t.AddOrUpdateLink(c.A, c.B, c.Cost)
}

// Solve installs direct routes and relaxes all tables until a full pass makes
// no change. Pass order is routers ascending, destinations ascending,
// neighbors ascending, so intermediate states are reproducible; the fixed
// point itself does not depend on the order.
func (d *DistanceVector) Solve(t *state.Topology, tables map[state.NodeId]*state.RoutingTable) {
	nodes := t.Nodes()

	for _, l := range t.Links() {
		installDirect(tables[l.A], l.B, l.Cost)
		installDirect(tables[l.B], l.A, l.Cost)
	}

	for {
		perf.DvPasses.Add(1)
		if !d.relaxPass(t, nodes, tables) {
			return
		}
	}
}

// relaxPass runs one full relaxation sweep and reports whether any table
// changed.
func (d *DistanceVector) relaxPass(t *state.Topology, nodes []state.NodeId, tables map[state.NodeId]*state.RoutingTable) bool {
	changed := false
	for _, r := range nodes {
		rt := tables[r]
		neighbors := sortedNeighbors(t, r)
		for _, dest := range nodes {
			if dest == r {
				continue
			}
			for _, n := range neighbors {
				if n.Id == dest {
					continue
				}
				// Split horizon: never learn a route to dest from a neighbor
				// that itself forwards to dest through us.
				nEntry, _ := tables[n.Id].Lookup(dest)
				if nEntry.NextHop == r {
					continue
				}

				cur, _ := rt.Lookup(dest)
				cand := state.AddCost(n.Cost, nEntry.Cost)
				if cand < cur.Cost || (cand == cur.Cost && cur.Reachable() && n.Id < cur.NextHop) {
					rt.Set(dest, n.Id, cand)
					perf.DvRelaxations.Add(1)
					changed = true
				}
			}
		}
	}
	return changed
}

// installDirect records the one-hop route to a neighbor unless the table
// already holds something at least as good, so that solving an
// already-converged table changes nothing.
func installDirect(rt *state.RoutingTable, neighbor state.NodeId, cost int) {
	cur, _ := rt.Lookup(neighbor)
	if cost < cur.Cost || (cost == cur.Cost && neighbor < cur.NextHop) {
		rt.Set(neighbor, neighbor, cost)
	}
}

// sortedNeighbors returns the neighbors of id in ascending id order for the
// deterministic sweep; the topology itself only guarantees insertion order.
func sortedNeighbors(t *state.Topology, id state.NodeId) []state.Neighbor {
	neighbors := t.Neighbors(id)
	slices.SortFunc(neighbors, func(a, b state.Neighbor) int {
		return cmp.Compare(a.Id, b.Id)
	})
	return neighbors
}
