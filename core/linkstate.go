package core

import (
	"github.com/routelab/routesim/perf"
	"github.com/routelab/routesim/state"
)

// LinkState solves routing tables by running single-source shortest path over
// a link-state database rebuilt from the topology before every solve.
type LinkState struct{}

func (l *LinkState) Name() string { return "link-state" }

// Apply implements the link-state change semantics: a change toggles the
// unordered pair, removing it if present and adding it with the given cost
// otherwise. The LinkDown sentinel always means removal; it is never
// installed as a link weight.
func (l *LinkState) Apply(t *state.Topology, c state.Change) {
	if c.Cost == state.LinkDown {
		t.RemoveLink(c.A, c.B)
		return
	}
	t.ToggleLink(c.A, c.B, c.Cost)
}

// lsdb is the link-state database: a symmetric adjacency map from node to its
// (neighbor, cost) pairs.
type lsdb map[state.NodeId]map[state.NodeId]int

// buildLSDB derives the database from the topology. Every known node gets an
// entry, isolated ones an empty one.
func buildLSDB(t *state.Topology) lsdb {
	db := make(lsdb)
	for _, id := range t.Nodes() {
		db[id] = make(map[state.NodeId]int)
	}
	for _, link := range t.Links() {
		db[link.A][link.B] = link.Cost
		db[link.B][link.A] = link.Cost
	}
	return db
}

// Solve runs Dijkstra once per source node. The recorded next hop is the first
// hop on the source's shortest path, which is what the path tracer walks.
func (l *LinkState) Solve(t *state.Topology, tables map[state.NodeId]*state.RoutingTable) {
	db := buildLSDB(t)
	nodes := t.Nodes()
	for _, src := range nodes {
		l.solveFrom(db, nodes, src, tables[src])
	}
}

// solveFrom computes src's table. Selection rule: the unvisited node with the
// minimum finite distance, ties broken toward the smallest id; the loop halts
// as soon as no such node exists. Equal-distance relaxations never replace an
// existing route.
func (l *LinkState) solveFrom(db lsdb, nodes []state.NodeId, src state.NodeId, rt *state.RoutingTable) {
	perf.DijkstraRuns.Add(1)

	dist := make(map[state.NodeId]int, len(nodes))
	firstHop := make(map[state.NodeId]state.NodeId, len(nodes))
	visited := make(map[state.NodeId]bool, len(nodes))
	for _, id := range nodes {
		dist[id] = state.INF
	}
	dist[src] = 0
	firstHop[src] = src

	for range nodes {
		u, ok := minUnvisited(nodes, dist, visited)
		if !ok {
			break
		}
		visited[u] = true
		for v, c := range db[u] {
			if visited[v] {
				continue
			}
			alt := state.AddCost(dist[u], c)
			if alt < dist[v] {
				dist[v] = alt
				if u == src {
					firstHop[v] = v
				} else {
					firstHop[v] = firstHop[u]
				}
			}
		}
	}

	for _, dest := range nodes {
		if dest == src || dist[dest] >= state.INF {
			continue
		}
		rt.Set(dest, firstHop[dest], dist[dest])
	}
}

// minUnvisited picks the unvisited node with the least finite distance,
// smallest id first. ok is false when every remaining node is unreachable.
func minUnvisited(nodes []state.NodeId, dist map[state.NodeId]int, visited map[state.NodeId]bool) (state.NodeId, bool) {
	best := state.NoNextHop
	bestDist := state.INF
	for _, id := range nodes {
		if visited[id] {
			continue
		}
		if d := dist[id]; d < bestDist {
			best = id
			bestDist = d
		}
	}
	return best, best != state.NoNextHop
}
