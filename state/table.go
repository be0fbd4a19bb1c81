package state

import "slices"

// RouteEntry is one routing table row: the neighbor to forward through and the
// total path cost.
type RouteEntry struct {
	NextHop NodeId
	Cost    int
}

// Reachable reports whether the entry describes a usable route.
func (e RouteEntry) Reachable() bool {
	return e.Cost < INF
}

// RoutingTable maps every known destination to its route entry, for one owning
// node. Invariants: the owner's own entry is (owner, 0); a destination with no
// route is (NoNextHop, INF); a reachable destination's next hop has a strictly
// smaller cost to that destination than the owner does.
type RoutingTable struct {
	Owner   NodeId
	entries map[NodeId]RouteEntry
}

// NewRoutingTable builds a table for owner covering nodes, with the self route
// installed and everything else unreachable.
func NewRoutingTable(owner NodeId, nodes []NodeId) *RoutingTable {
	rt := &RoutingTable{
		Owner:   owner,
		entries: make(map[NodeId]RouteEntry, len(nodes)),
	}
	for _, id := range nodes {
		if id == owner {
			rt.entries[id] = RouteEntry{NextHop: owner, Cost: 0}
		} else {
			rt.entries[id] = RouteEntry{NextHop: NoNextHop, Cost: INF}
		}
	}
	return rt
}

// Set upserts the entry for dest.
func (rt *RoutingTable) Set(dest, nextHop NodeId, cost int) {
	rt.entries[dest] = RouteEntry{NextHop: nextHop, Cost: cost}
}

// Lookup returns the entry for dest. Destinations outside the known node set
// report (NoNextHop, INF), the same as known-but-unreachable ones, and
// ok = false so callers can tell the two apart.
func (rt *RoutingTable) Lookup(dest NodeId) (RouteEntry, bool) {
	e, ok := rt.entries[dest]
	if !ok {
		return RouteEntry{NextHop: NoNextHop, Cost: INF}, false
	}
	return e, true
}

// Destinations returns every destination in ascending order.
func (rt *RoutingTable) Destinations() []NodeId {
	out := make([]NodeId, 0, len(rt.entries))
	for id := range rt.entries {
		out = append(out, id)
	}
	slices.Sort(out)
	return out
}

// Len returns the number of destinations in the table.
func (rt *RoutingTable) Len() int {
	return len(rt.entries)
}
