package core

import (
	"github.com/routelab/routesim/state"
)

// Solver computes routing tables for every node from the current topology, and
// carries its family's change semantics. Implementations must leave the
// tables at a fixed point: re-running Solve on its own output changes nothing.
type Solver interface {
	Name() string

	// Apply mutates the topology per the solver family's reading of a change
	// record. The change's endpoints are already registered in the node set.
	Apply(t *state.Topology, c state.Change)

	// Solve populates tables, one per known node, to a fixed point. Tables are
	// handed in freshly initialized (self route installed, everything else
	// unreachable).
	Solve(t *state.Topology, tables map[state.NodeId]*state.RoutingTable)
}

// NewSolver returns the solver registered under name ("dv" or "lsr").
func NewSolver(name string) (Solver, bool) {
	switch name {
	case "dv", "distance-vector":
		return &DistanceVector{}, true
	case "lsr", "link-state":
		return &LinkState{}, true
	}
	return nil, false
}
