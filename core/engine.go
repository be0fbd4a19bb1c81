package core

import (
	"fmt"
	"log/slog"

	"github.com/routelab/routesim/perf"
	"github.com/routelab/routesim/state"
)

// Engine owns the topology and the per-node routing tables and drives them
// through the change sequence. It is Stable whenever tables are consistent
// with the topology, and Applying only inside ApplyChange; changes are applied
// strictly one at a time, never batched or reordered.
type Engine struct {
	Topology *state.Topology
	Tables   map[state.NodeId]*state.RoutingTable
	Solver   Solver
	Log      *slog.Logger

	applying bool
}

// NewEngine builds an engine over the initial links and solves to the first
// stable state. extraNodes registers ids that appear only in messages, so that
// every table carries an (unreachable) entry for them from the start.
func NewEngine(solver Solver, links []state.Link, extraNodes []state.NodeId, log *slog.Logger) *Engine {
	t := state.NewTopology()
	for _, l := range links {
		t.AddOrUpdateLink(l.A, l.B, l.Cost)
	}
	for _, id := range extraNodes {
		if !t.HasNode(id) {
			log.Warn("node referenced outside topology, treating as isolated", "node", int(id))
			t.EnsureNode(id)
		}
	}
	e := &Engine{
		Topology: t,
		Solver:   solver,
		Log:      log,
	}
	e.resolve()
	return e
}

// ApplyChange integrates one change record: register its endpoints, mutate the
// topology per the solver family, then rebuild every table to a fixed point.
func (e *Engine) ApplyChange(c state.Change) error {
	if e.applying {
		return fmt.Errorf("change %d-%d applied while another change is in flight", c.A, c.B)
	}
	e.applying = true
	defer func() { e.applying = false }()

	e.Topology.EnsureNode(c.A)
	e.Topology.EnsureNode(c.B)
	e.Solver.Apply(e.Topology, c)
	perf.ChangesApplied.Add(1)
	e.Log.Debug("applied change", "a", int(c.A), "b", int(c.B), "cost", c.Cost)
	e.resolve()
	return nil
}

// resolve discards every table, reinitializes one per known node and runs the
// solver to a fixed point.
func (e *Engine) resolve() {
	nodes := e.Topology.Nodes()
	e.Tables = make(map[state.NodeId]*state.RoutingTable, len(nodes))
	for _, id := range nodes {
		e.Tables[id] = state.NewRoutingTable(id, nodes)
	}
	e.Solver.Solve(e.Topology, e.Tables)
	e.Log.Debug("tables solved", "solver", e.Solver.Name(), "nodes", len(nodes))
}

// Nodes returns every node the engine knows about, ascending.
func (e *Engine) Nodes() []state.NodeId {
	return e.Topology.Nodes()
}
