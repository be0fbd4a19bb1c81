package core

import (
	"io"
	"log/slog"
	"testing"

	"github.com/routelab/routesim/state"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestEngine(t *testing.T, algorithm string, links ...state.Link) *Engine {
	t.Helper()
	solver, ok := NewSolver(algorithm)
	require.True(t, ok, "unknown algorithm %q", algorithm)
	return NewEngine(solver, links, nil, discardLogger())
}

// triangleLinks is the canonical three-node topology: the 1-3 direct link is
// more expensive than the 1-2-3 detour.
//
//	   1
//	1 / \ 5
//	 2   |
//	1 \ /
//	   3
func triangleLinks() []state.Link {
	return []state.Link{{A: 1, B: 2, Cost: 1}, {A: 2, B: 3, Cost: 1}, {A: 1, B: 3, Cost: 5}}
}

// diamondLinks gives node 1 two equal-cost routes to node 4, via 2 and via 3.
func diamondLinks() []state.Link {
	return []state.Link{{A: 1, B: 2, Cost: 1}, {A: 1, B: 3, Cost: 1}, {A: 2, B: 4, Cost: 1}, {A: 3, B: 4, Cost: 1}}
}

func entry(t *testing.T, e *Engine, owner, dest state.NodeId) state.RouteEntry {
	t.Helper()
	rt, ok := e.Tables[owner]
	require.True(t, ok, "no table for node %d", owner)
	en, ok := rt.Lookup(dest)
	require.True(t, ok, "node %d has no entry for %d", owner, dest)
	return en
}

// requireInvariants checks the properties every solved state must satisfy:
// the self route, table symmetry over direct links, and no table worse than a
// direct link.
func requireInvariants(t *testing.T, e *Engine) {
	t.Helper()
	for _, id := range e.Nodes() {
		self := entry(t, e, id, id)
		require.Equal(t, state.RouteEntry{NextHop: id, Cost: 0}, self, "self route of %d", id)
	}
	for _, l := range e.Topology.Links() {
		require.LessOrEqual(t, entry(t, e, l.A, l.B).Cost, l.Cost, "%d -> %d worse than direct", l.A, l.B)
		require.LessOrEqual(t, entry(t, e, l.B, l.A).Cost, l.Cost, "%d -> %d worse than direct", l.B, l.A)
	}
}
