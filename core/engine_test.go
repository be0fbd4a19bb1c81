package core

import (
	"testing"

	"github.com/routelab/routesim/state"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEngineIsolatedMessageNodes(t *testing.T) {
	solver, _ := NewSolver("dv")
	e := NewEngine(solver, triangleLinks(), []state.NodeId{1, 9}, discardLogger())

	// 9 appears only in a message; it is registered isolated, with INF
	// entries everywhere
	assert.Equal(t, []state.NodeId{1, 2, 3, 9}, e.Nodes())
	assert.Equal(t, state.RouteEntry{NextHop: state.NoNextHop, Cost: state.INF}, entry(t, e, 1, 9))
	assert.Equal(t, state.RouteEntry{NextHop: 9, Cost: 0}, entry(t, e, 9, 9))
}

func TestEngineChangeSequence(t *testing.T) {
	e := newTestEngine(t, "dv", triangleLinks()...)
	changes := []state.Change{
		{A: 2, B: 3, Cost: state.LinkDown},
		{A: 1, B: 3, Cost: state.LinkDown},
		{A: 3, B: 4, Cost: 1},
	}

	costs := []int{}
	for _, c := range changes {
		require.NoError(t, e.ApplyChange(c))
		requireInvariants(t, e)
		costs = append(costs, entry(t, e, 1, 3).Cost)
	}
	// 1->3: direct link after the detour is cut, unreachable after both links
	// are cut, still unreachable when 3 gains an unrelated neighbor
	assert.Equal(t, []int{5, state.INF, state.INF}, costs)
}

func TestEngineSymmetricCosts(t *testing.T) {
	for _, algorithm := range []string{"dv", "lsr"} {
		t.Run(algorithm, func(t *testing.T) {
			e := newTestEngine(t, algorithm, diamondLinks()...)
			for _, a := range e.Nodes() {
				for _, b := range e.Nodes() {
					assert.Equal(t, entry(t, e, a, b).Cost, entry(t, e, b, a).Cost,
						"asymmetric cost between %d and %d", a, b)
				}
			}
		})
	}
}

func TestSolverRegistry(t *testing.T) {
	for name, want := range map[string]string{
		"dv":              "distance-vector",
		"distance-vector": "distance-vector",
		"lsr":             "link-state",
		"link-state":      "link-state",
	} {
		s, ok := NewSolver(name)
		require.True(t, ok, name)
		assert.Equal(t, want, s.Name())
	}
	_, ok := NewSolver("ospf")
	assert.False(t, ok)
}
