package core

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/routelab/routesim/state"
	"github.com/stretchr/testify/require"
)

func TestRunDistanceVectorPipeline(t *testing.T) {
	solver, _ := NewSolver("dv")
	var out strings.Builder

	err := Run(RunConfig{
		Solver:   solver,
		Links:    triangleLinks(),
		Messages: []state.Message{{From: 1, To: 3, Payload: "here is a message"}},
		Changes:  []state.Change{{A: 2, B: 3, Cost: state.LinkDown}},
		Out:      &out,
		Log:      discardLogger(),
	})
	require.NoError(t, err)

	want := `1 1 0
2 2 1
3 2 2

1 1 1
2 2 0
3 3 1

1 2 2
2 2 1
3 3 0

from 1 to 3 cost 2 hops 1 2 message here is a message

1 1 0
2 2 1
3 3 5

1 1 1
2 2 0
3 1 6

1 1 5
2 1 6
3 3 0

from 1 to 3 cost 5 hops 1 message here is a message

`
	if diff := cmp.Diff(want, out.String()); diff != "" {
		t.Errorf("pipeline output mismatch (-want +got):\n%s", diff)
	}
}

func TestRunUnreachableMessage(t *testing.T) {
	solver, _ := NewSolver("lsr")
	var out strings.Builder

	err := Run(RunConfig{
		Solver:   solver,
		Links:    []state.Link{{A: 1, B: 2, Cost: 1}},
		Messages: []state.Message{{From: 1, To: 9, Payload: "hello"}},
		Out:      &out,
		Log:      discardLogger(),
	})
	require.NoError(t, err)

	require.Contains(t, out.String(), "from 1 to 9 cost infinite hops unreachable message hello")
	// node 9 was registered isolated, so every table carries a row for it
	require.Contains(t, out.String(), "9 -1 9999")
}
