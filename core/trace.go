package core

import (
	"fmt"

	"github.com/routelab/routesim/perf"
	"github.com/routelab/routesim/state"
)

// Trace is the resolved forwarding path of one message at one stable state.
// Hops starts at the source and excludes the destination; an unreachable
// destination has zero hops and Reachable false.
type Trace struct {
	From      state.NodeId
	To        state.NodeId
	Cost      int
	Hops      []state.NodeId
	Reachable bool
}

// TracePath walks the next-hop chain from src toward dst through the current
// tables. A node missing from the tables is ErrNodeNotFound. A node seen twice
// before reaching dst means a table violates the no-self-loop invariant, and
// is surfaced as ErrRoutingLoop rather than walked forever.
func (e *Engine) TracePath(src, dst state.NodeId) (Trace, error) {
	srcTable, ok := e.Tables[src]
	if !ok {
		return Trace{}, fmt.Errorf("trace source %d: %w", src, state.ErrNodeNotFound)
	}
	entry, known := srcTable.Lookup(dst)
	if !known {
		return Trace{}, fmt.Errorf("trace destination %d: %w", dst, state.ErrNodeNotFound)
	}

	tr := Trace{From: src, To: dst, Cost: entry.Cost}
	if !entry.Reachable() {
		return tr, nil
	}
	tr.Reachable = true

	seen := map[state.NodeId]bool{}
	cur := src
	for cur != dst {
		if seen[cur] {
			return Trace{}, fmt.Errorf("path %d -> %d revisits node %d: %w", src, dst, cur, state.ErrRoutingLoop)
		}
		seen[cur] = true
		tr.Hops = append(tr.Hops, cur)
		perf.TracedHops.Add(1)

		next, ok := e.Tables[cur]
		if !ok {
			return Trace{}, fmt.Errorf("trace via %d: %w", cur, state.ErrNodeNotFound)
		}
		hop, _ := next.Lookup(dst)
		if !hop.Reachable() {
			return Trace{}, fmt.Errorf("path %d -> %d breaks at %d: next hop unknown", src, dst, cur)
		}
		cur = hop.NextHop
	}
	return tr, nil
}

// TraceAll resolves every message, in order, against the current tables.
func (e *Engine) TraceAll(messages []state.Message) ([]Trace, error) {
	out := make([]Trace, 0, len(messages))
	for _, m := range messages {
		tr, err := e.TracePath(m.From, m.To)
		if err != nil {
			return nil, fmt.Errorf("message %s: %w", m, err)
		}
		out = append(out, tr)
	}
	return out, nil
}
