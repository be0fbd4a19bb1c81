package core

import (
	"fmt"
	"io"

	"github.com/routelab/routesim/state"
)

// WriteTables emits every routing table at the current stable state: routers
// ascending, one "destination nexthop cost" line per destination ascending,
// and a blank line after each router. Unreachable destinations print the
// NoNextHop id and the INF cost.
func WriteTables(w io.Writer, e *Engine) error {
	for _, id := range e.Nodes() {
		rt := e.Tables[id]
		for _, dest := range rt.Destinations() {
			entry, _ := rt.Lookup(dest)
			if _, err := fmt.Fprintf(w, "%d %d %d\n", dest, entry.NextHop, entry.Cost); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}

// WriteTraces emits one line per trace in message order, a blank line after
// each. Hops run from the source and exclude the destination; an unreachable
// message reads "cost infinite hops unreachable".
func WriteTraces(w io.Writer, traces []Trace, messages []state.Message) error {
	for i, tr := range traces {
		payload := messages[i].Payload
		if !tr.Reachable {
			if _, err := fmt.Fprintf(w, "from %d to %d cost infinite hops unreachable message %s\n\n",
				tr.From, tr.To, payload); err != nil {
				return err
			}
			continue
		}
		if _, err := fmt.Fprintf(w, "from %d to %d cost %d hops", tr.From, tr.To, tr.Cost); err != nil {
			return err
		}
		for _, hop := range tr.Hops {
			if _, err := fmt.Fprintf(w, " %d", hop); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, " message %s\n\n", payload); err != nil {
			return err
		}
	}
	return nil
}
