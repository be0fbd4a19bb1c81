package state

const (
	// INF marks a destination as unreachable. It is strictly greater than any
	// realizable path cost, and all cost arithmetic saturates at it.
	INF = 9999

	// LinkDown is the sentinel cost carried by a change record that removes a
	// link. It is never a traversable weight.
	LinkDown = -999
)

// NoNextHop is the next hop recorded for destinations with no known route.
const NoNextHop NodeId = -1

// AddCost sums two path costs, saturating at INF.
func AddCost(a, b int) int {
	if a >= INF || b >= INF {
		return INF
	}
	return min(a+b, INF)
}
