package state

import (
	"errors"
	"fmt"
)

// NodeId identifies a simulated router. Integer order is the total order used
// for every tie-break and for all output ordering.
type NodeId int

// Link is an undirected weighted edge. A link between A and B is the same link
// as one between B and A.
type Link struct {
	A    NodeId `yaml:"a"`
	B    NodeId `yaml:"b"`
	Cost int    `yaml:"cost"`
}

// Matches reports whether the link connects the unordered pair (a, b).
func (l Link) Matches(a, b NodeId) bool {
	return (l.A == a && l.B == b) || (l.A == b && l.B == a)
}

// Change reuses the link shape; the cost field's meaning depends on the solver
// family (LinkDown removes under distance-vector, any cost toggles under
// link-state).
type Change = Link

// Message is an application message to be traced against the routing tables at
// every stable state, in file order.
type Message struct {
	From    NodeId `yaml:"from"`
	To      NodeId `yaml:"to"`
	Payload string `yaml:"payload"`
}

// Neighbor is one end of a link as seen from the other.
type Neighbor struct {
	Id   NodeId
	Cost int
}

var (
	ErrNodeNotFound = errors.New("node not found")
	ErrRoutingLoop  = errors.New("routing loop detected")
)

func (m Message) String() string {
	return fmt.Sprintf("%d -> %d (%q)", m.From, m.To, m.Payload)
}
