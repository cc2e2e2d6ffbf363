package state

import (
	"maps"
)

// Topology is an undirected weighted graph of the network. Links are kept
// symmetric: cost(a,b) exists iff cost(b,a) exists with the same value.
// A node stays present once seen, even after its last link is removed, so
// every destination seen initially remains reportable (as unreachable).
type Topology struct {
	links map[NodeId]map[NodeId]Cost
}

func NewTopology() *Topology {
	return &Topology{links: make(map[NodeId]map[NodeId]Cost)}
}

// TopologyFromLinks builds a topology from an initial link set.
func TopologyFromLinks(links []Link) *Topology {
	t := NewTopology()
	for _, l := range links {
		t.AddLink(l.A, l.B, l.Cost)
	}
	return t
}

func (t *Topology) ensure(n NodeId) map[NodeId]Cost {
	m, ok := t.links[n]
	if !ok {
		m = make(map[NodeId]Cost)
		t.links[n] = m
	}
	return m
}

// AddLink sets or overwrites the link cost in both directions, creating
// either endpoint if it was previously unseen.
func (t *Topology) AddLink(a, b NodeId, cost Cost) {
	t.ensure(a)[b] = cost
	t.ensure(b)[a] = cost
}

// RemoveLink deletes the link in both directions. Removing an absent link
// is a no-op, and emptied nodes are kept.
func (t *Topology) RemoveLink(a, b NodeId) {
	if m, ok := t.links[a]; ok {
		delete(m, b)
	}
	if m, ok := t.links[b]; ok {
		delete(m, a)
	}
}

func (t *Topology) Cost(a, b NodeId) (Cost, bool) {
	c, ok := t.links[a][b]
	return c, ok
}

func (t *Topology) HasNode(n NodeId) bool {
	_, ok := t.links[n]
	return ok
}

func (t *Topology) Len() int {
	return len(t.links)
}

// Nodes returns every node id in sorted order.
func (t *Topology) Nodes() []NodeId {
	nodes := make([]NodeId, 0, len(t.links))
	for n := range t.links {
		nodes = append(nodes, n)
	}
	SortNodeIds(nodes)
	return nodes
}

// Neighbors returns the neighbours of n in sorted order.
func (t *Topology) Neighbors(n NodeId) []NodeId {
	neighs := make([]NodeId, 0, len(t.links[n]))
	for m := range t.links[n] {
		neighs = append(neighs, m)
	}
	SortNodeIds(neighs)
	return neighs
}

func (t *Topology) Clone() *Topology {
	c := NewTopology()
	for n, m := range t.links {
		c.links[n] = maps.Clone(m)
	}
	return c
}

func (t *Topology) Equal(other *Topology) bool {
	if len(t.links) != len(other.links) {
		return false
	}
	for n, m := range t.links {
		om, ok := other.links[n]
		if !ok || !maps.Equal(m, om) {
			return false
		}
	}
	return true
}
