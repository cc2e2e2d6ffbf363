package state

import (
	"maps"
	"slices"
)

// RoutingEntry is the selected route from one source to one destination.
// Path runs from the source up to, but excluding, the destination, so the
// forwarding simulator never has to re-derive it by chasing next hops.
type RoutingEntry struct {
	Cost    Cost
	NextHop NodeId
	Path    []NodeId
}

// RoutingTable maps source -> destination -> selected route. A missing
// destination entry means the destination is unreachable from that source;
// absence is a defined outcome, not an error. Every node n present in the
// topology has the self entry table[n][n] = {0, n, nil}.
//
// Tables are always rebuilt from scratch by an engine, never patched, so
// no stale entry can survive a topology change.
type RoutingTable map[NodeId]map[NodeId]RoutingEntry

func NewRoutingTable() RoutingTable {
	return make(RoutingTable)
}

func (t RoutingTable) Insert(src, dst NodeId, e RoutingEntry) {
	row, ok := t[src]
	if !ok {
		row = make(map[NodeId]RoutingEntry)
		t[src] = row
	}
	row[dst] = e
}

// Lookup returns the selected route from src to dst. ok is false when no
// route exists, including when src itself is unknown.
func (t RoutingTable) Lookup(src, dst NodeId) (RoutingEntry, bool) {
	e, ok := t[src][dst]
	return e, ok
}

// Nodes returns every source node id in sorted order.
func (t RoutingTable) Nodes() []NodeId {
	nodes := make([]NodeId, 0, len(t))
	for n := range t {
		nodes = append(nodes, n)
	}
	SortNodeIds(nodes)
	return nodes
}

// Destinations returns the known destinations of src in sorted order.
func (t RoutingTable) Destinations(src NodeId) []NodeId {
	dests := make([]NodeId, 0, len(t[src]))
	for d := range t[src] {
		dests = append(dests, d)
	}
	SortNodeIds(dests)
	return dests
}

func (t RoutingTable) Clone() RoutingTable {
	c := make(RoutingTable, len(t))
	for n, row := range t {
		c[n] = maps.Clone(row)
	}
	return c
}

// Equal reports whether two tables select the same routes. Nil and empty
// paths are considered the same.
func (t RoutingTable) Equal(other RoutingTable) bool {
	if len(t) != len(other) {
		return false
	}
	for n, row := range t {
		orow, ok := other[n]
		if !ok || len(row) != len(orow) {
			return false
		}
		for d, e := range row {
			oe, ok := orow[d]
			if !ok || e.Cost != oe.Cost || e.NextHop != oe.NextHop || !slices.Equal(e.Path, oe.Path) {
				return false
			}
		}
	}
	return true
}
