package core

import (
	"context"
	"fmt"

	"github.com/encodeous/routesim/state"
)

// Engine computes a full routing table from a topology snapshot. Engines
// hold no state across calls: every Compute starts from scratch and
// converges independently, so a recomputation can never observe leftovers
// from a previous topology.
type Engine interface {
	Protocol() state.Protocol
	Compute(ctx context.Context, topo *state.Topology) (state.RoutingTable, error)
}

// NewEngine returns the engine for a protocol. workers bounds the
// link-state per-source fan-out; values <= 1 compute sequentially.
func NewEngine(p state.Protocol, workers int) (Engine, error) {
	switch p {
	case state.ProtocolDistanceVector:
		return DistanceVectorEngine{}, nil
	case state.ProtocolLinkState:
		return LinkStateEngine{Workers: workers}, nil
	}
	return nil, fmt.Errorf("unknown protocol %q", p)
}

// Mismatch is one (source, destination) pair on which two engines
// disagree. A cost of Inf means the pair is unreachable under that engine.
type Mismatch struct {
	Source state.NodeId
	Dest   state.NodeId
	CostA  state.Cost
	CostB  state.Cost
}

// Disagreements compares two routing tables on reachability and cost.
// Paths are not compared: equal-cost paths may legitimately differ between
// engines, subject to each engine's own tie-break rule.
func Disagreements(a, b state.RoutingTable) []Mismatch {
	var out []Mismatch
	sources := a.Nodes()
	for _, n := range b.Nodes() {
		if _, ok := a[n]; !ok {
			sources = append(sources, n)
		}
	}
	state.SortNodeIds(sources)
	for _, src := range sources {
		dests := a.Destinations(src)
		for _, d := range b.Destinations(src) {
			if _, ok := a[src][d]; !ok {
				dests = append(dests, d)
			}
		}
		state.SortNodeIds(dests)
		for _, dst := range dests {
			costA := state.Inf
			costB := state.Inf
			if e, ok := a.Lookup(src, dst); ok {
				costA = e.Cost
			}
			if e, ok := b.Lookup(src, dst); ok {
				costB = e.Cost
			}
			if costA != costB {
				out = append(out, Mismatch{Source: src, Dest: dst, CostA: costA, CostB: costB})
			}
		}
	}
	return out
}
