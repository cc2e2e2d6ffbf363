package core

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/encodeous/routesim/perf"
	"github.com/encodeous/routesim/state"
)

// ErrNoConvergence means the sweep cap was exceeded. With non-negative
// costs and a monotone tie-break this cannot happen on any input; it
// signals a broken relaxation rule, not a bad topology.
var ErrNoConvergence = errors.New("distance-vector relaxation did not converge")

// DistanceVectorEngine is a centralized simulation of Bellman-Ford style
// distance-vector routing: every node's table is relaxed against its
// neighbours' tables in full sweeps until one sweep changes nothing.
//
// Each sweep reads the snapshot produced by the previous sweep, so the
// result is a pure function of the topology and never depends on map
// iteration order.
type DistanceVectorEngine struct{}

func (DistanceVectorEngine) Protocol() state.Protocol {
	return state.ProtocolDistanceVector
}

func (e DistanceVectorEngine) Compute(ctx context.Context, topo *state.Topology) (state.RoutingTable, error) {
	start := time.Now()
	nodes := topo.Nodes()

	// initially every node only knows of itself
	table := state.NewRoutingTable()
	for _, n := range nodes {
		table.Insert(n, n, state.RoutingEntry{Cost: 0, NextHop: n})
	}

	maxSweeps := len(nodes)*state.SweepCapFactor + state.SweepCapFloor
	sweeps := 0
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if sweeps >= maxSweeps {
			return nil, fmt.Errorf("%w after %d sweeps over %d nodes", ErrNoConvergence, sweeps, len(nodes))
		}
		sweeps++
		if !relaxSweep(topo, table, nodes) {
			break
		}
	}

	perf.ConvergenceSweeps.Add(float64(sweeps))
	perf.ComputeLatency.Add(float64(time.Since(start).Microseconds()))
	perf.TablesComputed.Add(1)
	return table, nil
}

// relaxSweep relaxes every node against the snapshot of the previous
// sweep and reports whether any entry changed.
func relaxSweep(topo *state.Topology, table state.RoutingTable, nodes []state.NodeId) bool {
	prev := table.Clone()
	changed := false
	for _, n := range nodes {
		for _, m := range topo.Neighbors(n) {
			linkCost, _ := topo.Cost(n, m)
			for _, d := range prev.Destinations(m) {
				if d == n {
					continue // table[n][n] stays pinned at cost 0
				}
				adv, _ := prev.Lookup(m, d)
				candidate := AddCost(linkCost, adv.Cost)

				cur, known := table.Lookup(n, d)
				// a strictly cheaper route always wins; at equal cost the
				// route via the smaller next-hop id wins
				if known && candidate > cur.Cost {
					continue
				}
				if known && candidate == cur.Cost && !m.Less(cur.NextHop) {
					continue
				}

				path := append([]state.NodeId{n}, adv.Path...)
				table.Insert(n, d, state.RoutingEntry{Cost: candidate, NextHop: m, Path: path})
				changed = true
			}
		}
	}
	return changed
}
