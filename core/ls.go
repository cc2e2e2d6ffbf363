package core

import (
	"container/heap"
	"context"
	"slices"
	"time"

	"github.com/encodeous/routesim/perf"
	"github.com/encodeous/routesim/state"
	"golang.org/x/sync/errgroup"
)

// LinkStateEngine computes each node's shortest-path tree with Dijkstra
// over the globally known topology and aggregates the trees into one
// routing table. Flooding of link-state advertisements is not modelled.
type LinkStateEngine struct {
	// Workers bounds the per-source fan-out. Per-source runs are fully
	// independent, so this is the only safe parallel axis; values <= 1
	// compute sequentially with identical results.
	Workers int
}

func (LinkStateEngine) Protocol() state.Protocol {
	return state.ProtocolLinkState
}

func (e LinkStateEngine) Compute(ctx context.Context, topo *state.Topology) (state.RoutingTable, error) {
	start := time.Now()
	nodes := topo.Nodes()
	rows := make([]map[state.NodeId]state.RoutingEntry, len(nodes))

	if e.Workers > 1 {
		g, ctx := errgroup.WithContext(ctx)
		g.SetLimit(e.Workers)
		for i, src := range nodes {
			g.Go(func() error {
				if err := ctx.Err(); err != nil {
					return err
				}
				rows[i] = shortestPaths(topo, src)
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
	} else {
		for i, src := range nodes {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			rows[i] = shortestPaths(topo, src)
		}
	}

	table := state.NewRoutingTable()
	for i, src := range nodes {
		for dst, entry := range rows[i] {
			table.Insert(src, dst, entry)
		}
	}

	perf.ComputeLatency.Add(float64(time.Since(start).Microseconds()))
	perf.TablesComputed.Add(1)
	return table, nil
}

// frontierItem orders the Dijkstra frontier by distance, ties broken by
// node id. The comparator never looks at paths, so path construction
// order cannot affect tie resolution.
type frontierItem struct {
	node state.NodeId
	dist state.Cost
}

type frontier []frontierItem

func (f frontier) Len() int { return len(f) }

func (f frontier) Less(i, j int) bool {
	if f[i].dist != f[j].dist {
		return f[i].dist < f[j].dist
	}
	return f[i].node.Less(f[j].node)
}

func (f frontier) Swap(i, j int) { f[i], f[j] = f[j], f[i] }

func (f *frontier) Push(x any) {
	*f = append(*f, x.(frontierItem))
}

func (f *frontier) Pop() any {
	old := *f
	n := len(old)
	it := old[n-1]
	*f = old[:n-1]
	return it
}

// shortestPaths runs Dijkstra from one source and returns its routing
// table row. Destinations never reached have no entry.
func shortestPaths(topo *state.Topology, src state.NodeId) map[state.NodeId]state.RoutingEntry {
	dist := map[state.NodeId]state.Cost{src: 0}
	paths := map[state.NodeId][]state.NodeId{src: {src}}

	pq := &frontier{{node: src, dist: 0}}
	pops := 0
	for pq.Len() > 0 {
		it := heap.Pop(pq).(frontierItem)
		pops++
		if it.dist > dist[it.node] {
			continue // stale entry, the node's distance has since improved
		}
		// first fresh pop of a node finalizes it: costs are non-negative,
		// so no smaller candidate can appear later
		for _, v := range topo.Neighbors(it.node) {
			w, _ := topo.Cost(it.node, v)
			candidate := AddCost(it.dist, w)
			cur, seen := dist[v]
			if !seen || candidate < cur {
				dist[v] = candidate
				paths[v] = append(slices.Clone(paths[it.node]), v)
				heap.Push(pq, frontierItem{node: v, dist: candidate})
			}
		}
	}
	perf.FrontierPops.Add(float64(pops))

	row := make(map[state.NodeId]state.RoutingEntry, len(dist))
	for dst, cost := range dist {
		path := paths[dst]
		entry := state.RoutingEntry{Cost: cost, NextHop: dst}
		if len(path) > 1 {
			entry.NextHop = path[1]
			entry.Path = slices.Clone(path[:len(path)-1])
		}
		row[dst] = entry
	}
	return row
}
