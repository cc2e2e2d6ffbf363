package core

import (
	"errors"
	"fmt"

	"github.com/encodeous/routesim/perf"
	"github.com/encodeous/routesim/state"
)

// ErrForwardingLoop means a next-hop chase did not reach the destination
// within the node-count bound. A converged table cannot loop, so this is
// an engine invariant violation, never a normal input condition.
var ErrForwardingLoop = errors.New("next-hop chain does not converge on the destination")

// Delivery is the outcome of forwarding one message. An unreachable
// destination is a defined outcome: Reachable is false and Cost and Hops
// are zero.
type Delivery struct {
	Message   state.Message
	Cost      state.Cost
	Hops      []state.NodeId
	Reachable bool
}

// Forward simulates one message over a converged routing table. The hop
// list starts at the source and excludes the destination. An unknown
// source or destination yields an unreachable delivery, not an error.
func Forward(table state.RoutingTable, msg state.Message) (Delivery, error) {
	perf.MessagesForwarded.Add(1)
	src, dst := msg.Source, msg.Dest

	// a self delivery never chases: the self entry's next hop is the
	// source itself
	if src == dst {
		return Delivery{Message: msg, Cost: 0, Hops: []state.NodeId{src}, Reachable: true}, nil
	}

	entry, ok := table.Lookup(src, dst)
	if !ok {
		return Delivery{Message: msg}, nil
	}
	if entry.Path != nil {
		return Delivery{Message: msg, Cost: entry.Cost, Hops: entry.Path, Reachable: true}, nil
	}

	// next-hop-only entry: reconstruct the hop sequence by chasing,
	// bounded so a malformed table fails fast instead of looping
	hops, err := chaseNextHops(table, src, dst)
	if err != nil {
		return Delivery{}, err
	}
	return Delivery{Message: msg, Cost: entry.Cost, Hops: hops, Reachable: true}, nil
}

func chaseNextHops(table state.RoutingTable, src, dst state.NodeId) ([]state.NodeId, error) {
	hops := []state.NodeId{src}
	cur := src
	for range len(table) {
		entry, ok := table.Lookup(cur, dst)
		if !ok {
			return nil, fmt.Errorf("%w: %s has no route to %s while forwarding from %s", ErrForwardingLoop, cur, dst, src)
		}
		if entry.NextHop == dst {
			return hops, nil
		}
		cur = entry.NextHop
		hops = append(hops, cur)
	}
	return nil, fmt.Errorf("%w: chase from %s to %s exceeded %d steps", ErrForwardingLoop, src, dst, len(table))
}
