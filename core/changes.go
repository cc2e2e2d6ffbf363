package core

import (
	"github.com/encodeous/routesim/perf"
	"github.com/encodeous/routesim/state"
)

// ApplyChange mutates the topology in place. The removal sentinel deletes
// the link in both directions and is idempotent; any other cost sets or
// replaces the link, creating previously unseen endpoints.
//
// The caller must recompute the full routing table afterwards — there is
// no incremental update, which is what guarantees no stale routes.
func ApplyChange(topo *state.Topology, ch state.Change) {
	perf.ChangesApplied.Add(1)
	if ch.IsRemoval() {
		topo.RemoveLink(ch.A, ch.B)
		return
	}
	topo.AddLink(ch.A, ch.B, ch.Cost)
}
