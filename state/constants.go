package state

// RemoveLinkCost is the reserved change cost that removes a link instead of
// setting it. It must never be interpreted as a real link cost.
const RemoveLinkCost = Cost(-999)

var (
	// SweepCapFactor and SweepCapFloor bound distance-vector convergence at
	// SweepCapFactor*nodes + SweepCapFloor sweeps. A converged fixpoint is
	// always reached well under the cap; exceeding it means the relaxation
	// rule broke monotonicity.
	SweepCapFactor = 4
	SweepCapFloor  = 8

	// default worker bound for the per-source link-state fan-out
	DefaultWorkers = 1

	// debug flags, bound to CLI flags
	DBG_debug      = false
	DBG_trace      = false
	DBG_log_tables = false
)
