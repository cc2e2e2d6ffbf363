package state

import (
	"cmp"
	"math"
	"slices"
	"strconv"
)

// NodeId is the unique id for a router in the simulated network. Ids are
// opaque: inputs may use plain integers or names. Ordering is numeric when
// both ids parse as integers and lexicographic otherwise, so tie-breaking
// and sorted output follow the input flavour.
type NodeId string

// Compare defines the total order used for tie-breaking and output sorting.
func (n NodeId) Compare(other NodeId) int {
	a, errA := strconv.Atoi(string(n))
	b, errB := strconv.Atoi(string(other))
	if errA == nil && errB == nil && a != b {
		return cmp.Compare(a, b)
	}
	// equal numeric values ("01" vs "1") fall through, distinct ids must
	// never compare equal
	return cmp.Compare(string(n), string(other))
}

func (n NodeId) Less(other NodeId) bool {
	return n.Compare(other) < 0
}

func SortNodeIds(ids []NodeId) {
	slices.SortFunc(ids, NodeId.Compare)
}

// Cost is a non-negative link or path cost. Inf marks an unreachable
// destination and only ever appears transiently or in rendered output;
// converged routing tables encode unreachability by absence.
type Cost int64

const Inf = Cost(math.MaxInt64)
