package mock

import (
	"fmt"
	"math/rand/v2"

	"github.com/encodeous/routesim/state"
)

// Topology generators for the gen command and for property tests. Node
// ids are n1..nN so both the numeric-aware and lexicographic orderings
// agree on them.

func nodeName(i int) state.NodeId {
	return state.NodeId(fmt.Sprintf("n%d", i+1))
}

// Ring connects n nodes in a cycle of unit-cost links.
func Ring(n int) []state.Link {
	links := make([]state.Link, 0, n)
	for i := range n {
		links = append(links, state.Link{A: nodeName(i), B: nodeName((i + 1) % n), Cost: 1})
	}
	return links
}

// Line connects n nodes in a unit-cost chain.
func Line(n int) []state.Link {
	links := make([]state.Link, 0, n-1)
	for i := range n - 1 {
		links = append(links, state.Link{A: nodeName(i), B: nodeName(i + 1), Cost: 1})
	}
	return links
}

// Mesh fully connects n nodes with unit-cost links.
func Mesh(n int) []state.Link {
	links := make([]state.Link, 0, n*(n-1)/2)
	for i := range n {
		for j := i + 1; j < n; j++ {
			links = append(links, state.Link{A: nodeName(i), B: nodeName(j), Cost: 1})
		}
	}
	return links
}

// Tree connects n nodes as a unit-cost binary tree.
func Tree(n int) []state.Link {
	links := make([]state.Link, 0, n-1)
	for i := 1; i < n; i++ {
		links = append(links, state.Link{A: nodeName((i - 1) / 2), B: nodeName(i), Cost: 1})
	}
	return links
}

// Random builds a connected topology over n nodes: a random spanning tree
// plus roughly n/2 extra edges, with costs in [1, 10]. The same seed
// always yields the same topology.
func Random(n int, seed uint64) []state.Link {
	rng := rand.New(rand.NewPCG(seed, seed))
	links := make([]state.Link, 0, n-1+n/2)
	seen := make(map[state.Pair[state.NodeId, state.NodeId]]bool)

	add := func(i, j int, cost state.Cost) {
		a, b := nodeName(i), nodeName(j)
		if b.Less(a) {
			a, b = b, a
		}
		key := state.Pair[state.NodeId, state.NodeId]{V1: a, V2: b}
		if seen[key] {
			return
		}
		seen[key] = true
		links = append(links, state.Link{A: a, B: b, Cost: cost})
	}

	for i := 1; i < n; i++ {
		add(rng.IntN(i), i, state.Cost(rng.IntN(10)+1))
	}
	for range n / 2 {
		i, j := rng.IntN(n), rng.IntN(n)
		if i != j {
			add(i, j, state.Cost(rng.IntN(10)+1))
		}
	}
	return links
}

// Generate dispatches on a shape name.
func Generate(shape string, n int, seed uint64) ([]state.Link, error) {
	if n < 2 {
		return nil, fmt.Errorf("need at least 2 nodes, got %d", n)
	}
	switch shape {
	case "ring":
		return Ring(n), nil
	case "line":
		return Line(n), nil
	case "mesh":
		return Mesh(n), nil
	case "tree":
		return Tree(n), nil
	case "random":
		return Random(n, seed), nil
	}
	return nil, fmt.Errorf("unknown topology shape %q", shape)
}
