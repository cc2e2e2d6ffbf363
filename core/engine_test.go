package core_test

import (
	"fmt"
	"testing"

	"github.com/encodeous/routesim/core"
	"github.com/encodeous/routesim/mock"
	"github.com/encodeous/routesim/state"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEngine(t *testing.T) {
	e, err := core.NewEngine(state.ProtocolDistanceVector, 1)
	require.NoError(t, err)
	assert.Equal(t, state.ProtocolDistanceVector, e.Protocol())

	e, err = core.NewEngine(state.ProtocolLinkState, 4)
	require.NoError(t, err)
	assert.Equal(t, state.ProtocolLinkState, e.Protocol())

	_, err = core.NewEngine("rip", 1)
	assert.Error(t, err)
}

// Both engines must agree on cost and reachability for every pair on any
// topology with non-negative costs.
func TestEnginesAgree(t *testing.T) {
	topologies := map[string][]state.Link{
		"triangle": {{A: "A", B: "B", Cost: 1}, {A: "B", B: "C", Cost: 1}, {A: "A", B: "C", Cost: 5}},
		"mock":     mock.MockLinks(),
		"ring":     mock.Ring(12),
		"line":     mock.Line(9),
		"mesh":     mock.Mesh(6),
		"tree":     mock.Tree(15),
	}
	for i := range 10 {
		topologies[fmt.Sprintf("random%d", i)] = mock.Random(20, uint64(i)+1)
	}

	for name, links := range topologies {
		t.Run(name, func(t *testing.T) {
			topo := state.TopologyFromLinks(links)
			dv, err := core.DistanceVectorEngine{}.Compute(t.Context(), topo)
			require.NoError(t, err)
			ls, err := core.LinkStateEngine{}.Compute(t.Context(), topo)
			require.NoError(t, err)

			assert.Empty(t, core.Disagreements(dv, ls))
		})
	}
}

func TestEnginesAgree_PartitionedTopology(t *testing.T) {
	links := append(mock.Ring(4), state.Link{A: "z1", B: "z2", Cost: 3})
	topo := state.TopologyFromLinks(links)

	dv, err := core.DistanceVectorEngine{}.Compute(t.Context(), topo)
	require.NoError(t, err)
	ls, err := core.LinkStateEngine{}.Compute(t.Context(), topo)
	require.NoError(t, err)

	assert.Empty(t, core.Disagreements(dv, ls))
	_, ok := dv.Lookup("n1", "z1")
	assert.False(t, ok)
}

func TestDisagreements(t *testing.T) {
	a := state.NewRoutingTable()
	a.Insert("A", "B", state.RoutingEntry{Cost: 1, NextHop: "B"})
	a.Insert("A", "C", state.RoutingEntry{Cost: 2, NextHop: "B"})

	b := state.NewRoutingTable()
	b.Insert("A", "B", state.RoutingEntry{Cost: 1, NextHop: "B"})
	b.Insert("A", "C", state.RoutingEntry{Cost: 3, NextHop: "C"})
	b.Insert("A", "D", state.RoutingEntry{Cost: 9, NextHop: "C"})

	got := core.Disagreements(a, b)
	require.Len(t, got, 2)
	assert.Equal(t, core.Mismatch{Source: "A", Dest: "C", CostA: 2, CostB: 3}, got[0])
	assert.Equal(t, core.Mismatch{Source: "A", Dest: "D", CostA: state.Inf, CostB: 9}, got[1])
}
