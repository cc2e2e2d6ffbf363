package core_test

import (
	"strings"
	"testing"

	"github.com/encodeous/routesim/core"
	"github.com/encodeous/routesim/state"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRendererTables(t *testing.T) {
	table, err := core.DistanceVectorEngine{}.Compute(t.Context(), triangleTopology())
	require.NoError(t, err)

	var sb strings.Builder
	r := &core.Renderer{W: &sb}
	require.NoError(t, r.ReportTables(table))

	assert.Equal(t, `A A 0
B B 1
C B 2

A A 1
B B 0
C C 1

A B 2
B B 1
C C 0

`, sb.String())
}

func TestRendererTables_NumericOrder(t *testing.T) {
	table, err := core.LinkStateEngine{}.Compute(t.Context(), state.TopologyFromLinks([]state.Link{
		{A: "1", B: "2", Cost: 3},
		{A: "2", B: "10", Cost: 1},
	}))
	require.NoError(t, err)

	var sb strings.Builder
	r := &core.Renderer{W: &sb}
	require.NoError(t, r.ReportTables(table))

	// node blocks and destinations sort numerically, not as strings
	assert.Equal(t, `1 1 0
2 2 3
10 2 4

1 1 3
2 2 0
10 10 1

1 2 4
2 2 1
10 10 0

`, sb.String())
}

func TestRendererDeliveries(t *testing.T) {
	var sb strings.Builder
	r := &core.Renderer{W: &sb}

	require.NoError(t, r.ReportDeliveries([]core.Delivery{
		{
			Message:   state.Message{Source: "A", Dest: "C", Text: "here is a message"},
			Cost:      2,
			Hops:      []state.NodeId{"A", "B"},
			Reachable: true,
		},
		{
			Message: state.Message{Source: "A", Dest: "Z", Text: "lost"},
		},
	}))

	assert.Equal(t, `from A to C cost 2 hops A B message here is a message
from A to Z cost infinite hops unreachable message lost

`, sb.String())
}

func TestRendererDeliveries_EmptyWritesNothing(t *testing.T) {
	var sb strings.Builder
	r := &core.Renderer{W: &sb}
	require.NoError(t, r.ReportDeliveries(nil))
	assert.Empty(t, sb.String())
}
