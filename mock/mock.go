// Package mock provides canned scenarios, topology generators and a
// recording reporter for tests.
package mock

import (
	"github.com/encodeous/routesim/state"
)

// MockWeights is the default weighted edge set used across tests.
func MockWeights() []state.Triple[state.NodeId, state.NodeId, state.Cost] {
	return []state.Triple[state.NodeId, state.NodeId, state.Cost]{
		{V1: "bob", V2: "jeb", V3: 1},
		{V1: "bob", V2: "kat", V3: 1},
		{V1: "bob", V2: "eve", V3: 10},
		{V1: "jeb", V2: "kat", V3: 1},
		{V1: "kat", V2: "ada", V3: 1},
		{V1: "kat", V2: "eve", V3: 1},
		{V1: "eve", V2: "ada", V3: 2},
	}
}

func MockLinks() []state.Link {
	links := make([]state.Link, 0)
	for _, w := range MockWeights() {
		links = append(links, state.Link{A: w.V1, B: w.V2, Cost: w.V3})
	}
	return links
}

func MockTopology() *state.Topology {
	return state.TopologyFromLinks(MockLinks())
}

// MockScenario bundles the default topology with a few messages and
// changes touching every change kind.
func MockScenario() *state.Scenario {
	return &state.Scenario{
		Protocol: state.ProtocolDistanceVector,
		Links:    MockLinks(),
		Messages: []state.Message{
			{Source: "bob", Dest: "ada", Text: "hello ada"},
			{Source: "eve", Dest: "jeb", Text: "hi jeb"},
		},
		Changes: []state.Change{
			{A: "kat", B: "ada", Cost: state.RemoveLinkCost},
			{A: "bob", B: "eve", Cost: 2},
		},
	}
}
