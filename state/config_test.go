package state

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadScenario(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	input := `protocol: link-state
links:
  - {a: A, b: B, cost: 1}
  - {a: B, b: C, cost: 1}
messages:
  - {from: A, to: C, text: hello world}
changes:
  - {a: A, b: B, cost: -999}
`
	require.NoError(t, os.WriteFile(path, []byte(input), 0644))

	sc, err := LoadScenario(path)
	require.NoError(t, err)
	assert.Equal(t, ProtocolLinkState, sc.Protocol)
	assert.Equal(t, []Link{{A: "A", B: "B", Cost: 1}, {A: "B", B: "C", Cost: 1}}, sc.Links)
	assert.Equal(t, []Message{{Source: "A", Dest: "C", Text: "hello world"}}, sc.Messages)
	assert.True(t, sc.Changes[0].IsRemoval())
}

func TestLoadScenario_DefaultsToDistanceVector(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte("links:\n  - {a: A, b: B, cost: 1}\n"), 0644))

	sc, err := LoadScenario(path)
	require.NoError(t, err)
	assert.Equal(t, ProtocolDistanceVector, sc.Protocol)
}

func TestScenarioSaveRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.yaml")
	sc := &Scenario{
		Protocol: ProtocolDistanceVector,
		Links:    []Link{{A: "A", B: "B", Cost: 2}},
		Messages: []Message{{Source: "A", Dest: "B", Text: "hi there"}},
		Changes:  []Change{{A: "A", B: "B", Cost: RemoveLinkCost}},
	}
	require.NoError(t, sc.Save(path))

	loaded, err := LoadScenario(path)
	require.NoError(t, err)
	assert.Equal(t, sc, loaded)
}

func TestParseProtocol(t *testing.T) {
	for _, alias := range []string{"distance-vector", "dv", "dvr"} {
		p, err := ParseProtocol(alias)
		require.NoError(t, err)
		assert.Equal(t, ProtocolDistanceVector, p)
	}
	for _, alias := range []string{"link-state", "ls", "lsr"} {
		p, err := ParseProtocol(alias)
		require.NoError(t, err)
		assert.Equal(t, ProtocolLinkState, p)
	}
	_, err := ParseProtocol("ospf")
	assert.Error(t, err)
}
