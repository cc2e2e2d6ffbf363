package state

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTopology(t *testing.T) {
	input := `A B 1
B C 1

A C 5
`
	links, err := ParseTopology(strings.NewReader(input), "topology")
	require.NoError(t, err)
	assert.Equal(t, []Link{
		{A: "A", B: "B", Cost: 1},
		{A: "B", B: "C", Cost: 1},
		{A: "A", B: "C", Cost: 5},
	}, links)
}

func TestParseTopology_Malformed(t *testing.T) {
	cases := []struct {
		name  string
		input string
	}{
		{"too few fields", "A B"},
		{"too many fields", "A B 1 2"},
		{"non-numeric cost", "A B x"},
		{"negative cost", "A B -1"},
		{"sentinel is not a topology cost", "A B -999"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := ParseTopology(strings.NewReader(c.input), "topology")
			var perr *ParseError
			require.ErrorAs(t, err, &perr)
			assert.Equal(t, "topology", perr.File)
			assert.Equal(t, 1, perr.Line)
		})
	}
}

func TestParseMessages_TextVerbatim(t *testing.T) {
	input := "A C hello there  world\n1 2 x\n"
	msgs, err := ParseMessages(strings.NewReader(input), "messages")
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	assert.Equal(t, Message{Source: "A", Dest: "C", Text: "hello there  world"}, msgs[0])
	assert.Equal(t, Message{Source: "1", Dest: "2", Text: "x"}, msgs[1])
}

func TestParseMessages_MissingText(t *testing.T) {
	_, err := ParseMessages(strings.NewReader("A C\n"), "messages")
	var perr *ParseError
	assert.ErrorAs(t, err, &perr)
}

func TestParseChanges(t *testing.T) {
	input := "A B 3\nA B -999\n"
	changes, err := ParseChanges(strings.NewReader(input), "changes")
	require.NoError(t, err)
	assert.Equal(t, []Change{
		{A: "A", B: "B", Cost: 3},
		{A: "A", B: "B", Cost: RemoveLinkCost},
	}, changes)
	assert.False(t, changes[0].IsRemoval())
	assert.True(t, changes[1].IsRemoval())
}

func TestParseChanges_NegativeNonSentinel(t *testing.T) {
	_, err := ParseChanges(strings.NewReader("A B -5\n"), "changes")
	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, 1, perr.Line)
}

func TestParseError_Format(t *testing.T) {
	_, err := ParseTopology(strings.NewReader("A B 1\nbad\n"), "topo.txt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "topo.txt:2")
}
