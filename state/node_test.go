package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNodeIdCompare_Numeric(t *testing.T) {
	assert.True(t, NodeId("2").Less("10"))
	assert.True(t, NodeId("9").Less("11"))
	assert.False(t, NodeId("10").Less("2"))
	assert.Equal(t, 0, NodeId("7").Compare("7"))
}

func TestNodeIdCompare_Lexicographic(t *testing.T) {
	assert.True(t, NodeId("alpha").Less("beta"))
	assert.True(t, NodeId("A").Less("B"))
	// mixed ids fall back to lexicographic order
	assert.True(t, NodeId("10").Less("a"))
}

func TestNodeIdCompare_LeadingZeros(t *testing.T) {
	// "01" and "1" have the same numeric value but must not compare equal
	assert.NotEqual(t, 0, NodeId("01").Compare("1"))
	assert.True(t, NodeId("01").Less("1"))
}

func TestSortNodeIds(t *testing.T) {
	ids := []NodeId{"10", "2", "1", "30", "3"}
	SortNodeIds(ids)
	assert.Equal(t, []NodeId{"1", "2", "3", "10", "30"}, ids)

	names := []NodeId{"kat", "ada", "bob", "jeb"}
	SortNodeIds(names)
	assert.Equal(t, []NodeId{"ada", "bob", "jeb", "kat"}, names)
}
