package core_test

import (
	"testing"

	"github.com/encodeous/routesim/core"
	"github.com/encodeous/routesim/state"
	"github.com/stretchr/testify/assert"
)

func TestAddCost(t *testing.T) {
	assert.Equal(t, state.Cost(5), core.AddCost(2, 3))
	assert.Equal(t, state.Cost(0), core.AddCost(0, 0))
	assert.Equal(t, state.Inf, core.AddCost(state.Inf, 1))
	assert.Equal(t, state.Inf, core.AddCost(1, state.Inf))
	assert.Equal(t, state.Inf, core.AddCost(state.Inf, state.Inf))
	// saturates instead of overflowing
	assert.Equal(t, state.Inf, core.AddCost(state.Inf-1, 2))
}
