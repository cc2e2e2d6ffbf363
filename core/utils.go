package core

import (
	"strings"

	"github.com/encodeous/routesim/state"
)

// AddCost adds two costs, saturating at Inf.
func AddCost(a, b state.Cost) state.Cost {
	if a == state.Inf || b == state.Inf || a > state.Inf-b {
		return state.Inf
	}
	return a + b
}

func joinIds(ids []state.NodeId) string {
	var sb strings.Builder
	for i, id := range ids {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(string(id))
	}
	return sb.String()
}
