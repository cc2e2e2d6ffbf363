//go:build integration

package integration

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/encodeous/routesim/core"
	"github.com/encodeous/routesim/state"
)

// runText executes a whole scenario in memory and returns the rendered
// report, exactly as the run command would write it to the output file.
func runText(t *testing.T, protocol state.Protocol, sc *state.Scenario) string {
	t.Helper()

	ctx, cancel := context.WithCancelCause(t.Context())
	defer cancel(context.Canceled)

	engine, err := core.NewEngine(protocol, state.DefaultWorkers)
	if err != nil {
		t.Fatal(err)
	}

	var sb strings.Builder
	sim := &core.Simulator{
		Env: &state.Env{
			Context: ctx,
			Cancel:  cancel,
			Log:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		},
		Engine:   engine,
		Topology: state.TopologyFromLinks(sc.Links),
		Messages: sc.Messages,
		Changes:  sc.Changes,
	}
	if err := sim.Run(&core.Renderer{W: &sb}); err != nil {
		t.Fatal(err)
	}
	return sb.String()
}

// replayCosts extracts "from X to Y cost C" prefixes from every message
// replay line of a report, in order.
func replayCosts(report string) []string {
	var out []string
	for _, line := range strings.Split(report, "\n") {
		if !strings.HasPrefix(line, "from ") {
			continue
		}
		if i := strings.Index(line, " hops "); i >= 0 {
			out = append(out, line[:i])
		}
	}
	return out
}
