package cmd

import (
	"context"
	"fmt"

	"github.com/encodeous/routesim/core"
	"github.com/encodeous/routesim/state"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// checkCmd computes tables under both engines and verifies they agree on
// cost and reachability for every pair. Paths are allowed to differ when
// equal-cost alternatives exist.
var checkCmd = &cobra.Command{
	Use:          "check <topology>",
	Short:        "Verify both algorithms agree on a topology",
	GroupID:      "tools",
	SilenceUsage: true,
	Args:         cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		links, err := state.LoadTopology(args[0])
		if err != nil {
			return err
		}
		topo := state.TopologyFromLinks(links)
		ctx := context.Background()

		dvTable, err := core.DistanceVectorEngine{}.Compute(ctx, topo)
		if err != nil {
			return err
		}
		lsTable, err := core.LinkStateEngine{}.Compute(ctx, topo)
		if err != nil {
			return err
		}

		statusGood := color.New(color.FgGreen)
		statusBad := color.New(color.FgRed)

		mismatches := core.Disagreements(dvTable, lsTable)
		if len(mismatches) == 0 {
			statusGood.Printf("PASS")
			fmt.Printf(" %d nodes, engines agree on every pair\n", topo.Len())
			return nil
		}

		statusBad.Printf("FAIL")
		fmt.Printf(" engines disagree on %d pairs:\n", len(mismatches))
		for _, m := range mismatches {
			fmt.Printf("  %s -> %s: distance-vector %s, link-state %s\n",
				m.Source, m.Dest, formatCost(m.CostA), formatCost(m.CostB))
		}
		return fmt.Errorf("engines disagree on %d pairs", len(mismatches))
	},
}

func formatCost(c state.Cost) string {
	if c == state.Inf {
		return "unreachable"
	}
	return fmt.Sprintf("%d", c)
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
