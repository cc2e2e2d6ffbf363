package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/encodeous/routesim/core"
	"github.com/encodeous/routesim/state"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

var showProtocol string

// showCmd renders one engine's converged tables in a human-readable
// layout instead of the machine output format.
var showCmd = &cobra.Command{
	Use:          "show <topology>",
	Short:        "Compute and display routing tables",
	GroupID:      "tools",
	SilenceUsage: true,
	Args:         cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := state.ParseProtocol(showProtocol)
		if err != nil {
			return err
		}
		links, err := state.LoadTopology(args[0])
		if err != nil {
			return err
		}
		engine, err := core.NewEngine(p, state.DefaultWorkers)
		if err != nil {
			return err
		}
		routes, err := engine.Compute(context.Background(), state.TopologyFromLinks(links))
		if err != nil {
			return err
		}

		rows := make([][]string, 0)
		for _, n := range routes.Nodes() {
			for _, d := range routes.Destinations(n) {
				e, _ := routes.Lookup(n, d)
				rows = append(rows, []string{
					string(n),
					string(d),
					string(e.NextHop),
					fmt.Sprintf("%d", e.Cost),
					joinPath(e.Path),
				})
			}
		}

		table := tablewriter.NewWriter(os.Stdout)
		table.SetAutoWrapText(false)
		table.SetBorder(false)
		table.SetHeaderLine(false)
		table.SetCenterSeparator("")
		table.SetColumnSeparator("")
		table.SetRowSeparator("")
		table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
		table.SetAlignment(tablewriter.ALIGN_LEFT)
		table.SetHeader([]string{"NODE", "DESTINATION", "NEXT HOP", "COST", "PATH"})
		table.AppendBulk(rows)
		table.Render()
		return nil
	},
}

func joinPath(path []state.NodeId) string {
	if len(path) == 0 {
		return "-"
	}
	out := ""
	for i, n := range path {
		if i > 0 {
			out += " "
		}
		out += string(n)
	}
	return out
}

func init() {
	rootCmd.AddCommand(showCmd)

	showCmd.Flags().StringVarP(&showProtocol, "protocol", "p", "link-state", "routing protocol (distance-vector|dv|link-state|ls)")
}
