package cmd

import (
	"os"

	"github.com/encodeous/routesim/state"
	"github.com/spf13/cobra"
)

var (
	verbose bool
	logPath string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "routesim",
	Short: "Static network routing simulator",
	Long: `Routesim computes per-node routing tables for a small static network and
replays messages along the computed paths, under either distance-vector or
link-state routing. Topology changes are applied in sequence, each followed
by a full reconvergence and replay.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddGroup(&cobra.Group{
		ID:    "sim",
		Title: "Simulation Commands",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "tools",
		Title: "Topology Tools",
	})
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVar(&logPath, "log", "", "also write logs to this file")
	rootCmd.PersistentFlags().BoolVar(&state.DBG_debug, "debug", false, "expose pprof and expvar on :6060")
	rootCmd.PersistentFlags().BoolVar(&state.DBG_trace, "trace", false, "write a runtime trace to trace.out")
	rootCmd.PersistentFlags().BoolVarP(&state.DBG_log_tables, "ltable", "t", false, "log computed route tables")
}
