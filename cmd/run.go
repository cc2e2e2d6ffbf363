package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/encodeous/routesim/core"
	"github.com/encodeous/routesim/state"
	"github.com/spf13/cobra"
)

var (
	protocolFlag string
	scenarioPath string
	workers      int
	toStdout     bool
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run <topology> <messages> <changes> <output>",
	Short: "Run a full simulation",
	Long: `Run computes the initial routing tables, replays every message, then applies
each topology change followed by a reconvergence and another replay. With
--scenario a single YAML file replaces the three input files, and the only
positional argument is the output file (optional with --stdout).`,
	GroupID:      "sim",
	SilenceUsage: true,
	Args: func(cmd *cobra.Command, args []string) error {
		if scenarioPath != "" {
			if toStdout {
				return cobra.MaximumNArgs(1)(cmd, args)
			}
			return cobra.ExactArgs(1)(cmd, args)
		}
		return cobra.ExactArgs(4)(cmd, args)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := core.RunConfig{
			Workers:  workers,
			LogLevel: logLevel(),
			LogPath:  logPath,
		}

		var outputPath string
		if scenarioPath != "" {
			sc, err := state.LoadScenario(scenarioPath)
			if err != nil {
				return err
			}
			cfg.Protocol = sc.Protocol
			cfg.Links = sc.Links
			cfg.Messages = sc.Messages
			cfg.Changes = sc.Changes
			if len(args) == 1 {
				outputPath = args[0]
			}
		} else {
			var err error
			cfg.Links, err = state.LoadTopology(args[0])
			if err != nil {
				return err
			}
			cfg.Messages, err = state.LoadMessages(args[1])
			if err != nil {
				return err
			}
			cfg.Changes, err = state.LoadChanges(args[2])
			if err != nil {
				return err
			}
			outputPath = args[3]
		}

		if cmd.Flags().Changed("protocol") || cfg.Protocol == "" {
			p, err := state.ParseProtocol(protocolFlag)
			if err != nil {
				return err
			}
			cfg.Protocol = p
		}

		var out io.Writer
		if toStdout {
			out = os.Stdout
		} else {
			f, err := os.Create(outputPath)
			if err != nil {
				return err
			}
			defer f.Close()
			out = f
		}
		cfg.Output = out

		if err := core.Run(cfg); err != nil {
			return fmt.Errorf("simulation failed: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVarP(&protocolFlag, "protocol", "p", "distance-vector", "routing protocol (distance-vector|dv|link-state|ls)")
	runCmd.Flags().StringVarP(&scenarioPath, "scenario", "s", "", "YAML scenario file replacing the three input files")
	runCmd.Flags().IntVarP(&workers, "workers", "w", state.DefaultWorkers, "parallel per-source workers for link-state")
	runCmd.Flags().BoolVar(&toStdout, "stdout", false, "write the report to stdout instead of a file")
}
