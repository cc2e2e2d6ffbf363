package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/encodeous/routesim/mock"
	"github.com/spf13/cobra"
)

var (
	genSeed uint64
	genOut  string
)

// genCmd emits a topology file for one of the canned network shapes.
var genCmd = &cobra.Command{
	Use:          "gen <ring|line|mesh|tree|random> <nodes>",
	Short:        "Generate a topology file",
	GroupID:      "tools",
	SilenceUsage: true,
	Args:         cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("node count %q is not an integer", args[1])
		}
		links, err := mock.Generate(args[0], n, genSeed)
		if err != nil {
			return err
		}

		sb := strings.Builder{}
		for _, l := range links {
			fmt.Fprintf(&sb, "%s %s %d\n", l.A, l.B, l.Cost)
		}
		if genOut == "" {
			fmt.Print(sb.String())
			return nil
		}
		return os.WriteFile(genOut, []byte(sb.String()), 0644)
	},
}

func init() {
	rootCmd.AddCommand(genCmd)

	genCmd.Flags().Uint64Var(&genSeed, "seed", 1, "seed for the random shape")
	genCmd.Flags().StringVarP(&genOut, "output", "o", "", "write to a file instead of stdout")
}
