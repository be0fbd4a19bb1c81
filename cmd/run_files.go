package cmd

import (
	"fmt"
	"os"

	"github.com/routelab/routesim/core"
	"github.com/routelab/routesim/scenario"
	"github.com/spf13/cobra"
)

// dvCmd and lsrCmd share the classic four-file invocation:
// routesim <dv|lsr> <topology> <messages> <changes> [output]

var dvCmd = &cobra.Command{
	Use:   "dv <topology> <messages> <changes> [output]",
	Short: "Run the distance-vector solver over text input files",
	Args:  cobra.RangeArgs(3, 4),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runFiles("dv", args)
	},
}

var lsrCmd = &cobra.Command{
	Use:   "lsr <topology> <messages> <changes> [output]",
	Short: "Run the link-state solver over text input files",
	Args:  cobra.RangeArgs(3, 4),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runFiles("lsr", args)
	},
}

func runFiles(algorithm string, args []string) error {
	solver, ok := core.NewSolver(algorithm)
	if !ok {
		return fmt.Errorf("unknown algorithm %q", algorithm)
	}

	log, err := core.NewLogger(algorithm, verbose, logFile)
	if err != nil {
		return err
	}

	links, err := scenario.LoadLinksFile(args[0])
	if err != nil {
		return err
	}
	messages, err := scenario.LoadMessagesFile(args[1])
	if err != nil {
		return err
	}
	changes, err := scenario.LoadLinksFile(args[2])
	if err != nil {
		return err
	}
	if err := scenario.Validate(&scenario.Scenario{Links: links, Messages: messages, Changes: changes}); err != nil {
		return err
	}

	outPath := "output.txt"
	if len(args) == 4 {
		outPath = args[3]
	}
	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("cannot open output file: %w", err)
	}
	defer out.Close()

	return core.Run(core.RunConfig{
		Solver:   solver,
		Links:    links,
		Messages: messages,
		Changes:  changes,
		Out:      out,
		Log:      log,
	})
}

func init() {
	rootCmd.AddCommand(dvCmd)
	rootCmd.AddCommand(lsrCmd)
}
