package cmd

import (
	"fmt"
	"os"

	"github.com/routelab/routesim/core"
	"github.com/routelab/routesim/scenario"
	"github.com/spf13/cobra"
)

var (
	scenarioPath string
	algorithm    string
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run [output]",
	Short: "Run a YAML scenario",
	Long: `Run a single-document YAML scenario carrying links, messages and
changes. The scenario may name its algorithm; the -a flag overrides it.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sc, err := scenario.LoadScenario(scenarioPath)
		if err != nil {
			return err
		}

		name := sc.Algorithm
		if algorithm != "" {
			name = algorithm
		}
		if name == "" {
			name = "dv"
		}
		solver, ok := core.NewSolver(name)
		if !ok {
			return fmt.Errorf("unknown algorithm %q", name)
		}

		log, err := core.NewLogger(name, verbose, logFile)
		if err != nil {
			return err
		}

		outPath := "output.txt"
		if len(args) == 1 {
			outPath = args[0]
		}
		out, err := os.Create(outPath)
		if err != nil {
			return fmt.Errorf("cannot open output file: %w", err)
		}
		defer out.Close()

		return core.Run(core.RunConfig{
			Solver:   solver,
			Links:    sc.Links,
			Messages: sc.Messages,
			Changes:  sc.Changes,
			Out:      out,
			Log:      log,
		})
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().StringVarP(&scenarioPath, "scenario", "s", "scenario.yaml", "Scenario file")
	runCmd.Flags().StringVarP(&algorithm, "algorithm", "a", "", "Override the scenario's algorithm (dv or lsr)")
}
