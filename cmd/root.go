package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	verbose bool
	logFile string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "routesim",
	Short: "Shortest-path routing table simulator",
	Long: `Routesim computes per-node routing tables for a weighted undirected
topology, replays a scripted sequence of topology changes, and traces how
application messages would be forwarded hop by hop at every stable state.

Two solver families are available: distance-vector (Bellman-Ford with split
horizon) and link-state (Dijkstra over a link-state database).`,
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
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Also write logs to this file")
}
