// Package cmd implements the camodlib command-line program on top of
// github.com/spf13/cobra.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Persistent/global flags.
	configFile string
	seed       int64
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "camodlib",
	Short: "camodlib: stochastic simulator for calcium-activated signaling reactions",
	Long: `camodlib runs Gillespie's Direct Method stochastic simulation
algorithm against a set of calcium-activated signaling protein reaction
models, driven by an external calcium input trace.
For details on a specific command, use: camodlib [command] --help`,
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Path to a TOML configuration file.")
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", 1, "Seed for the random number generator.")
}
