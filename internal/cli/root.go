package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "0.1.0"

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:     "randbench",
	Short:   "A micro-benchmark harness for random string generation",
	Version: version,
	Long: `Randbench measures random string generation strategies the way go test
does: calibrated iteration counts, per-iteration timing, allocation
reporting, throughput, and custom metrics, plus latency percentiles and
comparable JSON reports.`,
	Run: func(cmd *cobra.Command, args []string) {
		// If no subcommand is provided, print help
		cmd.Help()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	if err := RootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return err
	}
	return nil
}

func init() {
	// Add subcommands to root command
	RootCmd.AddCommand(genCmd)
	RootCmd.AddCommand(runCmd)
	RootCmd.AddCommand(compareCmd)
}
