// Package cli implements the mfo-runner command tree.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when the `mfo-runner` binary is called
// without any subcommands. It provides the entry point for the entire CLI
// application.
var rootCmd = &cobra.Command{
	Use:   "mfo-runner",
	Short: "A CLI tool for running MFO Shield risk jobs without the HTTP service.",
	Long: `mfo-runner is a command-line interface for the MFO Shield risk service.
It can run the full four-agent orchestration pipeline and print the aggregated
result, or compute a single weighted risk score locally.`,
}

// Execute is the main entry point for the CLI application.
// It adds all child commands to the root command, parses the command-line
// arguments, and executes the appropriate command. If an error occurs, it
// prints the error and exits.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
