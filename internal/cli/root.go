package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const version = "0.1.0"

// Exit codes
const (
	ExitSuccess      = 0
	ExitUsageError   = 2
	ExitAuthError    = 3
	ExitRuntimeError = 4
)

var rootCmd = &cobra.Command{
	Use:   "specsum",
	Short: "Spec-aware PR review summarizer",
	Long: "Specsum summarizes pull-request and local diffs with an LLM, matching each\n" +
		"changed file against the project's specification document so reviewers see\n" +
		"the relevant spec section next to every summary.",
}

// Run executes the root command and returns an exit code.
func Run() int {
	rootCmd.AddCommand(prCmd)
	rootCmd.AddCommand(localCmd)
	rootCmd.AddCommand(specCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(modelsCmd)
	rootCmd.AddCommand(cacheCmd)
	rootCmd.AddCommand(versionCmd)

	if err := rootCmd.Execute(); err != nil {
		// Cobra already prints the error
		return ExitUsageError
	}

	return exitCode
}

// exitCode is set by command handlers to control the process exit code.
var exitCode = ExitSuccess

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print specsum version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(os.Stdout, "specsum version %s\n", version)
	},
}
