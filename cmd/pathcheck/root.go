package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "pathcheck",
	Short: "Learning path project validator",
	Long: `Pathcheck validates learner project submissions against the
requirement catalog of a learning path and turns the results into
actionable feedback.

Each exercise declares requirements: files that must exist, symbols that
must be defined, builds and test suites that must succeed, documentation
and error handling that must be present. Pathcheck runs the checks,
grades required versus optional requirements, and explains every failure
with suggestions and resources.`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}
