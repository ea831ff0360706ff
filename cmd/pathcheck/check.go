package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/lessonpath/pathcheck/internal/config"
	"github.com/lessonpath/pathcheck/internal/report"
)

var checkJSON bool

var checkCmd = &cobra.Command{
	Use:   "check <exercise-id>",
	Short: "Probe project structure without running builds or tests",
	Long: `Check runs a fast structure-only readiness probe: project directory,
package manifest, source directory, and entry point. No processes are
spawned, so it answers in milliseconds whether a project is far enough
along to be worth a full validation.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		env, err := newEnvironment(cfg)
		if err != nil {
			return err
		}
		defer env.close()

		readiness, err := env.catRunner.Readiness(args[0])
		if err != nil {
			return err
		}

		if checkJSON {
			if err := report.WriteJSON(os.Stdout, readiness); err != nil {
				return err
			}
		} else {
			report.RenderReadiness(os.Stdout, readiness)
		}

		if !readiness.Ready {
			os.Exit(1)
		}
		return nil
	},
}

func init() {
	checkCmd.Flags().BoolVar(&checkJSON, "json", false, "Emit the readiness result as JSON")
}
