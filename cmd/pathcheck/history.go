package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/lessonpath/pathcheck/internal/config"
	"github.com/lessonpath/pathcheck/internal/history"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history <exercise-id>",
	Short: "Show recent validation runs for an exercise",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		if !cfg.History.Enabled {
			return fmt.Errorf("history is disabled; set history.enabled: true in %s", config.GetUserConfigPath())
		}

		path := cfg.History.Path
		if path == "" {
			base := cfg.Catalog.BasePath
			if base == "" {
				base, err = os.Getwd()
				if err != nil {
					return err
				}
			}
			path = history.DefaultPath(base)
		}

		store, err := history.Open(path)
		if err != nil {
			return err
		}
		defer store.Close()

		runs, err := store.RecentRuns(args[0], historyLimit)
		if err != nil {
			return err
		}
		if len(runs) == 0 {
			fmt.Printf("no recorded runs for %s\n", args[0])
			return nil
		}

		for _, run := range runs {
			marker := color.RedString("✗")
			if run.OverallPass {
				marker = color.GreenString("✓")
			}
			fmt.Printf("%s %s  required %d/%d  optional %d/%d  %s  %s\n",
				marker,
				run.RecordedAt.Local().Format("2006-01-02 15:04"),
				run.RequiredPassed, run.RequiredTotal,
				run.OptionalPassed, run.OptionalTotal,
				run.Duration.Round(timeDisplayPrecision),
				run.RunID[:8])
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().IntVar(&historyLimit, "limit", 10, "Maximum runs to show")
}
