package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lessonpath/pathcheck/internal/config"
)

var listLevel string

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List levels and exercises in the catalog",
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

		levels := env.catalog.LevelNames()
		if listLevel != "" {
			if _, ok := env.catalog.LevelExercises(listLevel); !ok {
				return fmt.Errorf("unknown level %q", listLevel)
			}
			levels = []string{listLevel}
		}

		for _, name := range levels {
			exercises, _ := env.catalog.LevelExercises(name)
			fmt.Fprintf(os.Stdout, "%s:\n", name)
			for _, ex := range exercises {
				required := 0
				for _, req := range ex.Requirements {
					if req.Required {
						required++
					}
				}
				fmt.Fprintf(os.Stdout, "  %-28s %d requirements (%d required)\n",
					ex.ID, len(ex.Requirements), required)
			}
		}
		return nil
	},
}

func init() {
	listCmd.Flags().StringVar(&listLevel, "level", "", "Only list exercises in this level")
}
