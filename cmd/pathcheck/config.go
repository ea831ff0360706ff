package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/lessonpath/pathcheck/internal/config"
)

// timeDisplayPrecision rounds durations in CLI output.
const timeDisplayPrecision = time.Millisecond

var configCmd = &cobra.Command{
	Use:   "config [key]",
	Short: "Show configuration",
	Long: fmt.Sprintf(`View the effective pathcheck configuration.

Without arguments, displays all values after merging defaults, the user
config, the project config, and environment variables.
With one argument, displays just that key.

Configuration is stored at %s
Project-specific overrides can be placed in .pathcheck.yaml`, config.GetUserConfigPath()),
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		values := configValues(cfg)
		if len(args) == 1 {
			value, ok := values[args[0]]
			if !ok {
				return fmt.Errorf("unknown config key %q", args[0])
			}
			fmt.Println(value)
			return nil
		}

		for _, key := range configKeys {
			fmt.Fprintf(os.Stdout, "%s: %s\n", key, values[key])
		}
		return nil
	},
}

// configKeys fixes the display order.
var configKeys = []string{
	"catalog.path",
	"catalog.base_path",
	"toolchain.build_cmd",
	"toolchain.test_cmd",
	"checks.timeout",
	"checks.tail_lines",
	"run.workers",
	"run.deadline",
	"templates.path",
	"history.enabled",
	"history.path",
}

func configValues(cfg *config.Config) map[string]string {
	display := func(s string) string {
		if s == "" {
			return "(not set)"
		}
		return s
	}
	return map[string]string{
		"catalog.path":        display(cfg.Catalog.Path),
		"catalog.base_path":   display(cfg.Catalog.BasePath),
		"toolchain.build_cmd": display(strings.Join(cfg.Toolchain.BuildCmd, " ")),
		"toolchain.test_cmd":  display(strings.Join(cfg.Toolchain.TestCmd, " ")),
		"checks.timeout":      cfg.Checks.Timeout.String(),
		"checks.tail_lines":   fmt.Sprintf("%d", cfg.Checks.TailLines),
		"run.workers":         fmt.Sprintf("%d", cfg.Run.Workers),
		"run.deadline":        cfg.Run.Deadline.String(),
		"templates.path":      display(cfg.Templates.Path),
		"history.enabled":     fmt.Sprintf("%t", cfg.History.Enabled),
		"history.path":        display(cfg.History.Path),
	}
}
