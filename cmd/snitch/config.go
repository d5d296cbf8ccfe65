package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/gorewood/snitch/internal/config"
	"github.com/gorewood/snitch/internal/output"
)

// newConfigCmd creates the config command.
func newConfigCmd() *cobra.Command {
	var pathsFlag bool
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Long: `Print the configuration merged from defaults and config files as YAML.

Files are read in this order, later ones winning key by key:
  <config dir>/config.yaml
  ./.snitch.yaml
  the file given with --config

Examples:
  snitch config           # effective settings
  snitch config --paths   # which files are consulted
  snitch config > ~/.config/snitch/config.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			printer := newPrinter(cmd)
			if pathsFlag {
				return printConfigPaths(cmd, printer)
			}

			cfg, err := loadConfig(cmd)
			if err != nil {
				printer.Error(err)
				return err
			}
			if printer.IsJSON() {
				return printer.WriteJSON(cfg)
			}

			doc, err := cfg.YAML()
			if err != nil {
				sysErr := output.NewSystemErrorWithCause(err.Error(), err)
				printer.Error(sysErr)
				return sysErr
			}
			printer.Print("%s", doc)
			return nil
		},
	}
	cmd.Flags().BoolVar(&pathsFlag, "paths", false, "List the config files consulted and whether they exist")
	return cmd
}

// printConfigPaths lists config file candidates in precedence order.
func printConfigPaths(cmd *cobra.Command, printer *output.Printer) error {
	explicit, _ := cmd.Flags().GetString("config")
	paths := config.Paths(explicit)

	type pathStatus struct {
		Path   string `json:"path"`
		Exists bool   `json:"exists"`
	}
	statuses := make([]pathStatus, 0, len(paths))
	for _, path := range paths {
		_, err := os.Stat(path)
		statuses = append(statuses, pathStatus{Path: path, Exists: err == nil})
	}

	if printer.IsJSON() {
		return printer.WriteJSON(map[string]any{"paths": statuses})
	}

	rows := make([][]string, 0, len(statuses))
	for _, status := range statuses {
		state := "missing"
		if status.Exists {
			state = "found"
		}
		rows = append(rows, []string{status.Path, state})
	}
	printer.Table([]string{"PATH", "STATUS"}, rows)
	return nil
}
