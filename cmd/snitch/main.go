// Package main provides the entry point for the snitch CLI.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/gorewood/snitch/internal/config"
	"github.com/gorewood/snitch/internal/envfile"
	"github.com/gorewood/snitch/internal/gh"
	"github.com/gorewood/snitch/internal/output"
)

// Build info set via ldflags at build time by goreleaser.
// Example: go build -ldflags "-X main.version=1.0.0 -X main.commit=abc123 -X main.date=2024-01-01"
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// isJSONMode reads the --json persistent flag from the command hierarchy.
func isJSONMode(cmd *cobra.Command) bool {
	flag := cmd.Flags().Lookup("json")
	if flag == nil {
		// Walk up to root to find the persistent flag
		flag = cmd.Root().PersistentFlags().Lookup("json")
	}
	return flag != nil && flag.Value.String() == "true"
}

// useColor reports whether diagnostics on stderr should be styled.
func useColor(cmd *cobra.Command) bool {
	mode, _ := cmd.Flags().GetString("color")
	return output.ResolveColorMode(mode, output.IsTTY(cmd.ErrOrStderr()))
}

// newPrinter returns a printer writing the report to stdout and
// diagnostics to stderr.
func newPrinter(cmd *cobra.Command) *output.Printer {
	return output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), useColor(cmd)).
		WithStderr(cmd.ErrOrStderr())
}

// buildVersion returns the full version string including commit and date.
func buildVersion() string {
	if commit == "none" && date == "unknown" {
		return version
	}
	shortCommit := commit
	if len(commit) > 7 {
		shortCommit = commit[:7]
	}
	return fmt.Sprintf("%s (%s, %s)", version, shortCommit, date)
}

func main() {
	code := run()
	os.Exit(code)
}

func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cmd := newRootCmd()
	err := fang.Execute(ctx, cmd, fang.WithVersion(buildVersion()))
	return output.GetExitCode(err)
}

// newRootCmd creates the root command for the snitch CLI.
func newRootCmd() *cobra.Command {
	return buildRootCmd(envRunner)
}

// envRunner runs gh with GitHub settings from .env files added to its
// environment. Variables already exported always take precedence.
func envRunner(ctx context.Context, args ...string) (string, error) {
	env, err := envfile.Read(envPaths()...)
	if err != nil {
		return "", output.NewSystemErrorWithCause(err.Error(), err)
	}
	return gh.WithEnv(env)(ctx, args...)
}

// envPaths lists .env files in priority order. First match for each
// variable wins.
//
// Resolution order:
//  1. $CWD/.env.local   (per-repo override, gitignored)
//  2. $CWD/.env         (per-repo)
//  3. <config dir>/env  (global fallback)
func envPaths() []string {
	paths := []string{".env.local", ".env"}
	if dir := config.Dir(); dir != "" {
		paths = append(paths, filepath.Join(dir, "env"))
	}
	return paths
}

// buildRootCmd creates the root command with the given gh runner.
func buildRootCmd(runner gh.Runner) *cobra.Command {
	cmd := newReportCmd(runner)
	cmd.Version = buildVersion()
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	cmd.PersistentFlags().Bool("json", false, "Output in JSON format")
	cmd.PersistentFlags().String("color", output.ColorAuto, "Color diagnostics: auto, always or never")
	cmd.PersistentFlags().String("config", "", "Also read configuration from this YAML or TOML file")
	cmd.PersistentFlags().String("log-level", "warn", "Log level: debug, info, warn or error")

	cmd.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		mode, _ := cmd.Flags().GetString("color")
		if _, err := output.ParseColorMode(mode); err != nil {
			newPrinter(cmd).Error(err)
			return err
		}
		return nil
	}

	// Configure lipgloss for TTY detection
	lipgloss.SetHasDarkBackground(true)

	cmd.AddCommand(newServeCmd(runner))
	cmd.AddCommand(newReportsCmd())
	cmd.AddCommand(newConfigCmd())

	return cmd
}
