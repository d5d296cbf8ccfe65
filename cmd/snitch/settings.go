package main

import (
	"errors"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/gorewood/snitch/internal/config"
	"github.com/gorewood/snitch/internal/output"
)

// reportFlags holds the flags that override configuration values.
type reportFlags struct {
	fileType  string
	maxLength int
	crop      bool
	wrap      bool
	heading   string
	noHeading bool
	repo      string
	state     string
	limit     int
}

// register binds the override flags to fs. Defaults are only shown in help;
// a flag changes the configuration when set explicitly.
func (f *reportFlags) register(fs *pflag.FlagSet) {
	defaults := config.Default()
	fs.StringVarP(&f.fileType, "file-type", "t", defaults.FileType, "Output format: txt or md")
	fs.IntVarP(&f.maxLength, "max-length", "l", defaults.MaxLength, "Maximum line width for titles")
	fs.BoolVar(&f.crop, "crop", false, "Crop titles that overflow --max-length")
	fs.BoolVar(&f.wrap, "wrap", false, "Wrap titles that overflow --max-length")
	fs.StringVar(&f.heading, "heading", "", "Document heading")
	fs.BoolVar(&f.noHeading, "no-heading", false, "Omit the document heading")
	fs.StringVarP(&f.repo, "repo", "R", "", "Repository as [HOST/]OWNER/NAME (default: current directory)")
	fs.StringVarP(&f.state, "state", "s", defaults.State, "Issue state: open, closed or all")
	fs.IntVarP(&f.limit, "limit", "L", defaults.Limit, "Maximum number of issues to fetch")
}

// apply copies explicitly set flags onto cfg.
func (f *reportFlags) apply(fs *pflag.FlagSet, cfg *config.Config) {
	if fs.Changed("file-type") {
		cfg.FileType = f.fileType
	}
	if fs.Changed("max-length") {
		cfg.MaxLength = f.maxLength
	}
	if fs.Changed("crop") {
		cfg.Crop = f.crop
	}
	if fs.Changed("wrap") {
		cfg.Wrap = f.wrap
	}
	if fs.Changed("heading") {
		cfg.Heading = f.heading
	}
	if fs.Changed("no-heading") {
		cfg.NoHeading = f.noHeading
	}
	if fs.Changed("repo") {
		cfg.Repo = f.repo
	}
	if fs.Changed("state") {
		cfg.State = f.state
	}
	if fs.Changed("limit") {
		cfg.Limit = f.limit
	}
}

// loadConfig merges the config files visible to cmd.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	explicit, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(config.Paths(explicit)...)
	if err != nil {
		return config.Config{}, output.NewUserErrorWithCause(err.Error(), err)
	}
	return cfg, nil
}

// newLogger builds the stderr logger from --log-level. debug forces the
// debug level.
func newLogger(cmd *cobra.Command, debug bool) *slog.Logger {
	levelName, _ := cmd.Flags().GetString("log-level")
	level := output.ParseLevel(levelName)
	if debug {
		level = slog.LevelDebug
	}
	return output.NewLogger(cmd.ErrOrStderr(), level)
}

// userError marks err as a user error unless it already carries an exit
// code. Rendering and validation failures all stem from input or settings.
func userError(err error) error {
	var exitErr *output.ExitError
	if errors.As(err, &exitErr) {
		return err
	}
	return output.NewUserErrorWithCause(err.Error(), err)
}
