// Package cli implements the lcui-release command tree.
package cli

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/lc-soft/lcui-release/internal/config"
	clierrors "github.com/lc-soft/lcui-release/internal/errors"
	"github.com/lc-soft/lcui-release/internal/git"
	"github.com/lc-soft/lcui-release/internal/logging"
	"github.com/lc-soft/lcui-release/internal/output"
	"github.com/spf13/cobra"
)

// Command group IDs
const (
	GroupRelease = "release"
	GroupUtility = "utility"
)

var (
	configPath string
	debugFlag  bool
	plainFlag  bool
)

// logger is rebuilt for every invocation by setupRoot and loadConfig.
var logger = slog.New(slog.NewTextHandler(io.Discard, nil))

var rootCmd = &cobra.Command{
	Use:   "lcui-release",
	Short: "Release automation helpers for the LCUI CI pipeline",
	Long: `lcui-release prepares the artifacts a release job needs.

It builds the combined release notes from the latest section of the English
and Chinese changelogs, and it derives the release version from the Git
reference of the CI run, exporting it for later steps.

Configuration is loaded with the following priority (highest to lowest):
  1. Environment variables (LCUI_RELEASE_*)
  2. Project config (.lcui-release.yml, or .lcui-release.json)
  3. Built-in defaults`,
	Example: `  # Write release-notes.md from CHANGELOG.md and CHANGELOG.zh-cn.md
  lcui-release notes

  # Export REL_VERSION to $GITHUB_ENV
  lcui-release resolve-version`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setupRoot,
}

func init() {
	rootCmd.AddGroup(
		&cobra.Group{ID: GroupRelease, Title: "Release Commands:"},
		&cobra.Group{ID: GroupUtility, Title: "Utility Commands:"},
	)

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to project config file (default: .lcui-release.yml)")
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&plainFlag, "plain", false, "Disable colored output")

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return clierrors.NewArgumentErrorWithUsage(err.Error(), cmd.UseLine())
	})
}

// Execute runs the root command and returns the process exit code.
func Execute() int {
	return executeContext(context.Background(), rootCmd.ErrOrStderr())
}

func executeContext(ctx context.Context, stderr io.Writer) int {
	err := rootCmd.ExecuteContext(ctx)
	return reportError(stderr, err)
}

// reportError prints err and maps it to an exit code.
func reportError(w io.Writer, err error) int {
	if err == nil {
		return ExitSuccess
	}

	clierrors.Fprint(w, err, !color.NoColor)
	return ExitCode(err)
}

// setupRoot configures color and logging from the global flags.
func setupRoot(cmd *cobra.Command, _ []string) error {
	output.ConfigureColor(cmd.OutOrStdout(), plainFlag)
	configureLogger(cmd, "", "")
	return nil
}

// configureLogger builds the logger for this invocation. --debug wins over
// the configured level.
func configureLogger(cmd *cobra.Command, level, format string) {
	if debugFlag {
		level = "debug"
	}
	stderr := cmd.ErrOrStderr()
	logger = logging.New(stderr, logging.Options{
		Level: level,
		Plain: plainFlag || os.Getenv("NO_COLOR") != "" || !output.IsTerminal(stderr),
		JSON:  format == "json",
	})
	git.SetDebugLogger(logging.Printf(logger))
}

// loadConfig loads the configuration for commands that need it and applies
// its logging settings.
func loadConfig(cmd *cobra.Command) (*config.Configuration, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, clierrors.InvalidConfig(err)
	}

	configureLogger(cmd, cfg.LogLevel, cfg.LogFormat)
	logger.Debug("configuration loaded", "config", configPath)
	return cfg, nil
}
