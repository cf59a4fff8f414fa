package cli

import (
	"fmt"
	"os"

	"github.com/lc-soft/lcui-release/internal/config"
	clierrors "github.com/lc-soft/lcui-release/internal/errors"
	"github.com/lc-soft/lcui-release/internal/git"
	"github.com/lc-soft/lcui-release/internal/output"
	"github.com/lc-soft/lcui-release/internal/release"
	"github.com/spf13/cobra"
)

var (
	resolveRefFlag       string
	resolvePrintFlag     bool
	resolveDetectTagFlag bool
)

var resolveVersionCmd = &cobra.Command{
	Use:   "resolve-version",
	Short: "Export the release version derived from the Git reference",
	Long: `Derive the release version from the Git reference of the CI run and
append it to the CI environment file.

A reference of the form refs/tags/v<version> resolves to <version>. Any
other reference, or none at all, is a daily build and resolves to "latest".
The result is appended as REL_VERSION=<version> to the file named by
$GITHUB_ENV, which the CI runtime creates. Running the command twice appends
two lines.`,
	Example: `  # In a GitHub Actions step
  lcui-release resolve-version

  # Resolve an explicit reference and print the line
  lcui-release resolve-version --ref refs/tags/v2.0.1 --print

  # Fall back to a tag on HEAD when GITHUB_REF is empty
  lcui-release resolve-version --detect-tag`,
	Args: cobra.NoArgs,
	RunE: runResolveVersion,
}

func init() {
	resolveVersionCmd.GroupID = GroupRelease
	rootCmd.AddCommand(resolveVersionCmd)

	resolveVersionCmd.Flags().StringVar(&resolveRefFlag, "ref", "", "Git reference to resolve (default: $GITHUB_REF)")
	resolveVersionCmd.Flags().BoolVar(&resolvePrintFlag, "print", false, "Print the KEY=VALUE line instead of appending it")
	resolveVersionCmd.Flags().BoolVar(&resolveDetectTagFlag, "detect-tag", false, "Use a release tag on HEAD when no reference is given")
}

func runResolveVersion(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	vc := cfg.Version

	ref := resolveRef(vc)
	result := release.Resolve(ref, release.Options{
		TagPrefix:    vc.TagPrefix,
		DailyVersion: vc.Daily,
	})

	switch {
	case result.Daily && result.Ref == "":
		logger.Info("no Git reference given, treating this as a daily build",
			"env", vc.RefEnv, "version", result.Version)
	case result.Daily:
		logger.Info(fmt.Sprintf("%s is not a release tag, treating this as a daily build", result.Ref),
			"version", result.Version)
	default:
		logger.Debug("resolved release version", "ref", result.Ref, "version", result.Version)
	}

	if resolvePrintFlag {
		fmt.Fprint(cmd.OutOrStdout(), result.EnvLine(vc.Key))
		return nil
	}

	envPath := os.Getenv(vc.EnvFileEnv)
	if envPath == "" {
		return clierrors.MissingEnvFileVar(vc.EnvFileEnv)
	}

	if err := release.AppendEnv(envPath, vc.Key, result.Version); err != nil {
		return clierrors.EnvFileUnwritable(envPath, err)
	}

	output.PrintSuccess(cmd.OutOrStdout(), fmt.Sprintf("exported %s=%s to", vc.Key, result.Version), envPath)
	return nil
}

// resolveRef returns the reference to resolve: --ref, then the configured
// environment variable, then (with tag detection on) a tag on HEAD.
func resolveRef(vc config.VersionConfig) string {
	if resolveRefFlag != "" {
		return resolveRefFlag
	}
	if ref := os.Getenv(vc.RefEnv); ref != "" {
		return ref
	}
	if !vc.DetectTag && !resolveDetectTagFlag {
		return ""
	}
	if !git.IsGitRepository("") {
		logger.Warn("tag detection skipped: working directory is not a Git repository")
		return ""
	}

	ref, err := git.HeadTagRef("", vc.TagPrefix)
	if err != nil {
		logger.Warn("tag detection failed", "error", err)
		return ""
	}
	if ref != "" {
		logger.Info("using tag found on HEAD", "ref", ref)
	}
	return ref
}
