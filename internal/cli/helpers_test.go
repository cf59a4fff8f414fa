package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"
)

const (
	testEnglishChangelog = "# Changelog\n\n### Features\n\n* flex layout\n\n# [2.0.0](url) (2020-05-20)\n\n* old\n"
	testChineseChangelog = "# 更新日志\n\n### 新特性\n\n* 弹性布局\n\n# [2.0.0](url) (2020-05-20)\n\n* 旧内容\n"
	testReleaseNotes     = "## Changelog\n### Features\n\n* flex layout\n\n## 更新日志\n### 新特性\n\n* 弹性布局\n"
)

// resetCommandState restores every flag of the command tree to its default,
// since the commands are package-level and reused across tests.
func resetCommandState() {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}

	var walk func(c *cobra.Command)
	walk = func(c *cobra.Command) {
		c.Flags().VisitAll(reset)
		c.PersistentFlags().VisitAll(reset)
		for _, sub := range c.Commands() {
			walk(sub)
		}
	}
	walk(rootCmd)
}

// executeCommand runs the root command with args and returns stdout,
// stderr and the exit code.
func executeCommand(t *testing.T, args ...string) (string, string, int) {
	t.Helper()

	resetCommandState()
	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	code := executeContext(context.Background(), &stderr)
	return stdout.String(), stderr.String(), code
}

// setupProject creates a temp project with both changelogs, changes into it
// and clears the CI variables the commands read.
func setupProject(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("GITHUB_REF", "")
	t.Setenv("GITHUB_ENV", "")

	require.NoError(t, os.WriteFile(filepath.Join(dir, "CHANGELOG.md"), []byte(testEnglishChangelog), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "CHANGELOG.zh-cn.md"), []byte(testChineseChangelog), 0o644))
	return dir
}

// newEnvFile creates an empty CI environment file and exports GITHUB_ENV.
func newEnvFile(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "github_env")
	require.NoError(t, os.WriteFile(path, nil, 0o644))
	t.Setenv("GITHUB_ENV", path)
	return path
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func writeString(path, content string) error {
	return os.WriteFile(path, []byte(content), 0o644)
}
