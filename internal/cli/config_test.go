package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/lc-soft/lcui-release/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigShowCmd(t *testing.T) {
	tests := map[string]struct {
		setup    func(t *testing.T, dir string)
		contains []string
	}{
		"defaults": {
			contains: []string{
				"output: release-notes.md",
				"path: CHANGELOG.zh-cn.md",
				"key: REL_VERSION",
				"log_level: info",
			},
		},
		"project file": {
			setup: func(t *testing.T, dir string) {
				require.NoError(t, os.WriteFile(filepath.Join(dir, ".lcui-release.yml"), []byte("notes:\n  output: dist/NOTES.md\n"), 0o644))
			},
			contains: []string{"output: dist/NOTES.md", "daily: latest"},
		},
		"environment": {
			setup: func(t *testing.T, dir string) {
				t.Setenv("LCUI_RELEASE_VERSION__DAILY", "nightly")
			},
			contains: []string{"daily: nightly"},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			dir := setupProject(t)
			if tt.setup != nil {
				tt.setup(t, dir)
			}

			stdout, stderr, code := executeCommand(t, "config", "show")
			require.Equal(t, ExitSuccess, code, "stderr: %s", stderr)
			for _, want := range tt.contains {
				assert.Contains(t, stdout, want)
			}
		})
	}
}

func TestConfigShowCmd_InvalidConfig(t *testing.T) {
	tests := map[string]struct {
		content string
		errMsg  string
	}{
		"bad yaml": {
			content: "notes: [unclosed\n",
			errMsg:  "loading configuration",
		},
		"no sources": {
			content: "notes:\n  sources: []\n",
			errMsg:  "notes.sources",
		},
		"bad key": {
			content: "version:\n  key: 1BAD\n",
			errMsg:  "version.key",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			dir := setupProject(t)
			require.NoError(t, os.WriteFile(filepath.Join(dir, ".lcui-release.yml"), []byte(tt.content), 0o644))

			_, stderr, code := executeCommand(t, "config", "show")
			assert.Equal(t, ExitMissingPrerequisite, code)
			assert.Contains(t, stderr, "Configuration Error")
			assert.Contains(t, stderr, tt.errMsg)
		})
	}
}

func TestConfigPathFlag_MissingFile(t *testing.T) {
	setupProject(t)

	_, stderr, code := executeCommand(t, "--config", "missing.yml", "notes")
	assert.Equal(t, ExitMissingPrerequisite, code)
	assert.Contains(t, stderr, "missing.yml")
}

func TestConfigInitCmd(t *testing.T) {
	t.Run("writes template", func(t *testing.T) {
		dir := setupProject(t)

		stdout, stderr, code := executeCommand(t, "config", "init")
		require.Equal(t, ExitSuccess, code, "stderr: %s", stderr)
		assert.Contains(t, stdout, "created")
		assert.Equal(t, config.GetDefaultConfigTemplate(), readFile(t, filepath.Join(dir, ".lcui-release.yml")))
	})

	t.Run("refuses to overwrite", func(t *testing.T) {
		dir := setupProject(t)
		path := filepath.Join(dir, ".lcui-release.yml")
		require.NoError(t, writeString(path, "log_level: debug\n"))

		_, stderr, code := executeCommand(t, "config", "init")
		assert.Equal(t, ExitInvalidArguments, code)
		assert.Contains(t, stderr, "already exists")
		assert.Equal(t, "log_level: debug\n", readFile(t, path))
	})

	t.Run("force overwrites", func(t *testing.T) {
		dir := setupProject(t)
		path := filepath.Join(dir, ".lcui-release.yml")
		require.NoError(t, writeString(path, "log_level: debug\n"))

		_, _, code := executeCommand(t, "config", "init", "--force")
		require.Equal(t, ExitSuccess, code)
		assert.Equal(t, config.GetDefaultConfigTemplate(), readFile(t, path))
	})

	t.Run("stdout", func(t *testing.T) {
		dir := setupProject(t)

		stdout, _, code := executeCommand(t, "config", "init", "--stdout")
		require.Equal(t, ExitSuccess, code)
		assert.Equal(t, config.GetDefaultConfigTemplate(), stdout)
		assert.NoFileExists(t, filepath.Join(dir, ".lcui-release.yml"))
	})
}
