package config

// GetDefaultConfigTemplate returns a commented project config with every
// option at its default value.
func GetDefaultConfigTemplate() string {
	return `# lcui-release configuration
# Environment variables override these values, e.g. LCUI_RELEASE_NOTES__OUTPUT

# Release-notes extractor
notes:
  output: release-notes.md              # Overwritten on every run
  marker: "# ["                         # Line prefix of a version heading
  strict: false                         # Fail when a changelog has no older heading
  sources:
    - path: CHANGELOG.md
      header: "## Changelog"
    - path: CHANGELOG.zh-cn.md
      header: "## 更新日志"

# Release-version resolver
version:
  ref_env: GITHUB_REF                   # Variable holding the Git reference
  env_file_env: GITHUB_ENV              # Variable holding the CI environment file path
  tag_prefix: refs/tags/v               # References with this prefix are releases
  daily: latest                         # Version used for every other reference
  key: REL_VERSION                      # Exported variable name
  detect_tag: false                     # Look for a tag at HEAD when the reference is empty

log_level: info                         # debug | info | warn | error
log_format: text                        # text | json
`
}

// GetDefaults returns the default configuration values keyed by dotted path.
func GetDefaults() map[string]interface{} {
	return map[string]interface{}{
		"notes.output": "release-notes.md",
		"notes.marker": "# [",
		"notes.strict": false,
		"notes.sources": []interface{}{
			map[string]interface{}{"path": "CHANGELOG.md", "header": "## Changelog"},
			map[string]interface{}{"path": "CHANGELOG.zh-cn.md", "header": "## 更新日志"},
		},
		"version.ref_env":      "GITHUB_REF",
		"version.env_file_env": "GITHUB_ENV",
		"version.tag_prefix":   "refs/tags/v",
		"version.daily":        "latest",
		"version.key":          "REL_VERSION",
		"version.detect_tag":   false,
		"log_level":            "info",
		"log_format":           "text",
	}
}
