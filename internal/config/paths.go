package config

// ProjectConfigPath returns the path to the YAML project config file,
// relative to the current directory.
func ProjectConfigPath() string {
	return ".lcui-release.yml"
}

// ProjectJSONConfigPath returns the path to the JSON project config file.
// It is read only when no YAML config exists.
func ProjectJSONConfigPath() string {
	return ".lcui-release.json"
}
