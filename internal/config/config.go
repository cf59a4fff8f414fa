// Package config provides layered configuration for lcui-release using koanf.
// Configuration is loaded with priority: environment variables (LCUI_RELEASE_*)
// > project config (.lcui-release.yml or .lcui-release.json) > defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is the prefix of environment variables that override config keys.
// A double underscore separates nested keys:
// LCUI_RELEASE_VERSION__TAG_PREFIX -> version.tag_prefix
const EnvPrefix = "LCUI_RELEASE_"

// Configuration represents the lcui-release configuration
type Configuration struct {
	Notes   NotesConfig   `koanf:"notes" yaml:"notes" json:"notes"`
	Version VersionConfig `koanf:"version" yaml:"version" json:"version"`

	// LogLevel is one of debug, info, warn, error. --debug overrides it.
	LogLevel string `koanf:"log_level" yaml:"log_level" json:"log_level" validate:"omitempty,oneof=debug info warn error"`
	// LogFormat is text or json.
	LogFormat string `koanf:"log_format" yaml:"log_format" json:"log_format" validate:"omitempty,oneof=text json"`
}

// NotesConfig configures the release-notes extractor.
type NotesConfig struct {
	// Output is overwritten on every run.
	Output string `koanf:"output" yaml:"output" json:"output" validate:"required"`
	// Marker is the line prefix of a version heading.
	Marker string `koanf:"marker" yaml:"marker" json:"marker" validate:"required"`
	// Strict fails when a changelog has no heading after its latest section.
	Strict  bool           `koanf:"strict" yaml:"strict" json:"strict"`
	Sources []SourceConfig `koanf:"sources" yaml:"sources" json:"sources" validate:"min=1,dive"`
}

// SourceConfig is one changelog and the header placed above its section.
type SourceConfig struct {
	Path   string `koanf:"path" yaml:"path" json:"path" validate:"required"`
	Header string `koanf:"header" yaml:"header" json:"header"`
}

// VersionConfig configures the release-version resolver.
type VersionConfig struct {
	// RefEnv names the variable holding the Git reference.
	RefEnv string `koanf:"ref_env" yaml:"ref_env" json:"ref_env" validate:"required"`
	// EnvFileEnv names the variable holding the CI environment file path.
	EnvFileEnv string `koanf:"env_file_env" yaml:"env_file_env" json:"env_file_env" validate:"required"`
	TagPrefix  string `koanf:"tag_prefix" yaml:"tag_prefix" json:"tag_prefix" validate:"required"`
	Daily      string `koanf:"daily" yaml:"daily" json:"daily" validate:"required"`
	Key        string `koanf:"key" yaml:"key" json:"key" validate:"required,envkey"`
	// DetectTag looks for a tag at HEAD when the reference is empty.
	DetectTag bool `koanf:"detect_tag" yaml:"detect_tag" json:"detect_tag"`
}

// LoadOptions configures how configuration is loaded
type LoadOptions struct {
	// ProjectConfigPath overrides the project config lookup. The file must exist.
	ProjectConfigPath string
	// SkipEnv ignores LCUI_RELEASE_* variables.
	SkipEnv bool
}

// Load loads configuration from defaults, the project config and the environment.
func Load(projectConfigPath string) (*Configuration, error) {
	return LoadWithOptions(LoadOptions{ProjectConfigPath: projectConfigPath})
}

// LoadWithOptions loads configuration with custom options
func LoadWithOptions(opts LoadOptions) (*Configuration, error) {
	k := koanf.New(".")

	loadDefaults(k)

	if err := loadProjectConfig(k, opts.ProjectConfigPath); err != nil {
		return nil, err
	}

	if !opts.SkipEnv {
		if err := loadEnvironmentConfig(k); err != nil {
			return nil, err
		}
	}

	return finalizeConfig(k)
}

// loadDefaults applies default configuration values
func loadDefaults(k *koanf.Koanf) {
	for key, value := range GetDefaults() {
		k.Set(key, value)
	}
}

// loadProjectConfig loads the project config file. An explicit path must
// exist; otherwise YAML is preferred over JSON and neither is required.
func loadProjectConfig(k *koanf.Koanf, customPath string) error {
	if customPath != "" {
		if !fileExists(customPath) {
			return fmt.Errorf("config file %s does not exist", customPath)
		}
		return loadConfigFile(k, customPath)
	}

	for _, path := range []string{ProjectConfigPath(), ProjectJSONConfigPath()} {
		if fileExists(path) {
			return loadConfigFile(k, path)
		}
	}
	return nil
}

// loadConfigFile picks the parser from the file extension.
func loadConfigFile(k *koanf.Koanf, path string) error {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		if err := k.Load(file.Provider(path), json.Parser()); err != nil {
			return fmt.Errorf("failed to load project config %s: %w", path, err)
		}
		return nil
	}

	if err := ValidateYAMLSyntax(path); err != nil {
		return fmt.Errorf("validating YAML syntax for project config: %w", err)
	}
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return fmt.Errorf("failed to load project config %s: %w", path, err)
	}
	return nil
}

// loadEnvironmentConfig loads environment variable overrides
func loadEnvironmentConfig(k *koanf.Koanf) error {
	if err := k.Load(env.Provider(EnvPrefix, ".", envTransform), nil); err != nil {
		return fmt.Errorf("failed to load environment config: %w", err)
	}
	return nil
}

// finalizeConfig unmarshals and validates the merged configuration
func finalizeConfig(k *koanf.Koanf) (*Configuration, error) {
	var cfg Configuration
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := ValidateConfigValues(&cfg, "config"); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// fileExists returns true if the file exists and is readable
func fileExists(path string) bool {
	if path == "" {
		return false
	}
	_, err := os.Stat(path)
	return err == nil
}

// envTransform converts environment variable names to config keys
// Example: LCUI_RELEASE_NOTES__OUTPUT -> notes.output
func envTransform(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(key, "__", ".")
}
