// Package release derives the release version of a CI run from its Git
// reference and records it in the CI environment file.
package release

import (
	"fmt"
	"regexp"
	"strings"
)

const (
	// DefaultTagPrefix marks a reference as a tagged release.
	DefaultTagPrefix = "refs/tags/v"
	// DefaultDailyVersion is used for any reference that is not a release tag.
	DefaultDailyVersion = "latest"
	// DefaultKey is the environment variable the version is exported as.
	DefaultKey = "REL_VERSION"
)

var keyPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Options controls version resolution. Zero values fall back to the defaults.
type Options struct {
	TagPrefix    string
	DailyVersion string
}

func (o Options) tagPrefix() string {
	if o.TagPrefix == "" {
		return DefaultTagPrefix
	}
	return o.TagPrefix
}

func (o Options) dailyVersion() string {
	if o.DailyVersion == "" {
		return DefaultDailyVersion
	}
	return o.DailyVersion
}

// Result is the outcome of resolving a reference.
type Result struct {
	// Ref is the reference that was resolved, possibly empty.
	Ref string
	// Version is the suffix after the tag prefix, or the daily version.
	Version string
	// Daily is true when Ref is not a release tag.
	Daily bool
}

// Resolve maps ref to a release version. A ref starting with the tag prefix
// resolves to the remainder ("refs/tags/v1.2.3" -> "1.2.3"); anything else,
// including an empty ref, resolves to the daily version.
func Resolve(ref string, opts Options) Result {
	prefix := opts.tagPrefix()
	if ref == "" || !strings.HasPrefix(ref, prefix) {
		return Result{Ref: ref, Version: opts.dailyVersion(), Daily: true}
	}
	return Result{Ref: ref, Version: strings.TrimPrefix(ref, prefix)}
}

// EnvLine formats the result as a KEY=VALUE line for a CI environment file.
func (r Result) EnvLine(key string) string {
	return FormatEnvLine(key, r.Version)
}

// FormatEnvLine returns "key=value\n".
func FormatEnvLine(key, value string) string {
	return fmt.Sprintf("%s=%s\n", key, value)
}

// ValidKey reports whether key is usable as an environment variable name.
func ValidKey(key string) bool {
	return keyPattern.MatchString(key)
}
