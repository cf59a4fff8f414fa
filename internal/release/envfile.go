package release

import (
	"fmt"
	"os"
	"strings"
)

// AppendEnv appends "key=value\n" to the CI environment file at path.
// The file must already exist; it belongs to the CI runtime. Lines are not
// deduplicated, so repeated calls accumulate.
func AppendEnv(path, key, value string) error {
	if path == "" {
		return fmt.Errorf("environment file path is empty")
	}
	if !ValidKey(key) {
		return fmt.Errorf("invalid environment variable name %q", key)
	}
	if strings.ContainsAny(value, "\r\n") {
		return fmt.Errorf("value for %s contains a line break", key)
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0)
	if err != nil {
		return fmt.Errorf("opening environment file: %w", err)
	}

	if _, err := f.WriteString(FormatEnvLine(key, value)); err != nil {
		f.Close()
		return fmt.Errorf("writing environment file: %w", err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("closing environment file: %w", err)
	}
	return nil
}
