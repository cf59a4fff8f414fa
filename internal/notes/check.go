package notes

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/pmezard/go-difflib/difflib"
)

// ErrOutOfDate is returned by Check when the file on disk differs from the
// generated notes.
var ErrOutOfDate = errors.New("release notes are out of date")

// Check compares the file at path with content. When they differ it returns
// ErrOutOfDate together with a unified diff from the file to content.
// A missing file counts as out of date.
func Check(path, content string) (string, error) {
	current, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("reading release notes: %w", err)
	}

	if err == nil && string(current) == content {
		return "", nil
	}

	diff, derr := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(current)),
		B:        difflib.SplitLines(content),
		FromFile: path,
		ToFile:   path + " (generated)",
		Context:  3,
	})
	if derr != nil {
		return "", fmt.Errorf("computing diff: %w", derr)
	}

	return diff, fmt.Errorf("%s: %w", path, ErrOutOfDate)
}
