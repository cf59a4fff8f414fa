package changelog

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// ErrUnterminatedSection is returned in strict mode when no heading marker
// follows the latest section.
var ErrUnterminatedSection = errors.New("latest section has no ending version heading")

// maxLineSize bounds a single changelog line.
const maxLineSize = 1024 * 1024

// Load reads a changelog file from the given path.
// A missing file yields an error wrapping fs.ErrNotExist.
func Load(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening changelog file: %w", err)
	}
	defer f.Close()

	doc, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	doc.Path = path
	return doc, nil
}

// Parse splits r into lines. Both "\n" and "\r\n" terminators are accepted.
func Parse(r io.Reader) (*Document, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var lines []string
	for scanner.Scan() {
		lines = append(lines, strings.TrimSuffix(scanner.Text(), "\r"))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scanning changelog: %w", err)
	}

	return &Document{Lines: lines}, nil
}

// FromLines builds a document from already split lines.
func FromLines(lines []string) *Document {
	return &Document{Lines: lines}
}

// LatestSection returns the lines between the header and the first heading
// marker. The marker line itself is excluded.
//
// When no marker follows, the rest of the body is returned with
// Terminated set to false, unless opts.Strict is set, in which case
// ErrUnterminatedSection is returned.
func LatestSection(doc *Document, opts Options) (Section, error) {
	marker := opts.marker()
	body := doc.Body()

	for i, line := range body {
		if strings.HasPrefix(line, marker) {
			return Section{
				Lines:      body[:i],
				Heading:    line,
				Terminated: true,
			}, nil
		}
	}

	if opts.Strict {
		if doc.Path != "" {
			return Section{}, fmt.Errorf("%s: %w", doc.Path, ErrUnterminatedSection)
		}
		return Section{}, ErrUnterminatedSection
	}

	return Section{Lines: body}, nil
}

// ExtractLatest is a convenience wrapper that loads path and returns the
// latest section.
func ExtractLatest(path string, opts Options) (Section, error) {
	doc, err := Load(path)
	if err != nil {
		return Section{}, err
	}
	return LatestSection(doc, opts)
}
