package changelog

import (
	"regexp"
	"strings"
)

// headingVersionPattern matches the bracketed version of a heading such as
// "# [2.0.0](https://example.com/compare/v1.3.0...v2.0.0) (2020-05-20)".
var headingVersionPattern = regexp.MustCompile(`^#+\s*\[([^\]]+)\]`)

// Headings returns every heading line in the document body, newest first.
func Headings(doc *Document, marker string) []string {
	if marker == "" {
		marker = DefaultMarker
	}

	var headings []string
	for _, line := range doc.Body() {
		if strings.HasPrefix(line, marker) {
			headings = append(headings, line)
		}
	}
	return headings
}

// HeadingVersion extracts the bracketed version from a heading line.
// Returns an empty string if the line has no bracketed version.
func HeadingVersion(heading string) string {
	m := headingVersionPattern.FindStringSubmatch(heading)
	if m == nil {
		return ""
	}
	return strings.TrimPrefix(strings.TrimSpace(m[1]), "v")
}

// PreviousVersion returns the version of the entry that follows the latest
// section, or an empty string if there is none.
func (s Section) PreviousVersion() string {
	if !s.Terminated {
		return ""
	}
	return HeadingVersion(s.Heading)
}
