package changelog

import "strings"

// DefaultMarker is the line prefix that opens a version entry.
const DefaultMarker = "# ["

// headerLines is the number of leading lines (title + padding) that never
// belong to a section.
const headerLines = 2

// Document is a changelog split into lines with terminators removed.
type Document struct {
	// Path is where the document was loaded from, if anywhere.
	Path  string
	Lines []string
}

// Body returns the lines after the title and padding.
func (d *Document) Body() []string {
	if len(d.Lines) <= headerLines {
		return nil
	}
	return d.Lines[headerLines:]
}

// Section is the most recent release entry of a changelog.
type Section struct {
	Lines []string
	// Heading is the marker line that ended the section; empty when the
	// document had no further entry.
	Heading string
	// Terminated reports whether a heading marker ended the section.
	Terminated bool
}

// String joins the section lines with newlines.
func (s Section) String() string {
	return strings.Join(s.Lines, "\n")
}

// IsEmpty returns true if the section has no non-blank lines.
func (s Section) IsEmpty() bool {
	for _, line := range s.Lines {
		if strings.TrimSpace(line) != "" {
			return false
		}
	}
	return true
}

// Options controls how the latest section is located.
type Options struct {
	// Marker overrides DefaultMarker.
	Marker string
	// Strict makes a section with no ending marker an error instead of
	// returning the rest of the document.
	Strict bool
}

func (o Options) marker() string {
	if o.Marker == "" {
		return DefaultMarker
	}
	return o.Marker
}
