// Package notes builds the combined release-notes document from the latest
// section of each configured changelog.
package notes

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/lc-soft/lcui-release/internal/changelog"
	"golang.org/x/sync/errgroup"
)

// Source is one changelog contributing a section to the release notes.
type Source struct {
	Path   string
	Header string
}

// Options controls how the release notes are built.
type Options struct {
	Sources []Source
	// Section is passed through to changelog.LatestSection.
	Section changelog.Options
}

// SourceError reports which source failed to load or extract.
type SourceError struct {
	Source Source
	Err    error
}

func (e *SourceError) Error() string {
	return fmt.Sprintf("extracting latest section of %s: %v", e.Source.Path, e.Err)
}

func (e *SourceError) Unwrap() error {
	return e.Err
}

// Part is the extracted section of a single source.
type Part struct {
	Source  Source
	Section changelog.Section
}

// Document is the assembled release notes.
type Document struct {
	Parts []Part
}

// String renders header and section of every part, in source order,
// joined by newlines.
func (d *Document) String() string {
	pieces := make([]string, 0, len(d.Parts)*2)
	for _, p := range d.Parts {
		pieces = append(pieces, p.Source.Header, p.Section.String())
	}
	return strings.Join(pieces, "\n")
}

// Build extracts the latest section of every source. Sources are read
// concurrently; the parts keep the configured order. Any failure aborts
// the whole build.
func Build(ctx context.Context, opts Options) (*Document, error) {
	if len(opts.Sources) == 0 {
		return nil, fmt.Errorf("no changelog sources configured")
	}

	parts := make([]Part, len(opts.Sources))
	g, ctx := errgroup.WithContext(ctx)

	for i, src := range opts.Sources {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			section, err := changelog.ExtractLatest(src.Path, opts.Section)
			if err != nil {
				return &SourceError{Source: src, Err: err}
			}
			parts[i] = Part{Source: src, Section: section}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &Document{Parts: parts}, nil
}

// Write creates or truncates path and writes content to it.
func Write(path, content string) error {
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("writing release notes: %w", err)
	}
	return nil
}
