package cli

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/lc-soft/lcui-release/internal/changelog"
	"github.com/lc-soft/lcui-release/internal/config"
	clierrors "github.com/lc-soft/lcui-release/internal/errors"
	"github.com/lc-soft/lcui-release/internal/notes"
	"github.com/lc-soft/lcui-release/internal/output"
	"github.com/spf13/cobra"
)

var (
	notesOutputFlag string
	notesCheckFlag  bool
	notesStdoutFlag bool
	notesStrictFlag bool
)

var notesCmd = &cobra.Command{
	Use:   "notes",
	Short: "Build release notes from the latest changelog sections",
	Long: `Build the release notes for the current release.

The latest section of every configured changelog is extracted (everything
between the changelog header and the first "# [" version heading) and
written below its header. By default this is the English CHANGELOG.md
followed by the Chinese CHANGELOG.zh-cn.md.

The output file is overwritten on every run. A missing changelog fails the
command without touching the output.`,
	Example: `  # Write release-notes.md
  lcui-release notes

  # Write somewhere else
  lcui-release notes --output dist/RELEASE.md

  # Fail (with a diff) if release-notes.md is stale
  lcui-release notes --check

  # Print instead of writing
  lcui-release notes --stdout`,
	Args: cobra.NoArgs,
	RunE: runNotes,
}

func init() {
	notesCmd.GroupID = GroupRelease
	rootCmd.AddCommand(notesCmd)

	notesCmd.Flags().StringVarP(&notesOutputFlag, "output", "o", "", "Output file (default from config: release-notes.md)")
	notesCmd.Flags().BoolVar(&notesCheckFlag, "check", false, "Compare with the existing output instead of writing it")
	notesCmd.Flags().BoolVar(&notesStdoutFlag, "stdout", false, "Print the release notes instead of writing them")
	notesCmd.Flags().BoolVar(&notesStrictFlag, "strict", false, "Fail if a changelog has no version heading after its latest section")
	notesCmd.MarkFlagsMutuallyExclusive("check", "stdout")
}

func runNotes(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	doc, err := notes.Build(cmd.Context(), notesOptions(cfg))
	if err != nil {
		return notesError(err)
	}
	logParts(doc)

	content := doc.String()
	outputPath := cfg.Notes.Output
	if notesOutputFlag != "" {
		outputPath = notesOutputFlag
	}

	switch {
	case notesStdoutFlag:
		fmt.Fprint(cmd.OutOrStdout(), content)
		return nil
	case notesCheckFlag:
		return checkNotes(cmd, outputPath, content)
	}

	if err := notes.Write(outputPath, content); err != nil {
		return clierrors.Wrap(err, clierrors.Runtime)
	}
	output.PrintSuccess(cmd.OutOrStdout(), "wrote release notes to", outputPath)
	return nil
}

// notesOptions converts the configuration into builder options, applying
// command-line overrides.
func notesOptions(cfg *config.Configuration) notes.Options {
	sources := make([]notes.Source, len(cfg.Notes.Sources))
	for i, s := range cfg.Notes.Sources {
		sources[i] = notes.Source{Path: s.Path, Header: s.Header}
	}
	return notes.Options{
		Sources: sources,
		Section: changelog.Options{
			Marker: cfg.Notes.Marker,
			Strict: cfg.Notes.Strict || notesStrictFlag,
		},
	}
}

func logParts(doc *notes.Document) {
	for _, p := range doc.Parts {
		logger.Debug("extracted latest section",
			"path", p.Source.Path,
			"lines", len(p.Section.Lines),
			"previous", p.Section.PreviousVersion(),
		)
		if !p.Section.Terminated {
			logger.Warn("no version heading after latest section; using the rest of the changelog", "path", p.Source.Path)
		}
		if p.Section.IsEmpty() {
			logger.Warn("latest section is empty", "path", p.Source.Path)
		}
	}
}

func checkNotes(cmd *cobra.Command, path, content string) error {
	diff, err := notes.Check(path, content)
	if err == nil {
		output.PrintSuccess(cmd.OutOrStdout(), "release notes are up to date:", path)
		return nil
	}
	if !errors.Is(err, notes.ErrOutOfDate) {
		return clierrors.Wrap(err, clierrors.Runtime)
	}

	fmt.Fprint(cmd.OutOrStdout(), diff)
	output.PrintFailure(cmd.OutOrStdout(), fmt.Sprintf("%s is out of date", path))
	return clierrors.NotesOutOfDate(path, err)
}

// notesError classifies a build failure for display.
func notesError(err error) error {
	var srcErr *notes.SourceError
	switch {
	case errors.As(err, &srcErr) && errors.Is(err, fs.ErrNotExist):
		return clierrors.MissingChangelog(srcErr.Source.Path, err)
	case errors.Is(err, changelog.ErrUnterminatedSection):
		return clierrors.UnterminatedSection(err)
	default:
		return clierrors.Wrap(err, clierrors.Runtime)
	}
}
