package cli

import (
	"fmt"

	"github.com/lc-soft/lcui-release/internal/changelog"
	clierrors "github.com/lc-soft/lcui-release/internal/errors"
	"github.com/lc-soft/lcui-release/internal/notes"
	"github.com/spf13/cobra"
)

var (
	sectionMarkerFlag string
	sectionStrictFlag bool
)

var sectionCmd = &cobra.Command{
	Use:   "section <changelog>",
	Short: "Print the latest section of a single changelog",
	Long: `Print the latest section of a changelog to stdout.

The first two lines (title and padding) are skipped, then every line up to
the first version heading is printed. Without a following heading the rest
of the file is printed, unless --strict is set.`,
	Example: `  lcui-release section CHANGELOG.md
  lcui-release section docs/CHANGELOG.md --marker "## ["`,
	Args: cobra.ExactArgs(1),
	RunE: runSection,
}

func init() {
	sectionCmd.GroupID = GroupUtility
	rootCmd.AddCommand(sectionCmd)

	sectionCmd.Flags().StringVar(&sectionMarkerFlag, "marker", "", `Version heading prefix (default from config: "# [")`)
	sectionCmd.Flags().BoolVar(&sectionStrictFlag, "strict", false, "Fail if no version heading follows the latest section")
}

func runSection(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	opts := changelog.Options{
		Marker: cfg.Notes.Marker,
		Strict: cfg.Notes.Strict || sectionStrictFlag,
	}
	if sectionMarkerFlag != "" {
		opts.Marker = sectionMarkerFlag
	}

	path := args[0]
	doc, err := changelog.Load(path)
	if err != nil {
		return sectionError(path, err)
	}
	section, err := changelog.LatestSection(doc, opts)
	if err != nil {
		return sectionError(path, err)
	}

	if section.IsEmpty() {
		logger.Warn("latest section is empty", "path", path)
	}
	logger.Debug("extracted latest section",
		"path", path,
		"heading", section.Heading,
		"older_versions", len(changelog.Headings(doc, opts.Marker)),
	)

	if _, err := fmt.Fprintln(cmd.OutOrStdout(), section.String()); err != nil {
		return clierrors.Wrap(err, clierrors.Runtime)
	}
	return nil
}

func sectionError(path string, err error) error {
	return notesError(&notes.SourceError{Source: notes.Source{Path: path}, Err: err})
}
