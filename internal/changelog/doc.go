// Package changelog reads markdown changelogs and extracts the most recent
// release section from them.
//
// A changelog is treated as a plain sequence of lines:
//   - line 0 is the title
//   - line 1 is padding
//   - every following line that starts with the heading marker ("# [" by
//     default) opens the entry for an older version
//
// The latest section is everything between the header and the first heading
// marker. It is what the release notes for the current tag are built from.
package changelog
