// Package git provides the repository lookups lcui-release needs when the CI
// runtime does not supply a reference. It uses the go-git library, so no git
// CLI is required on the runner.
package git

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"golang.org/x/mod/semver"
)

// debugLogger is a function that logs debug messages when debug mode is enabled.
// By default, it's a no-op. Set it via SetDebugLogger to enable debug output.
var debugLogger func(format string, args ...any)

// SetDebugLogger configures the debug logger for git operations.
// Pass nil to disable debug logging.
func SetDebugLogger(logger func(format string, args ...any)) {
	debugLogger = logger
}

func logDebug(format string, args ...any) {
	if debugLogger != nil {
		debugLogger(format, args...)
	}
}

// openRepo opens the git repository containing path, walking up the
// directory tree to find it. An empty path means the working directory.
func openRepo(path string) (*git.Repository, error) {
	if path == "" {
		var err error
		path, err = os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("getting current directory: %w", err)
		}
	}

	logDebug("[git] opening repository at %s", path)

	repo, err := git.PlainOpenWithOptions(path, &git.PlainOpenOptions{
		DetectDotGit: true,
	})
	if err != nil {
		return nil, fmt.Errorf("opening repository at %s: %w", path, err)
	}

	return repo, nil
}

// IsGitRepository checks if path is within a git repository.
func IsGitRepository(path string) bool {
	_, err := openRepo(path)
	result := err == nil
	logDebug("[git] IsGitRepository(%s): %v", path, result)
	return result
}

// HeadTagRef returns the full reference name ("refs/tags/...") of a tag
// that points at HEAD and whose full name starts with prefix. Annotated tags
// are peeled to their commit. With several matches the highest semantic
// version wins (v1.10.0 over v1.9.0); tags that are not semantic versions
// rank below those that are and are ordered by name. An empty string means
// no tag matched, including a repository without commits.
func HeadTagRef(path, prefix string) (string, error) {
	repo, err := openRepo(path)
	if err != nil {
		return "", err
	}

	head, err := repo.Head()
	if err != nil {
		if errors.Is(err, plumbing.ErrReferenceNotFound) {
			logDebug("[git] HeadTagRef: repository has no commits")
			return "", nil
		}
		return "", fmt.Errorf("getting HEAD reference: %w", err)
	}

	matches, err := tagsAt(repo, head.Hash(), prefix)
	if err != nil {
		return "", err
	}
	if len(matches) == 0 {
		logDebug("[git] HeadTagRef: no tag with prefix %q at %s", prefix, head.Hash())
		return "", nil
	}

	sort.Slice(matches, func(i, j int) bool {
		return tagLess(prefix, matches[i], matches[j])
	})
	ref := matches[len(matches)-1]
	logDebug("[git] HeadTagRef: %s", ref)
	return ref, nil
}

// tagLess orders tag reference names by the semantic version following
// prefix, falling back to name order when the versions compare equal or
// are invalid.
func tagLess(prefix, a, b string) bool {
	if c := semver.Compare(tagVersion(prefix, a), tagVersion(prefix, b)); c != 0 {
		return c < 0
	}
	return a < b
}

// tagVersion turns "refs/tags/v1.2.3" with prefix "refs/tags/v" into
// "v1.2.3". Shorthand versions such as "v1.2" are valid.
func tagVersion(prefix, ref string) string {
	return "v" + strings.TrimPrefix(ref, prefix)
}

// tagsAt collects the names of tags with the given prefix whose target
// commit is hash.
func tagsAt(repo *git.Repository, hash plumbing.Hash, prefix string) ([]string, error) {
	iter, err := repo.Tags()
	if err != nil {
		return nil, fmt.Errorf("listing tags: %w", err)
	}
	defer iter.Close()

	var names []string
	err = iter.ForEach(func(ref *plumbing.Reference) error {
		name := ref.Name().String()
		if !strings.HasPrefix(name, prefix) {
			return nil
		}

		target, err := peelTag(repo, ref)
		if err != nil {
			return err
		}
		if target == hash {
			names = append(names, name)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("iterating tags: %w", err)
	}

	return names, nil
}

// peelTag returns the commit hash a tag reference points at.
func peelTag(repo *git.Repository, ref *plumbing.Reference) (plumbing.Hash, error) {
	tag, err := repo.TagObject(ref.Hash())
	switch {
	case errors.Is(err, plumbing.ErrObjectNotFound):
		// Lightweight tag.
		return ref.Hash(), nil
	case err != nil:
		return plumbing.ZeroHash, fmt.Errorf("reading tag %s: %w", ref.Name().Short(), err)
	}

	commit, err := tag.Commit()
	if err != nil {
		return plumbing.ZeroHash, fmt.Errorf("resolving tag %s: %w", ref.Name().Short(), err)
	}
	return commit.Hash, nil
}
