package errors

import (
	"bytes"
	stderrors "errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorCategory_String(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		category ErrorCategory
		want     string
	}{
		"argument":      {category: Argument, want: "Argument Error"},
		"configuration": {category: Configuration, want: "Configuration Error"},
		"prerequisite":  {category: Prerequisite, want: "Prerequisite Error"},
		"runtime":       {category: Runtime, want: "Runtime Error"},
		"unknown":       {category: ErrorCategory(99), want: "Error"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.category.String())
		})
	}
}

func TestWrap_PreservesCause(t *testing.T) {
	t.Parallel()

	cause := fmt.Errorf("opening changelog file: %w", fs.ErrNotExist)
	wrapped := WrapWithMessage(cause, Prerequisite, "building notes", "check the path")

	assert.Equal(t, "building notes: opening changelog file: file does not exist", wrapped.Error())
	assert.True(t, stderrors.Is(wrapped, fs.ErrNotExist))
	assert.Nil(t, Wrap(nil, Runtime))
	assert.Nil(t, WrapWithMessage(nil, Runtime, "x"))
}

func TestAsCLIError(t *testing.T) {
	t.Parallel()

	cliErr := NewConfigError("bad config")
	wrapped := fmt.Errorf("running command: %w", cliErr)

	assert.Same(t, cliErr, AsCLIError(wrapped))
	assert.Nil(t, AsCLIError(stderrors.New("plain")))
	assert.Nil(t, AsCLIError(nil))
}

func TestFprint_Plain(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	Fprint(&buf, NewArgumentErrorWithUsage("missing file", "lcui-release section <file>", "pass a changelog path"), false)
	got := buf.String()

	want := "Error [Argument Error]: missing file\n" +
		"\nUsage: lcui-release section <file>\n" +
		"\nTo fix this:\n" +
		"  • pass a changelog path\n"
	assert.Equal(t, want, got)
}

func TestFprint(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		err  error
		want []string
	}{
		"cli error": {
			err:  MissingEnvFileVar("GITHUB_ENV"),
			want: []string{"Configuration Error", "GITHUB_ENV is not set", "To fix this:"},
		},
		"wrapped cli error": {
			err:  fmt.Errorf("outer: %w", MissingChangelog("CHANGELOG.md", fs.ErrNotExist)),
			want: []string{"Prerequisite Error", "changelog not found: CHANGELOG.md"},
		},
		"plain error": {
			err:  stderrors.New("boom"),
			want: []string{"Error [Runtime Error]: boom"},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			Fprint(&buf, tt.err, false)
			for _, want := range tt.want {
				assert.Contains(t, buf.String(), want)
			}
		})
	}
}

func TestFprint_Nil(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	Fprint(&buf, nil, false)
	assert.Empty(t, buf.String())
}

func TestMessages_Unwrap(t *testing.T) {
	t.Parallel()

	cause := stderrors.New("cause")
	for name, err := range map[string]error{
		"missing changelog":    MissingChangelog("x", cause),
		"unterminated section": UnterminatedSection(cause),
		"env file unwritable":  EnvFileUnwritable("x", cause),
		"notes out of date":    NotesOutOfDate("x", cause),
		"invalid config":       InvalidConfig(cause),
	} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			require.ErrorIs(t, err, cause)
		})
	}
}
