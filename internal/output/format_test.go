package output

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func TestIsTerminal_Buffer(t *testing.T) {
	assert.False(t, IsTerminal(&bytes.Buffer{}))
}

func TestConfigureColor(t *testing.T) {
	old := color.NoColor
	defer func() { color.NoColor = old }()

	assert.False(t, ConfigureColor(&bytes.Buffer{}, false), "non-terminal writer disables color")
	assert.True(t, color.NoColor)

	assert.False(t, ConfigureColor(&bytes.Buffer{}, true))
	assert.True(t, color.NoColor)
}

func TestPrintSuccess(t *testing.T) {
	old := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = old }()

	tests := map[string]struct {
		message   string
		highlight string
		want      string
	}{
		"with highlight": {
			message:   "wrote release notes to",
			highlight: "release-notes.md",
			want:      "✓ wrote release notes to release-notes.md\n",
		},
		"without highlight": {
			message: "release notes are up to date",
			want:    "✓ release notes are up to date\n",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			var buf bytes.Buffer
			PrintSuccess(&buf, tt.message, tt.highlight)
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestPrintFailure(t *testing.T) {
	old := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = old }()

	var buf bytes.Buffer
	PrintFailure(&buf, "out of date")
	assert.Equal(t, "✗ out of date\n", buf.String())
}
