package release

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolve(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		ref  string
		opts Options
		want Result
	}{
		"release tag": {
			ref:  "refs/tags/v2.0.1",
			want: Result{Ref: "refs/tags/v2.0.1", Version: "2.0.1"},
		},
		"prerelease tag": {
			ref:  "refs/tags/v3.0.0-beta.1",
			want: Result{Ref: "refs/tags/v3.0.0-beta.1", Version: "3.0.0-beta.1"},
		},
		"empty ref": {
			ref:  "",
			want: Result{Version: "latest", Daily: true},
		},
		"branch ref": {
			ref:  "refs/heads/main",
			want: Result{Ref: "refs/heads/main", Version: "latest", Daily: true},
		},
		"tag without v prefix": {
			ref:  "refs/tags/2.0.1",
			want: Result{Ref: "refs/tags/2.0.1", Version: "latest", Daily: true},
		},
		"pull request ref": {
			ref:  "refs/pull/42/merge",
			want: Result{Ref: "refs/pull/42/merge", Version: "latest", Daily: true},
		},
		"bare prefix": {
			ref:  "refs/tags/v",
			want: Result{Ref: "refs/tags/v", Version: ""},
		},
		"custom prefix and daily": {
			ref:  "refs/tags/release-1.0",
			opts: Options{TagPrefix: "refs/tags/release-", DailyVersion: "nightly"},
			want: Result{Ref: "refs/tags/release-1.0", Version: "1.0"},
		},
		"custom daily": {
			ref:  "refs/heads/develop",
			opts: Options{DailyVersion: "nightly"},
			want: Result{Ref: "refs/heads/develop", Version: "nightly", Daily: true},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Resolve(tt.ref, tt.opts))
		})
	}
}

func TestResult_EnvLine(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "REL_VERSION=2.0.1\n", Resolve("refs/tags/v2.0.1", Options{}).EnvLine(DefaultKey))
	assert.Equal(t, "REL_VERSION=latest\n", Resolve("", Options{}).EnvLine(DefaultKey))
}

func TestValidKey(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		key  string
		want bool
	}{
		"default":       {key: "REL_VERSION", want: true},
		"leading under": {key: "_X", want: true},
		"lowercase":     {key: "rel_version", want: true},
		"leading digit": {key: "1X", want: false},
		"with equals":   {key: "A=B", want: false},
		"empty":         {key: "", want: false},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, ValidKey(tt.key))
		})
	}
}
