package paths

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/unii/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)
	tmp := t.TempDir()

	tests := []struct {
		name    string
		root    string
		want    string
		wantErr bool
	}{
		{name: "absolute", root: tmp, want: tmp},
		{name: "unclean", root: tmp + "/a/../b/", want: filepath.Join(tmp, "b")},
		{name: "home", root: "~/unii", want: filepath.Join(home, "unii")},
		{name: "bare tilde", root: "~", want: home},
		{name: "empty", root: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := New(tt.root)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, p.Root())
		})
	}
}

func TestLayout(t *testing.T) {
	p, err := New("/data/unii")
	require.NoError(t, err)

	assert.Equal(t, "/data/unii/.unii", p.UniiDir())
	assert.Equal(t, "/data/unii/.unii/templates", p.TemplatesDir())
	assert.Equal(t, "/data/unii/COMP1511", p.CourseDir("COMP1511"))
	assert.Equal(t, "/data/unii/COMP1511/.unii", p.CourseUniiDir("COMP1511"))
	assert.Equal(t, "/data/unii/COMP1511/.unii/templates", p.CourseTemplatesDir("COMP1511"))
	assert.Equal(t, "/data/unii/COMP1511/.unii/course.yml", p.CourseFilePath("COMP1511"))
}

func TestIndependentRoots(t *testing.T) {
	a, err := New("/one")
	require.NoError(t, err)
	b, err := New("/two")
	require.NoError(t, err)

	assert.Equal(t, "/one/.unii/templates", a.TemplatesDir())
	assert.Equal(t, "/two/.unii/templates", b.TemplatesDir())
}

func TestNormalize(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)
	wd, err := os.Getwd()
	require.NoError(t, err)

	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "unclean", input: "/a/b/../c", want: "/a/c"},
		{name: "relative", input: "settings.toml", want: filepath.Join(wd, "settings.toml")},
		{name: "home", input: "~/.config/unii/settings.toml", want: filepath.Join(home, ".config/unii/settings.toml")},
		{name: "other user", input: "~bob/x", want: filepath.Join(wd, "~bob/x")},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Normalize(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidateName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"simple", "COMP1511", false},
		{"spaces", "My Course", false},
		{"dashes", "lab-01", false},
		{"empty", "", true},
		{"slash", "a/b", true},
		{"backslash", `a\b`, true},
		{"dot", ".", true},
		{"dotdot", "..", true},
		{"control", "a\x01b", true},
		{"null", "a\x00b", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateName("course code", tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateRelativePath(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"file", "README.md", false},
		{"nested", "src/main.go", false},
		{"dotted name", "src/..hidden", false},
		{"current dir segment", "./src/main.go", false},
		{"empty", "", true},
		{"blank", "   ", true},
		{"absolute", "/etc/passwd", true},
		{"parent", "../escape", true},
		{"inner parent", "src/../../escape", true},
		{"windows parent", `src\..\..\escape`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRelativePath(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
