package course

import (
	"path/filepath"
	"regexp"
	"testing"

	"github.com/arthur-debert/unii/pkg/errors"
	"github.com/arthur-debert/unii/pkg/filesystem"
	"github.com/arthur-debert/unii/pkg/paths"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T, pattern string) (*Store, filesystem.FS, paths.Paths) {
	t.Helper()
	p, err := paths.New("/unii")
	require.NoError(t, err)

	var re *regexp.Regexp
	if pattern != "" {
		re = regexp.MustCompile(pattern)
	}
	fsys := filesystem.NewMemory()
	return NewStore(fsys, p, re), fsys, p
}

func TestCreate(t *testing.T) {
	store, fsys, p := newTestStore(t, "")

	info := Information{Name: "Programming Fundamentals", URL: "https://example.edu/comp1511"}
	c, err := store.Create("COMP1511", info)
	require.NoError(t, err)
	assert.Equal(t, "COMP1511", c.Code())
	assert.Equal(t, "/unii/COMP1511", c.Dir(p))
	assert.Equal(t, "/unii/COMP1511/.unii/templates", c.TemplatesDir(p))

	exists, err := filesystem.Exists(fsys, p.CourseFilePath("COMP1511"))
	require.NoError(t, err)
	assert.True(t, exists)

	opened, err := store.Open("COMP1511")
	require.NoError(t, err)
	require.NotNil(t, opened)
	assert.Equal(t, info, opened.Info)
}

func TestCreateErrors(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		setup   func(t *testing.T, s *Store, fsys filesystem.FS)
		code    string
		info    Information
		want    errors.ErrorCode
	}{
		{
			name: "already exists",
			setup: func(t *testing.T, s *Store, _ filesystem.FS) {
				_, err := s.Create("COMP1511", Information{})
				require.NoError(t, err)
			},
			code: "COMP1511",
			want: errors.ErrCourseAlreadyExists,
		},
		{
			name: "plain directory in the way",
			setup: func(t *testing.T, _ *Store, fsys filesystem.FS) {
				require.NoError(t, fsys.MkdirAll("/unii/COMP1511", 0755))
			},
			code: "COMP1511",
			want: errors.ErrCourseAlreadyExists,
		},
		{
			name:    "pattern mismatch",
			pattern: `^[A-Z]{4}[0-9]{4}$`,
			code:    "comp1511",
			want:    errors.ErrCourseCodeInvalid,
		},
		{
			name: "separator",
			code: "a/b",
			want: errors.ErrInvalidInput,
		},
		{
			name: "hidden",
			code: ".unii",
			want: errors.ErrInvalidInput,
		},
		{
			name: "relative url",
			code: "COMP1511",
			info: Information{URL: "example.edu/comp1511"},
			want: errors.ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, fsys, _ := newTestStore(t, tt.pattern)
			if tt.setup != nil {
				tt.setup(t, store, fsys)
			}

			_, err := store.Create(tt.code, tt.info)
			require.Error(t, err)
			assert.Equal(t, tt.want, errors.GetErrorCode(err))
		})
	}
}

func TestCreateMatchingPattern(t *testing.T) {
	store, _, _ := newTestStore(t, `^[A-Z]{4}[0-9]{4}$`)

	_, err := store.Create("COMP1511", Information{})
	assert.NoError(t, err)

	_, err = store.Create("MATH", Information{})
	require.Error(t, err)
	details := errors.GetErrorDetails(err)
	assert.Equal(t, "MATH", details["code"])
	assert.Equal(t, `^[A-Z]{4}[0-9]{4}$`, details["pattern"])
}

func TestOpenAndGet(t *testing.T) {
	store, fsys, _ := newTestStore(t, "")

	c, err := store.Open("NOPE")
	assert.NoError(t, err)
	assert.Nil(t, c)

	_, err = store.Get("NOPE")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrCourseDoesNotExist))

	require.NoError(t, fsys.MkdirAll("/unii/BROKEN/.unii", 0755))
	require.NoError(t, fsys.WriteFile("/unii/BROKEN/.unii/course.yml", []byte("name: [x"), 0644))
	_, err = store.Open("BROKEN")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrDeserialize))
}

func TestOpenOrCreate(t *testing.T) {
	store, _, _ := newTestStore(t, "")

	first, err := store.OpenOrCreate("COMP1511", Information{Name: "first"})
	require.NoError(t, err)
	assert.Equal(t, "first", first.Info.Name)

	second, err := store.OpenOrCreate("COMP1511", Information{Name: "second"})
	require.NoError(t, err)
	assert.Equal(t, "first", second.Info.Name)
}

func TestOpenOrCreateAdoptsDirectory(t *testing.T) {
	store, fsys, p := newTestStore(t, "^[A-Z]{4}[0-9]{4}$")

	require.NoError(t, fsys.MkdirAll(filepath.Join(p.CourseDir("COMP1511"), "labs"), 0755))

	c, err := store.OpenOrCreate("COMP1511", Information{Name: "Programming"})
	require.NoError(t, err)
	assert.Equal(t, "COMP1511 (Programming)", c.Title())

	exists, err := filesystem.Exists(fsys, filepath.Join(p.CourseDir("COMP1511"), "labs"))
	require.NoError(t, err)
	assert.True(t, exists)

	_, err = store.OpenOrCreate("scratch", Information{})
	assert.True(t, errors.IsErrorCode(err, errors.ErrCourseCodeInvalid))
}

func TestSetInfo(t *testing.T) {
	store, _, _ := newTestStore(t, "")

	c, err := store.Create("COMP1511", Information{})
	require.NoError(t, err)

	require.NoError(t, store.SetInfo(c, Information{Description: "intro"}))
	reopened, err := store.Get("COMP1511")
	require.NoError(t, err)
	assert.Equal(t, "intro", reopened.Info.Description)

	err = store.SetInfo(c, Information{URL: "::"})
	assert.Error(t, err)
}

func TestDelete(t *testing.T) {
	store, fsys, p := newTestStore(t, "")

	_, err := store.Create("COMP1511", Information{})
	require.NoError(t, err)
	require.NoError(t, fsys.WriteFile(filepath.Join(p.CourseDir("COMP1511"), "notes.md"), []byte("x"), 0644))

	require.NoError(t, store.Delete("COMP1511"))
	exists, err := filesystem.Exists(fsys, p.CourseDir("COMP1511"))
	require.NoError(t, err)
	assert.False(t, exists)

	err = store.Delete("COMP1511")
	assert.True(t, errors.IsErrorCode(err, errors.ErrCourseDoesNotExist))
}

func TestAll(t *testing.T) {
	store, fsys, p := newTestStore(t, "")

	_, err := store.Create("COMP1511", Information{Name: "Programming"})
	require.NoError(t, err)
	_, err = store.Create("MATH1131", Information{})
	require.NoError(t, err)

	require.NoError(t, fsys.MkdirAll(filepath.Join(p.Root(), "scratch"), 0755))
	require.NoError(t, fsys.MkdirAll(p.TemplatesDir(), 0755))
	require.NoError(t, fsys.WriteFile(filepath.Join(p.Root(), "README"), []byte("x"), 0644))

	seq, err := store.All()
	require.NoError(t, err)

	var titles []string
	for c, err := range seq {
		require.NoError(t, err)
		titles = append(titles, c.Title())
	}
	assert.ElementsMatch(t, []string{"COMP1511 (Programming)", "MATH1131"}, titles)
}

func TestAllWithoutRoot(t *testing.T) {
	store, _, _ := newTestStore(t, "")

	seq, err := store.All()
	require.NoError(t, err)
	for range seq {
		t.Fatal("expected no courses")
	}
}

func TestAdopt(t *testing.T) {
	store, fsys, p := newTestStore(t, "^[A-Z]{4}[0-9]{4}$")

	_, err := store.Create("COMP1511", Information{Name: "Programming"})
	require.NoError(t, err)
	require.NoError(t, fsys.MkdirAll(p.CourseDir("MATH1131"), 0755))
	require.NoError(t, fsys.MkdirAll(filepath.Join(p.Root(), "scratch"), 0755))
	require.NoError(t, fsys.MkdirAll(p.TemplatesDir(), 0755))

	seq, err := store.Adopt()
	require.NoError(t, err)

	var titles []string
	var failures []error
	for c, err := range seq {
		if err != nil {
			failures = append(failures, err)
			continue
		}
		titles = append(titles, c.Title())
	}
	assert.ElementsMatch(t, []string{"COMP1511 (Programming)", "MATH1131"}, titles)
	require.Len(t, failures, 1)
	assert.True(t, errors.IsErrorCode(failures[0], errors.ErrCourseCodeInvalid))

	adopted, err := store.Get("MATH1131")
	require.NoError(t, err)
	assert.Equal(t, "MATH1131", adopted.Code())

	seq, err = store.All()
	require.NoError(t, err)
	var codes []string
	for c, err := range seq {
		require.NoError(t, err)
		codes = append(codes, c.Code())
	}
	assert.ElementsMatch(t, []string{"COMP1511", "MATH1131"}, codes)
}
