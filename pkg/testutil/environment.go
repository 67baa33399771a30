package testutil

import (
	"testing"

	"github.com/arthur-debert/unii/pkg/config"
	"github.com/arthur-debert/unii/pkg/course"
	"github.com/arthur-debert/unii/pkg/filesystem"
	"github.com/arthur-debert/unii/pkg/paths"
	tmpl "github.com/arthur-debert/unii/pkg/template"
)

// EnvMode selects the filesystem an Env runs on
type EnvMode int

const (
	// EnvMemory uses an in-memory filesystem rooted at /unii
	EnvMemory EnvMode = iota
	// EnvOS uses a temporary directory on disk
	EnvOS
)

// LabDefinition is a small template definition used across tests
const LabDefinition = `pluralized-name: labs
context-parameters: [name]
directory-name: "{{ .name }}"
command: "true"
files:
  README.md: "# {{ .name }}"
  src:
    main.txt: "{{ .name | PascalCase }}"
`

// Env is an isolated unii root
type Env struct {
	t         *testing.T
	Settings  *config.Settings
	Paths     paths.Paths
	FS        filesystem.FS
	Courses   *course.Store
	Templates *tmpl.Store
}

// NewEnv creates an empty root for mode
func NewEnv(t *testing.T, mode EnvMode) *Env {
	t.Helper()

	var fsys filesystem.FS
	root := "/unii"
	switch mode {
	case EnvOS:
		fsys = filesystem.NewOS()
		root = t.TempDir()
	default:
		fsys = filesystem.NewMemory()
	}

	settings := config.Default()
	settings.Path = root

	p, err := paths.New(root)
	if err != nil {
		t.Fatalf("Failed to create paths for %s: %v", root, err)
	}

	return &Env{
		t:         t,
		Settings:  settings,
		Paths:     p,
		FS:        fsys,
		Courses:   course.NewStore(fsys, p, nil),
		Templates: tmpl.NewStore(fsys, p),
	}
}

// Course creates a course and fails the test if it cannot
func (e *Env) Course(code string) *course.Course {
	e.t.Helper()

	c, err := e.Courses.Create(code, course.Information{})
	if err != nil {
		e.t.Fatalf("Failed to create course %s: %v", code, err)
	}
	return c
}

// Template writes a raw definition for name in scope and returns it opened
func (e *Env) Template(scope tmpl.Scope, name, definition string) *tmpl.Template {
	e.t.Helper()

	if err := e.FS.MkdirAll(scope.Dir(e.Paths), 0755); err != nil {
		e.t.Fatalf("Failed to create templates directory: %v", err)
	}
	if err := e.FS.WriteFile(e.Templates.Path(scope, name), []byte(definition), 0644); err != nil {
		e.t.Fatalf("Failed to write template %s: %v", name, err)
	}

	t, err := e.Templates.Get(scope, name)
	if err != nil {
		e.t.Fatalf("Failed to open template %s: %v", name, err)
	}
	return t
}

// ReadFile reads a file through the environment's filesystem
func (e *Env) ReadFile(path string) string {
	e.t.Helper()

	content, err := e.FS.ReadFile(path)
	if err != nil {
		e.t.Fatalf("Failed to read file %s: %v", path, err)
	}
	return string(content)
}

// Exists reports whether path exists in the environment's filesystem
func (e *Env) Exists(path string) bool {
	e.t.Helper()

	exists, err := filesystem.Exists(e.FS, path)
	if err != nil {
		e.t.Fatalf("Failed to stat %s: %v", path, err)
	}
	return exists
}

// AssertFileContent checks that a file exists and has the expected content
func (e *Env) AssertFileContent(path, expected string) {
	e.t.Helper()

	if !e.Exists(path) {
		e.t.Fatalf("File %s does not exist", path)
	}
	if actual := e.ReadFile(path); actual != expected {
		e.t.Errorf("File %s content mismatch\nExpected: %q\nActual: %q", path, expected, actual)
	}
}

// AssertNoFile checks that a path does not exist
func (e *Env) AssertNoFile(path string) {
	e.t.Helper()

	if e.Exists(path) {
		e.t.Errorf("File %s exists but should not", path)
	}
}
