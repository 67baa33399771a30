package paths

import (
	"os"
	"path/filepath"

	"github.com/arthur-debert/unii/pkg/errors"
)

// EnvHome is the standard home directory variable
const EnvHome = "HOME"

// On-disk layout names. These are not user-configurable; the settings file
// only chooses the root.
const (
	// UniiDirName is the hidden directory holding unii metadata
	UniiDirName = ".unii"

	// TemplatesDirName is the subdirectory holding template definitions
	TemplatesDirName = "templates"

	// CourseFileName is the name of a course record
	CourseFileName = "course.yml"

	// DefinitionExt is the extension of template definition files
	DefinitionExt = "yml"
)

// Paths resolves every on-disk location unii reads or writes
type Paths interface {
	Root() string
	UniiDir() string
	TemplatesDir() string
	CourseDir(code string) string
	CourseUniiDir(code string) string
	CourseTemplatesDir(code string) string
	CourseFilePath(code string) string
}

type paths struct {
	// root is the root storage directory
	root string
}

// New creates a Paths rooted at root. The root is normalized with Normalize.
func New(root string) (Paths, error) {
	if root == "" {
		return nil, errors.New(errors.ErrInvalidInput, "root path cannot be empty")
	}

	absRoot, err := Normalize(root)
	if err != nil {
		return nil, err
	}
	return &paths{root: absRoot}, nil
}

// Normalize expands a leading ~, makes path absolute, and cleans it
func Normalize(path string) (string, error) {
	if path == "" {
		return "", errors.New(errors.ErrInvalidInput, "empty path")
	}

	abs, err := filepath.Abs(expandHome(path))
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrFileAccess, "failed to get absolute path for %s", path)
	}
	return filepath.Clean(abs), nil
}

// expandHome expands ~ to the home directory
func expandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = os.Getenv(EnvHome)
		if homeDir == "" {
			return path
		}
	}

	if len(path) == 1 {
		return homeDir
	}

	if path[1] == '/' || path[1] == filepath.Separator {
		return filepath.Join(homeDir, path[2:])
	}

	// ~something (not the user's home)
	return path
}

// Root returns the root storage directory
func (p *paths) Root() string {
	return p.root
}

// UniiDir returns the metadata directory at the root
func (p *paths) UniiDir() string {
	return filepath.Join(p.root, UniiDirName)
}

// TemplatesDir returns the global templates directory
func (p *paths) TemplatesDir() string {
	return filepath.Join(p.UniiDir(), TemplatesDirName)
}

// CourseDir returns the directory of the course with the given code
func (p *paths) CourseDir(code string) string {
	return filepath.Join(p.root, code)
}

// CourseUniiDir returns the metadata directory of a course
func (p *paths) CourseUniiDir(code string) string {
	return filepath.Join(p.CourseDir(code), UniiDirName)
}

// CourseTemplatesDir returns the templates directory private to a course
func (p *paths) CourseTemplatesDir(code string) string {
	return filepath.Join(p.CourseUniiDir(code), TemplatesDirName)
}

// CourseFilePath returns the path of a course record
func (p *paths) CourseFilePath(code string) string {
	return filepath.Join(p.CourseUniiDir(code), CourseFileName)
}
