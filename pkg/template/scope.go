package template

import (
	"path/filepath"

	"github.com/arthur-debert/unii/pkg/paths"
)

// Scope selects a template namespace: the global store or one course's
// private store.
type Scope struct {
	course string
}

// Global is the scope of the root templates directory
var Global = Scope{}

// CourseScope returns the scope of the templates private to course code
func CourseScope(code string) Scope {
	return Scope{course: code}
}

// IsGlobal reports whether s is the global scope
func (s Scope) IsGlobal() bool {
	return s.course == ""
}

// Course returns the course code of a course scope, or "" for Global
func (s Scope) Course() string {
	return s.course
}

func (s Scope) String() string {
	if s.IsGlobal() {
		return "global"
	}
	return "course " + s.course
}

// Dir returns the templates directory of the scope
func (s Scope) Dir(p paths.Paths) string {
	if s.IsGlobal() {
		return p.TemplatesDir()
	}
	return p.CourseTemplatesDir(s.course)
}

// Path returns where the definition of name is stored in scope
func Path(p paths.Paths, s Scope, name string) string {
	return filepath.Join(s.Dir(p), name+"."+paths.DefinitionExt)
}
