// Package course manages course directories and their records.
//
// A course is a directory under the root named by its code. It is recognised
// by the record at <code>/.unii/course.yml, which holds optional descriptive
// information.
package course

import (
	"net/url"

	"github.com/arthur-debert/unii/pkg/errors"
	"github.com/arthur-debert/unii/pkg/paths"
)

// Information describes a course. Every field is optional.
type Information struct {
	Name        string `yaml:"name,omitempty"`
	Description string `yaml:"description,omitempty"`
	URL         string `yaml:"url,omitempty"`
}

// Validate checks that URL, when set, is an absolute URL
func (i Information) Validate() error {
	if i.URL == "" {
		return nil
	}
	u, err := url.Parse(i.URL)
	if err != nil {
		return errors.Wrapf(err, errors.ErrInvalidInput, "invalid course url %q", i.URL)
	}
	if !u.IsAbs() || u.Host == "" {
		return errors.Newf(errors.ErrInvalidInput, "course url %q must be absolute", i.URL)
	}
	return nil
}

// Course is a course record
type Course struct {
	code string
	Info Information
}

// Code returns the course code
func (c *Course) Code() string {
	return c.code
}

// Dir returns the directory rendered templates are placed under
func (c *Course) Dir(p paths.Paths) string {
	return p.CourseDir(c.code)
}

// TemplatesDir returns the directory of templates private to the course
func (c *Course) TemplatesDir(p paths.Paths) string {
	return p.CourseTemplatesDir(c.code)
}

// Title returns "code (name)", or the bare code when the course is unnamed
func (c *Course) Title() string {
	if c.Info.Name == "" {
		return c.code
	}
	return c.code + " (" + c.Info.Name + ")"
}
