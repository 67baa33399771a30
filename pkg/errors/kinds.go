package errors

import "strings"

// Constructors for the error kinds the course and template layers report.
// Each one attaches the offending values as details so callers can match on
// data instead of parsing messages.

// TemplateAlreadyExists reports that a template definition is already stored
// under name.
func TemplateAlreadyExists(name string) *UniiError {
	return Newf(ErrTemplateAlreadyExists, "template %q already exists", name).
		WithDetail("name", name)
}

// TemplateDoesNotExist reports a failed template lookup. An empty source means
// the global template store was searched.
func TemplateDoesNotExist(source, name string) *UniiError {
	var err *UniiError
	if source == "" {
		err = Newf(ErrTemplateDoesNotExist, "template %q does not exist", name)
	} else {
		err = Newf(ErrTemplateDoesNotExist, "template %q does not exist in course %q", name, source)
	}
	return err.WithDetail("name", name).WithDetail("source", source)
}

// TemplateContextParameterDoesNotExist reports a context key missing from the
// template's parameter whitelist.
func TemplateContextParameterDoesNotExist(key string) *UniiError {
	return Newf(ErrTemplateContextParameterDoesNotExist,
		"context parameter %q is not declared by the template", key).
		WithDetail("key", key)
}

// TemplateCommandIsEmpty reports a command template that renders to blank text.
func TemplateCommandIsEmpty() *UniiError {
	return New(ErrTemplateCommandIsEmpty, "template command is empty")
}

// TemplateCommandFailed reports a rendered command that exited unsuccessfully.
func TemplateCommandFailed(command, stderr string) *UniiError {
	msg := "template command `" + command + "` failed"
	if trimmed := strings.TrimSpace(stderr); trimmed != "" {
		msg += ": " + trimmed
	}
	return New(ErrTemplateCommandFailed, msg).
		WithDetail("command", command).
		WithDetail("stderr", stderr)
}

// TemplateCourseCodeMissing reports a render request that names neither a
// source course nor a target course.
func TemplateCourseCodeMissing() *UniiError {
	return New(ErrTemplateCourseCodeMissing,
		"no course given: use SOURCE:NAME or --course")
}

// RenderAlreadyExists reports that the top-level render target is already on
// disk.
func RenderAlreadyExists(directory string) *UniiError {
	return Newf(ErrRenderAlreadyExists, "render target %q already exists", directory).
		WithDetail("directory", directory)
}

// RenderPathInvalid reports a rendered path that would leave the render target.
func RenderPathInvalid(path, reason string) *UniiError {
	return Newf(ErrRenderPathInvalid, "rendered path %q is invalid: %s", path, reason).
		WithDetail("path", path)
}

// CourseAlreadyExists reports that a course directory is already present.
func CourseAlreadyExists(code string) *UniiError {
	return Newf(ErrCourseAlreadyExists, "course with code %q already exists", code).
		WithDetail("code", code)
}

// CourseDoesNotExist reports a failed course lookup.
func CourseDoesNotExist(code string) *UniiError {
	return Newf(ErrCourseDoesNotExist, "course with code %q does not exist", code).
		WithDetail("code", code)
}

// CourseCodeDidNotMatch reports a course code rejected by the configured
// course code pattern.
func CourseCodeDidNotMatch(code, pattern string) *UniiError {
	return Newf(ErrCourseCodeInvalid, "course code %q did not match pattern %q", code, pattern).
		WithDetail("code", code).
		WithDetail("pattern", pattern)
}
