package paths

import (
	"path"
	"strings"

	"github.com/arthur-debert/unii/pkg/errors"
)

// ValidateName ensures name is usable as a single path segment: course codes,
// template names and rendered directory names all go through it.
// Names must:
// - Not be empty
// - Not contain path separators
// - Not be reserved names (. or ..)
// - Not contain null bytes or control characters
func ValidateName(kind, name string) error {
	if name == "" {
		return errors.Newf(errors.ErrInvalidInput, "%s cannot be empty", kind)
	}

	if strings.ContainsAny(name, `/\`) {
		return errors.Newf(errors.ErrInvalidInput, "%s %q cannot contain path separators", kind, name)
	}

	if name == "." || name == ".." {
		return errors.Newf(errors.ErrInvalidInput, "%s cannot be '.' or '..'", kind)
	}

	for _, r := range name {
		if r < 32 {
			return errors.Newf(errors.ErrInvalidInput, "%s %q contains control characters", kind, name)
		}
	}

	return nil
}

// ValidateRelativePath ensures a '/'-separated path stays inside the
// directory it is joined to. It rejects empty paths, absolute paths, and any
// ".." segment.
func ValidateRelativePath(p string) error {
	if strings.TrimSpace(p) == "" {
		return errors.New(errors.ErrInvalidInput, "path cannot be empty")
	}

	if strings.Contains(p, "\x00") {
		return errors.New(errors.ErrInvalidInput, "path contains null bytes")
	}

	slashed := strings.ReplaceAll(p, `\`, "/")
	if path.IsAbs(slashed) {
		return errors.Newf(errors.ErrInvalidInput, "path %q must be relative", p)
	}

	for _, segment := range strings.Split(slashed, "/") {
		if segment == ".." {
			return errors.Newf(errors.ErrInvalidInput, "path %q cannot contain '..'", p)
		}
	}

	return nil
}
