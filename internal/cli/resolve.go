package cli

import (
	"strings"

	"github.com/arthur-debert/unii/pkg/errors"
)

// templateRef is a [SOURCE:]NAME argument
type templateRef struct {
	source string
	name   string
}

func parseTemplateRef(arg string) templateRef {
	if source, name, ok := strings.Cut(arg, ":"); ok {
		return templateRef{source: source, name: name}
	}
	return templateRef{name: arg}
}

// targetCourse decides which course a render goes into. An explicit course
// wins; otherwise the template's source course is used.
func targetCourse(ref templateRef, course string) (string, error) {
	switch {
	case course != "":
		return course, nil
	case ref.source != "":
		return ref.source, nil
	default:
		return "", errors.TemplateCourseCodeMissing()
	}
}
