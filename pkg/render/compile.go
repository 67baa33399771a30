package render

import (
	"strings"
	"text/template"

	"github.com/arthur-debert/unii/pkg/errors"
	"github.com/arthur-debert/unii/pkg/filters"
	tmpl "github.com/arthur-debert/unii/pkg/template"
)

const (
	directoryNameSource = "directory-name"
	commandSource       = "command"
)

func filePathSource(p string) string    { return "files/" + p + "#path" }
func fileContentSource(p string) string { return "files/" + p + "#content" }

// compiled holds every template string of a definition, each parsed on its
// own so a {{define}} in one source cannot replace another
type compiled struct {
	sources map[string]*template.Template
	paths   []string
}

func compile(t *tmpl.Template, registry *filters.Registry) (*compiled, error) {
	funcs := registry.FuncMap()
	c := &compiled{sources: make(map[string]*template.Template)}

	add := func(name, source string) error {
		parsed, err := template.New(name).
			Funcs(funcs).
			Option("missingkey=error").
			Parse(source)
		if err != nil {
			return errors.Wrapf(err, errors.ErrTemplateCompile, "failed to compile %s", name).
				WithDetail("template", t.Name())
		}
		c.sources[name] = parsed
		return nil
	}

	if err := add(directoryNameSource, t.DirectoryName); err != nil {
		return nil, err
	}
	if err := add(commandSource, t.Command); err != nil {
		return nil, err
	}

	c.paths = t.SortedPaths()
	for _, p := range c.paths {
		if err := add(filePathSource(p), p); err != nil {
			return nil, err
		}
		if err := add(fileContentSource(p), t.Files[p]); err != nil {
			return nil, err
		}
	}

	return c, nil
}

func (c *compiled) execute(name string, data map[string]any) (string, error) {
	source, ok := c.sources[name]
	if !ok {
		return "", errors.Newf(errors.ErrInternal, "template source %s was not compiled", name)
	}

	var b strings.Builder
	if err := source.Execute(&b, data); err != nil {
		return "", errors.Wrapf(err, errors.ErrTemplateRender, "failed to render %s", name)
	}
	return b.String(), nil
}
