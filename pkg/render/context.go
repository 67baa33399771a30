package render

import (
	"strings"

	"github.com/arthur-debert/unii/pkg/errors"
	tmpl "github.com/arthur-debert/unii/pkg/template"
	"github.com/ohler55/ojg/oj"
)

// Param is one context entry. Value is a JSON value: string, int64, float64,
// bool, nil, []any or map[string]any.
type Param struct {
	Key   string
	Value any
}

// Context is the ordered set of parameters supplied to a render
type Context struct {
	params []Param
}

// NewContext builds a context. Keys must be unique.
func NewContext(params ...Param) (*Context, error) {
	seen := make(map[string]bool, len(params))
	for _, p := range params {
		if p.Key == "" {
			return nil, errors.New(errors.ErrInvalidInput, "context key cannot be empty")
		}
		if seen[p.Key] {
			return nil, errors.Newf(errors.ErrInvalidInput, "context key %q given more than once", p.Key).
				WithDetail("key", p.Key)
		}
		seen[p.Key] = true
	}
	return &Context{params: params}, nil
}

// ParseParam parses a KEY=VALUE argument. VALUE is read as a JSON literal
// when it is one and kept as plain text otherwise.
func ParseParam(arg string) (Param, error) {
	key, raw, ok := strings.Cut(arg, "=")
	if !ok {
		return Param{}, errors.Newf(errors.ErrInvalidInput, "invalid context %q: missing '='", arg)
	}
	if key == "" {
		return Param{}, errors.Newf(errors.ErrInvalidInput, "invalid context %q: empty key", arg)
	}

	if raw == "" {
		return Param{Key: key, Value: raw}, nil
	}
	value, err := oj.ParseString(raw)
	if err != nil {
		return Param{Key: key, Value: raw}, nil
	}
	return Param{Key: key, Value: value}, nil
}

// ParseParams parses KEY=VALUE arguments into a context
func ParseParams(args []string) (*Context, error) {
	params := make([]Param, 0, len(args))
	for _, arg := range args {
		p, err := ParseParam(arg)
		if err != nil {
			return nil, err
		}
		params = append(params, p)
	}
	return NewContext(params...)
}

// Keys returns the keys in the order they were given
func (c *Context) Keys() []string {
	keys := make([]string, len(c.params))
	for i, p := range c.params {
		keys[i] = p.Key
	}
	return keys
}

// Validate fails with the first key t does not declare
func (c *Context) Validate(t *tmpl.Template) error {
	for _, p := range c.params {
		if !t.Accepts(p.Key) {
			return errors.TemplateContextParameterDoesNotExist(p.Key)
		}
	}
	return nil
}

// Map returns the context as template data
func (c *Context) Map() map[string]any {
	m := make(map[string]any, len(c.params))
	for _, p := range c.params {
		m[p.Key] = p.Value
	}
	return m
}
