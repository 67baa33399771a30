// Package filters is the case-conversion library exposed to template source.
//
// Every transform is registered under each of its aliases. Aliases that are
// valid template identifiers can be used directly in a pipeline:
//
//	{{ .name | PascalCase }}
//
// Every alias, including the hyphenated ones, is reachable through case:
//
//	{{ .name | case "kebab-case" }}
package filters

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"text/template"
	"unicode"
	"unicode/utf8"

	"github.com/arthur-debert/unii/pkg/errors"
	"github.com/iancoleman/strcase"
)

// CaseFuncName is the template function that dispatches to any alias by name
const CaseFuncName = "case"

// Filter is one case-conversion transform and the names it answers to
type Filter struct {
	Name      string
	Aliases   []string
	Transform func(string) string
}

var identifier = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

var library = []Filter{
	{
		Name:      "upper camel case",
		Aliases:   []string{"UpperCamelCase", "PascalCase"},
		Transform: strcase.ToCamel,
	},
	{
		Name:      "lower camel case",
		Aliases:   []string{"lowerCamelCase", "camelCase"},
		Transform: strcase.ToLowerCamel,
	},
	{
		Name:      "snake case",
		Aliases:   []string{"snake_case", "lower_snake_case"},
		Transform: strcase.ToSnake,
	},
	{
		Name:      "kebab case",
		Aliases:   []string{"kebab-case", "lower-kebab-case"},
		Transform: strcase.ToKebab,
	},
	{
		Name:      "shouty snake case",
		Aliases:   []string{"SHOUTY_SNAKE_CASE", "UPPER_SNAKE_CASE", "SCREAMING_SNAKE_CASE"},
		Transform: strcase.ToScreamingSnake,
	},
	{
		Name:      "shouty kebab case",
		Aliases:   []string{"shouty-kebab-case", "upper-kebab-case", "screaming-kebab-case"},
		Transform: strcase.ToScreamingKebab,
	},
	{
		Name:      "train case",
		Aliases:   []string{"Train-Case", "Title-Kebab-Case"},
		Transform: toTrain,
	},
}

// toTrain is kebab case with every word capitalised
func toTrain(s string) string {
	words := strings.Split(strcase.ToKebab(s), "-")
	for i, w := range words {
		if w == "" {
			continue
		}
		r, size := utf8.DecodeRuneInString(w)
		words[i] = string(unicode.ToTitle(r)) + w[size:]
	}
	return strings.Join(words, "-")
}

// Registry maps every alias to its filter
type Registry struct {
	byAlias map[string]Filter
}

// New returns a registry holding the full filter library
func New() *Registry {
	r := &Registry{byAlias: make(map[string]Filter)}
	for _, f := range library {
		for _, alias := range f.Aliases {
			r.byAlias[alias] = f
		}
	}
	return r
}

// Aliases returns every registered alias in sorted order
func (r *Registry) Aliases() []string {
	aliases := make([]string, 0, len(r.byAlias))
	for alias := range r.byAlias {
		aliases = append(aliases, alias)
	}
	sort.Strings(aliases)
	return aliases
}

// Lookup returns the filter registered under alias
func (r *Registry) Lookup(alias string) (Filter, bool) {
	f, ok := r.byAlias[alias]
	return f, ok
}

// Apply runs the filter registered under alias. Exactly one string argument
// is accepted; anything else is an error naming the alias.
func (r *Registry) Apply(alias string, args ...any) (string, error) {
	f, ok := r.byAlias[alias]
	if !ok {
		return "", errors.Newf(errors.ErrFilterInvalid, "unknown filter %q", alias).
			WithDetail("filter", alias)
	}
	if len(args) != 1 {
		return "", errors.Newf(errors.ErrFilterInvalid,
			"filter %q takes exactly one argument, got %d", alias, len(args)).
			WithDetail("filter", alias)
	}
	s, ok := args[0].(string)
	if !ok {
		return "", errors.Newf(errors.ErrFilterInvalid,
			"filter %q expected string, got %T", alias, args[0]).
			WithDetail("filter", alias)
	}
	return f.Transform(s), nil
}

// FuncMap returns the template functions for the library: one per alias that
// is a valid template identifier, plus the case dispatcher.
func (r *Registry) FuncMap() template.FuncMap {
	funcs := template.FuncMap{
		CaseFuncName: func(alias string, args ...any) (string, error) {
			return r.Apply(alias, args...)
		},
	}
	for alias := range r.byAlias {
		if !identifier.MatchString(alias) {
			continue
		}
		alias := alias
		funcs[alias] = func(args ...any) (string, error) {
			return r.Apply(alias, args...)
		}
	}
	return funcs
}

// String lists the filters and their aliases, one per line
func (r *Registry) String() string {
	var b strings.Builder
	for _, f := range library {
		fmt.Fprintf(&b, "%s: %s\n", f.Name, strings.Join(f.Aliases, ", "))
	}
	return b.String()
}
