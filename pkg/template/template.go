package template

import (
	"fmt"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Template is a parameterised directory name, file set and shell command
type Template struct {
	name string

	PluralizedName    string            `yaml:"pluralized-name"`
	ContextParameters []string          `yaml:"context-parameters"`
	DirectoryName     string            `yaml:"directory-name"`
	Files             map[string]string `yaml:"files"`
	Command           string            `yaml:"command"`
}

// definition is the on-disk shape, where files may be nested
type definition struct {
	PluralizedName    string    `yaml:"pluralized-name"`
	ContextParameters []string  `yaml:"context-parameters"`
	DirectoryName     string    `yaml:"directory-name"`
	Files             *FileTree `yaml:"files"`
	Command           string    `yaml:"command"`
}

// New returns an empty template. The pluralized name defaults to name + "s".
func New(name, pluralizedName string) *Template {
	if pluralizedName == "" {
		pluralizedName = name + "s"
	}
	return &Template{
		name:              name,
		PluralizedName:    pluralizedName,
		ContextParameters: []string{},
		Files:             map[string]string{},
	}
}

// Name returns the name the template was stored under
func (t *Template) Name() string {
	return t.name
}

// UnmarshalYAML reads a definition and flattens its file tree
func (t *Template) UnmarshalYAML(node *yaml.Node) error {
	var def definition
	if err := node.Decode(&def); err != nil {
		return err
	}

	t.PluralizedName = def.PluralizedName
	t.ContextParameters = def.ContextParameters
	if t.ContextParameters == nil {
		t.ContextParameters = []string{}
	}
	t.DirectoryName = def.DirectoryName
	t.Command = def.Command
	t.Files = map[string]string{}
	if def.Files != nil {
		files, err := def.Files.Flatten()
		if err != nil {
			return err
		}
		t.Files = files
	}
	return nil
}

// Accepts reports whether key is a declared context parameter
func (t *Template) Accepts(key string) bool {
	for _, p := range t.ContextParameters {
		if p == key {
			return true
		}
	}
	return false
}

// SortedPaths returns the file paths in lexical order
func (t *Template) SortedPaths() []string {
	out := make([]string, 0, len(t.Files))
	for p := range t.Files {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}

// Describe returns a markdown summary of the template
func (t *Template) Describe() string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", t.name)
	fmt.Fprintf(&b, "- **Renders into:** `%s/%s`\n", t.PluralizedName, t.DirectoryName)
	if len(t.ContextParameters) == 0 {
		b.WriteString("- **Context parameters:** none\n")
	} else {
		quoted := make([]string, len(t.ContextParameters))
		for i, p := range t.ContextParameters {
			quoted[i] = "`" + p + "`"
		}
		fmt.Fprintf(&b, "- **Context parameters:** %s\n", strings.Join(quoted, ", "))
	}

	if strings.TrimSpace(t.Command) != "" {
		fmt.Fprintf(&b, "\n## Command\n\n```sh\n%s\n```\n", strings.TrimRight(t.Command, "\n"))
	}

	if len(t.Files) > 0 {
		b.WriteString("\n## Files\n")
		for _, p := range t.SortedPaths() {
			fmt.Fprintf(&b, "\n### `%s`\n\n```\n%s\n```\n", p, strings.TrimRight(t.Files[p], "\n"))
		}
	}

	return b.String()
}
