package template

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestNew(t *testing.T) {
	tmpl := New("lab", "")
	assert.Equal(t, "lab", tmpl.Name())
	assert.Equal(t, "labs", tmpl.PluralizedName)
	assert.Empty(t, tmpl.ContextParameters)
	assert.Empty(t, tmpl.DirectoryName)
	assert.Empty(t, tmpl.Files)
	assert.Empty(t, tmpl.Command)

	assert.Equal(t, "quizzes", New("quiz", "quizzes").PluralizedName)
}

func TestUnmarshalDefinition(t *testing.T) {
	input := `
pluralized-name: labs
context-parameters: [name, week]
directory-name: "{{ .week }}-{{ .name }}"
command: git init -q
files:
  README.md: "# {{ .name }}"
  src:
    main.ext: body
`
	var tmpl Template
	require.NoError(t, yaml.Unmarshal([]byte(input), &tmpl))

	assert.Equal(t, "labs", tmpl.PluralizedName)
	assert.Equal(t, []string{"name", "week"}, tmpl.ContextParameters)
	assert.Equal(t, "{{ .week }}-{{ .name }}", tmpl.DirectoryName)
	assert.Equal(t, "git init -q", tmpl.Command)
	assert.Equal(t, map[string]string{
		"README.md":    "# {{ .name }}",
		"src/main.ext": "body",
	}, tmpl.Files)
	assert.Empty(t, tmpl.Name())
}

func TestUnmarshalMissingFields(t *testing.T) {
	var tmpl Template
	require.NoError(t, yaml.Unmarshal([]byte("pluralized-name: labs\n"), &tmpl))

	assert.NotNil(t, tmpl.Files)
	assert.Empty(t, tmpl.Files)
	assert.NotNil(t, tmpl.ContextParameters)
}

func TestRoundTrip(t *testing.T) {
	original := New("lab", "labs")
	original.ContextParameters = []string{"name", "week"}
	original.DirectoryName = "{{ .name | snake_case }}"
	original.Command = "echo {{ .week }} > week.txt"
	original.Files = map[string]string{
		"README.md":           "# {{ .name }}\n",
		"src/{{ .name }}.go":  "package {{ .name | snake_case }}\n",
		"src/internal/doc.go": "",
	}

	data, err := yaml.Marshal(original)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "name: lab\n")

	var decoded Template
	require.NoError(t, yaml.Unmarshal(data, &decoded))

	assert.Equal(t, original.PluralizedName, decoded.PluralizedName)
	assert.Equal(t, original.ContextParameters, decoded.ContextParameters)
	assert.Equal(t, original.DirectoryName, decoded.DirectoryName)
	assert.Equal(t, original.Files, decoded.Files)
	assert.Equal(t, original.Command, decoded.Command)
}

func TestAccepts(t *testing.T) {
	tmpl := New("lab", "")
	tmpl.ContextParameters = []string{"name"}

	assert.True(t, tmpl.Accepts("name"))
	assert.False(t, tmpl.Accepts("unused"))
}

func TestDescribe(t *testing.T) {
	tmpl := New("lab", "labs")
	tmpl.ContextParameters = []string{"name"}
	tmpl.DirectoryName = "{{ .name }}"
	tmpl.Command = "true"
	tmpl.Files = map[string]string{
		"b.txt": "second",
		"a.txt": "first",
	}

	md := tmpl.Describe()
	assert.Contains(t, md, "# lab")
	assert.Contains(t, md, "`labs/{{ .name }}`")
	assert.Contains(t, md, "`name`")
	assert.Contains(t, md, "```sh\ntrue\n```")
	assert.Less(t, strings.Index(md, "a.txt"), strings.Index(md, "b.txt"))

	empty := New("blank", "").Describe()
	assert.Contains(t, empty, "**Context parameters:** none")
	assert.NotContains(t, empty, "## Command")
	assert.NotContains(t, empty, "## Files")
}
