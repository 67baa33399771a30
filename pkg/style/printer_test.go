package style

import (
	"bytes"
	stderrors "errors"
	"testing"

	"github.com/arthur-debert/unii/pkg/course"
	"github.com/arthur-debert/unii/pkg/errors"
	"github.com/arthur-debert/unii/pkg/filesystem"
	"github.com/arthur-debert/unii/pkg/paths"
	"github.com/arthur-debert/unii/pkg/render"
	tmpl "github.com/arthur-debert/unii/pkg/template"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrinterText(t *testing.T) {
	tests := []struct {
		name  string
		print func(p *Printer)
		want  string
	}{
		{
			name:  "success",
			print: func(p *Printer) { p.Success("Created course %s", "COMP1511") },
			want:  "Created course COMP1511\n",
		},
		{
			name:  "warning",
			print: func(p *Printer) { p.Warning("careful") },
			want:  "Warning: careful\n",
		},
		{
			name:  "coded error",
			print: func(p *Printer) { p.Error(errors.CourseDoesNotExist("X")) },
			want:  "Error: course with code \"X\" does not exist\n",
		},
		{
			name:  "plain error",
			print: func(p *Printer) { p.Error(stderrors.New("boom")) },
			want:  "Error: boom\n",
		},
		{
			name:  "markdown",
			print: func(p *Printer) { p.Markdown("# title\n") },
			want:  "# title\n",
		},
		{
			name:  "no courses",
			print: func(p *Printer) { p.Courses(nil) },
			want:  "No courses found.\n",
		},
		{
			name:  "no templates",
			print: func(p *Printer) { p.Templates(tmpl.CourseScope("COMP1511"), nil) },
			want:  "No templates found (course COMP1511).\n",
		},
		{
			name: "templates",
			print: func(p *Printer) {
				p.Templates(tmpl.Global, []*tmpl.Template{tmpl.New("lab", ""), tmpl.New("quiz", "quizzes")})
			},
			want: "lab -> labs/\nquiz -> quizzes/\n",
		},
		{
			name: "plan",
			print: func(p *Printer) {
				p.Plan(&render.Result{
					Target:       "/unii/COMP1511/labs/lab1",
					TargetExists: true,
					Files:        []render.File{{Path: "README.md", Content: "# lab1"}},
				})
			},
			want: "Target: /unii/COMP1511/labs/lab1\n" +
				"  already exists, rendering would fail\n" +
				"Command: (none)\n" +
				"Files:\n" +
				"  README.md (6 bytes)\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.print(NewPrinter(&buf, FormatText))
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestPrinterCourses(t *testing.T) {
	p, err := paths.New("/unii")
	require.NoError(t, err)
	store := course.NewStore(filesystem.NewMemory(), p, nil)

	named, err := store.Create("COMP1511", course.Information{Name: "Programming"})
	require.NoError(t, err)
	bare, err := store.Create("MATH1131", course.Information{})
	require.NoError(t, err)

	var buf bytes.Buffer
	NewPrinter(&buf, FormatText).Courses([]*course.Course{named, bare})
	assert.Equal(t, "COMP1511 (Programming)\nMATH1131\n", buf.String())
}

func TestPrinterTerminal(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf, FormatTerminal)
	printer.Success("done")

	assert.Contains(t, buf.String(), "done")
	assert.Equal(t, FormatTerminal, printer.Format())
}

func TestFormatString(t *testing.T) {
	assert.Equal(t, "term", FormatTerminal.String())
	assert.Equal(t, "text", FormatText.String())
	assert.Equal(t, "unknown", Format(9).String())
}

func TestRenderMarkdownPlain(t *testing.T) {
	assert.Equal(t, "**bold**", RenderMarkdown("**bold**", FormatText, 0))
}
