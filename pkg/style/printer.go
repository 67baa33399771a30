package style

import (
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/unii/pkg/course"
	"github.com/arthur-debert/unii/pkg/errors"
	"github.com/arthur-debert/unii/pkg/render"
	tmpl "github.com/arthur-debert/unii/pkg/template"
	"github.com/charmbracelet/lipgloss"
	"github.com/pterm/pterm"
)

// Printer writes command output in the chosen format
type Printer struct {
	out    io.Writer
	format Format
	width  int
}

// NewPrinter returns a printer writing to out
func NewPrinter(out io.Writer, format Format) *Printer {
	return &Printer{out: out, format: format, width: 80}
}

// Format returns the output format of the printer
func (p *Printer) Format() Format {
	return p.format
}

func (p *Printer) paint(s lipgloss.Style, text string) string {
	if p.format != FormatTerminal {
		return text
	}
	return s.Render(text)
}

// Success prints a confirmation line
func (p *Printer) Success(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if p.format == FormatTerminal {
		fmt.Fprint(p.out, pterm.Success.Sprintln(msg))
		return
	}
	fmt.Fprintln(p.out, msg)
}

// Warning prints a warning line
func (p *Printer) Warning(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if p.format == FormatTerminal {
		fmt.Fprint(p.out, pterm.Warning.Sprintln(msg))
		return
	}
	fmt.Fprintln(p.out, "Warning: "+msg)
}

// Error prints err without its error code
func (p *Printer) Error(err error) {
	fmt.Fprintf(p.out, "%s %s\n", p.paint(ErrorStyle, "Error:"), errors.GetErrorMessage(err))
}

// Line prints text followed by a newline
func (p *Printer) Line(text string) {
	fmt.Fprintln(p.out, text)
}

// Markdown prints md, rendered with glamour on a terminal
func (p *Printer) Markdown(md string) {
	fmt.Fprint(p.out, RenderMarkdown(md, p.format, p.width))
}

// Courses prints one "code (name)" line per course
func (p *Printer) Courses(courses []*course.Course) {
	if len(courses) == 0 {
		fmt.Fprintln(p.out, p.paint(MutedStyle, "No courses found."))
		return
	}
	for _, c := range courses {
		fmt.Fprintln(p.out, p.paint(CourseStyle, c.Title()))
	}
}

// Templates prints one line per template with where it renders into
func (p *Printer) Templates(scope tmpl.Scope, templates []*tmpl.Template) {
	if len(templates) == 0 {
		fmt.Fprintln(p.out, p.paint(MutedStyle, "No templates found ("+scope.String()+")."))
		return
	}
	for _, t := range templates {
		fmt.Fprintf(p.out, "%s %s\n",
			p.paint(TemplateStyle, t.Name()),
			p.paint(MutedStyle, "-> "+t.PluralizedName+"/"))
	}
}

// Plan prints what a render would do
func (p *Printer) Plan(result *render.Result) {
	fmt.Fprintf(p.out, "%s %s\n", p.paint(TitleStyle, "Target:"), p.paint(PathStyle, result.Target))
	if result.TargetExists {
		fmt.Fprintln(p.out, p.paint(WarningStyle, "  already exists, rendering would fail"))
	}

	command := strings.TrimSpace(result.Command)
	if command == "" {
		command = "(none)"
	}
	fmt.Fprintf(p.out, "%s %s\n", p.paint(TitleStyle, "Command:"), p.paint(CodeStyle, command))

	fmt.Fprintln(p.out, p.paint(TitleStyle, "Files:"))
	if len(result.Files) == 0 {
		fmt.Fprintln(p.out, p.paint(MutedStyle, "  (none)"))
	}
	for _, f := range result.Files {
		fmt.Fprintf(p.out, "  %s %s\n", f.Path, p.paint(MutedStyle, fmt.Sprintf("(%d bytes)", len(f.Content))))
	}
}
