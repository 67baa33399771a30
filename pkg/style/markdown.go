package style

import (
	"github.com/charmbracelet/glamour"
)

// RenderMarkdown renders md for the terminal. Text output, and any glamour
// failure, gets the markdown unchanged.
func RenderMarkdown(md string, format Format, width int) string {
	if format != FormatTerminal {
		return md
	}

	options := []glamour.TermRendererOption{glamour.WithAutoStyle()}
	if width > 0 {
		options = append(options, glamour.WithWordWrap(width))
	}

	renderer, err := glamour.NewTermRenderer(options...)
	if err != nil {
		return md
	}

	rendered, err := renderer.Render(md)
	if err != nil {
		return md
	}
	return rendered
}
