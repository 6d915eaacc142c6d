package tui

import (
	"strings"

	"github.com/charmbracelet/glamour"
)

// renderMarkdown renders a task description for the detail pane. Callers
// render once on load or resize and keep the result on the model; a renderer
// error falls back to the raw text.
func renderMarkdown(text string, width int) string {
	if strings.TrimSpace(text) == "" {
		return styleMuted().Render("(no description)")
	}
	if width < 20 {
		width = 20
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return text
	}
	out, err := r.Render(text)
	if err != nil {
		return text
	}
	return strings.TrimRight(out, "\n")
}
