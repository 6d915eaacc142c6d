package tui

import (
	"strings"

	"taskvortex/internal/notify"

	"github.com/charmbracelet/lipgloss"
)

// renderToasts draws the toast stack, newest last, one per line.
func (m *appModel) renderToasts() string {
	toasts := m.center.Toasts()
	if len(toasts) == 0 {
		return ""
	}
	var b strings.Builder
	for i, t := range toasts {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(toastStyle(t.Level).Render(" " + t.Message + " "))
	}
	return b.String()
}

func toastStyle(level notify.Level) lipgloss.Style {
	st := lipgloss.NewStyle().Bold(true)
	switch level {
	case notify.LevelSuccess:
		return st.Foreground(colorSuccess)
	case notify.LevelError:
		return st.Foreground(colorError)
	default:
		return st.Foreground(colorAccent)
	}
}
