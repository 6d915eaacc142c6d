package tui

import (
	"taskvortex/internal/api"
	"taskvortex/internal/config"
	"taskvortex/internal/logger"
	"taskvortex/internal/session"

	tea "github.com/charmbracelet/bubbletea"
)

func Run(cfg config.Config, client *api.Client, sess *session.Store, log logger.Logger) error {
	applyColorProfilePreference()
	m := newAppModel(cfg, client, sess, log)
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
