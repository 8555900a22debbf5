package tui

import (
	"github.com/rs/zerolog"

	"lexdesk/internal/fetch"
	"lexdesk/internal/store"
	"lexdesk/internal/workspace"

	tea "github.com/charmbracelet/bubbletea"
)

func Run(s store.Store, st *workspace.State, articles fetch.ArticleFetcher, logger zerolog.Logger) error {
	m := newAppModel(s, st, articles, logger)
	_, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion()).Run()
	return err
}
