package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tonylturner/catview/internal/catalogue"
	"github.com/tonylturner/catview/internal/logging"
)

// Run starts the catalogue browser and blocks until the user quits.
func Run(ctx context.Context, load LoadFunc, chat catalogue.ChatLinker, logger *logging.Logger) error {
	model := NewModel(ctx, load, chat, logger)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))

	_, err := program.Run()
	return err
}
