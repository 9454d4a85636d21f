package app

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/kerbaras/pokedex/pkg/app/screens"
	"github.com/kerbaras/pokedex/pkg/services"
)

type App struct {
	ctrl *services.CatalogController
}

func NewApp(ctrl *services.CatalogController) *App {
	return &App{ctrl: ctrl}
}

func (a *App) Run() error {
	model := screens.NewRootScreen(a.ctrl)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}
