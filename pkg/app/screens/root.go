package screens

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/kerbaras/pokedex/pkg/app/components"
	"github.com/kerbaras/pokedex/pkg/app/styles"
	"github.com/kerbaras/pokedex/pkg/services"
)

type screenType int

const (
	browseView screenType = iota
	detailsView
)

// SwitchScreenMsg asks the root screen to change the active screen.
type SwitchScreenMsg struct {
	Screen string
	Data   interface{}
}

type loadFinishedMsg struct {
	err error
}

type RootScreen struct {
	ctrl *services.CatalogController

	currentView screenType
	browse      *BrowseScreen
	details     *DetailsScreen
	tracker     *components.LoadTracker
	listening   bool

	width  int
	height int
}

func NewRootScreen(ctrl *services.CatalogController) *RootScreen {
	return &RootScreen{
		ctrl:        ctrl,
		currentView: browseView,
		browse:      NewBrowseScreen(ctrl),
		tracker:     components.NewLoadTracker(80),
	}
}

func (r *RootScreen) Init() tea.Cmd {
	r.listening = true
	return tea.Batch(r.browse.Init(), r.load, r.listenForProgress)
}

func (r *RootScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		r.width = msg.Width
		r.height = msg.Height
		r.tracker.SetWidth(msg.Width - 4)
		r.browse.Update(msg)
		if r.details != nil {
			r.details.Update(msg)
		}
		return r, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return r, tea.Quit
		case "q":
			if !(r.currentView == browseView && r.browse.Typing()) {
				return r, tea.Quit
			}
		}

		switch r.ctrl.Status().State {
		case services.Idle, services.Loading:
			return r, nil
		case services.Failed:
			if msg.String() == "r" {
				r.tracker.Clear()
				if r.listening {
					return r, r.load
				}
				r.listening = true
				return r, tea.Batch(r.load, r.listenForProgress)
			}
			return r, nil
		}

	case services.LoadProgress:
		r.tracker.Update(msg)
		r.browse.Refresh()
		if msg.Done() {
			r.listening = false
			return r, nil
		}
		return r, r.listenForProgress

	case loadFinishedMsg:
		r.browse.Refresh()
		return r, nil

	case searchAppliedMsg:
		// the search listener lives on the browse screen even while details are shown
		_, cmd = r.browse.Update(msg)
		return r, cmd

	case SwitchScreenMsg:
		switch msg.Screen {
		case "browse":
			r.currentView = browseView
			r.details = nil
			r.browse.Refresh()
		case "details":
			if id, ok := msg.Data.(int); ok {
				r.details = NewDetailsScreen(r.ctrl, id)
				r.details.Update(tea.WindowSizeMsg{Width: r.width, Height: r.height})
				r.currentView = detailsView
				cmd = r.details.Init()
			}
		}
		return r, cmd
	}

	// Forward message to active screen
	switch r.currentView {
	case browseView:
		newModel, newCmd := r.browse.Update(msg)
		r.browse = newModel.(*BrowseScreen)
		return r, newCmd
	case detailsView:
		if r.details != nil {
			newModel, newCmd := r.details.Update(msg)
			r.details = newModel.(*DetailsScreen)
			return r, newCmd
		}
	}

	return r, cmd
}

func (r *RootScreen) View() string {
	header := r.renderHeader()

	var content string
	status := r.ctrl.Status()
	switch {
	case status.State == services.Failed:
		content = styles.StatusError.Render(fmt.Sprintf("Error: %s", status.Err)) + "\n\n" +
			styles.HelpStyle.Render("r: retry • q: quit")
	case status.State != services.Ready:
		content = r.tracker.View()
	case r.currentView == detailsView && r.details != nil:
		content = r.details.View()
	default:
		content = r.browse.View()
	}

	return fmt.Sprintf("%s\n\n%s", header, content)
}

func (r *RootScreen) renderHeader() string {
	status := r.ctrl.Status().State.String()
	view := r.ctrl.View()

	title := styles.TitleStyle.UnsetMarginBottom().Render("Pokédex")
	state := styles.StatusStyle(status).Render(status)
	counts := styles.MutedStyle.Render(fmt.Sprintf("loaded %d • shown %d", view.Loaded, view.Shown))

	return lipgloss.JoinHorizontal(lipgloss.Top, title, "  ", state, "  ", counts)
}

// Commands
func (r *RootScreen) load() tea.Msg {
	return loadFinishedMsg{err: r.ctrl.Load(context.Background())}
}

func (r *RootScreen) listenForProgress() tea.Msg {
	return <-r.ctrl.GetProgressChannel()
}
