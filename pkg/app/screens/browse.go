package screens

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/kerbaras/pokedex/pkg/app/components"
	"github.com/kerbaras/pokedex/pkg/app/styles"
	"github.com/kerbaras/pokedex/pkg/catalog"
	"github.com/kerbaras/pokedex/pkg/data"
	"github.com/kerbaras/pokedex/pkg/services"
)

// BrowseScreen shows one page of the shown view with the filter controls.
type BrowseScreen struct {
	ctrl       *services.CatalogController
	input      textinput.Model
	list       *components.RecordList
	view       catalog.PageView
	picking    bool
	typeCursor int
	searches   chan error
	width      int
	height     int
	err        error
}

func NewBrowseScreen(ctrl *services.CatalogController) *BrowseScreen {
	ti := textinput.New()
	ti.Placeholder = "Search by name..."
	ti.CharLimit = 40
	ti.Width = 30

	return &BrowseScreen{
		ctrl:     ctrl,
		input:    ti,
		list:     components.NewRecordList(),
		searches: make(chan error, 1),
	}
}

func (s *BrowseScreen) Init() tea.Cmd {
	return s.listenForSearch
}

// Typing reports whether keys currently go to the search input.
func (s *BrowseScreen) Typing() bool {
	return s.input.Focused()
}

// Refresh re-reads the current page from the controller.
func (s *BrowseScreen) Refresh() {
	s.view = s.ctrl.View()
	s.list.SetItems(s.view.Cards)
}

func (s *BrowseScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.height = msg.Height
		s.list.Width = msg.Width - 4
		s.list.Height = msg.Height - 14

	case searchAppliedMsg:
		s.err = msg.err
		s.Refresh()
		return s, s.listenForSearch

	case tea.KeyMsg:
		if s.input.Focused() {
			return s.updateInput(msg)
		}
		if s.picking {
			return s, s.updatePicker(msg)
		}
		return s, s.updateList(msg)
	}

	return s, cmd
}

func (s *BrowseScreen) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "enter", "tab":
		s.input.Blur()
		return s, nil
	}

	before := s.input.Value()
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	if s.input.Value() != before {
		s.ctrl.Search(s.input.Value(), s.notifySearch)
	}
	return s, cmd
}

func (s *BrowseScreen) updatePicker(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "left", "h":
		s.typeCursor = (s.typeCursor + len(data.Types) - 1) % len(data.Types)
	case "right", "l":
		s.typeCursor = (s.typeCursor + 1) % len(data.Types)
	case "up", "k", "down", "j":
		s.typeCursor = (s.typeCursor + len(data.Types)/2) % len(data.Types)
	case " ", "enter":
		s.dispatch(catalog.Action{Kind: catalog.ToggleType, Text: data.Types[s.typeCursor]})
	case "esc", "t":
		s.picking = false
	}
	return nil
}

func (s *BrowseScreen) updateList(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "/":
		s.input.Focus()
		return textinput.Blink
	case "up", "k":
		s.list.Prev()
	case "down", "j":
		s.list.Next()
	case "left", "h", "pgup":
		s.dispatch(catalog.Action{Kind: catalog.PrevPage})
	case "right", "l", "pgdown":
		s.dispatch(catalog.Action{Kind: catalog.NextPage})
	case "t":
		s.picking = true
	case "g":
		next := (s.view.Criteria.Generation + 1) % (len(data.Generations) + 1)
		s.dispatch(catalog.Action{Kind: catalog.SetGeneration, Number: next})
	case "s":
		s.dispatch(catalog.Action{Kind: catalog.SetSort, Sort: s.view.Criteria.Sort.Next()})
	case "F":
		s.dispatch(catalog.Action{Kind: catalog.ToggleFavoritesOnly})
	case "f":
		if selected := s.list.Selected(); selected != nil {
			s.dispatch(catalog.Action{Kind: catalog.ToggleFavorite, Number: selected.ID})
		}
	case "x":
		s.ctrl.CancelSearch()
		s.input.SetValue("")
		s.dispatch(catalog.Action{Kind: catalog.Reset})
	case "enter":
		if selected := s.list.Selected(); selected != nil {
			id := selected.ID
			return func() tea.Msg {
				return SwitchScreenMsg{Screen: "details", Data: id}
			}
		}
	}
	return nil
}

func (s *BrowseScreen) dispatch(a catalog.Action) {
	s.err = s.ctrl.Dispatch(a)
	s.Refresh()
}

func (s *BrowseScreen) View() string {
	inputStyle := styles.InputStyle
	if s.input.Focused() {
		inputStyle = styles.FocusedInputStyle
	}
	inputView := inputStyle.Render(s.input.View())

	var errorMsg string
	if s.err != nil {
		errorMsg = styles.StatusError.Render(fmt.Sprintf("Error: %s", s.err))
		errorMsg += "\n\n"
	}

	cursor := -1
	if s.picking {
		cursor = s.typeCursor
	}

	help := "/: search • ↑/k ↓/j: select • ←/h →/l: page • t: types • g: generation • s: sort • f: favorite • F: favorites only • x: reset • enter: details • q: quit"
	if s.picking {
		help = "←/h →/l ↑/k ↓/j: move • space: toggle type • esc/t: done"
	}

	return fmt.Sprintf("%s  %s\n%s\n\n%s%s\n%s\n%s",
		inputView,
		s.renderCriteria(),
		components.TypeFilter(s.view.Criteria, cursor),
		errorMsg,
		s.list.View(),
		s.renderPager(),
		styles.HelpStyle.Render(help),
	)
}

func (s *BrowseScreen) renderCriteria() string {
	gen := "all"
	if s.view.Criteria.Generation != 0 {
		gen = fmt.Sprintf("%d", s.view.Criteria.Generation)
	}

	favs := styles.InactiveTabStyle.Render("★ favorites")
	if s.view.Criteria.FavoritesOnly {
		favs = styles.ActiveTabStyle.Render("★ favorites")
	}

	return lipgloss.JoinHorizontal(lipgloss.Center,
		styles.MutedStyle.Render("gen "), styles.TextStyle.Render(gen),
		styles.MutedStyle.Render("  sort "), styles.TextStyle.Render(string(s.view.Criteria.Sort)),
		"  ", favs,
	)
}

func (s *BrowseScreen) renderPager() string {
	prev, next := "‹", "›"
	if !s.view.HasPrev {
		prev = styles.MutedStyle.Render(prev)
	}
	if !s.view.HasNext {
		next = styles.MutedStyle.Render(next)
	}
	return fmt.Sprintf("%s Page %d/%d %s", prev, s.view.Page, s.view.TotalPages, next)
}

// Messages
type searchAppliedMsg struct {
	err error
}

// notifySearch runs on the debounce timer's goroutine.
func (s *BrowseScreen) notifySearch(err error) {
	select {
	case s.searches <- err:
	default:
		// a refresh is already queued
	}
}

// Commands
func (s *BrowseScreen) listenForSearch() tea.Msg {
	return searchAppliedMsg{err: <-s.searches}
}
