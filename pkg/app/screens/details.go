package screens

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/kerbaras/pokedex/pkg/app/components"
	"github.com/kerbaras/pokedex/pkg/app/styles"
	"github.com/kerbaras/pokedex/pkg/catalog"
	"github.com/kerbaras/pokedex/pkg/services"
)

const spriteWidth = 32

type DetailsScreen struct {
	ctrl   *services.CatalogController
	id     int
	detail *catalog.DetailView
	sprite string
	width  int
	height int
	err    error
}

func NewDetailsScreen(ctrl *services.CatalogController, id int) *DetailsScreen {
	return &DetailsScreen{ctrl: ctrl, id: id}
}

func (s *DetailsScreen) Init() tea.Cmd {
	return s.loadDetails
}

func (s *DetailsScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.height = msg.Height

	case tea.KeyMsg:
		switch msg.String() {
		case "f":
			s.err = s.ctrl.Dispatch(catalog.Action{Kind: catalog.ToggleFavorite, Number: s.id})
			return s, s.loadDetails
		case "esc", "backspace":
			return s, func() tea.Msg {
				return SwitchScreenMsg{Screen: "browse", Data: nil}
			}
		}

	case detailsLoadedMsg:
		if msg.err != nil {
			s.err = msg.err
			return s, nil
		}
		first := s.detail == nil
		s.detail = &msg.detail
		if first && msg.detail.Record.ImageURL != "" {
			return s, s.loadSprite(msg.detail.Record.ImageURL)
		}

	case spriteLoadedMsg:
		if msg.err == nil {
			s.sprite = msg.sprite
		}
	}

	return s, nil
}

func (s *DetailsScreen) View() string {
	if s.detail == nil {
		if s.err != nil {
			return styles.StatusError.Render(fmt.Sprintf("Error: %s", s.err))
		}
		return "Loading..."
	}
	r := s.detail.Record

	title := fmt.Sprintf("%s %s", catalog.DisplayName(r.Name), styles.MutedStyle.Render(catalog.FormatID(r.ID)))
	if s.detail.Favorite {
		title += " " + styles.FavoriteStyle.Render("★")
	}
	header := styles.TitleStyle.Render(title)

	var errorMsg string
	if s.err != nil {
		errorMsg = styles.StatusError.Render(fmt.Sprintf("Error: %s", s.err))
		errorMsg += "\n\n"
	}

	abilities := make([]string, len(r.Abilities))
	for i, a := range r.Abilities {
		abilities[i] = catalog.Label(a)
	}

	info := lipgloss.JoinVertical(
		lipgloss.Left,
		components.TypeChips(r.Types),
		"",
		styles.TextStyle.Render(fmt.Sprintf("Height  %s", catalog.FormatHeight(r.Height))),
		styles.TextStyle.Render(fmt.Sprintf("Weight  %s", catalog.FormatWeight(r.Weight))),
		styles.TextStyle.Render(fmt.Sprintf("Abilities  %s", strings.Join(abilities, ", "))),
		"",
		styles.SubtitleStyle.Render("Base stats"),
		components.StatBars(s.detail.Stats, 30),
	)

	body := info
	if s.sprite != "" {
		body = lipgloss.JoinHorizontal(lipgloss.Top, s.sprite, "  ", info)
	}

	help := styles.HelpStyle.Render("f: toggle favorite • esc: back • q: quit")

	return fmt.Sprintf("%s\n\n%s%s\n%s",
		header,
		errorMsg,
		styles.CardStyle.Render(body),
		help,
	)
}

// Messages
type detailsLoadedMsg struct {
	detail catalog.DetailView
	err    error
}

type spriteLoadedMsg struct {
	sprite string
	err    error
}

// Commands
func (s *DetailsScreen) loadDetails() tea.Msg {
	detail, err := s.ctrl.Detail(s.id)
	return detailsLoadedMsg{detail: detail, err: err}
}

func (s *DetailsScreen) loadSprite(url string) tea.Cmd {
	return func() tea.Msg {
		content, _, err := s.ctrl.Image(context.Background(), url)
		if err != nil {
			return spriteLoadedMsg{err: err}
		}
		img, err := components.DecodeImage(content)
		if err != nil {
			return spriteLoadedMsg{err: err}
		}
		return spriteLoadedMsg{sprite: components.RenderSprite(img, spriteWidth)}
	}
}
