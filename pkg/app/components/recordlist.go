package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/kerbaras/pokedex/pkg/app/styles"
	"github.com/kerbaras/pokedex/pkg/catalog"
)

// RecordList renders the cards of one page and tracks the selected row.
type RecordList struct {
	Items         []catalog.Card
	SelectedIndex int
	Width         int
	Height        int
}

func NewRecordList() *RecordList {
	return &RecordList{
		Items:         []catalog.Card{},
		SelectedIndex: 0,
		Width:         80,
		Height:        20,
	}
}

func (m *RecordList) SetItems(items []catalog.Card) {
	m.Items = items
	if m.SelectedIndex >= len(items) && len(items) > 0 {
		m.SelectedIndex = len(items) - 1
	}
	if len(items) == 0 {
		m.SelectedIndex = 0
	}
}

func (m *RecordList) Next() {
	if len(m.Items) == 0 {
		return
	}
	m.SelectedIndex++
	if m.SelectedIndex >= len(m.Items) {
		m.SelectedIndex = 0
	}
}

func (m *RecordList) Prev() {
	if len(m.Items) == 0 {
		return
	}
	m.SelectedIndex--
	if m.SelectedIndex < 0 {
		m.SelectedIndex = len(m.Items) - 1
	}
}

func (m *RecordList) Selected() *catalog.Card {
	if len(m.Items) == 0 || m.SelectedIndex >= len(m.Items) {
		return nil
	}
	return &m.Items[m.SelectedIndex]
}

func (m *RecordList) View() string {
	if len(m.Items) == 0 {
		emptyMsg := styles.MutedStyle.Render("No Pokémon match these filters")
		return lipgloss.Place(m.Width, m.Height, lipgloss.Center, lipgloss.Center, emptyMsg)
	}

	var b strings.Builder
	for i, card := range m.Items {
		b.WriteString(m.renderRow(card, i == m.SelectedIndex))
		b.WriteString("\n")
	}
	return b.String()
}

func (m *RecordList) renderRow(card catalog.Card, selected bool) string {
	cursor := "  "
	nameStyle := styles.TextStyle
	if selected {
		cursor = styles.SelectedStyle.Render("▸ ")
		nameStyle = styles.SelectedStyle
	}

	star := " "
	if card.Favorite {
		star = styles.FavoriteStyle.Render("★")
	}

	name := nameStyle.Render(fmt.Sprintf("%-14s", catalog.DisplayName(card.Name)))
	id := styles.MutedStyle.Render(catalog.FormatID(card.ID))
	size := styles.MutedStyle.Render(fmt.Sprintf("%8s %9s", catalog.FormatHeight(card.Height), catalog.FormatWeight(card.Weight)))

	return fmt.Sprintf("%s%s %s %s %s %s", cursor, star, id, name, size, TypeChips(card.Types))
}
