package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/kerbaras/pokedex/pkg/app/styles"
	"github.com/kerbaras/pokedex/pkg/catalog"
	"github.com/kerbaras/pokedex/pkg/data"
)

// TypeChips renders one colored chip per tag.
func TypeChips(tags []string) string {
	chips := make([]string, len(tags))
	for i, t := range tags {
		chips[i] = styles.TypeStyle(t).Render(t)
	}
	return strings.Join(chips, " ")
}

// TypeFilter renders the whole type vocabulary, highlighting the selected
// tags. cursor marks the tag under the picker, or -1 for none.
func TypeFilter(c catalog.Criteria, cursor int) string {
	chips := make([]string, len(data.Types))
	for i, t := range data.Types {
		style := styles.InactiveTabStyle
		if c.HasType(t) {
			style = styles.TypeStyle(t)
		}
		if i == cursor {
			style = style.Underline(true)
		}
		chips[i] = style.Render(t)
	}

	half := len(chips) / 2
	return lipgloss.JoinVertical(lipgloss.Left,
		strings.Join(chips[:half], " "),
		strings.Join(chips[half:], " "),
	)
}
