package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	"github.com/kerbaras/pokedex/pkg/catalog"
	"github.com/spf13/cobra"
)

// filterFlags are the criteria flags shared by list and export.
type filterFlags struct {
	name      string
	types     []string
	gen       int
	sort      string
	favorites bool
}

func (f *filterFlags) register(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVar(&f.name, "name", "", "name substring filter")
	flags.StringSliceVar(&f.types, "type", nil, "required type (repeatable)")
	flags.IntVar(&f.gen, "gen", 0, "generation 1-9")
	flags.StringVar(&f.sort, "sort", string(catalog.SortByID), "sort key: id, name, height, weight")
	flags.BoolVar(&f.favorites, "favs", false, "only favorites")
}

// actions converts the flags to the actions a user would dispatch.
func (f *filterFlags) actions() []catalog.Action {
	var actions []catalog.Action
	if f.name != "" {
		actions = append(actions, catalog.Action{Kind: catalog.SetName, Text: f.name})
	}
	for _, tag := range f.types {
		actions = append(actions, catalog.Action{Kind: catalog.ToggleType, Text: strings.ToLower(tag)})
	}
	if f.gen != 0 {
		actions = append(actions, catalog.Action{Kind: catalog.SetGeneration, Number: f.gen})
	}
	if f.sort != "" {
		actions = append(actions, catalog.Action{Kind: catalog.SetSort, Sort: catalog.SortKey(f.sort)})
	}
	if f.favorites {
		actions = append(actions, catalog.Action{Kind: catalog.ToggleFavoritesOnly})
	}
	return actions
}

// apply loads the catalog and dispatches the filter actions.
func (f *filterFlags) apply(cmd *cobra.Command, s *session) error {
	if err := s.load(cmd.Context()); err != nil {
		return err
	}
	for _, a := range f.actions() {
		if err := s.ctrl.Dispatch(a); err != nil {
			return err
		}
	}
	return nil
}

var (
	listFilters filterFlags
	listPage    int
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List Pokémon",
	Long:  "Load the catalog, apply the filters and print one page as a table",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession(cmd, false)
		if err != nil {
			return err
		}
		defer s.Close()

		if err := listFilters.apply(cmd, s); err != nil {
			return err
		}
		for i := 1; i < listPage; i++ {
			if !s.ctrl.View().HasNext {
				break
			}
			if err := s.ctrl.Dispatch(catalog.Action{Kind: catalog.NextPage}); err != nil {
				return err
			}
		}

		printPage(cmd, s.ctrl.View())
		return nil
	},
}

func init() {
	listFilters.register(listCmd)
	listCmd.Flags().IntVar(&listPage, "page", 1, "page to print")
}

func printPage(cmd *cobra.Command, view catalog.PageView) {
	out := cmd.OutOrStdout()
	if view.Empty() {
		fmt.Fprintf(out, "No Pokémon match these filters (loaded %d).\n", view.Loaded)
		return
	}

	columns := []table.Column{
		{Title: "ID", Width: 6},
		{Title: "Name", Width: 24},
		{Title: "Types", Width: 20},
		{Title: "Height", Width: 8},
		{Title: "Weight", Width: 9},
		{Title: "Fav", Width: 3},
	}

	rows := []table.Row{}
	for _, card := range view.Cards {
		fav := ""
		if card.Favorite {
			fav = "★"
		}
		rows = append(rows, table.Row{
			catalog.FormatID(card.ID),
			truncateString(catalog.DisplayName(card.Name), 22),
			strings.Join(card.Types, "/"),
			catalog.FormatHeight(card.Height),
			catalog.FormatWeight(card.Weight),
			fav,
		})
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(false),
		// height counts the header lines too
		table.WithHeight(len(rows)+2),
	)

	st := table.DefaultStyles()
	st.Header = st.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	st.Selected = lipgloss.NewStyle()
	t.SetStyles(st)

	fmt.Fprintf(out, "\nPokédex (loaded %d • shown %d • page %d/%d)\n\n",
		view.Loaded, view.Shown, view.Page, view.TotalPages)
	fmt.Fprintln(out, t.View())
}

func truncateString(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	return string(r[:maxLen-1]) + "…"
}
