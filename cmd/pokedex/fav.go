package cmd

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/kerbaras/pokedex/pkg/catalog"
	"github.com/spf13/cobra"
)

var favList bool

var favCmd = &cobra.Command{
	Use:   "fav [id]",
	Short: "Toggle or list favorites",
	Long:  "Toggle a Pokémon in the favorites, or print the favorites with --list",
	Args: func(cmd *cobra.Command, args []string) error {
		if favList {
			return cobra.NoArgs(cmd, args)
		}
		return cobra.ExactArgs(1)(cmd, args)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession(cmd, false)
		if err != nil {
			return err
		}
		defer s.Close()

		if favList {
			return listFavorites(cmd, s)
		}

		id, err := strconv.Atoi(args[0])
		if err != nil || id <= 0 {
			return fmt.Errorf("invalid id %q", args[0])
		}

		d, err := s.ctrl.Lookup(cmd.Context(), id)
		if err != nil {
			return err
		}
		if err := s.favs.Toggle(id); err != nil {
			return fmt.Errorf("failed to save favorites: %w", err)
		}

		name := catalog.DisplayName(d.Record.Name)
		if s.favs.IsFavorite(id) {
			fmt.Fprintf(cmd.OutOrStdout(), "★ %s %s added to favorites\n", catalog.FormatID(id), name)
		} else {
			fmt.Fprintf(cmd.OutOrStdout(), "☆ %s %s removed from favorites\n", catalog.FormatID(id), name)
		}
		return nil
	},
}

func init() {
	favCmd.Flags().BoolVar(&favList, "list", false, "list favorites")
}

func listFavorites(cmd *cobra.Command, s *session) error {
	out := cmd.OutOrStdout()
	ids := s.ctrl.Favorites()
	if len(ids) == 0 {
		fmt.Fprintln(out, "No favorites yet. Use 'pokedex fav <id>' to add one.")
		return nil
	}

	var (
		purple = lipgloss.Color("99")

		headerStyle = lipgloss.NewStyle().Foreground(purple).Bold(true).Align(lipgloss.Center)
		cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	)

	t := table.New().
		Border(lipgloss.HiddenBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(purple)).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			default:
				return cellStyle
			}
		}).
		Headers("#", "ID", "Name")

	for i, id := range ids {
		name := "?"
		if d, err := s.ctrl.Lookup(cmd.Context(), id); err == nil {
			name = catalog.DisplayName(d.Record.Name)
		} else {
			s.logger.Warn("favorite lookup failed", "id", id, "err", err)
		}
		t.Row(strconv.Itoa(i+1), catalog.FormatID(id), truncateString(name, 30))
	}

	fmt.Fprintln(out, t)
	return nil
}
