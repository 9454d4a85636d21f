package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/kerbaras/pokedex/pkg/app/components"
	"github.com/kerbaras/pokedex/pkg/app/styles"
	"github.com/kerbaras/pokedex/pkg/catalog"
	"github.com/spf13/cobra"
)

var showSprite bool

var showCmd = &cobra.Command{
	Use:   "show [id]",
	Short: "Show one Pokémon",
	Long:  "Fetch a single Pokémon and print its details and stats",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil || id <= 0 {
			return fmt.Errorf("invalid id %q", args[0])
		}

		s, err := openSession(cmd, false)
		if err != nil {
			return err
		}
		defer s.Close()

		d, err := s.ctrl.Lookup(cmd.Context(), id)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, renderDetail(d))

		if showSprite {
			sprite, err := fetchSprite(cmd, s, d.Record.ImageURL)
			if err != nil {
				s.logger.Warn("sprite unavailable", "id", id, "err", err)
				return nil
			}
			fmt.Fprintln(out, sprite)
		}
		return nil
	},
}

func init() {
	showCmd.Flags().BoolVar(&showSprite, "sprite", false, "render the artwork in the terminal")
}

func renderDetail(d catalog.DetailView) string {
	r := d.Record
	var b strings.Builder

	title := styles.TitleStyle.Render(catalog.FormatID(r.ID) + " " + catalog.DisplayName(r.Name))
	if d.Favorite {
		title += " " + styles.FavoriteStyle.Render("★")
	}
	b.WriteString(title + "\n\n")

	chips := make([]string, len(r.Types))
	for i, tag := range r.Types {
		chips[i] = styles.TypeStyle(tag).Render(tag)
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, chips...) + "\n\n")

	fmt.Fprintf(&b, "Height: %s   Weight: %s\n", catalog.FormatHeight(r.Height), catalog.FormatWeight(r.Weight))
	if len(r.Abilities) > 0 {
		labels := make([]string, len(r.Abilities))
		for i, a := range r.Abilities {
			labels[i] = catalog.Label(a)
		}
		fmt.Fprintf(&b, "Abilities: %s\n", strings.Join(labels, ", "))
	}
	b.WriteString("\n" + components.StatBars(d.Stats, 30))
	return b.String()
}

func fetchSprite(cmd *cobra.Command, s *session, rawURL string) (string, error) {
	content, _, err := s.ctrl.Image(cmd.Context(), rawURL)
	if err != nil {
		return "", err
	}
	img, err := components.DecodeImage(content)
	if err != nil {
		return "", err
	}
	return components.RenderSprite(img, 32), nil
}
