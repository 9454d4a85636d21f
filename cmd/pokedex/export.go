package cmd

import (
	"fmt"

	"github.com/kerbaras/pokedex/pkg/integrations"
	"github.com/spf13/cobra"
)

var (
	exportFilters   filterFlags
	exportOutput    string
	exportTitle     string
	exportGrayscale bool
	exportMaxSize   int
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the shown Pokémon as an EPUB field guide",
	Long:  "Load the catalog, apply the filters and compile every shown Pokémon, across all pages, into an EPUB",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession(cmd, false)
		if err != nil {
			return err
		}
		defer s.Close()

		if err := exportFilters.apply(cmd, s); err != nil {
			return err
		}

		records := s.ctrl.Shown()
		if len(records) == 0 {
			return fmt.Errorf("no Pokémon match these filters")
		}

		settings := integrations.DefaultArtworkSettings()
		settings.Grayscale = exportGrayscale
		if exportMaxSize > 0 {
			settings.MaxSize = exportMaxSize
		}

		guide := integrations.NewFieldGuide(exportOutput, s.ctrl, settings, s.logger)
		path, err := guide.Build(cmd.Context(), exportTitle, records, s.favs)
		if err != nil {
			return fmt.Errorf("export failed: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "📖 Wrote %d entries to %s\n", len(records), path)
		return nil
	},
}

func init() {
	exportFilters.register(exportCmd)
	flags := exportCmd.Flags()
	flags.StringVarP(&exportOutput, "output", "o", ".", "output directory")
	flags.StringVar(&exportTitle, "title", "Pokédex Field Guide", "book title")
	flags.BoolVar(&exportGrayscale, "grayscale", false, "convert artwork to grayscale for e-ink readers")
	flags.IntVar(&exportMaxSize, "max-size", 0, "maximum artwork edge in pixels")
}
