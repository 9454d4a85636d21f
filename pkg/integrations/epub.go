package integrations

import (
	"context"
	"fmt"
	"html"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/go-shiori/go-epub"
	"github.com/kerbaras/pokedex/pkg/catalog"
	"github.com/kerbaras/pokedex/pkg/data"
)

// ImageFetcher downloads record artwork.
type ImageFetcher interface {
	Image(ctx context.Context, rawURL string) ([]byte, string, error)
}

// FieldGuide compiles a list of records into an EPUB, one section per record.
type FieldGuide struct {
	outputDir string
	images    ImageFetcher
	artwork   *ArtworkProcessor
	logger    *log.Logger
}

func NewFieldGuide(outputDir string, images ImageFetcher, settings ArtworkSettings, logger *log.Logger) *FieldGuide {
	return &FieldGuide{
		outputDir: outputDir,
		images:    images,
		artwork:   NewArtworkProcessor(settings),
		logger:    logger,
	}
}

// Build writes records, in order, to <outputDir>/<title>.epub and returns
// its path. Artwork that cannot be fetched is left out of its section.
func (g *FieldGuide) Build(ctx context.Context, title string, records []*data.Record, favs catalog.FavoriteChecker) (string, error) {
	if len(records) == 0 {
		return "", fmt.Errorf("no records to compile")
	}

	if err := os.MkdirAll(g.outputDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	workDir, err := os.MkdirTemp("", "pokedex-epub-*")
	if err != nil {
		return "", fmt.Errorf("failed to create work directory: %w", err)
	}
	defer os.RemoveAll(workDir)

	e, err := epub.NewEpub(title)
	if err != nil {
		return "", fmt.Errorf("failed to create EPub: %w", err)
	}
	e.SetAuthor("PokeAPI")
	e.SetDescription(fmt.Sprintf("%d entries", len(records)))
	e.SetLang("en")

	if _, err := e.AddSection(renderIndex(title, records, favs), "Index", "index.xhtml", ""); err != nil {
		return "", fmt.Errorf("failed to add index: %w", err)
	}

	cover := ""
	for _, r := range records {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		imagePath := g.addArtwork(ctx, e, workDir, r)
		if cover == "" && imagePath != "" {
			cover = imagePath
		}

		detail := catalog.DetailOf(r, favs)
		filename := fmt.Sprintf("entry%04d.xhtml", r.ID)
		if _, err := e.AddSection(renderEntry(detail, imagePath), catalog.DisplayName(r.Name), filename, ""); err != nil {
			return "", fmt.Errorf("failed to add %s: %w", r.Name, err)
		}
	}

	if cover != "" {
		e.SetCover(cover, "")
	}

	outputPath := filepath.Join(g.outputDir, sanitizeFilename(title)+".epub")
	if err := e.Write(outputPath); err != nil {
		return "", fmt.Errorf("failed to write EPub: %w", err)
	}

	g.logger.Info("field guide written", "path", outputPath, "records", len(records))
	return outputPath, nil
}

// addArtwork embeds the artwork of r and returns its internal path, or ""
// when it is missing or unusable.
func (g *FieldGuide) addArtwork(ctx context.Context, e *epub.Epub, workDir string, r *data.Record) string {
	if r.ImageURL == "" {
		return ""
	}

	content, _, err := g.images.Image(ctx, r.ImageURL)
	if err != nil {
		g.logger.Warn("skipping artwork", "id", r.ID, "err", err)
		return ""
	}
	processed, err := g.artwork.Process(content)
	if err != nil {
		g.logger.Warn("skipping artwork", "id", r.ID, "err", err)
		return ""
	}

	name := fmt.Sprintf("%04d.png", r.ID)
	localPath := filepath.Join(workDir, name)
	if err := os.WriteFile(localPath, processed, 0644); err != nil {
		g.logger.Warn("skipping artwork", "id", r.ID, "err", err)
		return ""
	}

	internalPath, err := e.AddImage(localPath, name)
	if err != nil {
		g.logger.Warn("skipping artwork", "id", r.ID, "err", err)
		return ""
	}
	return internalPath
}

func renderIndex(title string, records []*data.Record, favs catalog.FavoriteChecker) string {
	var b strings.Builder
	fmt.Fprintf(&b, "<h1>%s</h1>\n<ol>\n", html.EscapeString(title))
	for _, r := range records {
		star := ""
		if favs != nil && favs.IsFavorite(r.ID) {
			star = " ★"
		}
		fmt.Fprintf(&b, "<li>%s %s%s</li>\n", catalog.FormatID(r.ID), html.EscapeString(catalog.DisplayName(r.Name)), star)
	}
	b.WriteString("</ol>\n")
	return b.String()
}

func renderEntry(d catalog.DetailView, imagePath string) string {
	r := d.Record

	var b strings.Builder
	fmt.Fprintf(&b, "<h1>%s %s</h1>\n", html.EscapeString(catalog.DisplayName(r.Name)), catalog.FormatID(r.ID))
	if d.Favorite {
		b.WriteString("<p><strong>★ Favorite</strong></p>\n")
	}
	if imagePath != "" {
		fmt.Fprintf(&b, `<div class="art"><img src="%s" alt="%s"/></div>`+"\n", imagePath, html.EscapeString(r.Name))
	}

	abilities := make([]string, len(r.Abilities))
	for i, a := range r.Abilities {
		abilities[i] = html.EscapeString(catalog.Label(a))
	}

	b.WriteString("<table>\n")
	fmt.Fprintf(&b, "<tr><th>Types</th><td>%s</td></tr>\n", html.EscapeString(strings.Join(r.Types, ", ")))
	fmt.Fprintf(&b, "<tr><th>Height</th><td>%s</td></tr>\n", catalog.FormatHeight(r.Height))
	fmt.Fprintf(&b, "<tr><th>Weight</th><td>%s</td></tr>\n", catalog.FormatWeight(r.Weight))
	fmt.Fprintf(&b, "<tr><th>Abilities</th><td>%s</td></tr>\n", strings.Join(abilities, ", "))
	b.WriteString("</table>\n")

	if len(d.Stats) > 0 {
		b.WriteString("<h2>Base stats</h2>\n<table>\n")
		for _, s := range d.Stats {
			fmt.Fprintf(&b,
				`<tr><th>%s</th><td>%d</td><td><div style="background:#FF6B9D;height:0.6em;width:%.0f%%"></div></td></tr>`+"\n",
				html.EscapeString(catalog.Label(s.Name)), s.Value, s.Percent,
			)
		}
		b.WriteString("</table>\n")
	}
	return b.String()
}

// sanitizeFilename removes characters that are invalid in filenames
func sanitizeFilename(name string) string {
	invalid := []string{"/", "\\", ":", "*", "?", "\"", "<", ">", "|"}
	result := name
	for _, char := range invalid {
		result = strings.ReplaceAll(result, char, "_")
	}
	result = strings.TrimSpace(result)
	result = strings.Trim(result, ".")
	if result == "" {
		result = "pokedex"
	}
	return result
}
