package integrations

import (
	"archive/zip"
	"context"
	"errors"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kerbaras/pokedex/internal/testutil"
	"github.com/kerbaras/pokedex/pkg/data"
	"github.com/kerbaras/pokedex/pkg/logging"
)

type mockImages struct {
	images map[string][]byte
	calls  int
}

func (m *mockImages) Image(ctx context.Context, rawURL string) ([]byte, string, error) {
	m.calls++
	content, ok := m.images[rawURL]
	if !ok {
		return nil, "", errors.New("not found")
	}
	return content, "image/png", nil
}

type favSet map[int]bool

func (f favSet) IsFavorite(id int) bool { return f[id] }

func testRecords() []*data.Record {
	return []*data.Record{
		{
			ID: 25, Name: "pikachu", Height: 0.4, Weight: 6, Types: []string{"electric"},
			Abilities: []string{"static", "lightning-rod"},
			Stats:     []data.Stat{{Name: "hp", Value: 35}, {Name: "special-attack", Value: 50}},
			ImageURL:  "https://img.example/25.png",
		},
		{
			ID: 132, Name: "ditto", Height: 0.3, Weight: 4, Types: []string{"normal"},
			Abilities: []string{"limber"},
			ImageURL:  "https://img.example/missing.png",
		},
		{ID: 151, Name: "mew", Height: 0.4, Weight: 4, Types: []string{"psychic"}},
	}
}

// readEPub returns every entry of the archive keyed by name.
func readEPub(t *testing.T, path string) map[string]string {
	t.Helper()
	r, err := zip.OpenReader(path)
	if err != nil {
		t.Fatalf("Failed to open EPub: %v", err)
	}
	defer r.Close()

	entries := make(map[string]string)
	for _, f := range r.File {
		rc, err := f.Open()
		if err != nil {
			t.Fatalf("Failed to open %s: %v", f.Name, err)
		}
		content, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			t.Fatalf("Failed to read %s: %v", f.Name, err)
		}
		entries[f.Name] = string(content)
	}
	return entries
}

func findEntry(entries map[string]string, suffix string) (string, bool) {
	for name, content := range entries {
		if strings.HasSuffix(name, suffix) {
			return content, true
		}
	}
	return "", false
}

func TestFieldGuideBuild(t *testing.T) {
	outputDir := t.TempDir()
	images := &mockImages{images: map[string][]byte{
		"https://img.example/25.png": testutil.PNG(512, 512, color.RGBA{G: 200, A: 255}),
	}}
	guide := NewFieldGuide(outputDir, images, DefaultArtworkSettings(), logging.Discard())

	path, err := guide.Build(context.Background(), "Gen 1: Favorites", testRecords(), favSet{25: true})
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	if filepath.Dir(path) != outputDir || filepath.Base(path) != "Gen 1_ Favorites.epub" {
		t.Errorf("Unexpected output path %s", path)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("EPub not written: %v", err)
	}
	if images.calls != 2 {
		t.Errorf("Expected 2 image fetches, got %d", images.calls)
	}

	entries := readEPub(t, path)

	index, ok := findEntry(entries, "index.xhtml")
	if !ok {
		t.Fatal("Expected an index section")
	}
	if !strings.Contains(index, "#0025 Pikachu ★") || !strings.Contains(index, "#0151 Mew") {
		t.Errorf("Unexpected index:\n%s", index)
	}

	pikachu, ok := findEntry(entries, "entry0025.xhtml")
	if !ok {
		t.Fatal("Expected a section for pikachu")
	}
	for _, want := range []string{"Pikachu", "0.4 m", "6.0 kg", "lightning rod", "special attack", "★ Favorite", "0025.png"} {
		if !strings.Contains(pikachu, want) {
			t.Errorf("Expected %q in pikachu section", want)
		}
	}

	ditto, ok := findEntry(entries, "entry0132.xhtml")
	if !ok {
		t.Fatal("Expected a section for ditto")
	}
	if strings.Contains(ditto, "<img") {
		t.Error("Expected ditto without artwork")
	}

	if _, ok := findEntry(entries, "0025.png"); !ok {
		t.Error("Expected artwork to be embedded")
	}
}

func TestFieldGuideBuildEmpty(t *testing.T) {
	guide := NewFieldGuide(t.TempDir(), &mockImages{}, DefaultArtworkSettings(), logging.Discard())

	if _, err := guide.Build(context.Background(), "Empty", nil, nil); err == nil {
		t.Error("Expected error for no records")
	}
}

func TestFieldGuideBuildCanceled(t *testing.T) {
	guide := NewFieldGuide(t.TempDir(), &mockImages{}, DefaultArtworkSettings(), logging.Discard())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := guide.Build(ctx, "Canceled", testRecords(), nil)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
}

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Normal Name", "Normal Name"},
		{"Name/With/Slashes", "Name_With_Slashes"},
		{"Name:With:Colons", "Name_With_Colons"},
		{"Name*With?Special<Chars>", "Name_With_Special_Chars_"},
		{"  Spaces  ", "Spaces"},
		{"...dots...", "dots"},
		{"", "pokedex"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := sanitizeFilename(tt.input)
			if result != tt.expected {
				t.Errorf("sanitizeFilename(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}
