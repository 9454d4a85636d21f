package cmd

import (
	"archive/zip"
	"bytes"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kerbaras/pokedex/internal/testutil"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resetFlags puts every flag of the command tree back to its default so
// consecutive executions in one test binary do not leak into each other.
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			_ = sv.Replace(nil)
		} else {
			_ = f.Value.Set(f.DefValue)
		}
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

type env struct {
	fake *testutil.FakePokeAPI
	dir  string
}

func newEnv(t *testing.T, fixtures ...testutil.Pokemon) *env {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	fake := testutil.NewFakePokeAPI(fixtures...)
	t.Cleanup(fake.Close)
	return &env{fake: fake, dir: dir}
}

// run executes the root command with args and returns its stdout.
func (e *env) run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)

	base := []string{
		"--config", filepath.Join(e.dir, "missing.yaml"),
		"--api", e.fake.URL(),
		"--db", filepath.Join(e.dir, "pokedex.db"),
	}
	rootCmd.SetArgs(append(args, base...))
	err := rootCmd.Execute()
	return out.String(), err
}

func TestListPrintsFirstPage(t *testing.T) {
	e := newEnv(t, testutil.Generate(1, 25)...)

	out, err := e.run(t, "list")
	require.NoError(t, err)

	assert.Contains(t, out, "loaded 25 • shown 25 • page 1/2")
	assert.Contains(t, out, "#0001")
	assert.Contains(t, out, "Mon-020")
	assert.NotContains(t, out, "Mon-021")
}

func TestListPageAndFilters(t *testing.T) {
	fixtures := testutil.Generate(1, 25)
	fixtures[4].Types = []string{"fire"}
	fixtures[6].Types = []string{"fire", "flying"}
	e := newEnv(t, fixtures...)

	out, err := e.run(t, "list", "--page", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "page 2/2")
	assert.Contains(t, out, "Mon-021")
	assert.NotContains(t, out, "Mon-001")

	out, err = e.run(t, "list", "--type", "fire", "--type", "flying")
	require.NoError(t, err)
	assert.Contains(t, out, "shown 1")
	assert.Contains(t, out, "Mon-007")
	assert.NotContains(t, out, "Mon-005")
}

func TestListNoMatches(t *testing.T) {
	e := newEnv(t, testutil.Generate(1, 5)...)

	out, err := e.run(t, "list", "--name", "zzz")
	require.NoError(t, err)
	assert.Contains(t, out, "No Pokémon match these filters (loaded 5)")
}

func TestListRejectsUnknownType(t *testing.T) {
	e := newEnv(t, testutil.Generate(1, 5)...)

	_, err := e.run(t, "list", "--type", "cosmic")
	assert.Error(t, err)
}

func TestListMaxFlag(t *testing.T) {
	e := newEnv(t, testutil.Generate(1, 30)...)

	out, err := e.run(t, "list", "--max", "10")
	require.NoError(t, err)
	assert.Contains(t, out, "loaded 10 • shown 10")
}

func TestListIndexFailure(t *testing.T) {
	e := newEnv(t, testutil.Generate(1, 5)...)
	e.fake.FailIndex(500)

	_, err := e.run(t, "list")
	assert.Error(t, err)
}

func TestShow(t *testing.T) {
	e := newEnv(t, testutil.Generate(1, 3)...)

	out, err := e.run(t, "show", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "#0002 Mon-002")
	assert.Contains(t, out, "run away")
	assert.Contains(t, out, "hp")

	_, err = e.run(t, "show", "abc")
	assert.Error(t, err)

	_, err = e.run(t, "show", "99")
	assert.Error(t, err)
}

func TestShowSprite(t *testing.T) {
	fixtures := testutil.Generate(1, 1)
	e := newEnv(t, fixtures...)
	fixtures[0].Artwork = e.fake.SetImage("mon", testutil.PNG(8, 8, color.RGBA{R: 200, A: 255}))
	e.fake.Add(fixtures[0])

	out, err := e.run(t, "show", "1", "--sprite")
	require.NoError(t, err)
	assert.Contains(t, out, "▀")
}

func TestFavTogglePersists(t *testing.T) {
	e := newEnv(t, testutil.Generate(1, 5)...)

	out, err := e.run(t, "fav", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "added to favorites")

	out, err = e.run(t, "fav", "--list")
	require.NoError(t, err)
	assert.Contains(t, out, "#0003")
	assert.Contains(t, out, "Mon-003")

	out, err = e.run(t, "list", "--favs")
	require.NoError(t, err)
	assert.Contains(t, out, "shown 1")
	assert.Contains(t, out, "★")

	out, err = e.run(t, "fav", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "removed from favorites")

	out, err = e.run(t, "fav", "--list")
	require.NoError(t, err)
	assert.Contains(t, out, "No favorites yet")
}

func TestFavUnknownID(t *testing.T) {
	e := newEnv(t, testutil.Generate(1, 2)...)

	_, err := e.run(t, "fav", "42")
	assert.Error(t, err)

	_, err = e.run(t, "fav")
	assert.Error(t, err)
}

func TestExport(t *testing.T) {
	fixtures := testutil.Generate(1, 25)
	for i := range fixtures {
		fixtures[i].Artwork = ""
	}
	e := newEnv(t, fixtures...)
	outDir := filepath.Join(e.dir, "books")

	out, err := e.run(t, "export", "--output", outDir, "--title", "Starters", "--name", "mon-00")
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote 9 entries")

	path := filepath.Join(outDir, "Starters.epub")
	_, err = os.Stat(path)
	require.NoError(t, err)

	r, err := zip.OpenReader(path)
	require.NoError(t, err)
	defer r.Close()

	entries := 0
	for _, f := range r.File {
		if strings.HasSuffix(f.Name, ".xhtml") && strings.Contains(f.Name, "entry") {
			entries++
		}
	}
	assert.Equal(t, 9, entries)
}

func TestExportNothingShown(t *testing.T) {
	e := newEnv(t, testutil.Generate(1, 3)...)

	_, err := e.run(t, "export", "--output", e.dir, "--favs")
	assert.Error(t, err)
}

func TestInvalidConfig(t *testing.T) {
	e := newEnv(t, testutil.Generate(1, 3)...)

	_, err := e.run(t, "list", "--max", "0")
	assert.Error(t, err)
}
