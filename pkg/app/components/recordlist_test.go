package components

import (
	"strings"
	"testing"

	"github.com/kerbaras/pokedex/pkg/catalog"
)

func cards(names ...string) []catalog.Card {
	out := make([]catalog.Card, len(names))
	for i, n := range names {
		out[i] = catalog.Card{ID: i + 1, Name: n, Types: []string{"normal"}, Height: 0.5, Weight: 6}
	}
	return out
}

func TestNewRecordList(t *testing.T) {
	list := NewRecordList()

	if list == nil {
		t.Fatal("Expected list to be created")
	}
	if len(list.Items) != 0 {
		t.Errorf("Expected 0 items, got %d", len(list.Items))
	}
	if list.Selected() != nil {
		t.Error("Expected no selection on an empty list")
	}
}

func TestRecordListNavigationWraps(t *testing.T) {
	list := NewRecordList()
	list.SetItems(cards("bulbasaur", "ivysaur", "venusaur"))

	list.Prev()
	if list.SelectedIndex != 2 {
		t.Errorf("Expected Prev to wrap to 2, got %d", list.SelectedIndex)
	}

	list.Next()
	if list.SelectedIndex != 0 {
		t.Errorf("Expected Next to wrap to 0, got %d", list.SelectedIndex)
	}

	list.Next()
	if got := list.Selected(); got == nil || got.Name != "ivysaur" {
		t.Errorf("Expected ivysaur selected, got %+v", got)
	}
}

func TestRecordListSetItemsClampsSelection(t *testing.T) {
	list := NewRecordList()
	list.SetItems(cards("a", "b", "c", "d"))
	list.SelectedIndex = 3

	list.SetItems(cards("a", "b"))
	if list.SelectedIndex != 1 {
		t.Errorf("Expected selection clamped to 1, got %d", list.SelectedIndex)
	}

	list.SetItems(nil)
	if list.SelectedIndex != 0 {
		t.Errorf("Expected selection reset to 0, got %d", list.SelectedIndex)
	}
}

func TestRecordListView(t *testing.T) {
	list := NewRecordList()
	items := cards("pikachu", "raichu")
	items[1].Favorite = true
	list.SetItems(items)

	view := list.View()

	for _, want := range []string{"Pikachu", "Raichu", "#0001", "0.5 m", "6.0 kg", "normal", "★"} {
		if !strings.Contains(view, want) {
			t.Errorf("Expected view to contain %q:\n%s", want, view)
		}
	}
	if strings.Count(view, "★") != 1 {
		t.Errorf("Expected exactly one favorite marker")
	}
}

func TestRecordListEmptyView(t *testing.T) {
	list := NewRecordList()
	list.Width, list.Height = 40, 3

	if !strings.Contains(list.View(), "No Pokémon match these filters") {
		t.Error("Expected empty-state message")
	}
}
