package catalog

import (
	"fmt"

	"github.com/kerbaras/pokedex/pkg/data"
)

// Favorites is the favorites store as seen by the reducer.
type Favorites interface {
	FavoriteChecker
	Toggle(id int) error
}

// State is the browsing session: the loaded records, the current criteria,
// the derived shown view and the page over it.
type State struct {
	Records  *data.RecordSet
	Criteria Criteria
	Shown    []*data.Record
	Pager    *Paginator
}

func NewState(perPage int) *State {
	return &State{
		Records:  data.NewRecordSet(),
		Criteria: DefaultCriteria(),
		Shown:    []*data.Record{},
		Pager:    NewPaginator(perPage),
	}
}

type ActionKind int

const (
	SetName ActionKind = iota
	ToggleType
	SetGeneration
	SetSort
	ToggleFavoritesOnly
	Reset
	ToggleFavorite
	PrevPage
	NextPage
)

var actionNames = map[ActionKind]string{
	SetName:             "set-name",
	ToggleType:          "toggle-type",
	SetGeneration:       "set-generation",
	SetSort:             "set-sort",
	ToggleFavoritesOnly: "toggle-favorites-only",
	Reset:               "reset",
	ToggleFavorite:      "toggle-favorite",
	PrevPage:            "prev-page",
	NextPage:            "next-page",
}

func (k ActionKind) String() string {
	if name, ok := actionNames[k]; ok {
		return name
	}
	return fmt.Sprintf("action(%d)", int(k))
}

// Action is one user event. Only the field relevant to Kind is read:
// Text for SetName and ToggleType, Number for SetGeneration and
// ToggleFavorite, Sort for SetSort.
type Action struct {
	Kind   ActionKind
	Text   string
	Number int
	Sort   SortKey
}

// Recompute rebuilds the shown view from scratch and returns to page 1.
func Recompute(s *State, favs FavoriteChecker) {
	s.Shown = Apply(s.Records.All(), s.Criteria, favs)
	s.Pager.Reset(len(s.Shown))
}

// Reduce applies a to s. Criteria changes recompute the shown view and reset
// the page; page navigation only moves the page. Toggling a favorite
// persists it and recomputes, keeping the page unless the shown view changed.
// On error s is left as it was, except that a failed favorite persist still
// flips the in-memory membership.
func Reduce(s *State, a Action, favs Favorites) error {
	switch a.Kind {
	case PrevPage:
		s.Pager.Navigate(Prev)
		return nil
	case NextPage:
		s.Pager.Navigate(Next)
		return nil
	case ToggleFavorite:
		return toggleFavorite(s, a.Number, favs)
	}

	c := s.Criteria
	switch a.Kind {
	case SetName:
		c.SetName(a.Text)
	case ToggleType:
		if err := c.ToggleType(a.Text); err != nil {
			return fmt.Errorf("%w: %q", err, a.Text)
		}
	case SetGeneration:
		if err := c.SetGeneration(a.Number); err != nil {
			return fmt.Errorf("%w: %d", err, a.Number)
		}
	case SetSort:
		c.Sort = ParseSortKey(string(a.Sort))
	case ToggleFavoritesOnly:
		c.FavoritesOnly = !c.FavoritesOnly
	case Reset:
		c = DefaultCriteria()
	default:
		return fmt.Errorf("%w: %s", ErrUnknownAction, a.Kind)
	}

	s.Criteria = c
	Recompute(s, favs)
	return nil
}

func toggleFavorite(s *State, id int, favs Favorites) error {
	if _, ok := s.Records.Get(id); !ok {
		return fmt.Errorf("%w: %d", ErrUnknownRecord, id)
	}
	err := favs.Toggle(id)

	shown := Apply(s.Records.All(), s.Criteria, favs)
	changed := !sameRecords(shown, s.Shown)
	s.Shown = shown
	if changed {
		s.Pager.Reset(len(shown))
	} else {
		s.Pager.Resize(len(shown))
	}
	return err
}

func sameRecords(a, b []*data.Record) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
