package catalog

import (
	"fmt"

	"github.com/kerbaras/pokedex/pkg/data"
)

// MaxStatValue is the stat value drawn as a full bar.
const MaxStatValue = 200

type Card struct {
	ID       int
	Name     string
	ImageURL string
	Types    []string
	Height   float64
	Weight   float64
	Favorite bool
}

// PageView is everything a renderer needs to draw the current page.
type PageView struct {
	Cards      []Card
	Page       int
	TotalPages int
	HasPrev    bool
	HasNext    bool
	Loaded     int
	Shown      int
	Criteria   Criteria
}

// Empty reports whether no record satisfies the criteria.
func (v PageView) Empty() bool {
	return v.Shown == 0
}

type StatBar struct {
	Name    string
	Value   int
	Percent float64
}

type DetailView struct {
	Record   *data.Record
	Favorite bool
	Stats    []StatBar
}

// StatPercent scales a stat to a bar width percentage, capped at 100.
func StatPercent(value int) float64 {
	return min(100, float64(value)*100/MaxStatValue)
}

// View builds the view-model of the current page.
func View(s *State, favs FavoriteChecker) PageView {
	start, end := s.Pager.Bounds()
	items := s.Shown[start:end]

	cards := make([]Card, len(items))
	for i, r := range items {
		cards[i] = Card{
			ID:       r.ID,
			Name:     r.Name,
			ImageURL: r.ImageURL,
			Types:    r.Types,
			Height:   r.Height,
			Weight:   r.Weight,
			Favorite: favs != nil && favs.IsFavorite(r.ID),
		}
	}

	return PageView{
		Cards:      cards,
		Page:       s.Pager.Page(),
		TotalPages: s.Pager.TotalPages(),
		HasPrev:    s.Pager.HasPrev(),
		HasNext:    s.Pager.HasNext(),
		Loaded:     s.Records.Len(),
		Shown:      len(s.Shown),
		Criteria:   s.Criteria,
	}
}

// Detail builds the detail view-model of record id.
func Detail(s *State, id int, favs FavoriteChecker) (DetailView, error) {
	r, ok := s.Records.Get(id)
	if !ok {
		return DetailView{}, fmt.Errorf("%w: %d", ErrUnknownRecord, id)
	}
	return DetailOf(r, favs), nil
}

// DetailOf builds the detail view-model of r.
func DetailOf(r *data.Record, favs FavoriteChecker) DetailView {
	bars := make([]StatBar, len(r.Stats))
	for i, st := range r.Stats {
		bars[i] = StatBar{Name: st.Name, Value: st.Value, Percent: StatPercent(st.Value)}
	}
	return DetailView{
		Record:   r,
		Favorite: favs != nil && favs.IsFavorite(r.ID),
		Stats:    bars,
	}
}
