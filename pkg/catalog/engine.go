package catalog

import (
	"cmp"
	"slices"
	"strings"

	"github.com/kerbaras/pokedex/pkg/data"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// FavoriteChecker answers favorite membership for the favorites predicate.
type FavoriteChecker interface {
	IsFavorite(id int) bool
}

// Predicate keeps a record when it returns true.
type Predicate func(*data.Record) bool

func NameContains(q string) Predicate {
	q = strings.ToLower(q)
	return func(r *data.Record) bool {
		return strings.Contains(strings.ToLower(r.Name), q)
	}
}

func HasAllTypes(tags []string) Predicate {
	return func(r *data.Record) bool {
		for _, t := range tags {
			if !r.HasType(t) {
				return false
			}
		}
		return true
	}
}

func InGeneration(g data.Generation) Predicate {
	return func(r *data.Record) bool {
		return g.Contains(r.ID)
	}
}

func IsFavorite(favs FavoriteChecker) Predicate {
	return func(r *data.Record) bool {
		return favs.IsFavorite(r.ID)
	}
}

// Predicates returns the active predicates for c. They are independent and
// may be applied in any order.
func Predicates(c Criteria, favs FavoriteChecker) []Predicate {
	var ps []Predicate
	if c.Name != "" {
		ps = append(ps, NameContains(c.Name))
	}
	if len(c.Types) > 0 {
		ps = append(ps, HasAllTypes(c.Types))
	}
	if g, ok := data.GetGeneration(c.Generation); ok {
		ps = append(ps, InGeneration(g))
	}
	if c.FavoritesOnly && favs != nil {
		ps = append(ps, IsFavorite(favs))
	}
	return ps
}

// Filter returns the records satisfying every predicate, in input order.
func Filter(records []*data.Record, preds ...Predicate) []*data.Record {
	out := make([]*data.Record, 0, len(records))
next:
	for _, r := range records {
		for _, p := range preds {
			if !p(r) {
				continue next
			}
		}
		out = append(out, r)
	}
	return out
}

// Sort orders records in place by key. The sort is stable, so ties keep
// their input order. Unrecognized keys sort by id.
func Sort(records []*data.Record, key SortKey) {
	switch key {
	case SortByName:
		col := collate.New(language.English)
		slices.SortStableFunc(records, func(a, b *data.Record) int {
			return col.CompareString(a.Name, b.Name)
		})
	case SortByHeight:
		slices.SortStableFunc(records, func(a, b *data.Record) int {
			return cmp.Compare(a.Height, b.Height)
		})
	case SortByWeight:
		slices.SortStableFunc(records, func(a, b *data.Record) int {
			return cmp.Compare(a.Weight, b.Weight)
		})
	default:
		slices.SortStableFunc(records, func(a, b *data.Record) int {
			return cmp.Compare(a.ID, b.ID)
		})
	}
}

// Apply computes the shown view from scratch: filter, then sort. The input
// slice is never modified. No match yields an empty, non-nil slice.
func Apply(records []*data.Record, c Criteria, favs FavoriteChecker) []*data.Record {
	shown := Filter(records, Predicates(c, favs)...)
	Sort(shown, c.Sort)
	return shown
}
