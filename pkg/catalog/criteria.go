// Package catalog derives the shown view from the loaded records and the
// user's filter, sort and page selections.
package catalog

import (
	"slices"
	"strings"

	"github.com/kerbaras/pokedex/pkg/data"
)

type SortKey string

const (
	SortByID     SortKey = "id"
	SortByName   SortKey = "name"
	SortByHeight SortKey = "height"
	SortByWeight SortKey = "weight"
)

// SortKeys lists the sort keys in the order the UI cycles through them.
var SortKeys = []SortKey{SortByID, SortByName, SortByHeight, SortByWeight}

// ParseSortKey maps s to a sort key; anything unrecognized sorts by id.
func ParseSortKey(s string) SortKey {
	k := SortKey(strings.ToLower(strings.TrimSpace(s)))
	if slices.Contains(SortKeys, k) {
		return k
	}
	return SortByID
}

// Next returns the sort key after k, wrapping around.
func (k SortKey) Next() SortKey {
	i := slices.Index(SortKeys, k)
	return SortKeys[(i+1)%len(SortKeys)]
}

// Criteria is the user's current filter and sort selection. The zero value
// (after Normalize) filters nothing and sorts by id.
type Criteria struct {
	Name          string   // lowercase substring; "" disables
	Types         []string // all must be present; kept in vocabulary order
	Generation    int      // 0 disables
	FavoritesOnly bool
	Sort          SortKey
}

func DefaultCriteria() Criteria {
	return Criteria{Sort: SortByID}
}

// SetName stores the query trimmed and lowercased.
func (c *Criteria) SetName(q string) {
	c.Name = strings.ToLower(strings.TrimSpace(q))
}

// ToggleType adds or removes tag. Unknown tags are rejected.
func (c *Criteria) ToggleType(tag string) error {
	if !data.IsType(tag) {
		return ErrUnknownType
	}
	if i := slices.Index(c.Types, tag); i >= 0 {
		c.Types = slices.Delete(slices.Clone(c.Types), i, i+1)
		return nil
	}
	types := append(slices.Clone(c.Types), tag)
	slices.SortFunc(types, func(a, b string) int {
		return slices.Index(data.Types, a) - slices.Index(data.Types, b)
	})
	c.Types = types
	return nil
}

func (c Criteria) HasType(tag string) bool {
	return slices.Contains(c.Types, tag)
}

// SetGeneration selects generation n, or clears the filter when n is 0.
func (c *Criteria) SetGeneration(n int) error {
	if n != 0 {
		if _, ok := data.GetGeneration(n); !ok {
			return ErrUnknownGeneration
		}
	}
	c.Generation = n
	return nil
}

// IsDefault reports whether no filter is active and the sort is by id.
func (c Criteria) IsDefault() bool {
	return c.Name == "" && len(c.Types) == 0 && c.Generation == 0 &&
		!c.FavoritesOnly && ParseSortKey(string(c.Sort)) == SortByID
}
