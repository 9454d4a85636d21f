package data

import (
	"encoding/json"
	"fmt"
	"slices"

	"github.com/charmbracelet/log"
)

// FavoritesKey is the key under which the favorite identifiers are persisted
// as a JSON array.
const FavoritesKey = "favs"

// KV is the persisted storage the favorites are written through to.
type KV interface {
	Get(key string) (string, bool, error)
	Put(key, value string) error
}

// Favorites is the set of favorite record identifiers. It is loaded once and
// every toggle is written through to the store immediately.
type Favorites struct {
	store  KV
	ids    map[int]struct{}
	logger *log.Logger
}

// LoadFavorites reads the persisted set. Absent or malformed data yields an
// empty set; it never fails startup.
func LoadFavorites(store KV, logger *log.Logger) *Favorites {
	f := &Favorites{store: store, ids: make(map[int]struct{}), logger: logger}

	raw, ok, err := store.Get(FavoritesKey)
	if err != nil {
		logger.Warn("could not read favorites, starting empty", "err", err)
		return f
	}
	if !ok {
		return f
	}

	var ids []int
	if err := json.Unmarshal([]byte(raw), &ids); err != nil {
		logger.Warn("malformed favorites data, starting empty", "err", err)
		return f
	}
	for _, id := range ids {
		f.ids[id] = struct{}{}
	}
	return f
}

func (f *Favorites) IsFavorite(id int) bool {
	_, ok := f.ids[id]
	return ok
}

// Toggle flips membership of id and persists the full set. The in-memory set
// keeps the new membership even if persisting fails.
func (f *Favorites) Toggle(id int) error {
	if f.IsFavorite(id) {
		delete(f.ids, id)
	} else {
		f.ids[id] = struct{}{}
	}
	return f.save()
}

// IDs returns the favorite identifiers in ascending order.
func (f *Favorites) IDs() []int {
	ids := make([]int, 0, len(f.ids))
	for id := range f.ids {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

func (f *Favorites) Len() int {
	return len(f.ids)
}

func (f *Favorites) save() error {
	raw, err := json.Marshal(f.IDs())
	if err != nil {
		return fmt.Errorf("failed to encode favorites: %w", err)
	}
	if err := f.store.Put(FavoritesKey, string(raw)); err != nil {
		return fmt.Errorf("failed to persist favorites: %w", err)
	}
	return nil
}
