package catalog

import (
	"errors"
	"fmt"
	"testing"

	"github.com/kerbaras/pokedex/pkg/data"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingFavs struct {
	favSet
	err error
}

func (f failingFavs) Toggle(id int) error {
	_ = f.favSet.Toggle(id)
	return f.err
}

// newTestState loads n records with ids 1..n. Every third record is a fire
// type, the rest are normal.
func newTestState(n int) *State {
	s := NewState(20)
	for i := 1; i <= n; i++ {
		tag := "normal"
		if i%3 == 0 {
			tag = "fire"
		}
		s.Records.Add(rec(i, fmt.Sprintf("mon-%03d", i), float64(i)/10, float64(i), tag))
	}
	Recompute(s, favSet{})
	return s
}

func TestReduceCriteriaChangeResetsPage(t *testing.T) {
	favs := favSet{}
	s := newTestState(45)
	require.NoError(t, Reduce(s, Action{Kind: NextPage}, favs))
	require.Equal(t, 2, s.Pager.Page())

	require.NoError(t, Reduce(s, Action{Kind: SetName, Text: "MON-0"}, favs))

	assert.Equal(t, 1, s.Pager.Page())
	assert.Equal(t, "mon-0", s.Criteria.Name)
	assert.Len(t, s.Shown, 45)
}

func TestReducePageNavigationKeepsShown(t *testing.T) {
	favs := favSet{}
	s := newTestState(45)
	before := s.Shown

	require.NoError(t, Reduce(s, Action{Kind: NextPage}, favs))
	require.NoError(t, Reduce(s, Action{Kind: NextPage}, favs))
	require.NoError(t, Reduce(s, Action{Kind: NextPage}, favs))

	assert.Equal(t, 3, s.Pager.Page())
	assert.True(t, sameRecords(before, s.Shown))

	require.NoError(t, Reduce(s, Action{Kind: PrevPage}, favs))
	assert.Equal(t, 2, s.Pager.Page())
}

func TestReduceToggleTypeAndGeneration(t *testing.T) {
	favs := favSet{}
	s := newTestState(45)

	require.NoError(t, Reduce(s, Action{Kind: ToggleType, Text: "fire"}, favs))
	assert.Len(t, s.Shown, 15)
	for _, r := range s.Shown {
		assert.Zero(t, r.ID%3)
	}

	err := Reduce(s, Action{Kind: ToggleType, Text: "shadow"}, favs)
	assert.ErrorIs(t, err, ErrUnknownType)
	assert.Equal(t, []string{"fire"}, s.Criteria.Types)

	err = Reduce(s, Action{Kind: SetGeneration, Number: 42}, favs)
	assert.ErrorIs(t, err, ErrUnknownGeneration)
	assert.Equal(t, 0, s.Criteria.Generation)
	assert.Len(t, s.Shown, 15)
}

func TestReduceSetSortAndReset(t *testing.T) {
	favs := favSet{}
	s := newTestState(5)

	require.NoError(t, Reduce(s, Action{Kind: SetSort, Sort: SortByWeight}, favs))
	require.NoError(t, Reduce(s, Action{Kind: ToggleFavoritesOnly}, favs))
	assert.Equal(t, SortByWeight, s.Criteria.Sort)
	assert.Empty(t, s.Shown)

	require.NoError(t, Reduce(s, Action{Kind: Reset}, favs))
	assert.True(t, s.Criteria.IsDefault())
	assert.Equal(t, []int{1, 2, 3, 4, 5}, ids(s.Shown))
}

func TestReduceToggleFavoriteKeepsPageWhenViewUnchanged(t *testing.T) {
	favs := favSet{}
	s := newTestState(45)
	require.NoError(t, Reduce(s, Action{Kind: NextPage}, favs))

	require.NoError(t, Reduce(s, Action{Kind: ToggleFavorite, Number: 25}, favs))

	assert.True(t, favs.IsFavorite(25))
	assert.Equal(t, 2, s.Pager.Page())
	assert.Len(t, s.Shown, 45)
}

func TestReduceToggleFavoriteUnderFavoritesOnlyRecomputes(t *testing.T) {
	favs := favSet{}
	s := newTestState(45)
	for id := 1; id <= 30; id++ {
		favs[id] = true
	}
	require.NoError(t, Reduce(s, Action{Kind: ToggleFavoritesOnly}, favs))
	require.Len(t, s.Shown, 30)
	require.NoError(t, Reduce(s, Action{Kind: NextPage}, favs))

	require.NoError(t, Reduce(s, Action{Kind: ToggleFavorite, Number: 22}, favs))

	assert.False(t, favs.IsFavorite(22))
	assert.Len(t, s.Shown, 29)
	assert.NotContains(t, ids(s.Shown), 22)
	assert.Equal(t, 1, s.Pager.Page())
}

func TestReduceToggleFavoriteUnknownRecord(t *testing.T) {
	favs := favSet{}
	s := newTestState(5)

	err := Reduce(s, Action{Kind: ToggleFavorite, Number: 99}, favs)

	assert.ErrorIs(t, err, ErrUnknownRecord)
	assert.Empty(t, favs)
}

func TestReduceToggleFavoritePersistFailure(t *testing.T) {
	persistErr := errors.New("disk full")
	favs := failingFavs{favSet: favSet{}, err: persistErr}
	s := newTestState(5)
	require.NoError(t, Reduce(s, Action{Kind: ToggleFavoritesOnly}, favs))

	err := Reduce(s, Action{Kind: ToggleFavorite, Number: 3}, favs)

	assert.ErrorIs(t, err, persistErr)
	assert.True(t, favs.IsFavorite(3))
	assert.Equal(t, []int{3}, ids(s.Shown))
}

func TestReduceUnknownAction(t *testing.T) {
	s := newTestState(3)

	err := Reduce(s, Action{Kind: ActionKind(99)}, favSet{})

	assert.ErrorIs(t, err, ErrUnknownAction)
	assert.Contains(t, err.Error(), "action(99)")
}

func TestRecomputeMatchesApply(t *testing.T) {
	s := newTestState(45)
	s.Criteria = Criteria{Name: "mon-04", Sort: SortByName}

	Recompute(s, favSet{})

	assert.Equal(t, ids(Apply(s.Records.All(), s.Criteria, favSet{})), ids(s.Shown))
	assert.Equal(t, []int{40, 41, 42, 43, 44, 45}, ids(s.Shown))
}

func TestNewStateIsEmpty(t *testing.T) {
	s := NewState(20)

	v := View(s, nil)

	assert.True(t, v.Empty())
	assert.Equal(t, 0, v.Loaded)
	assert.Equal(t, 1, v.TotalPages)
	assert.Empty(t, v.Cards)
	assert.Equal(t, data.NewRecordSet().Len(), s.Records.Len())
}
