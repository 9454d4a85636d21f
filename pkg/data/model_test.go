package data

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecordHasType(t *testing.T) {
	r := &Record{ID: 6, Name: "charizard", Types: []string{"fire", "flying"}}

	if !r.HasType("fire") {
		t.Error("Expected charizard to be fire type")
	}
	if !r.HasType("flying") {
		t.Error("Expected charizard to be flying type")
	}
	if r.HasType("water") {
		t.Error("Expected charizard not to be water type")
	}
}

func TestTypeVocabulary(t *testing.T) {
	assert.Len(t, Types, 18)
	assert.True(t, IsType("fairy"))
	assert.False(t, IsType("shadow"))
}

func TestGenerations(t *testing.T) {
	gen2, ok := GetGeneration(2)
	assert.True(t, ok)
	assert.Equal(t, 152, gen2.Start)
	assert.Equal(t, 251, gen2.End)
	assert.True(t, gen2.Contains(152))
	assert.True(t, gen2.Contains(251))
	assert.False(t, gen2.Contains(151))
	assert.False(t, gen2.Contains(252))

	_, ok = GetGeneration(10)
	assert.False(t, ok)

	// Ranges are contiguous
	for i := 1; i < len(Generations); i++ {
		assert.Equal(t, Generations[i-1].End+1, Generations[i].Start)
	}
}

func TestRecordSetRejectsDuplicates(t *testing.T) {
	set := NewRecordSet()

	added := set.Add(
		&Record{ID: 1, Name: "bulbasaur"},
		&Record{ID: 4, Name: "charmander"},
		nil,
		&Record{ID: 1, Name: "impostor"},
	)

	assert.Equal(t, 2, added)
	assert.Equal(t, 2, set.Len())

	r, ok := set.Get(1)
	assert.True(t, ok)
	assert.Equal(t, "bulbasaur", r.Name)

	_, ok = set.Get(7)
	assert.False(t, ok)
}

func TestRecordSetPreservesInsertionOrder(t *testing.T) {
	set := NewRecordSet()
	set.Add(&Record{ID: 25}, &Record{ID: 1})
	set.Add(&Record{ID: 7})

	var ids []int
	for _, r := range set.All() {
		ids = append(ids, r.ID)
	}
	assert.Equal(t, []int{25, 1, 7}, ids)
}
