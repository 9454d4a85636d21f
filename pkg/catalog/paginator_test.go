package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTotalPages(t *testing.T) {
	tests := []struct {
		total, perPage, want int
	}{
		{0, 20, 1},
		{1, 20, 1},
		{20, 20, 1},
		{21, 20, 2},
		{45, 20, 3},
		{700, 20, 35},
		{5, 0, 1},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, TotalPages(tt.total, tt.perPage), "total=%d perPage=%d", tt.total, tt.perPage)
	}
}

func TestPaginatorFortyFiveItems(t *testing.T) {
	items := make([]int, 45)
	for i := range items {
		items[i] = i + 1
	}
	p := NewPaginator(20)
	p.Reset(len(items))

	assert.Equal(t, 3, p.TotalPages())
	assert.False(t, p.HasPrev())
	assert.Len(t, Slice(items, p.Page(), p.PerPage()), 20)

	assert.True(t, p.Navigate(Next))
	assert.True(t, p.Navigate(Next))
	assert.Equal(t, 3, p.Page())
	assert.Equal(t, []int{41, 42, 43, 44, 45}, Slice(items, p.Page(), p.PerPage()))
	assert.False(t, p.HasNext())

	assert.False(t, p.Navigate(Next))
	assert.Equal(t, 3, p.Page())
}

func TestPaginatorPrevAtFirstPageIsNoop(t *testing.T) {
	p := NewPaginator(20)
	p.Reset(45)

	assert.False(t, p.Navigate(Prev))
	assert.Equal(t, 1, p.Page())
}

func TestPaginatorEmptyList(t *testing.T) {
	p := NewPaginator(20)
	p.Reset(0)

	start, end := p.Bounds()
	assert.Equal(t, 0, start)
	assert.Equal(t, 0, end)
	assert.Equal(t, 1, p.TotalPages())
	assert.False(t, p.Navigate(Next))
	assert.False(t, p.Navigate(Prev))
}

func TestPaginatorResizeClampsPage(t *testing.T) {
	p := NewPaginator(20)
	p.Reset(45)
	p.Goto(3)

	p.Resize(40)
	assert.Equal(t, 2, p.Page())

	p.Resize(100)
	assert.Equal(t, 2, p.Page())

	p.Reset(100)
	assert.Equal(t, 1, p.Page())
}

func TestPaginatorGotoClamps(t *testing.T) {
	p := NewPaginator(10)
	p.Reset(35)

	p.Goto(99)
	assert.Equal(t, 4, p.Page())
	p.Goto(-1)
	assert.Equal(t, 1, p.Page())
}

func TestSliceOutOfRangePage(t *testing.T) {
	items := []string{"a", "b", "c"}

	assert.Equal(t, []string{"c"}, Slice(items, 9, 2))
	assert.Equal(t, []string{"a", "b"}, Slice(items, 0, 2))
	assert.Empty(t, Slice([]string{}, 1, 2))
}
