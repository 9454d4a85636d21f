package catalog

type Direction int

const (
	Prev Direction = iota
	Next
)

// Paginator tracks the current page over a list of total items.
// The page always stays within [1, TotalPages].
type Paginator struct {
	perPage int
	total   int
	page    int
}

func NewPaginator(perPage int) *Paginator {
	if perPage <= 0 {
		perPage = 1
	}
	return &Paginator{perPage: perPage, page: 1}
}

// Reset points the paginator at a new list and returns to page 1.
func (p *Paginator) Reset(total int) {
	p.total = total
	p.page = 1
}

// Resize changes the item count and clamps the current page.
func (p *Paginator) Resize(total int) {
	p.total = total
	p.page = min(max(p.page, 1), p.TotalPages())
}

func (p *Paginator) Page() int {
	return p.page
}

func (p *Paginator) PerPage() int {
	return p.perPage
}

func (p *Paginator) TotalPages() int {
	return TotalPages(p.total, p.perPage)
}

func (p *Paginator) HasPrev() bool {
	return p.page > 1
}

func (p *Paginator) HasNext() bool {
	return p.page < p.TotalPages()
}

// Navigate moves one page in dir. At either boundary it is a no-op and
// returns false.
func (p *Paginator) Navigate(dir Direction) bool {
	switch {
	case dir == Prev && p.HasPrev():
		p.page--
	case dir == Next && p.HasNext():
		p.page++
	default:
		return false
	}
	return true
}

// Goto jumps to page n, clamped to the valid range.
func (p *Paginator) Goto(n int) {
	p.page = min(max(n, 1), p.TotalPages())
}

// Bounds returns the [start, end) indices of the current page.
func (p *Paginator) Bounds() (start, end int) {
	return Bounds(p.total, p.page, p.perPage)
}

// TotalPages is ceil(total/perPage), never less than 1.
func TotalPages(total, perPage int) int {
	if perPage <= 0 || total <= 0 {
		return 1
	}
	return (total + perPage - 1) / perPage
}

// Bounds returns the [start, end) indices of page within total items.
func Bounds(total, page, perPage int) (start, end int) {
	page = min(max(page, 1), TotalPages(total, perPage))
	start = min((page-1)*perPage, total)
	end = min(start+perPage, total)
	return start, end
}

// Slice returns the items on page.
func Slice[T any](items []T, page, perPage int) []T {
	start, end := Bounds(len(items), page, perPage)
	return items[start:end]
}
