package data

// Record is one normalized catalog entry. Records are created once by the
// normalizer and never mutated afterwards.
type Record struct {
	ID        int
	Name      string
	Height    float64 // meters
	Weight    float64 // kilograms
	Types     []string
	Abilities []string
	Stats     []Stat
	ImageURL  string
}

type Stat struct {
	Name  string
	Value int
}

// HasType reports whether the record carries the given type tag.
func (r *Record) HasType(tag string) bool {
	for _, t := range r.Types {
		if t == tag {
			return true
		}
	}
	return false
}

// Types is the closed vocabulary of type tags, in display order.
var Types = []string{
	"normal", "fire", "water", "electric", "grass", "ice",
	"fighting", "poison", "ground", "flying", "psychic", "bug",
	"rock", "ghost", "dragon", "dark", "steel", "fairy",
}

// IsType reports whether tag belongs to the type vocabulary.
func IsType(tag string) bool {
	for _, t := range Types {
		if t == tag {
			return true
		}
	}
	return false
}

// Generation maps a generation number to the closed identifier interval it covers.
type Generation struct {
	Number int
	Start  int
	End    int
}

func (g Generation) Contains(id int) bool {
	return id >= g.Start && id <= g.End
}

var Generations = []Generation{
	{Number: 1, Start: 1, End: 151},
	{Number: 2, Start: 152, End: 251},
	{Number: 3, Start: 252, End: 386},
	{Number: 4, Start: 387, End: 493},
	{Number: 5, Start: 494, End: 649},
	{Number: 6, Start: 650, End: 721},
	{Number: 7, Start: 722, End: 809},
	{Number: 8, Start: 810, End: 898},
	{Number: 9, Start: 899, End: 1010},
}

// GetGeneration returns the generation with the given number.
func GetGeneration(n int) (Generation, bool) {
	for _, g := range Generations {
		if g.Number == n {
			return g, true
		}
	}
	return Generation{}, false
}

// RecordSet is the insertion-ordered set of loaded records. It only grows
// during the initial load and rejects duplicate identifiers.
type RecordSet struct {
	records []*Record
	index   map[int]*Record
}

func NewRecordSet() *RecordSet {
	return &RecordSet{index: make(map[int]*Record)}
}

// Add appends records in order, skipping any whose identifier is already present.
// It returns the number of records actually added.
func (s *RecordSet) Add(records ...*Record) int {
	added := 0
	for _, r := range records {
		if r == nil {
			continue
		}
		if _, ok := s.index[r.ID]; ok {
			continue
		}
		s.index[r.ID] = r
		s.records = append(s.records, r)
		added++
	}
	return added
}

func (s *RecordSet) Len() int {
	return len(s.records)
}

// All returns the records in insertion order. Callers must not modify the slice.
func (s *RecordSet) All() []*Record {
	return s.records
}

func (s *RecordSet) Get(id int) (*Record, bool) {
	r, ok := s.index[id]
	return r, ok
}
