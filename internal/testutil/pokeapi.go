// Package testutil provides a fake PokeAPI server for tests.
package testutil

import (
	"bytes"
	"encoding/json"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"time"
)

// Pokemon is the fixture a fake detail document is generated from.
type Pokemon struct {
	ID        int
	Name      string
	Height    int // decimeters
	Weight    int // hectograms
	Types     []string
	Abilities []string
	Stats     []StatFixture
	Artwork   string
	Sprite    string
}

type StatFixture struct {
	Name  string
	Value int
}

// FakePokeAPI serves /pokemon?limit=N and /pokemon/{id}/ from fixtures.
type FakePokeAPI struct {
	server *httptest.Server

	mu          sync.Mutex
	order       []int
	pokemon     map[int]Pokemon
	failing     map[int]int // id -> status code
	indexStatus int
	delay       time.Duration
	requests    map[string]int
	images      map[string][]byte
	inFlight    int
	maxInFlight int
}

func NewFakePokeAPI(fixtures ...Pokemon) *FakePokeAPI {
	f := &FakePokeAPI{
		pokemon:  make(map[int]Pokemon),
		failing:  make(map[int]int),
		requests: make(map[string]int),
		images:   make(map[string][]byte),
	}
	for _, p := range fixtures {
		f.Add(p)
	}
	f.server = httptest.NewServer(http.HandlerFunc(f.handle))
	return f
}

// Generate returns n simple fixtures with identifiers start..start+n-1.
func Generate(start, n int) []Pokemon {
	out := make([]Pokemon, n)
	for i := range out {
		id := start + i
		out[i] = Pokemon{
			ID:        id,
			Name:      fmt.Sprintf("mon-%03d", id),
			Height:    id % 30,
			Weight:    id * 3,
			Types:     []string{"normal"},
			Abilities: []string{"run-away"},
			Stats:     []StatFixture{{Name: "hp", Value: 40 + id%100}},
			Artwork:   fmt.Sprintf("https://img.example/%d.png", id),
		}
	}
	return out
}

func (f *FakePokeAPI) URL() string {
	return f.server.URL
}

func (f *FakePokeAPI) Close() {
	f.server.Close()
}

// HandleFor returns the absolute handle the index lists for id.
func (f *FakePokeAPI) HandleFor(id int) string {
	return fmt.Sprintf("%s/pokemon/%d/", f.server.URL, id)
}

func (f *FakePokeAPI) Add(p Pokemon) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.pokemon[p.ID]; !ok {
		f.order = append(f.order, p.ID)
	}
	f.pokemon[p.ID] = p
}

// Fail makes the detail document of id answer with status.
func (f *FakePokeAPI) Fail(id, status int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failing[id] = status
}

// Heal clears a failure configured with Fail.
func (f *FakePokeAPI) Heal(id int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.failing, id)
}

// FailIndex makes the index listing answer with status; 0 restores it.
func (f *FakePokeAPI) FailIndex(status int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.indexStatus = status
}

// SetDelay delays every detail response.
func (f *FakePokeAPI) SetDelay(d time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.delay = d
}

// Requests returns how many times path was requested.
func (f *FakePokeAPI) Requests(path string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.requests[path]
}

// MaxInFlight returns the peak number of concurrent detail requests.
func (f *FakePokeAPI) MaxInFlight() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.maxInFlight
}

func (f *FakePokeAPI) handle(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	f.requests[r.URL.Path]++
	f.mu.Unlock()

	if strings.HasPrefix(r.URL.Path, "/images/") {
		f.handleImage(w, r)
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")

	if r.URL.Path == "/pokemon" || r.URL.Path == "/pokemon/" {
		f.handleIndex(w, r)
		return
	}

	idStr := strings.Trim(strings.TrimPrefix(r.URL.Path, "/pokemon/"), "/")
	id, err := strconv.Atoi(idStr)
	if err != nil {
		http.NotFound(w, r)
		return
	}
	f.handleDetail(w, r, id)
}

func (f *FakePokeAPI) handleIndex(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	status := f.indexStatus
	order := append([]int(nil), f.order...)
	pokemon := f.pokemon
	f.mu.Unlock()

	if status != 0 {
		w.WriteHeader(status)
		return
	}

	limit := len(order)
	if l, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil && l < limit {
		limit = l
	}

	type handle struct {
		Name string `json:"name"`
		URL  string `json:"url"`
	}
	results := make([]handle, 0, limit)
	f.mu.Lock()
	for _, id := range order[:limit] {
		results = append(results, handle{Name: pokemon[id].Name, URL: f.HandleFor(id)})
	}
	f.mu.Unlock()

	json.NewEncoder(w).Encode(map[string]any{
		"count":   len(order),
		"results": results,
	})
}

func (f *FakePokeAPI) handleDetail(w http.ResponseWriter, r *http.Request, id int) {
	f.mu.Lock()
	f.inFlight++
	if f.inFlight > f.maxInFlight {
		f.maxInFlight = f.inFlight
	}
	delay := f.delay
	status, failing := f.failing[id]
	p, ok := f.pokemon[id]
	f.mu.Unlock()

	defer func() {
		f.mu.Lock()
		f.inFlight--
		f.mu.Unlock()
	}()

	if delay > 0 {
		time.Sleep(delay)
	}
	if failing {
		w.WriteHeader(status)
		return
	}
	if !ok {
		http.NotFound(w, r)
		return
	}
	json.NewEncoder(w).Encode(DocumentJSON(p))
}

// SetImage serves body as a PNG under /images/name and returns its URL.
func (f *FakePokeAPI) SetImage(name string, body []byte) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.images["/images/"+name] = body
	return f.server.URL + "/images/" + name
}

func (f *FakePokeAPI) handleImage(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	body, ok := f.images[r.URL.Path]
	f.mu.Unlock()

	if !ok {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Write(body)
}

// PNG encodes a w x h image filled with c.
func PNG(w, h int, c color.Color) []byte {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		panic(err)
	}
	return buf.Bytes()
}

// DocumentJSON renders a fixture in the shape of a PokeAPI detail document.
func DocumentJSON(p Pokemon) map[string]any {
	types := make([]map[string]any, len(p.Types))
	for i, t := range p.Types {
		types[i] = map[string]any{"slot": i + 1, "type": map[string]any{"name": t, "url": ""}}
	}
	abilities := make([]map[string]any, len(p.Abilities))
	for i, a := range p.Abilities {
		abilities[i] = map[string]any{"is_hidden": false, "ability": map[string]any{"name": a, "url": ""}}
	}
	stats := make([]map[string]any, len(p.Stats))
	for i, s := range p.Stats {
		stats[i] = map[string]any{"base_stat": s.Value, "stat": map[string]any{"name": s.Name, "url": ""}}
	}
	return map[string]any{
		"id":        p.ID,
		"name":      p.Name,
		"height":    p.Height,
		"weight":    p.Weight,
		"types":     types,
		"abilities": abilities,
		"stats":     stats,
		"sprites": map[string]any{
			"front_default": nullable(p.Sprite),
			"other": map[string]any{
				"official-artwork": map[string]any{"front_default": nullable(p.Artwork)},
			},
		},
	}
}

func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}
