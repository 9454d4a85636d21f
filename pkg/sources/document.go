package sources

import "github.com/kerbaras/pokedex/pkg/data"

// Document is the raw detail document returned for a single handle.
type Document struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Height int    `json:"height"` // decimeters
	Weight int    `json:"weight"` // hectograms
	Types  []struct {
		Slot int      `json:"slot"`
		Type namedRef `json:"type"`
	} `json:"types"`
	Abilities []struct {
		Ability  namedRef `json:"ability"`
		IsHidden bool     `json:"is_hidden"`
	} `json:"abilities"`
	Stats []struct {
		BaseStat int      `json:"base_stat"`
		Stat     namedRef `json:"stat"`
	} `json:"stats"`
	Sprites struct {
		FrontDefault *string `json:"front_default"`
		Other        struct {
			OfficialArtwork struct {
				FrontDefault *string `json:"front_default"`
			} `json:"official-artwork"`
		} `json:"other"`
	} `json:"sprites"`
}

type namedRef struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// ToRecord normalizes the document into a Record: physical units are divided
// by 10, nested references are flattened to their names and the image falls
// back from official artwork to the default sprite to "".
func (d *Document) ToRecord() *data.Record {
	r := &data.Record{
		ID:        d.ID,
		Name:      d.Name,
		Height:    float64(d.Height) / 10,
		Weight:    float64(d.Weight) / 10,
		Types:     make([]string, len(d.Types)),
		Abilities: make([]string, len(d.Abilities)),
		Stats:     make([]data.Stat, len(d.Stats)),
		ImageURL:  firstNonEmpty(d.Sprites.Other.OfficialArtwork.FrontDefault, d.Sprites.FrontDefault),
	}
	for i, t := range d.Types {
		r.Types[i] = t.Type.Name
	}
	for i, a := range d.Abilities {
		r.Abilities[i] = a.Ability.Name
	}
	for i, s := range d.Stats {
		r.Stats[i] = data.Stat{Name: s.Stat.Name, Value: s.BaseStat}
	}
	return r
}

func firstNonEmpty(candidates ...*string) string {
	for _, c := range candidates {
		if c != nil && *c != "" {
			return *c
		}
	}
	return ""
}
