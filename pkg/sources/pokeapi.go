package sources

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/kerbaras/pokedex/pkg/utils"
)

type PokeAPI struct {
	api *utils.API
}

func NewPokeAPI(baseURL string, timeout time.Duration) *PokeAPI {
	return &PokeAPI{api: utils.NewAPI(baseURL, timeout)}
}

// FetchImage downloads the image at rawURL and returns its bytes and
// content type.
func (p *PokeAPI) FetchImage(ctx context.Context, rawURL string) ([]byte, string, error) {
	body, contentType, err := p.api.Fetch(ctx, rawURL)
	if err != nil {
		return nil, "", fmt.Errorf("failed to fetch image: %w", err)
	}
	return body, contentType, nil
}

func (p *PokeAPI) ListHandles(ctx context.Context, limit int) ([]Handle, error) {
	params := url.Values{"limit": {strconv.Itoa(limit)}}
	var list struct {
		Count   int      `json:"count"`
		Results []Handle `json:"results"`
	}
	if err := p.api.Get(ctx, "/pokemon", params, &list); err != nil {
		return nil, fmt.Errorf("failed to list pokemon: %w", err)
	}
	if len(list.Results) > limit {
		list.Results = list.Results[:limit]
	}
	return list.Results, nil
}

func (p *PokeAPI) GetDocument(ctx context.Context, handle string) (*Document, error) {
	var doc Document
	if err := p.api.Get(ctx, handle, nil, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

func (p *PokeAPI) HandleFor(id int) string {
	return p.api.Resolve(fmt.Sprintf("/pokemon/%d/", id), nil)
}
