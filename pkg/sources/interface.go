package sources

import "context"

// Source is a read-only remote catalog.
type Source interface {
	// ListHandles returns up to limit item handles from the paginated index.
	ListHandles(ctx context.Context, limit int) ([]Handle, error)
	// GetDocument fetches the raw detail document behind a handle.
	GetDocument(ctx context.Context, handle string) (*Document, error)
	// HandleFor returns the handle of the item with the given identifier.
	HandleFor(id int) string
	// FetchImage downloads an image referenced by a record.
	FetchImage(ctx context.Context, rawURL string) ([]byte, string, error)
}

// Handle is one entry of the index listing.
type Handle struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}
