package blob

import (
	"context"
	"io"
)

// Container names are fixed per entity type.
const (
	EventContainer = "eventimages"
	VenueContainer = "venueimages"
)

// Store is the interface for image storage in a blob service.
//
// Upload places content under the given name inside a container and returns
// a publicly resolvable location URL. Delete targets a blob by the location
// URL a previous Upload returned and succeeds when the blob is already gone.
type Store interface {
	EnsureContainer(ctx context.Context, container string) error
	Upload(ctx context.Context, container, name, contentType string, body io.Reader) (string, error)
	Delete(ctx context.Context, container, blobURL string) error
}
