package blob

import (
	"context"
	"io"
	"log/slog"
)

// NoopStore is a no-op blob store for development and testing. It logs
// operations, discards uploaded content, and hands back stub URLs.
type NoopStore struct{}

// NewNoopStore creates a new NoopStore.
func NewNoopStore() *NoopStore {
	return &NoopStore{}
}

// EnsureContainer logs the container but creates nothing.
func (s *NoopStore) EnsureContainer(_ context.Context, name string) error {
	slog.Info("noop_blob_container", "container", name)
	return nil
}

// Upload discards the body and returns a stub location URL.
// PRE: body is readable
// POST: Returns a URL that round-trips through Delete
func (s *NoopStore) Upload(_ context.Context, container, name, _ string, body io.Reader) (string, error) {
	n, _ := io.Copy(io.Discard, body)
	slog.Info("noop_blob_upload", "container", container, "name", name, "bytes", n)
	return "https://noop.blob.local/" + container + "/" + name, nil
}

// Delete logs the delete but removes nothing.
func (s *NoopStore) Delete(_ context.Context, container, blobURL string) error {
	slog.Info("noop_blob_delete", "container", container, "url", blobURL)
	return nil
}
