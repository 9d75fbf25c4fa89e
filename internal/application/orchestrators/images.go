package orchestrators

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"eventease/internal/adapters/blob"
)

// ImagePayload is an uploaded image file attached to a create or edit.
type ImagePayload struct {
	Filename    string
	ContentType string
	Body        io.Reader
}

// uploadImage stores the payload in the given container under a generated
// name that keeps the original file extension, and returns the blob URL.
func uploadImage(ctx context.Context, store blob.Store, generateName func() string, container string, p *ImagePayload) (string, error) {
	name := generateName() + strings.ToLower(filepath.Ext(p.Filename))
	url, err := store.Upload(ctx, container, name, p.ContentType, p.Body)
	if err != nil {
		return "", fmt.Errorf("uploading image to %s: %w", container, err)
	}
	return url, nil
}

// deleteImage removes a stored blob, logging rather than failing when the
// removal does not succeed. Orphaned blobs are preferable to blocked saves.
func deleteImage(ctx context.Context, store blob.Store, container, blobURL string) {
	if blobURL == "" {
		return
	}
	if err := store.Delete(ctx, container, blobURL); err != nil {
		slog.Warn("blob_delete_failed", "container", container, "url", blobURL, "error", err)
	}
}
