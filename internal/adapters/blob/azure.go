package blob

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"path"
	"strings"

	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/blob"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/bloberror"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/container"

	"eventease/internal/monitoring"
)

// AzureStore stores images as blobs in an Azure Storage account.
type AzureStore struct {
	client *azblob.Client
}

// NewAzureStore creates an AzureStore from a storage connection string.
// PRE: connectionString is a valid Azure Storage connection string
// POST: Returns a ready-to-use store
func NewAzureStore(connectionString string) (*AzureStore, error) {
	client, err := azblob.NewClientFromConnectionString(connectionString, nil)
	if err != nil {
		return nil, fmt.Errorf("azure blob client: %w", err)
	}
	return &AzureStore{client: client}, nil
}

// EnsureContainer creates the container with public blob access if it does
// not already exist.
// PRE: name is a valid container name
// POST: Container exists with public-read access for blobs
func (s *AzureStore) EnsureContainer(ctx context.Context, name string) error {
	access := container.PublicAccessTypeBlob
	_, err := s.client.CreateContainer(ctx, name, &azblob.CreateContainerOptions{Access: &access})
	if bloberror.HasCode(err, bloberror.ContainerAlreadyExists) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("create container %s: %w", name, err)
	}
	return nil
}

// Upload streams the body into the container under the given name.
// PRE: container exists, name is unique within it
// POST: Returns the blob's public location URL
func (s *AzureStore) Upload(ctx context.Context, containerName, name, contentType string, body io.Reader) (string, error) {
	opts := &azblob.UploadStreamOptions{}
	if contentType != "" {
		opts.HTTPHeaders = &blob.HTTPHeaders{BlobContentType: &contentType}
	}
	_, err := s.client.UploadStream(ctx, containerName, name, body, opts)
	if err != nil {
		monitoring.RecordBlobOperation("upload", containerName, "error")
		return "", fmt.Errorf("upload blob %s/%s: %w", containerName, name, err)
	}
	monitoring.RecordBlobOperation("upload", containerName, "ok")

	location := strings.TrimSuffix(s.client.URL(), "/") + "/" + containerName + "/" + name
	slog.Info("blob_uploaded", "container", containerName, "name", name)
	return location, nil
}

// Delete removes the blob a previous Upload returned the URL for.
// Missing blobs are treated as success.
// PRE: blobURL was returned by Upload for this container
// POST: Blob no longer exists
func (s *AzureStore) Delete(ctx context.Context, containerName, blobURL string) error {
	name, err := blobNameFromURL(blobURL)
	if err != nil {
		monitoring.RecordBlobOperation("delete", containerName, "error")
		return err
	}
	_, err = s.client.DeleteBlob(ctx, containerName, name, nil)
	if bloberror.HasCode(err, bloberror.BlobNotFound) {
		err = nil
	}
	if err != nil {
		monitoring.RecordBlobOperation("delete", containerName, "error")
		return fmt.Errorf("delete blob %s/%s: %w", containerName, name, err)
	}
	monitoring.RecordBlobOperation("delete", containerName, "ok")
	slog.Info("blob_deleted", "container", containerName, "name", name)
	return nil
}

// blobNameFromURL extracts the blob name from a location URL, the last
// segment of the URL path.
func blobNameFromURL(blobURL string) (string, error) {
	parsed, err := url.Parse(blobURL)
	if err != nil {
		return "", fmt.Errorf("parse blob URL %q: %w", blobURL, err)
	}
	name := path.Base(parsed.Path)
	if name == "." || name == "/" || name == "" {
		return "", fmt.Errorf("blob URL %q has no blob name", blobURL)
	}
	return name, nil
}
