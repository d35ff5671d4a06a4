// Package storage uploads receipt images to Google Cloud Storage.
package storage

import (
	"context"
	"fmt"
	"io"
	"path"
	"time"

	gcs "cloud.google.com/go/storage"
	portssvc "github.com/frigosaas/frigo-backend/internal/core/ports/services"
	"github.com/google/uuid"
)

// GCSReceiptStorage stores receipt images in a GCS bucket under a
// tenant-scoped prefix.
type GCSReceiptStorage struct {
	client *gcs.Client
	bucket string
}

// NewGCSReceiptStorage creates a storage client using ambient credentials.
func NewGCSReceiptStorage(ctx context.Context, bucket string) (*GCSReceiptStorage, error) {
	client, err := gcs.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}
	return &GCSReceiptStorage{client: client, bucket: bucket}, nil
}

var _ portssvc.ReceiptStorageSvc = (*GCSReceiptStorage)(nil)

// UploadReceipt writes the content to the bucket and returns its public URL.
// Object names are randomized so an uploaded filename can never collide with
// or overwrite another tenant's receipt.
func (s *GCSReceiptStorage) UploadReceipt(ctx context.Context, tenantID, filename, contentType string, content io.Reader) (string, error) {
	objectName := fmt.Sprintf("receipts/%s/%s/%s%s",
		tenantID,
		time.Now().UTC().Format("2006-01-02"),
		uuid.NewString(),
		path.Ext(filename),
	)

	w := s.client.Bucket(s.bucket).Object(objectName).NewWriter(ctx)
	w.ContentType = contentType
	if _, err := io.Copy(w, content); err != nil {
		_ = w.Close()
		return "", fmt.Errorf("failed to upload receipt: %w", err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("failed to finalize receipt upload: %w", err)
	}

	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", s.bucket, objectName), nil
}

// Close releases the underlying client.
func (s *GCSReceiptStorage) Close() error {
	return s.client.Close()
}
