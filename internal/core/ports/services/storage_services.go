package services

import (
	"context"
	"io"
)

// ReceiptStorageSvc stores uploaded receipt images in the object-storage
// bucket and returns their public URLs.
type ReceiptStorageSvc interface {
	// UploadReceipt stores the content under a tenant-scoped object name and
	// returns the URL to record on the cash movement.
	UploadReceipt(ctx context.Context, tenantID, filename, contentType string, content io.Reader) (string, error)
}
