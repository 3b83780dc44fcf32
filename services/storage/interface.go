package storage

import (
	"context"
	"io"
)

// UploadResult describes an asset stored on the media host.
type UploadResult struct {
	PublicID  string
	SecureURL string
}

// ImageUploader stores images on the media host.
type ImageUploader interface {
	UploadImage(ctx context.Context, file io.Reader, filename string) (*UploadResult, error)
}

// OrphanLedger records uploaded assets whose owning record was never persisted.
type OrphanLedger interface {
	RecordOrphan(ctx context.Context, publicID, reason string) error
}
