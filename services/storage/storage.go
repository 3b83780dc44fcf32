package storage

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/google/uuid"
)

// CloudinaryUploader implements ImageUploader using Cloudinary.
type CloudinaryUploader struct {
	cld    *cloudinary.Cloudinary
	folder string
}

// NewCloudinaryUploader creates an uploader writing into folder.
func NewCloudinaryUploader(cloudName, apiKey, apiSecret, folder string) (*CloudinaryUploader, error) {
	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, fmt.Errorf("storage: failed to initialize Cloudinary: %w", err)
	}
	return &CloudinaryUploader{cld: cld, folder: folder}, nil
}

// UploadImage uploads an image and returns its public ID and secure URL.
func (u *CloudinaryUploader) UploadImage(ctx context.Context, file io.Reader, filename string) (*UploadResult, error) {
	params := uploader.UploadParams{
		Folder:       u.folder,
		PublicID:     publicIDFor(filename),
		ResourceType: "image",
	}
	result, err := u.cld.Upload.Upload(ctx, file, params)
	if err != nil {
		return nil, fmt.Errorf("storage: failed to upload image: %w", err)
	}
	// API-level failures come back in the result rather than as an error.
	if result.Error.Message != "" {
		return nil, fmt.Errorf("storage: failed to upload image: %s", result.Error.Message)
	}
	if result.SecureURL == "" {
		return nil, fmt.Errorf("storage: no secure URL returned")
	}
	return &UploadResult{PublicID: result.PublicID, SecureURL: result.SecureURL}, nil
}

// publicIDFor derives a unique public ID that keeps the uploaded file's base name
// for readability in the Cloudinary console.
func publicIDFor(filename string) string {
	base := strings.TrimSuffix(path.Base(filename), path.Ext(filename))
	base = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		}
		return '_'
	}, base)
	if base == "" || base == "." || base == "_" {
		return uuid.NewString()
	}
	return base + "-" + uuid.NewString()
}
