package service

import (
	"context"
	"io"
)

// ImageUpload is one image received from a client, ready to be stored.
type ImageUpload struct {
	Filename    string
	ContentType string
	Reader      io.Reader
}

// StoredImage locates a stored image both for serving and later deletion.
type StoredImage struct {
	// URL is the public address clients fetch the image from.
	URL string
	// Key is the bucket-internal object key used for deletion.
	Key string
}

// ImageStore persists post images in a blob bucket.
type ImageStore interface {
	Upload(ctx context.Context, upload ImageUpload) (*StoredImage, error)
	Delete(ctx context.Context, key string) error
}
