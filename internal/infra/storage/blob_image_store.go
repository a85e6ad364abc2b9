// Package storage persists post images behind a portable blob bucket.
package storage

import (
	"context"
	"fmt"
	"log/slog"
	"path"
	"strings"

	"yap/config"
	"yap/internal/domain/lifecycle"
	"yap/internal/domain/service"
	"yap/internal/errors"

	"github.com/google/uuid"
	"go.uber.org/fx"
	"gocloud.dev/blob"

	// Bucket drivers selected by the bucket URL scheme.
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
)

// blobImageStore implements the ImageStore interface on top of a gocloud blob
// bucket, so local file buckets and GCS share one code path.
type blobImageStore struct {
	bucket    *blob.Bucket
	publicURL string
	logger    *slog.Logger
}

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// New opens the configured bucket and returns an ImageStore bound to it.
func New(params Params) (service.ImageStore, error) {
	bucket, err := blob.OpenBucket(params.Ctx, params.Config.Storage.BucketURL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open image bucket")
	}

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			// Verify the bucket is reachable before serving traffic.
			if _, err := bucket.IsAccessible(ctx); err != nil {
				return errors.Wrap(err, "image bucket is not accessible")
			}

			return nil
		},
		OnStop: func(_ context.Context) error {
			return bucket.Close()
		},
	})

	return &blobImageStore{
		bucket:    bucket,
		publicURL: strings.TrimRight(params.Config.Storage.PublicURL, "/"),
		logger:    params.Logger,
	}, nil
}

// Upload writes the image under a generated key and returns its location.
func (s *blobImageStore) Upload(ctx context.Context, upload service.ImageUpload) (*service.StoredImage, error) {
	key := fmt.Sprintf("posts/%s%s", uuid.NewString(), extensionFor(upload))

	writer, err := s.bucket.NewWriter(ctx, key, &blob.WriterOptions{
		ContentType: upload.ContentType,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to open bucket writer")
	}

	if _, err := writer.ReadFrom(upload.Reader); err != nil {
		writer.Close()

		return nil, errors.Wrap(err, "failed to write image to bucket")
	}
	if err := writer.Close(); err != nil {
		return nil, errors.Wrap(err, "failed to finalize image write")
	}

	s.logger.Debug("Image stored",
		slog.String("key", key),
		slog.String("contentType", upload.ContentType),
	)

	return &service.StoredImage{
		URL: s.publicURL + "/" + key,
		Key: key,
	}, nil
}

// Delete removes a stored image. A missing key is not an error so post
// deletion stays idempotent.
func (s *blobImageStore) Delete(ctx context.Context, key string) error {
	exists, err := s.bucket.Exists(ctx, key)
	if err != nil {
		return errors.Wrap(err, "failed to check image existence")
	}
	if !exists {
		return nil
	}

	if err := s.bucket.Delete(ctx, key); err != nil {
		return errors.Wrap(err, "failed to delete image")
	}

	return nil
}

func extensionFor(upload service.ImageUpload) string {
	if ext := path.Ext(upload.Filename); ext != "" {
		return ext
	}

	switch upload.ContentType {
	case "image/png":
		return ".png"
	case "image/gif":
		return ".gif"
	case "image/webp":
		return ".webp"
	default:
		return ".jpg"
	}
}
