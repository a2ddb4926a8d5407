// Package storage persists uploaded media in a blob bucket.
package storage

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"log/slog"
	"path"
	"strings"
	"time"

	"gaspass/config"
	"gaspass/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"

	// Registered bucket drivers, selected by the configured bucket URL scheme.
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/s3blob"
)

// blobStorage implements MediaStorage on top of a gocloud blob bucket.
// Object keys are generated server-side; client filenames only contribute
// their extension.
type blobStorage struct {
	bucket        *blob.Bucket
	publicBaseURL string
	logger        *slog.Logger
}

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the configured bucket and wires its closure into the app lifecycle.
func New(params Params) (service.MediaStorage, error) {
	if params.Config.Storage == nil || params.Config.Storage.BucketURL == "" {
		return nil, errors.New("storage bucket URL must be provided")
	}

	bucket, err := blob.OpenBucket(context.Background(), params.Config.Storage.BucketURL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open storage bucket")
	}

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return bucket.Close()
		},
	})

	return &blobStorage{
		bucket:        bucket,
		publicBaseURL: strings.TrimRight(params.Config.Storage.PublicBaseURL, "/"),
		logger:        params.Logger,
	}, nil
}

// Upload stores the file under a fresh key and returns its public URL.
func (s *blobStorage) Upload(ctx context.Context, upload service.MediaUpload) (string, error) {
	key, err := newObjectKey(upload.Filename)
	if err != nil {
		return "", errors.Wrap(err, "failed to generate object key")
	}

	writer, err := s.bucket.NewWriter(ctx, key, &blob.WriterOptions{
		ContentType: upload.ContentType,
	})
	if err != nil {
		return "", errors.Wrap(err, "failed to open bucket writer")
	}

	if _, err := io.Copy(writer, upload.Body); err != nil {
		_ = writer.Close()

		return "", errors.Wrap(err, "failed to write object")
	}
	if err := writer.Close(); err != nil {
		return "", errors.Wrap(err, "failed to finalize object")
	}

	s.logger.Debug("Media object stored",
		slog.String("key", key),
		slog.String("contentType", upload.ContentType))

	return s.publicBaseURL + "/" + key, nil
}

// newObjectKey builds a collision-resistant key keeping only the original
// file extension.
func newObjectKey(filename string) (string, error) {
	buf := make([]byte, 8)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}

	ext := strings.ToLower(path.Ext(filename))

	return fmt.Sprintf("%d-%s%s", time.Now().UnixMilli(), hex.EncodeToString(buf), ext), nil
}
