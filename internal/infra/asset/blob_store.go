// Package asset serves static assets such as default food images from a gocloud.dev blob bucket.
package asset

import (
	"context"
	"log/slog"
	"path"
	"strings"

	"biofit/config"
	"biofit/internal/domain/lifecycle"
	"biofit/internal/domain/service"
	"biofit/internal/errors"
	"biofit/internal/util"

	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // file:// buckets
	_ "gocloud.dev/blob/gcsblob"  // gs:// buckets
	_ "gocloud.dev/blob/memblob"  // mem:// buckets
	_ "gocloud.dev/blob/s3blob"   // s3:// buckets
	"gocloud.dev/gcerrors"
)

// Params defines the dependencies of the blob asset store.
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// blobStore implements service.AssetStore on top of a blob bucket.
type blobStore struct {
	bucket *blob.Bucket
	prefix string
	logger *slog.Logger
}

// New opens the configured bucket and closes it when the application stops.
func New(params Params) (service.AssetStore, error) {
	ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	bucket, err := blob.OpenBucket(ctx, params.Config.Assets.BucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open asset bucket %q", params.Config.Assets.BucketURL)
	}

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return bucket.Close()
		},
	})

	return NewBlobStore(bucket, params.Config.Assets.Prefix, params.Logger), nil
}

// NewBlobStore wraps an already opened bucket. Keys are resolved below prefix.
func NewBlobStore(bucket *blob.Bucket, prefix string, logger *slog.Logger) service.AssetStore {
	return &blobStore{
		bucket: bucket,
		prefix: strings.Trim(prefix, "/"),
		logger: logger,
	}
}

// Read returns the bytes stored under key.
func (s *blobStore) Read(ctx context.Context, key string) ([]byte, error) {
	fullKey := s.resolve(key)

	data, err := s.bucket.ReadAll(ctx, fullKey)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, errors.Wrapf(service.ErrAssetNotFound, "key %q", fullKey)
		}

		return nil, errors.Wrapf(err, "failed to read asset %q", fullKey)
	}

	s.logger.Debug("Asset loaded",
		slog.String("key", fullKey),
		slog.String("size", util.FormatBytes(int64(len(data)))),
	)

	return data, nil
}

func (s *blobStore) resolve(key string) string {
	key = strings.TrimLeft(key, "/")
	if s.prefix == "" {
		return key
	}

	return path.Join(s.prefix, key)
}
