package asset

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"biofit/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
)

func TestBlobStore_Read(t *testing.T) {
	ctx := context.Background()
	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })

	image := []byte{0xff, 0xd8, 0xff, 0xe0}
	require.NoError(t, bucket.WriteAll(ctx, "static/DefaultFoods/phobo.jpg", image, nil))

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	tests := []struct {
		name    string
		prefix  string
		key     string
		want    []byte
		wantErr error
	}{
		{name: "prefixed key", prefix: "static", key: "DefaultFoods/phobo.jpg", want: image},
		{name: "prefix with slashes", prefix: "/static/", key: "/DefaultFoods/phobo.jpg", want: image},
		{name: "no prefix", prefix: "", key: "static/DefaultFoods/phobo.jpg", want: image},
		{name: "missing asset", prefix: "static", key: "DefaultFoods/none.jpg", wantErr: service.ErrAssetNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := NewBlobStore(bucket, tt.prefix, logger)

			got, err := store.Read(ctx, tt.key)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
