package service

import (
	"context"

	"github.com/pkg/errors"
)

// ErrAssetNotFound is returned when no asset exists under the requested key.
var ErrAssetNotFound = errors.New("asset not found")

// AssetStore defines read-only access to bundled static assets such as default food images.
type AssetStore interface {
	// Read returns the asset bytes stored under key.
	Read(ctx context.Context, key string) ([]byte, error)
}
