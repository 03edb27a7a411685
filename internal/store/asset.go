package store

import (
	"context"

	"github.com/phrazzld/asset-registry/internal/domain"
)

// AssetStore defines the interface for asset data persistence.
type AssetStore interface {
	// Create saves a new asset and assigns its ID.
	// Returns ErrAssetExists if the dedup key is taken and
	// ErrInvalidReference if the owner or category does not exist.
	Create(ctx context.Context, asset *domain.Asset) error

	List(ctx context.Context) ([]*domain.Asset, error)

	// GetByID returns ErrAssetNotFound if the asset does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Asset, error)

	// GetByDedupKey returns the asset whose (name, type, value) matches key.
	// Returns ErrAssetNotFound if there is none.
	GetByDedupKey(ctx context.Context, key domain.DedupKey) (*domain.Asset, error)

	Exists(ctx context.Context, id int64) (bool, error)

	// Update returns ErrAssetNotFound, ErrAssetExists or ErrInvalidReference.
	Update(ctx context.Context, asset *domain.Asset) error

	// Delete returns ErrAssetNotFound if the asset does not exist.
	Delete(ctx context.Context, id int64) error
}
