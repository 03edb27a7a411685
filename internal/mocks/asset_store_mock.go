package mocks

import (
	"context"

	"github.com/phrazzld/asset-registry/internal/domain"
	"github.com/phrazzld/asset-registry/internal/store"
	"github.com/stretchr/testify/mock"
)

// TestifyMockAssetStore is a mock of store.AssetStore interface for use with testify/mock
type TestifyMockAssetStore struct {
	mock.Mock
}

var _ store.AssetStore = (*TestifyMockAssetStore)(nil)

func (m *TestifyMockAssetStore) Create(ctx context.Context, asset *domain.Asset) error {
	args := m.Called(ctx, asset)
	return args.Error(0)
}

func (m *TestifyMockAssetStore) List(ctx context.Context) ([]*domain.Asset, error) {
	args := m.Called(ctx)
	if assets, ok := args.Get(0).([]*domain.Asset); ok {
		return assets, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *TestifyMockAssetStore) GetByID(ctx context.Context, id int64) (*domain.Asset, error) {
	args := m.Called(ctx, id)
	if asset, ok := args.Get(0).(*domain.Asset); ok {
		return asset, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *TestifyMockAssetStore) GetByDedupKey(ctx context.Context, key domain.DedupKey) (*domain.Asset, error) {
	args := m.Called(ctx, key)
	if asset, ok := args.Get(0).(*domain.Asset); ok {
		return asset, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *TestifyMockAssetStore) Exists(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *TestifyMockAssetStore) Update(ctx context.Context, asset *domain.Asset) error {
	args := m.Called(ctx, asset)
	return args.Error(0)
}

func (m *TestifyMockAssetStore) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
