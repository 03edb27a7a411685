package postgres

import (
	"context"
	"log/slog"

	"github.com/phrazzld/asset-registry/internal/domain"
	"github.com/phrazzld/asset-registry/internal/platform/logger"
	"github.com/phrazzld/asset-registry/internal/store"
)

// PostgresAssetStore implements store.AssetStore on PostgreSQL.
// Values are stored as NUMERIC and scanned through decimal.Decimal,
// so the dedup constraint compares them numerically.
type PostgresAssetStore struct {
	db     DBTX
	logger *slog.Logger
}

// NewPostgresAssetStore creates an asset store over db.
func NewPostgresAssetStore(db DBTX, logger *slog.Logger) *PostgresAssetStore {
	if db == nil {
		// ALLOW-PANIC
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &PostgresAssetStore{
		db:     db,
		logger: logger.With(slog.String("component", "asset_store")),
	}
}

var _ store.AssetStore = (*PostgresAssetStore)(nil)

const assetColumns = `id, name, type, value, purchase_date, owner_id, category_id, created_at, updated_at`

func scanAsset(row interface{ Scan(dest ...any) error }) (*domain.Asset, error) {
	var a domain.Asset
	err := row.Scan(&a.ID, &a.Name, &a.Type, &a.Value, &a.PurchaseDate,
		&a.OwnerID, &a.CategoryID, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, err
	}
	a.PurchaseDate = domain.DateOnly(a.PurchaseDate)
	return &a, nil
}

// Create implements store.AssetStore.Create
func (s *PostgresAssetStore) Create(ctx context.Context, asset *domain.Asset) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := asset.Validate(); err != nil {
		return err
	}

	err := s.db.QueryRowContext(ctx, `
		INSERT INTO assets (name, type, value, purchase_date, owner_id, category_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`, asset.Name, asset.Type, asset.Value, asset.PurchaseDate, asset.OwnerID, asset.CategoryID).
		Scan(&asset.ID, &asset.CreatedAt, &asset.UpdatedAt)
	if err != nil {
		if !IsUniqueViolation(err) && !IsForeignKeyViolation(err) {
			log.Error("failed to create asset", slog.String("error", err.Error()))
		}
		return WrapError("asset", "create", MapUniqueViolation(err, store.ErrAssetExists))
	}

	log.Debug("asset created",
		slog.Int64("asset_id", asset.ID),
		slog.Int64("owner_id", asset.OwnerID))
	return nil
}

// List implements store.AssetStore.List
func (s *PostgresAssetStore) List(ctx context.Context) ([]*domain.Asset, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+assetColumns+` FROM assets ORDER BY id`)
	if err != nil {
		return nil, WrapError("asset", "list", MapError(err))
	}
	defer func() { _ = rows.Close() }()

	assets := []*domain.Asset{}
	for rows.Next() {
		a, err := scanAsset(rows)
		if err != nil {
			return nil, WrapError("asset", "list", MapError(err))
		}
		assets = append(assets, a)
	}
	if err := rows.Err(); err != nil {
		return nil, WrapError("asset", "list", MapError(err))
	}
	return assets, nil
}

// GetByID implements store.AssetStore.GetByID
func (s *PostgresAssetStore) GetByID(ctx context.Context, id int64) (*domain.Asset, error) {
	a, err := scanAsset(s.db.QueryRowContext(ctx,
		`SELECT `+assetColumns+` FROM assets WHERE id = $1`, id))
	return a, WrapError("asset", "get", notFoundAs(err, store.ErrAssetNotFound))
}

// GetByDedupKey implements store.AssetStore.GetByDedupKey
func (s *PostgresAssetStore) GetByDedupKey(ctx context.Context, key domain.DedupKey) (*domain.Asset, error) {
	a, err := scanAsset(s.db.QueryRowContext(ctx,
		`SELECT `+assetColumns+` FROM assets WHERE name = $1 AND type = $2 AND value = $3`,
		key.Name, key.Type, key.Value))
	return a, WrapError("asset", "get_by_dedup_key", notFoundAs(err, store.ErrAssetNotFound))
}

// Exists implements store.AssetStore.Exists
func (s *PostgresAssetStore) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := s.db.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM assets WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, WrapError("asset", "exists", MapError(err))
	}
	return exists, nil
}

// Update implements store.AssetStore.Update. PurchaseDate is never rewritten.
func (s *PostgresAssetStore) Update(ctx context.Context, asset *domain.Asset) error {
	if err := asset.Validate(); err != nil {
		return err
	}

	err := s.db.QueryRowContext(ctx, `
		UPDATE assets
		SET name = $1, type = $2, value = $3, owner_id = $4, category_id = $5, updated_at = NOW()
		WHERE id = $6
		RETURNING purchase_date, created_at, updated_at
	`, asset.Name, asset.Type, asset.Value, asset.OwnerID, asset.CategoryID, asset.ID).
		Scan(&asset.PurchaseDate, &asset.CreatedAt, &asset.UpdatedAt)
	if err != nil {
		return WrapError("asset", "update",
			notFoundAs(MapUniqueViolation(err, store.ErrAssetExists), store.ErrAssetNotFound))
	}
	asset.PurchaseDate = domain.DateOnly(asset.PurchaseDate)
	return nil
}

// Delete implements store.AssetStore.Delete
func (s *PostgresAssetStore) Delete(ctx context.Context, id int64) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM assets WHERE id = $1`, id)
	if err != nil {
		return WrapError("asset", "delete", MapDeleteError(err))
	}
	return WrapError("asset", "delete", CheckRowsAffected(result, store.ErrAssetNotFound))
}
