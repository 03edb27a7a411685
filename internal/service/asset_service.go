package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/phrazzld/asset-registry/internal/domain"
	"github.com/phrazzld/asset-registry/internal/store"
	"github.com/shopspring/decimal"
)

// AssetService owns the asset lifecycle. Owners and categories are resolved
// through their stores; responses embed their names.
type AssetService interface {
	// CreateAsset requires every field, rejects a taken dedup key and an
	// unknown owner or category, and stamps today's date as the purchase date.
	CreateAsset(ctx context.Context, req AssetRequest) (*AssetResponse, error)

	ListAssets(ctx context.Context) ([]AssetResponse, error)

	GetAsset(ctx context.Context, id int64) (*AssetResponse, error)

	// UpdateAsset applies the non-blank fields of req. Bad owner or category
	// ids are handled by Options.AssetReferences. The purchase date never changes.
	UpdateAsset(ctx context.Context, id int64, req AssetRequest) (*AssetResponse, error)

	// DeleteAsset removes an asset that no transaction references.
	DeleteAsset(ctx context.Context, id int64) error
}

// AssetServiceImpl implements the AssetService interface
type AssetServiceImpl struct {
	assets     store.AssetStore
	users      store.UserStore
	categories store.CategoryStore
	opts       Options
	logger     *slog.Logger
}

var _ AssetService = (*AssetServiceImpl)(nil)

// NewAssetService creates a new AssetService
func NewAssetService(
	assets store.AssetStore,
	users store.UserStore,
	categories store.CategoryStore,
	opts Options,
	logger *slog.Logger,
) AssetService {
	return &AssetServiceImpl{
		assets:     assets,
		users:      users,
		categories: categories,
		opts:       opts.withDefaults(),
		logger:     logger.With("component", "asset_service"),
	}
}

// CreateAsset implements AssetService.
func (s *AssetServiceImpl) CreateAsset(ctx context.Context, req AssetRequest) (*AssetResponse, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	value, err := parseValue(req.Value)
	if err != nil {
		return nil, err
	}
	ownerID, err := domain.ParseID("ownerId", req.OwnerID)
	if err != nil {
		return nil, err
	}
	categoryID, err := domain.ParseID("categoryId", req.CategoryID)
	if err != nil {
		return nil, err
	}

	asset := &domain.Asset{
		Name:       strings.TrimSpace(req.Name),
		Type:       strings.TrimSpace(req.Type),
		Value:      value,
		OwnerID:    ownerID,
		CategoryID: categoryID,
	}
	if err := s.ensureKeyFree(ctx, "create", asset.Key(), 0); err != nil {
		return nil, err
	}

	owner, err := s.users.GetByID(ctx, ownerID)
	if err != nil {
		return nil, s.fail("create", 0, err, on(store.ErrUserNotFound, domain.NewNotFoundError("user", ownerID)))
	}
	category, err := s.categories.GetByID(ctx, categoryID)
	if err != nil {
		return nil, s.fail("create", 0, err,
			on(store.ErrCategoryNotFound, domain.NewNotFoundError("category", categoryID)))
	}

	asset.PurchaseDate = domain.DateOnly(s.opts.Clock.Now())
	if err := s.assets.Create(ctx, asset); err != nil {
		return nil, s.fail("create", 0, err,
			on(store.ErrDuplicate, assetConflict(asset.Key())),
			on(store.ErrInvalidReference, domain.NewNotFoundError("owner or category", 0)))
	}

	s.logger.Info("asset created",
		"asset_id", asset.ID,
		"owner_id", asset.OwnerID,
		"category_id", asset.CategoryID)

	resp := newAssetResponse(asset, owner.Name, category.Name)
	return &resp, nil
}

// ListAssets implements AssetService.
func (s *AssetServiceImpl) ListAssets(ctx context.Context) ([]AssetResponse, error) {
	assets, err := s.assets.List(ctx)
	if err != nil {
		return nil, s.fail("list", 0, err)
	}
	if len(assets) == 0 && s.opts.EmptyListIsError {
		return nil, domain.NewNotFoundError("asset", 0)
	}

	names := newNameCache(s.users, s.categories)
	out := make([]AssetResponse, 0, len(assets))
	for _, a := range assets {
		ownerName, categoryName, err := names.forAsset(ctx, a)
		if err != nil {
			return nil, s.fail("list", a.ID, err, referenceCases(a)...)
		}
		out = append(out, newAssetResponse(a, ownerName, categoryName))
	}
	return out, nil
}

// GetAsset implements AssetService.
func (s *AssetServiceImpl) GetAsset(ctx context.Context, id int64) (*AssetResponse, error) {
	asset, err := s.assets.GetByID(ctx, id)
	if err != nil {
		return nil, s.fail("get", id, err)
	}
	return s.project(ctx, "get", asset)
}

// UpdateAsset implements AssetService.
func (s *AssetServiceImpl) UpdateAsset(ctx context.Context, id int64, req AssetRequest) (*AssetResponse, error) {
	asset, err := s.assets.GetByID(ctx, id)
	if err != nil {
		return nil, s.fail("update", id, err)
	}
	before := asset.Key()

	if !blank(req.Name) {
		asset.Name = strings.TrimSpace(req.Name)
	}
	if !blank(req.Type) {
		asset.Type = strings.TrimSpace(req.Type)
	}
	if !blank(req.Value) {
		value, err := parseValue(req.Value)
		if err != nil {
			return nil, err
		}
		asset.Value = value
	}
	if !blank(req.OwnerID) {
		ownerID, ok, err := resolveReference(ctx, s.opts.AssetReferences, s.logger,
			"ownerId", "user", req.OwnerID, s.users.Exists)
		if err != nil {
			return nil, s.fail("update", id, err)
		}
		if ok {
			asset.OwnerID = ownerID
		}
	}
	if !blank(req.CategoryID) {
		categoryID, ok, err := resolveReference(ctx, s.opts.AssetReferences, s.logger,
			"categoryId", "category", req.CategoryID, s.categories.Exists)
		if err != nil {
			return nil, s.fail("update", id, err)
		}
		if ok {
			asset.CategoryID = categoryID
		}
	}

	if !asset.Key().Matches(before) {
		if err := s.ensureKeyFree(ctx, "update", asset.Key(), id); err != nil {
			return nil, err
		}
	}

	if err := s.assets.Update(ctx, asset); err != nil {
		return nil, s.fail("update", id, err,
			on(store.ErrDuplicate, assetConflict(asset.Key())),
			on(store.ErrInvalidReference, domain.NewNotFoundError("owner or category", 0)))
	}

	s.logger.Info("asset updated", "asset_id", id)
	return s.project(ctx, "update", asset)
}

// DeleteAsset implements AssetService.
func (s *AssetServiceImpl) DeleteAsset(ctx context.Context, id int64) error {
	exists, err := s.assets.Exists(ctx, id)
	if err != nil {
		return s.fail("delete", id, err)
	}
	if !exists {
		return domain.NewNotFoundError("asset", id)
	}

	if err := s.assets.Delete(ctx, id); err != nil {
		return s.fail("delete", id, err, on(store.ErrReferenced, domain.NewReferencedError("asset", id)))
	}

	s.logger.Info("asset deleted", "asset_id", id)
	return nil
}

func (s *AssetServiceImpl) project(ctx context.Context, op string, asset *domain.Asset) (*AssetResponse, error) {
	ownerName, categoryName, err := newNameCache(s.users, s.categories).forAsset(ctx, asset)
	if err != nil {
		return nil, s.fail(op, asset.ID, err, referenceCases(asset)...)
	}
	resp := newAssetResponse(asset, ownerName, categoryName)
	return &resp, nil
}

func (s *AssetServiceImpl) ensureKeyFree(
	ctx context.Context,
	op string,
	key domain.DedupKey,
	exceptID int64,
) error {
	existing, err := s.assets.GetByDedupKey(ctx, key)
	switch {
	case store.IsNotFoundError(err):
		return nil
	case err != nil:
		return s.fail(op, exceptID, err)
	case existing.ID != exceptID:
		s.logger.Debug("asset dedup key already taken", "name", key.Name, "existing_id", existing.ID)
		return assetConflict(key)
	}
	return nil
}

func (s *AssetServiceImpl) fail(op string, id int64, err error, cases ...errCase) error {
	cases = append(cases, on(store.ErrNotFound, domain.NewNotFoundError("asset", id)))
	out := translate("asset", op, err, cases...)
	var svcErr *ServiceError
	if errors.As(out, &svcErr) {
		s.logger.Error("asset store operation failed", "error", err, "op", op, "asset_id", id)
	}
	return out
}

// parseValue parses a non-negative asset value.
func parseValue(raw string) (decimal.Decimal, error) {
	value, err := domain.ParseAmount("value", raw)
	if err != nil {
		return decimal.Zero, err
	}
	if value.IsNegative() {
		return decimal.Zero, domain.NewValidationError("value", domain.Message(domain.MsgNegativeValue), domain.ErrInvalidNumber)
	}
	return value, nil
}

// referenceCases reports a missing owner or category of a stored asset by
// the related entity rather than as a missing asset.
func referenceCases(a *domain.Asset) []errCase {
	return []errCase{
		on(store.ErrUserNotFound, domain.NewNotFoundError("user", a.OwnerID)),
		on(store.ErrCategoryNotFound, domain.NewNotFoundError("category", a.CategoryID)),
	}
}

func assetConflict(key domain.DedupKey) *domain.ConflictError {
	return domain.NewConflictError("asset", "name, type and value",
		fmt.Sprintf("%s/%s/%s", key.Name, key.Type, key.Value.String()))
}

// nameCache memoizes owner and category names while building projections.
type nameCache struct {
	users      store.UserStore
	categories store.CategoryStore
	owners     map[int64]string
	cats       map[int64]string
}

func newNameCache(users store.UserStore, categories store.CategoryStore) *nameCache {
	return &nameCache{
		users:      users,
		categories: categories,
		owners:     map[int64]string{},
		cats:       map[int64]string{},
	}
}

func (c *nameCache) forAsset(ctx context.Context, a *domain.Asset) (owner, category string, err error) {
	owner, ok := c.owners[a.OwnerID]
	if !ok {
		u, err := c.users.GetByID(ctx, a.OwnerID)
		if err != nil {
			return "", "", err
		}
		owner = u.Name
		c.owners[a.OwnerID] = owner
	}
	category, ok = c.cats[a.CategoryID]
	if !ok {
		cat, err := c.categories.GetByID(ctx, a.CategoryID)
		if err != nil {
			return "", "", err
		}
		category = cat.Name
		c.cats[a.CategoryID] = category
	}
	return owner, category, nil
}
