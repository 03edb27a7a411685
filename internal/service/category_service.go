package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/phrazzld/asset-registry/internal/domain"
	"github.com/phrazzld/asset-registry/internal/store"
)

// CategoryService owns the category lifecycle and name uniqueness.
type CategoryService interface {
	CreateCategory(ctx context.Context, req CategoryRequest) (*CategoryResponse, error)
	ListCategories(ctx context.Context) ([]CategoryResponse, error)
	GetCategory(ctx context.Context, id int64) (*CategoryResponse, error)
	// UpdateCategory replaces name and description.
	UpdateCategory(ctx context.Context, id int64, req CategoryRequest) (*CategoryResponse, error)
	DeleteCategory(ctx context.Context, id int64) error
}

// CategoryServiceImpl implements the CategoryService interface
type CategoryServiceImpl struct {
	categories store.CategoryStore
	opts       Options
	logger     *slog.Logger
}

var _ CategoryService = (*CategoryServiceImpl)(nil)

// NewCategoryService creates a new CategoryService
func NewCategoryService(categories store.CategoryStore, opts Options, logger *slog.Logger) CategoryService {
	return &CategoryServiceImpl{
		categories: categories,
		opts:       opts.withDefaults(),
		logger:     logger.With("component", "category_service"),
	}
}

// CreateCategory implements CategoryService.
func (s *CategoryServiceImpl) CreateCategory(ctx context.Context, req CategoryRequest) (*CategoryResponse, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	name := strings.TrimSpace(req.Name)

	conflict := domain.NewConflictError("category", "name", name)
	if err := s.ensureNameFree(ctx, "create", name, 0, conflict); err != nil {
		return nil, err
	}

	category := &domain.Category{Name: name, Description: req.Description}
	if err := s.categories.Create(ctx, category); err != nil {
		return nil, s.fail("create", 0, err, on(store.ErrDuplicate, conflict))
	}

	s.logger.Info("category created", "category_id", category.ID, "name", name)
	resp := newCategoryResponse(category)
	return &resp, nil
}

// ListCategories implements CategoryService.
func (s *CategoryServiceImpl) ListCategories(ctx context.Context) ([]CategoryResponse, error) {
	categories, err := s.categories.List(ctx)
	if err != nil {
		return nil, s.fail("list", 0, err)
	}
	if len(categories) == 0 && s.opts.EmptyListIsError {
		return nil, domain.NewNotFoundError("category", 0)
	}

	out := make([]CategoryResponse, 0, len(categories))
	for _, c := range categories {
		out = append(out, newCategoryResponse(c))
	}
	return out, nil
}

// GetCategory implements CategoryService.
func (s *CategoryServiceImpl) GetCategory(ctx context.Context, id int64) (*CategoryResponse, error) {
	category, err := s.categories.GetByID(ctx, id)
	if err != nil {
		return nil, s.fail("get", id, err)
	}
	resp := newCategoryResponse(category)
	return &resp, nil
}

// UpdateCategory implements CategoryService.
func (s *CategoryServiceImpl) UpdateCategory(
	ctx context.Context,
	id int64,
	req CategoryRequest,
) (*CategoryResponse, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	name := strings.TrimSpace(req.Name)

	category, err := s.categories.GetByID(ctx, id)
	if err != nil {
		return nil, s.fail("update", id, err)
	}

	conflict := domain.NewConflictError("category", "name", name)
	if err := s.ensureNameFree(ctx, "update", name, id, conflict); err != nil {
		return nil, err
	}

	category.Name = name
	category.Description = req.Description
	if err := s.categories.Update(ctx, category); err != nil {
		return nil, s.fail("update", id, err, on(store.ErrDuplicate, conflict))
	}

	s.logger.Info("category updated", "category_id", id)
	resp := newCategoryResponse(category)
	return &resp, nil
}

// DeleteCategory implements CategoryService.
func (s *CategoryServiceImpl) DeleteCategory(ctx context.Context, id int64) error {
	exists, err := s.categories.Exists(ctx, id)
	if err != nil {
		return s.fail("delete", id, err)
	}
	if !exists {
		return domain.NewNotFoundError("category", id)
	}

	if err := s.categories.Delete(ctx, id); err != nil {
		return s.fail("delete", id, err, on(store.ErrReferenced, domain.NewReferencedError("category", id)))
	}

	s.logger.Info("category deleted", "category_id", id)
	return nil
}

func (s *CategoryServiceImpl) ensureNameFree(
	ctx context.Context,
	op, name string,
	exceptID int64,
	conflict *domain.ConflictError,
) error {
	existing, err := s.categories.GetByName(ctx, name)
	switch {
	case store.IsNotFoundError(err):
		return nil
	case err != nil:
		return s.fail(op, exceptID, err)
	case existing.ID != exceptID:
		s.logger.Debug("category name already taken", "name", name)
		return conflict
	}
	return nil
}

func (s *CategoryServiceImpl) fail(op string, id int64, err error, cases ...errCase) error {
	cases = append(cases, on(store.ErrNotFound, domain.NewNotFoundError("category", id)))
	out := translate("category", op, err, cases...)
	var svcErr *ServiceError
	if errors.As(out, &svcErr) {
		s.logger.Error("category store operation failed", "error", err, "op", op, "category_id", id)
	}
	return out
}
