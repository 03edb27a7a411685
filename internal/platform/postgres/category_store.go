package postgres

import (
	"context"
	"log/slog"

	"github.com/phrazzld/asset-registry/internal/domain"
	"github.com/phrazzld/asset-registry/internal/platform/logger"
	"github.com/phrazzld/asset-registry/internal/store"
)

// PostgresCategoryStore implements store.CategoryStore on PostgreSQL.
type PostgresCategoryStore struct {
	db     DBTX
	logger *slog.Logger
}

// NewPostgresCategoryStore creates a category store over db.
// If logger is nil, a default logger will be used.
func NewPostgresCategoryStore(db DBTX, logger *slog.Logger) *PostgresCategoryStore {
	if db == nil {
		// ALLOW-PANIC
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &PostgresCategoryStore{
		db:     db,
		logger: logger.With(slog.String("component", "category_store")),
	}
}

var _ store.CategoryStore = (*PostgresCategoryStore)(nil)

const categoryColumns = `id, name, description, created_at, updated_at`

func scanCategory(row interface{ Scan(dest ...any) error }) (*domain.Category, error) {
	var c domain.Category
	if err := row.Scan(&c.ID, &c.Name, &c.Description, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return nil, err
	}
	return &c, nil
}

// Create implements store.CategoryStore.Create
func (s *PostgresCategoryStore) Create(ctx context.Context, category *domain.Category) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := category.Validate(); err != nil {
		return err
	}

	err := s.db.QueryRowContext(ctx, `
		INSERT INTO categories (name, description)
		VALUES ($1, $2)
		RETURNING id, created_at, updated_at
	`, category.Name, category.Description).
		Scan(&category.ID, &category.CreatedAt, &category.UpdatedAt)
	if err != nil {
		if !IsUniqueViolation(err) {
			log.Error("failed to create category", slog.String("error", err.Error()))
		}
		return WrapError("category", "create", MapUniqueViolation(err, store.ErrCategoryNameExists))
	}

	log.Debug("category created", slog.Int64("category_id", category.ID))
	return nil
}

// List implements store.CategoryStore.List
func (s *PostgresCategoryStore) List(ctx context.Context) ([]*domain.Category, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+categoryColumns+` FROM categories ORDER BY id`)
	if err != nil {
		return nil, WrapError("category", "list", MapError(err))
	}
	defer func() { _ = rows.Close() }()

	categories := []*domain.Category{}
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, WrapError("category", "list", MapError(err))
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, WrapError("category", "list", MapError(err))
	}
	return categories, nil
}

// GetByID implements store.CategoryStore.GetByID
func (s *PostgresCategoryStore) GetByID(ctx context.Context, id int64) (*domain.Category, error) {
	c, err := scanCategory(s.db.QueryRowContext(ctx,
		`SELECT `+categoryColumns+` FROM categories WHERE id = $1`, id))
	return c, WrapError("category", "get", notFoundAs(err, store.ErrCategoryNotFound))
}

// GetByName implements store.CategoryStore.GetByName
func (s *PostgresCategoryStore) GetByName(ctx context.Context, name string) (*domain.Category, error) {
	c, err := scanCategory(s.db.QueryRowContext(ctx,
		`SELECT `+categoryColumns+` FROM categories WHERE name = $1`, name))
	return c, WrapError("category", "get_by_name", notFoundAs(err, store.ErrCategoryNotFound))
}

// Exists implements store.CategoryStore.Exists
func (s *PostgresCategoryStore) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := s.db.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM categories WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, WrapError("category", "exists", MapError(err))
	}
	return exists, nil
}

// Update implements store.CategoryStore.Update
func (s *PostgresCategoryStore) Update(ctx context.Context, category *domain.Category) error {
	if err := category.Validate(); err != nil {
		return err
	}

	err := s.db.QueryRowContext(ctx, `
		UPDATE categories
		SET name = $1, description = $2, updated_at = NOW()
		WHERE id = $3
		RETURNING created_at, updated_at
	`, category.Name, category.Description, category.ID).
		Scan(&category.CreatedAt, &category.UpdatedAt)
	if err != nil {
		return WrapError("category", "update",
			notFoundAs(MapUniqueViolation(err, store.ErrCategoryNameExists), store.ErrCategoryNotFound))
	}
	return nil
}

// Delete implements store.CategoryStore.Delete
func (s *PostgresCategoryStore) Delete(ctx context.Context, id int64) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return WrapError("category", "delete", MapDeleteError(err))
	}
	return WrapError("category", "delete", CheckRowsAffected(result, store.ErrCategoryNotFound))
}

// notFoundAs maps err through MapError and replaces a generic not-found
// with the entity-specific sentinel.
func notFoundAs(err error, notFound error) error {
	if err == nil {
		return nil
	}
	mapped := MapError(err)
	if store.IsNotFoundError(mapped) {
		return notFound
	}
	return mapped
}
