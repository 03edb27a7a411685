package store

import (
	"context"

	"github.com/phrazzld/asset-registry/internal/domain"
)

// CategoryStore defines the interface for category data persistence.
type CategoryStore interface {
	// Create saves a new category and assigns its ID.
	// Returns ErrCategoryNameExists if the name is already taken.
	Create(ctx context.Context, category *domain.Category) error

	List(ctx context.Context) ([]*domain.Category, error)

	// GetByID returns ErrCategoryNotFound if the category does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Category, error)

	// GetByName returns ErrCategoryNotFound if no category has that exact name.
	GetByName(ctx context.Context, name string) (*domain.Category, error)

	Exists(ctx context.Context, id int64) (bool, error)

	// Update returns ErrCategoryNotFound or ErrCategoryNameExists.
	Update(ctx context.Context, category *domain.Category) error

	// Delete returns ErrCategoryNotFound if the category does not exist.
	Delete(ctx context.Context, id int64) error
}
