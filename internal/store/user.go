package store

import (
	"context"

	"github.com/phrazzld/asset-registry/internal/domain"
)

// UserStore defines the interface for user data persistence.
type UserStore interface {
	// Create saves a new user and assigns its ID.
	// Returns ErrEmailExists if the email is already taken.
	Create(ctx context.Context, user *domain.User) error

	// List returns every user ordered by ID. An empty store yields an empty slice.
	List(ctx context.Context) ([]*domain.User, error)

	// GetByID retrieves a user by ID.
	// Returns ErrUserNotFound if the user does not exist.
	GetByID(ctx context.Context, id int64) (*domain.User, error)

	// GetByEmail retrieves a user by email address.
	// Returns ErrUserNotFound if no user has that email.
	GetByEmail(ctx context.Context, email string) (*domain.User, error)

	// Exists reports whether a user with the given ID exists.
	Exists(ctx context.Context, id int64) (bool, error)

	// Update replaces every mutable field of an existing user.
	// Returns ErrUserNotFound if the user does not exist and
	// ErrEmailExists if the new email belongs to another user.
	Update(ctx context.Context, user *domain.User) error

	// Delete removes a user permanently.
	// Returns ErrUserNotFound if the user does not exist.
	Delete(ctx context.Context, id int64) error
}
