package store

import (
	"context"

	"github.com/phrazzld/asset-registry/internal/domain"
)

// TransactionStore defines the interface for transaction data persistence.
type TransactionStore interface {
	// Create saves a new transaction and assigns its ID.
	// Returns ErrInvalidReference if the asset does not exist.
	Create(ctx context.Context, tx *domain.Transaction) error

	List(ctx context.Context) ([]*domain.Transaction, error)

	// GetByID returns ErrTransactionNotFound if the transaction does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Transaction, error)

	Exists(ctx context.Context, id int64) (bool, error)

	// Update returns ErrTransactionNotFound or ErrInvalidReference.
	Update(ctx context.Context, tx *domain.Transaction) error

	// Delete returns ErrTransactionNotFound if the transaction does not exist.
	Delete(ctx context.Context, id int64) error
}
