package postgres

import (
	"context"
	"log/slog"

	"github.com/phrazzld/asset-registry/internal/domain"
	"github.com/phrazzld/asset-registry/internal/platform/logger"
	"github.com/phrazzld/asset-registry/internal/store"
)

// PostgresTransactionStore implements store.TransactionStore on PostgreSQL.
type PostgresTransactionStore struct {
	db     DBTX
	logger *slog.Logger
}

// NewPostgresTransactionStore creates a transaction store over db.
func NewPostgresTransactionStore(db DBTX, logger *slog.Logger) *PostgresTransactionStore {
	if db == nil {
		// ALLOW-PANIC
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &PostgresTransactionStore{
		db:     db,
		logger: logger.With(slog.String("component", "transaction_store")),
	}
}

var _ store.TransactionStore = (*PostgresTransactionStore)(nil)

const transactionColumns = `id, asset_id, transaction_type, amount, transaction_date, created_at, updated_at`

func scanTransaction(row interface{ Scan(dest ...any) error }) (*domain.Transaction, error) {
	var t domain.Transaction
	var txType string
	err := row.Scan(&t.ID, &t.AssetID, &txType, &t.Amount, &t.TransactionDate, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, err
	}
	t.Type = domain.TransactionType(txType)
	t.TransactionDate = t.TransactionDate.UTC()
	return &t, nil
}

// Create implements store.TransactionStore.Create
func (s *PostgresTransactionStore) Create(ctx context.Context, tx *domain.Transaction) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := tx.Validate(); err != nil {
		return err
	}

	err := s.db.QueryRowContext(ctx, `
		INSERT INTO transactions (asset_id, transaction_type, amount, transaction_date)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`, tx.AssetID, string(tx.Type), tx.Amount, tx.TransactionDate).
		Scan(&tx.ID, &tx.CreatedAt, &tx.UpdatedAt)
	if err != nil {
		if !IsForeignKeyViolation(err) {
			log.Error("failed to create transaction", slog.String("error", err.Error()))
		}
		return WrapError("transaction", "create", MapError(err))
	}

	log.Debug("transaction created",
		slog.Int64("transaction_id", tx.ID),
		slog.Int64("asset_id", tx.AssetID))
	return nil
}

// List implements store.TransactionStore.List
func (s *PostgresTransactionStore) List(ctx context.Context) ([]*domain.Transaction, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+transactionColumns+` FROM transactions ORDER BY id`)
	if err != nil {
		return nil, WrapError("transaction", "list", MapError(err))
	}
	defer func() { _ = rows.Close() }()

	txs := []*domain.Transaction{}
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, WrapError("transaction", "list", MapError(err))
		}
		txs = append(txs, t)
	}
	if err := rows.Err(); err != nil {
		return nil, WrapError("transaction", "list", MapError(err))
	}
	return txs, nil
}

// GetByID implements store.TransactionStore.GetByID
func (s *PostgresTransactionStore) GetByID(ctx context.Context, id int64) (*domain.Transaction, error) {
	t, err := scanTransaction(s.db.QueryRowContext(ctx,
		`SELECT `+transactionColumns+` FROM transactions WHERE id = $1`, id))
	return t, WrapError("transaction", "get", notFoundAs(err, store.ErrTransactionNotFound))
}

// Exists implements store.TransactionStore.Exists
func (s *PostgresTransactionStore) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := s.db.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM transactions WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, WrapError("transaction", "exists", MapError(err))
	}
	return exists, nil
}

// Update implements store.TransactionStore.Update
func (s *PostgresTransactionStore) Update(ctx context.Context, tx *domain.Transaction) error {
	if err := tx.Validate(); err != nil {
		return err
	}

	err := s.db.QueryRowContext(ctx, `
		UPDATE transactions
		SET asset_id = $1, transaction_type = $2, amount = $3, transaction_date = $4, updated_at = NOW()
		WHERE id = $5
		RETURNING created_at, updated_at
	`, tx.AssetID, string(tx.Type), tx.Amount, tx.TransactionDate, tx.ID).
		Scan(&tx.CreatedAt, &tx.UpdatedAt)
	return WrapError("transaction", "update", notFoundAs(err, store.ErrTransactionNotFound))
}

// Delete implements store.TransactionStore.Delete
func (s *PostgresTransactionStore) Delete(ctx context.Context, id int64) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM transactions WHERE id = $1`, id)
	if err != nil {
		return WrapError("transaction", "delete", MapDeleteError(err))
	}
	return WrapError("transaction", "delete", CheckRowsAffected(result, store.ErrTransactionNotFound))
}
