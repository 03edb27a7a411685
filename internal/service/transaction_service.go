package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/phrazzld/asset-registry/internal/domain"
	"github.com/phrazzld/asset-registry/internal/store"
)

// TransactionService owns the transaction lifecycle. Responses embed the
// name of the referenced asset.
type TransactionService interface {
	// CreateTransaction requires every field, resolves the asset and stamps
	// the current time as the transaction date.
	CreateTransaction(ctx context.Context, req TransactionRequest) (*TransactionResponse, error)

	ListTransactions(ctx context.Context) ([]TransactionResponse, error)

	GetTransaction(ctx context.Context, id int64) (*TransactionResponse, error)

	// UpdateTransaction applies the non-blank fields of req and always
	// refreshes the transaction date. A bad asset id is handled by
	// Options.TransactionReferences; a bad type or amount fails the update.
	UpdateTransaction(ctx context.Context, id int64, req TransactionRequest) (*TransactionResponse, error)

	DeleteTransaction(ctx context.Context, id int64) error
}

// TransactionServiceImpl implements the TransactionService interface
type TransactionServiceImpl struct {
	transactions store.TransactionStore
	assets       store.AssetStore
	opts         Options
	logger       *slog.Logger
}

var _ TransactionService = (*TransactionServiceImpl)(nil)

// NewTransactionService creates a new TransactionService
func NewTransactionService(
	transactions store.TransactionStore,
	assets store.AssetStore,
	opts Options,
	logger *slog.Logger,
) TransactionService {
	return &TransactionServiceImpl{
		transactions: transactions,
		assets:       assets,
		opts:         opts.withDefaults(),
		logger:       logger.With("component", "transaction_service"),
	}
}

// CreateTransaction implements TransactionService.
func (s *TransactionServiceImpl) CreateTransaction(
	ctx context.Context,
	req TransactionRequest,
) (*TransactionResponse, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	assetID, err := domain.ParseID("assetId", req.AssetID)
	if err != nil {
		return nil, err
	}
	txType, err := domain.ParseTransactionType(req.TransactionType)
	if err != nil {
		return nil, err
	}
	amount, err := domain.ParseAmount("amount", req.Amount)
	if err != nil {
		return nil, err
	}

	asset, err := s.assets.GetByID(ctx, assetID)
	if err != nil {
		return nil, s.fail("create", 0, err, on(store.ErrAssetNotFound, domain.NewNotFoundError("asset", assetID)))
	}

	tx := &domain.Transaction{
		AssetID:         assetID,
		Type:            txType,
		Amount:          amount,
		TransactionDate: s.opts.Clock.Now().UTC(),
	}
	if err := s.transactions.Create(ctx, tx); err != nil {
		return nil, s.fail("create", 0, err,
			on(store.ErrInvalidReference, domain.NewNotFoundError("asset", assetID)))
	}

	s.logger.Info("transaction created",
		"transaction_id", tx.ID,
		"asset_id", tx.AssetID,
		"transaction_type", tx.Type)

	resp := newTransactionResponse(tx, asset.Name)
	return &resp, nil
}

// ListTransactions implements TransactionService.
func (s *TransactionServiceImpl) ListTransactions(ctx context.Context) ([]TransactionResponse, error) {
	txs, err := s.transactions.List(ctx)
	if err != nil {
		return nil, s.fail("list", 0, err)
	}
	if len(txs) == 0 && s.opts.EmptyListIsError {
		return nil, domain.NewNotFoundError("transaction", 0)
	}

	assetNames := map[int64]string{}
	out := make([]TransactionResponse, 0, len(txs))
	for _, tx := range txs {
		name, ok := assetNames[tx.AssetID]
		if !ok {
			asset, err := s.assets.GetByID(ctx, tx.AssetID)
			if err != nil {
				return nil, s.fail("list", tx.ID, err,
					on(store.ErrAssetNotFound, domain.NewNotFoundError("asset", tx.AssetID)))
			}
			name = asset.Name
			assetNames[tx.AssetID] = name
		}
		out = append(out, newTransactionResponse(tx, name))
	}
	return out, nil
}

// GetTransaction implements TransactionService.
func (s *TransactionServiceImpl) GetTransaction(ctx context.Context, id int64) (*TransactionResponse, error) {
	tx, err := s.transactions.GetByID(ctx, id)
	if err != nil {
		return nil, s.fail("get", id, err)
	}
	return s.project(ctx, "get", tx)
}

// UpdateTransaction implements TransactionService.
func (s *TransactionServiceImpl) UpdateTransaction(
	ctx context.Context,
	id int64,
	req TransactionRequest,
) (*TransactionResponse, error) {
	tx, err := s.transactions.GetByID(ctx, id)
	if err != nil {
		return nil, s.fail("update", id, err)
	}

	if !blank(req.AssetID) {
		assetID, ok, err := resolveReference(ctx, s.opts.TransactionReferences, s.logger,
			"assetId", "asset", req.AssetID, s.assets.Exists)
		if err != nil {
			return nil, s.fail("update", id, err)
		}
		if ok {
			tx.AssetID = assetID
		}
	}
	if !blank(req.TransactionType) {
		txType, err := domain.ParseTransactionType(req.TransactionType)
		if err != nil {
			return nil, err
		}
		tx.Type = txType
	}
	if !blank(req.Amount) {
		amount, err := domain.ParseAmount("amount", req.Amount)
		if err != nil {
			return nil, err
		}
		tx.Amount = amount
	}
	tx.TransactionDate = s.opts.Clock.Now().UTC()

	if err := s.transactions.Update(ctx, tx); err != nil {
		return nil, s.fail("update", id, err,
			on(store.ErrInvalidReference, domain.NewNotFoundError("asset", tx.AssetID)))
	}

	s.logger.Info("transaction updated", "transaction_id", id)
	return s.project(ctx, "update", tx)
}

// DeleteTransaction implements TransactionService.
func (s *TransactionServiceImpl) DeleteTransaction(ctx context.Context, id int64) error {
	exists, err := s.transactions.Exists(ctx, id)
	if err != nil {
		return s.fail("delete", id, err)
	}
	if !exists {
		return domain.NewNotFoundError("transaction", id)
	}

	if err := s.transactions.Delete(ctx, id); err != nil {
		return s.fail("delete", id, err)
	}

	s.logger.Info("transaction deleted", "transaction_id", id)
	return nil
}

func (s *TransactionServiceImpl) project(
	ctx context.Context,
	op string,
	tx *domain.Transaction,
) (*TransactionResponse, error) {
	asset, err := s.assets.GetByID(ctx, tx.AssetID)
	if err != nil {
		return nil, s.fail(op, tx.ID, err, on(store.ErrAssetNotFound, domain.NewNotFoundError("asset", tx.AssetID)))
	}
	resp := newTransactionResponse(tx, asset.Name)
	return &resp, nil
}

func (s *TransactionServiceImpl) fail(op string, id int64, err error, cases ...errCase) error {
	cases = append(cases, on(store.ErrNotFound, domain.NewNotFoundError("transaction", id)))
	out := translate("transaction", op, err, cases...)
	var svcErr *ServiceError
	if errors.As(out, &svcErr) {
		s.logger.Error("transaction store operation failed", "error", err, "op", op, "transaction_id", id)
	}
	return out
}
