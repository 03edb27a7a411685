package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/phrazzld/asset-registry/internal/domain"
	"github.com/phrazzld/asset-registry/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createAcquisition(t *testing.T, f *fixture) *service.TransactionResponse {
	t.Helper()
	tx, err := f.transactions.CreateTransaction(context.Background(), service.TransactionRequest{
		AssetID: "1", TransactionType: "acquisition", Amount: "999.99",
	})
	require.NoError(t, err)
	return tx
}

func TestCreateTransaction(t *testing.T) {
	ctx := context.Background()

	t.Run("projection embeds asset name and current time", func(t *testing.T) {
		f := newFixture(t, service.Options{})
		f.seed(t)

		tx := createAcquisition(t, f)
		assert.Equal(t, "1", tx.ID)
		assert.Equal(t, "1", tx.AssetID)
		assert.Equal(t, "Laptop", tx.AssetName)
		assert.Equal(t, "ACQUISITION", tx.TransactionType)
		assert.Equal(t, "999.99", tx.Amount)
		assert.Equal(t, t0.Format(time.RFC3339), tx.TransactionDate)
	})

	t.Run("unknown asset", func(t *testing.T) {
		f := newFixture(t, service.Options{})
		_, err := f.transactions.CreateTransaction(ctx, service.TransactionRequest{
			AssetID: "3", TransactionType: "DISPOSAL", Amount: "10",
		})
		var nf *domain.NotFoundError
		require.True(t, errors.As(err, &nf))
		assert.Equal(t, "asset", nf.Entity)
	})

	tests := []struct {
		name  string
		req   service.TransactionRequest
		field string
	}{
		{"missing asset", service.TransactionRequest{TransactionType: "DISPOSAL", Amount: "1"}, "assetId"},
		{"missing type", service.TransactionRequest{AssetID: "1", Amount: "1"}, "transactionType"},
		{"missing amount", service.TransactionRequest{AssetID: "1", TransactionType: "DISPOSAL"}, "amount"},
		{"unknown type", service.TransactionRequest{AssetID: "1", TransactionType: "GIFT", Amount: "1"}, "transactionType"},
		{"bad amount", service.TransactionRequest{AssetID: "1", TransactionType: "DISPOSAL", Amount: "1,5"}, "amount"},
		{"huge exponent amount", service.TransactionRequest{AssetID: "1", TransactionType: "DISPOSAL", Amount: "1e50000000"}, "amount"},
		{"tiny exponent amount", service.TransactionRequest{AssetID: "1", TransactionType: "DISPOSAL", Amount: "1e-50000000"}, "amount"},
		{"bad asset id", service.TransactionRequest{AssetID: "x", TransactionType: "DISPOSAL", Amount: "1"}, "assetId"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t, service.Options{})
			f.seed(t)

			_, err := f.transactions.CreateTransaction(ctx, tc.req)
			var verr *domain.ValidationError
			require.True(t, errors.As(err, &verr), "got %v", err)
			assert.Equal(t, tc.field, verr.Field)
		})
	}
}

func TestUpdateTransaction(t *testing.T) {
	ctx := context.Background()

	t.Run("unresolvable asset is skipped but the rest is applied", func(t *testing.T) {
		f := newFixture(t, service.Options{})
		f.seed(t)
		createAcquisition(t, f)
		f.clock.Advance(time.Hour)

		for i, assetID := range []string{"404", "not-a-number"} {
			tx, err := f.transactions.UpdateTransaction(ctx, 1, service.TransactionRequest{
				AssetID: assetID, Amount: "1200",
			})
			require.NoError(t, err, "case %d", i)
			assert.Equal(t, "1", tx.AssetID)
			assert.Equal(t, "1200", tx.Amount)
			assert.Equal(t, t0.Add(time.Hour).Format(time.RFC3339), tx.TransactionDate)
		}

		stored, err := f.store.Transactions().GetByID(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, int64(1), stored.AssetID)
		assert.True(t, stored.TransactionDate.Equal(t0.Add(time.Hour)))
	})

	t.Run("strict policy fails on unresolvable asset", func(t *testing.T) {
		f := newFixture(t, service.Options{TransactionReferences: service.ReferencesStrict})
		f.seed(t)
		createAcquisition(t, f)

		_, err := f.transactions.UpdateTransaction(ctx, 1, service.TransactionRequest{AssetID: "404", Amount: "5"})
		assert.True(t, domain.IsNotFound(err))

		stored, err := f.store.Transactions().GetByID(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, "999.99", stored.Amount.String())
	})

	t.Run("asset can be moved", func(t *testing.T) {
		f := newFixture(t, service.Options{})
		f.seed(t)
		f.createAsset(t, "Phone", "Mobile", "500", "1", "1")
		createAcquisition(t, f)

		tx, err := f.transactions.UpdateTransaction(ctx, 1, service.TransactionRequest{AssetID: "2"})
		require.NoError(t, err)
		assert.Equal(t, "Phone", tx.AssetName)
	})

	t.Run("empty update still refreshes the date", func(t *testing.T) {
		f := newFixture(t, service.Options{})
		f.seed(t)
		before := createAcquisition(t, f)
		f.clock.Advance(24 * time.Hour)

		after, err := f.transactions.UpdateTransaction(ctx, 1, service.TransactionRequest{})
		require.NoError(t, err)
		assert.NotEqual(t, before.TransactionDate, after.TransactionDate)
		assert.Equal(t, before.Amount, after.Amount)
		assert.Equal(t, before.TransactionType, after.TransactionType)
	})

	t.Run("malformed type or amount fails", func(t *testing.T) {
		f := newFixture(t, service.Options{})
		f.seed(t)
		createAcquisition(t, f)

		_, err := f.transactions.UpdateTransaction(ctx, 1, service.TransactionRequest{TransactionType: "LOAN"})
		assert.True(t, domain.IsValidation(err))
		_, err = f.transactions.UpdateTransaction(ctx, 1, service.TransactionRequest{Amount: "ten"})
		assert.True(t, domain.IsValidation(err))
		_, err = f.transactions.UpdateTransaction(ctx, 1, service.TransactionRequest{Amount: "1e-50000000"})
		assert.True(t, domain.IsValidation(err))
	})

	t.Run("missing transaction", func(t *testing.T) {
		f := newFixture(t, service.Options{})
		_, err := f.transactions.UpdateTransaction(ctx, 8, service.TransactionRequest{Amount: "1"})
		assert.True(t, domain.IsNotFound(err))
	})
}

func TestListAndDeleteTransactions(t *testing.T) {
	ctx := context.Background()

	t.Run("empty list policy", func(t *testing.T) {
		f := newFixture(t, service.Options{})
		list, err := f.transactions.ListTransactions(ctx)
		require.NoError(t, err)
		assert.Empty(t, list)

		strict := newFixture(t, service.Options{EmptyListIsError: true})
		_, err = strict.transactions.ListTransactions(ctx)
		assert.True(t, domain.IsNotFound(err))
	})

	t.Run("list and delete", func(t *testing.T) {
		f := newFixture(t, service.Options{})
		f.seed(t)
		created := createAcquisition(t, f)

		list, err := f.transactions.ListTransactions(ctx)
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, *created, list[0])

		assert.True(t, domain.IsNotFound(f.transactions.DeleteTransaction(ctx, 2)))
		require.NoError(t, f.transactions.DeleteTransaction(ctx, 1))
		_, err = f.transactions.GetTransaction(ctx, 1)
		assert.True(t, domain.IsNotFound(err))
	})
}
