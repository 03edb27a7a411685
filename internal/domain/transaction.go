package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType classifies a financial event applied to an asset.
type TransactionType string

// Recognized transaction types.
const (
	TransactionAcquisition TransactionType = "ACQUISITION"
	TransactionDisposal    TransactionType = "DISPOSAL"
	TransactionAdjustment  TransactionType = "ADJUSTMENT"
)

// TransactionTypes lists every recognized transaction type.
var TransactionTypes = []TransactionType{
	TransactionAcquisition,
	TransactionDisposal,
	TransactionAdjustment,
}

// ParseTransactionType normalizes s (trimmed, case-insensitive) to a recognized type.
// It returns a *ValidationError when s matches no type.
func ParseTransactionType(s string) (TransactionType, error) {
	normalized := TransactionType(strings.ToUpper(strings.TrimSpace(s)))
	for _, t := range TransactionTypes {
		if t == normalized {
			return t, nil
		}
	}
	return "", NewValidationError("transactionType", Message(MsgInvalidTxType), nil)
}

// Transaction is a financial event (acquisition, disposal, adjustment) on an asset.
type Transaction struct {
	ID              int64           `json:"id"`
	AssetID         int64           `json:"asset_id"`
	Type            TransactionType `json:"transaction_type"`
	Amount          decimal.Decimal `json:"amount"`
	TransactionDate time.Time       `json:"transaction_date"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// Validate checks the asset reference and type.
func (t *Transaction) Validate() error {
	if t.AssetID <= 0 {
		return NewValidationError("assetId", Message(MsgInvalidID), ErrInvalidID)
	}
	if _, err := ParseTransactionType(string(t.Type)); err != nil {
		return err
	}
	return nil
}
