package domain

import (
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Asset is a tracked item of value owned by a user and filed under a category.
type Asset struct {
	ID           int64           `json:"id"`
	Name         string          `json:"name"`
	Type         string          `json:"type"`
	Value        decimal.Decimal `json:"value"`
	PurchaseDate time.Time       `json:"purchase_date"`
	OwnerID      int64           `json:"owner_id"`
	CategoryID   int64           `json:"category_id"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// DedupKey is the (name, type, value) triple that identifies an asset.
type DedupKey struct {
	Name  string
	Type  string
	Value decimal.Decimal
}

// Key returns the asset's dedup key with name and type trimmed.
func (a *Asset) Key() DedupKey {
	return DedupKey{
		Name:  strings.TrimSpace(a.Name),
		Type:  strings.TrimSpace(a.Type),
		Value: a.Value,
	}
}

// Matches reports whether two keys identify the same asset.
// Values compare numerically, so 10.5 and 10.50 match.
func (k DedupKey) Matches(other DedupKey) bool {
	return k.Name == other.Name && k.Type == other.Type && k.Value.Equal(other.Value)
}

// Validate checks required fields and value sign.
func (a *Asset) Validate() error {
	if strings.TrimSpace(a.Name) == "" {
		return NewValidationError("name", Message(MsgRequired), nil)
	}
	if strings.TrimSpace(a.Type) == "" {
		return NewValidationError("type", Message(MsgRequired), nil)
	}
	if a.Value.IsNegative() {
		return NewValidationError("value", Message(MsgNegativeValue), ErrInvalidNumber)
	}
	if a.OwnerID <= 0 {
		return NewValidationError("ownerId", Message(MsgInvalidID), ErrInvalidID)
	}
	if a.CategoryID <= 0 {
		return NewValidationError("categoryId", Message(MsgInvalidID), ErrInvalidID)
	}
	return nil
}

// Bounds on parsed amounts. Exponent notation would otherwise let a short
// input expand to millions of digits when formatted.
const (
	MaxAmountIntegerDigits = 64
	MaxAmountScale         = 64
)

// ParseAmount parses a decimal string for field. Values with more than
// MaxAmountIntegerDigits integer digits or MaxAmountScale fractional digits
// are rejected.
func ParseAmount(field, s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero, NewValidationError(field, Message(MsgInvalidNumber), ErrInvalidNumber)
	}
	exp := int64(d.Exponent())
	if exp < -MaxAmountScale || int64(d.NumDigits())+exp > MaxAmountIntegerDigits {
		return decimal.Zero, NewValidationError(field, Message(MsgAmountOutOfRange), ErrInvalidNumber)
	}
	return d, nil
}

// ParseID parses a positive integer identifier for field.
func ParseID(field, s string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil || id <= 0 {
		return 0, NewValidationError(field, Message(MsgInvalidID), ErrInvalidID)
	}
	return id, nil
}

// DateOnly truncates t to midnight UTC.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
