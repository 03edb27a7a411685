package service

import (
	"strconv"
	"strings"
	"time"

	"github.com/phrazzld/asset-registry/internal/domain"
)

// Date layouts used in projections.
const (
	DateLayout     = "2006-01-02"
	DateTimeLayout = time.RFC3339
)

// UserRequest carries the fields of a user create or full-replace update.
type UserRequest struct {
	Name     string `json:"name" validate:"notblank"`
	Email    string `json:"email" validate:"notblank,email"`
	Password string `json:"password" validate:"notblank"`
	Role     string `json:"role" validate:"notblank"`
}

// normalized trims everything except the password.
func (r UserRequest) normalized() UserRequest {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.TrimSpace(r.Email)
	r.Role = strings.TrimSpace(r.Role)
	return r
}

// UserResponse is the user projection. The password digest is never included.
type UserResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

func newUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:    formatID(u.ID),
		Name:  u.Name,
		Email: u.Email,
		Role:  string(u.Role),
	}
}

// CategoryRequest carries the fields of a category create or update.
type CategoryRequest struct {
	Name        string `json:"name" validate:"notblank"`
	Description string `json:"description" validate:"notblank"`
}

// CategoryResponse is the category projection.
type CategoryResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

func newCategoryResponse(c *domain.Category) CategoryResponse {
	return CategoryResponse{
		ID:          formatID(c.ID),
		Name:        c.Name,
		Description: c.Description,
	}
}

// AssetRequest carries asset fields. On create every field is required;
// on update blank fields are left untouched.
type AssetRequest struct {
	Name       string `json:"name" validate:"notblank"`
	Type       string `json:"type" validate:"notblank"`
	Value      string `json:"value" validate:"notblank"`
	OwnerID    string `json:"ownerId" validate:"notblank"`
	CategoryID string `json:"categoryId" validate:"notblank"`
}

// AssetResponse is the asset projection with owner and category names embedded.
type AssetResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Type         string `json:"type"`
	Value        string `json:"value"`
	PurchaseDate string `json:"purchaseDate"`
	OwnerID      string `json:"ownerId"`
	OwnerName    string `json:"ownerName"`
	CategoryID   string `json:"categoryId"`
	CategoryName string `json:"categoryName"`
}

func newAssetResponse(a *domain.Asset, ownerName, categoryName string) AssetResponse {
	return AssetResponse{
		ID:           formatID(a.ID),
		Name:         a.Name,
		Type:         a.Type,
		Value:        a.Value.String(),
		PurchaseDate: a.PurchaseDate.Format(DateLayout),
		OwnerID:      formatID(a.OwnerID),
		OwnerName:    ownerName,
		CategoryID:   formatID(a.CategoryID),
		CategoryName: categoryName,
	}
}

// TransactionRequest carries transaction fields. On create every field is
// required; on update blank fields are left untouched.
type TransactionRequest struct {
	AssetID         string `json:"assetId" validate:"notblank"`
	TransactionType string `json:"transactionType" validate:"notblank"`
	Amount          string `json:"amount" validate:"notblank"`
}

// TransactionResponse is the transaction projection with the asset name embedded.
type TransactionResponse struct {
	ID              string `json:"id"`
	AssetID         string `json:"assetId"`
	AssetName       string `json:"assetName"`
	TransactionType string `json:"transactionType"`
	Amount          string `json:"amount"`
	TransactionDate string `json:"transactionDate"`
}

func newTransactionResponse(t *domain.Transaction, assetName string) TransactionResponse {
	return TransactionResponse{
		ID:              formatID(t.ID),
		AssetID:         formatID(t.AssetID),
		AssetName:       assetName,
		TransactionType: string(t.Type),
		Amount:          t.Amount.String(),
		TransactionDate: t.TransactionDate.UTC().Format(DateTimeLayout),
	}
}

func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}
