package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsNotFoundError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{name: "nil error", err: nil, expected: false},
		{name: "generic error", err: errors.New("some error"), expected: false},
		{name: "ErrNotFound", err: ErrNotFound, expected: true},
		{name: "ErrUserNotFound", err: ErrUserNotFound, expected: true},
		{name: "ErrCategoryNotFound", err: ErrCategoryNotFound, expected: true},
		{name: "ErrAssetNotFound", err: ErrAssetNotFound, expected: true},
		{name: "ErrTransactionNotFound", err: ErrTransactionNotFound, expected: true},
		{
			name:     "wrapped ErrAssetNotFound",
			err:      fmt.Errorf("failed to find asset: %w", ErrAssetNotFound),
			expected: true,
		},
		{name: "ErrEmailExists", err: ErrEmailExists, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsNotFoundError(tt.err))
		})
	}
}

func TestIsDuplicateError(t *testing.T) {
	assert.True(t, IsDuplicateError(ErrEmailExists))
	assert.True(t, IsDuplicateError(ErrCategoryNameExists))
	assert.True(t, IsDuplicateError(fmt.Errorf("wrapped: %w", ErrAssetExists)))
	assert.False(t, IsDuplicateError(ErrInvalidReference))
	assert.False(t, IsDuplicateError(nil))
}

func TestStoreError(t *testing.T) {
	cause := errors.New("connection reset")
	err := NewStoreError("asset", "create", "insert failed", cause)

	assert.Equal(t, "create operation on asset failed: insert failed: connection reset", err.Error())
	assert.True(t, errors.Is(err, cause))

	bare := NewStoreError("user", "delete", "no rows", nil)
	assert.Equal(t, "delete operation on user failed: no rows", bare.Error())
}
