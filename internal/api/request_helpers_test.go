package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/phrazzld/asset-registry/internal/api/shared"
	"github.com/phrazzld/asset-registry/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestLogger(t *testing.T) {
	t.Run("anonymous request", func(t *testing.T) {
		base, buf := logger.NewTestLogger()
		r := httptest.NewRequest(http.MethodGet, "/api/assets", nil)

		requestLogger(r, base).Info("listed")

		entries, err := buf.Entries()
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.NotContains(t, entries[0], "user_id")
		assert.NotContains(t, entries[0], "user_role")
	})

	t.Run("authenticated request carries caller", func(t *testing.T) {
		base, buf := logger.NewTestLogger()
		ctx := context.WithValue(context.Background(), shared.UserIDContextKey, int64(7))
		ctx = context.WithValue(ctx, shared.UserRoleContextKey, "MANAGER")
		r := httptest.NewRequest(http.MethodGet, "/api/assets", nil).WithContext(ctx)

		requestLogger(r, base).Info("listed")

		entries, err := buf.Entries()
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, float64(7), entries[0]["user_id"])
		assert.Equal(t, "MANAGER", entries[0]["user_role"])
	})

	t.Run("context logger is preferred", func(t *testing.T) {
		base, baseBuf := logger.NewTestLogger()
		scoped, scopedBuf := logger.NewTestLogger()
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r = r.WithContext(logger.WithLogger(r.Context(), scoped))

		requestLogger(r, base).Info("hello")

		assert.Empty(t, baseBuf.String())
		assert.Contains(t, scopedBuf.String(), "hello")
	})
}
