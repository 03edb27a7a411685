package api_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/juju/clock/testclock"
	"github.com/phrazzld/asset-registry/internal/api"
	"github.com/phrazzld/asset-registry/internal/api/shared"
	"github.com/phrazzld/asset-registry/internal/config"
	"github.com/phrazzld/asset-registry/internal/domain"
	"github.com/phrazzld/asset-registry/internal/mocks"
	"github.com/phrazzld/asset-registry/internal/platform/logger"
	"github.com/phrazzld/asset-registry/internal/service/auth"
	"github.com/phrazzld/asset-registry/internal/store/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newLoginRouter(t *testing.T) (http.Handler, auth.JWTService) {
	t.Helper()
	l, _ := logger.NewTestLogger()
	mem := memory.New()
	hasher := &mocks.MockPasswordHasher{}

	digest, err := hasher.Hash("correct horse")
	require.NoError(t, err)
	require.NoError(t, mem.Users().Create(context.Background(), &domain.User{
		Name: "Ada", Email: "ada@example.com", PasswordDigest: digest, Role: domain.RoleManager,
	}))

	jwtSvc, err := auth.NewJWTService(config.AuthConfig{
		JWTSecret:            "login-test-secret-that-is-long-enough",
		TokenLifetimeMinutes: 15,
	}, testclock.NewClock(time.Now()))
	require.NoError(t, err)

	r := chi.NewRouter()
	r.Post("/api/auth/login", api.NewAuthHandler(mem.Users(), jwtSvc, hasher, l).Login)
	return r, jwtSvc
}

func TestLogin(t *testing.T) {
	h, jwtSvc := newLoginRouter(t)

	t.Run("valid credentials", func(t *testing.T) {
		w := do(t, h, http.MethodPost, "/api/auth/login", map[string]string{
			"email": "ADA@example.com", "password": "correct horse",
		})
		require.Equal(t, http.StatusOK, w.Code)

		resp := decode[api.AuthResponse](t, w)
		assert.Equal(t, "1", resp.UserID)
		assert.Equal(t, "MANAGER", resp.Role)

		claims, err := jwtSvc.ValidateToken(context.Background(), resp.Token)
		require.NoError(t, err)
		assert.Equal(t, int64(1), claims.UserID)
		assert.Equal(t, "MANAGER", claims.Role)
	})

	for name, body := range map[string]map[string]string{
		"wrong password": {"email": "ada@example.com", "password": "battery staple"},
		"unknown email":  {"email": "grace@example.com", "password": "correct horse"},
	} {
		t.Run(name, func(t *testing.T) {
			w := do(t, h, http.MethodPost, "/api/auth/login", body)
			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.Equal(t, "Invalid email or password", decode[shared.ErrorResponse](t, w).Error)
		})
	}

	t.Run("missing password", func(t *testing.T) {
		w := do(t, h, http.MethodPost, "/api/auth/login", map[string]string{"email": "ada@example.com"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestLoginStoreFailure(t *testing.T) {
	l, _ := logger.NewTestLogger()
	users := new(mocks.TestifyMockUserStore)
	users.On("GetByEmail", mock.Anything, "ada@example.com").
		Return(nil, context.DeadlineExceeded)

	r := chi.NewRouter()
	r.Post("/login", api.NewAuthHandler(users, nil, &mocks.MockPasswordHasher{}, l).Login)

	w := do(t, r, http.MethodPost, "/login", map[string]string{
		"email": "ada@example.com", "password": "x",
	})
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "An unexpected error occurred", decode[shared.ErrorResponse](t, w).Error)
	users.AssertExpectations(t)
}
