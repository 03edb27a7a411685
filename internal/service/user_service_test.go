package service_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/phrazzld/asset-registry/internal/domain"
	"github.com/phrazzld/asset-registry/internal/mocks"
	"github.com/phrazzld/asset-registry/internal/platform/logger"
	"github.com/phrazzld/asset-registry/internal/service"
	"github.com/phrazzld/asset-registry/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateUser(t *testing.T) {
	ctx := context.Background()

	t.Run("success omits digest and rejects duplicate email", func(t *testing.T) {
		f := newFixture(t, service.Options{})

		u, err := f.users.CreateUser(ctx, service.UserRequest{
			Name: "A", Email: "a@x.com", Password: "p", Role: "USER",
		})
		require.NoError(t, err)
		assert.Equal(t, "1", u.ID)
		assert.Equal(t, "USER", u.Role)

		body, err := json.Marshal(u)
		require.NoError(t, err)
		assert.NotContains(t, string(body), "hashed:p")
		assert.NotContains(t, string(body), "password")

		stored, err := f.store.Users().GetByID(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, "hashed:p", stored.PasswordDigest)

		_, err = f.users.CreateUser(ctx, service.UserRequest{
			Name: "B", Email: "a@x.com", Password: "q", Role: "USER",
		})
		var conflict *domain.ConflictError
		require.True(t, errors.As(err, &conflict))
		assert.Equal(t, "email", conflict.Field)
	})

	t.Run("email uniqueness ignores case", func(t *testing.T) {
		f := newFixture(t, service.Options{})
		f.createUser(t, "A", "a@x.com")

		_, err := f.users.CreateUser(ctx, service.UserRequest{
			Name: "B", Email: "A@X.COM", Password: "q", Role: "USER",
		})
		assert.True(t, domain.IsConflict(err))
	})

	t.Run("taken email wins over an unknown role", func(t *testing.T) {
		f := newFixture(t, service.Options{})
		f.createUser(t, "A", "a@x.com")

		_, err := f.users.CreateUser(ctx, service.UserRequest{
			Name: "B", Email: "a@x.com", Password: "q", Role: "ROOT",
		})
		assert.True(t, domain.IsConflict(err), "got %v", err)
		assert.Equal(t, 1, f.hasher.HashCallCount)

		f.createUser(t, "C", "c@x.com")
		_, err = f.users.UpdateUser(ctx, 2, service.UserRequest{
			Name: "C", Email: "a@x.com", Password: "q", Role: "ROOT",
		})
		assert.True(t, domain.IsConflict(err), "got %v", err)
	})

	t.Run("role is normalized case-insensitively", func(t *testing.T) {
		f := newFixture(t, service.Options{})
		u, err := f.users.CreateUser(ctx, service.UserRequest{
			Name: "A", Email: "a@x.com", Password: "p", Role: " manager ",
		})
		require.NoError(t, err)
		assert.Equal(t, string(domain.RoleManager), u.Role)
	})

	tests := []struct {
		name  string
		req   service.UserRequest
		field string
	}{
		{"missing name", service.UserRequest{Email: "a@x.com", Password: "p", Role: "USER"}, "name"},
		{"blank email", service.UserRequest{Name: "A", Email: "  ", Password: "p", Role: "USER"}, "email"},
		{"malformed email", service.UserRequest{Name: "A", Email: "nope", Password: "p", Role: "USER"}, "email"},
		{"blank password", service.UserRequest{Name: "A", Email: "a@x.com", Password: " ", Role: "USER"}, "password"},
		{"missing role", service.UserRequest{Name: "A", Email: "a@x.com", Password: "p"}, "role"},
		{"unknown role", service.UserRequest{Name: "A", Email: "a@x.com", Password: "p", Role: "ROOT"}, "role"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t, service.Options{})

			_, err := f.users.CreateUser(ctx, tc.req)
			var verr *domain.ValidationError
			require.True(t, errors.As(err, &verr), "got %v", err)
			assert.Equal(t, tc.field, verr.Field)
			assert.Equal(t, 0, f.hasher.HashCallCount)

			users, err := f.users.ListUsers(ctx)
			require.NoError(t, err)
			assert.Empty(t, users)
		})
	}

	t.Run("hash failure is an internal error", func(t *testing.T) {
		f := newFixture(t, service.Options{})
		f.hasher.Fail = true

		_, err := f.users.CreateUser(ctx, service.UserRequest{
			Name: "A", Email: "a@x.com", Password: "p", Role: "USER",
		})
		var serviceErr *service.ServiceError
		require.True(t, errors.As(err, &serviceErr))
		assert.ErrorIs(t, err, mocks.ErrMockHash)
	})
}

func TestListUsers(t *testing.T) {
	ctx := context.Background()

	t.Run("empty list is a valid result by default", func(t *testing.T) {
		f := newFixture(t, service.Options{})
		users, err := f.users.ListUsers(ctx)
		require.NoError(t, err)
		assert.NotNil(t, users)
		assert.Empty(t, users)
	})

	t.Run("empty list is an error when configured", func(t *testing.T) {
		f := newFixture(t, service.Options{EmptyListIsError: true})
		_, err := f.users.ListUsers(ctx)
		assert.True(t, domain.IsNotFound(err))
	})

	t.Run("ordered by id", func(t *testing.T) {
		f := newFixture(t, service.Options{})
		f.createUser(t, "A", "a@x.com")
		f.createUser(t, "B", "b@x.com")

		users, err := f.users.ListUsers(ctx)
		require.NoError(t, err)
		require.Len(t, users, 2)
		assert.Equal(t, "A", users[0].Name)
		assert.Equal(t, "B", users[1].Name)
	})
}

func TestGetUser(t *testing.T) {
	f := newFixture(t, service.Options{})
	created := f.createUser(t, "A", "a@x.com")

	u, err := f.users.GetUser(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, *created, *u)

	_, err = f.users.GetUser(context.Background(), 42)
	var nf *domain.NotFoundError
	require.True(t, errors.As(err, &nf))
	assert.Equal(t, "user", nf.Entity)
	assert.Equal(t, int64(42), nf.ID)
}

func TestUpdateUser(t *testing.T) {
	ctx := context.Background()

	t.Run("full replace re-hashes password", func(t *testing.T) {
		f := newFixture(t, service.Options{})
		f.createUser(t, "A", "a@x.com")

		u, err := f.users.UpdateUser(ctx, 1, service.UserRequest{
			Name: "Alice", Email: "alice@x.com", Password: "new", Role: "admin",
		})
		require.NoError(t, err)
		assert.Equal(t, "Alice", u.Name)
		assert.Equal(t, "alice@x.com", u.Email)
		assert.Equal(t, "ADMIN", u.Role)

		stored, err := f.store.Users().GetByID(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, "hashed:new", stored.PasswordDigest)
		assert.Equal(t, 2, f.hasher.HashCallCount)
	})

	t.Run("keeping own email is not a conflict", func(t *testing.T) {
		f := newFixture(t, service.Options{})
		f.createUser(t, "A", "a@x.com")

		_, err := f.users.UpdateUser(ctx, 1, service.UserRequest{
			Name: "A2", Email: "a@x.com", Password: "p", Role: "USER",
		})
		assert.NoError(t, err)
	})

	t.Run("taking another user's email conflicts", func(t *testing.T) {
		f := newFixture(t, service.Options{})
		f.createUser(t, "A", "a@x.com")
		f.createUser(t, "B", "b@x.com")

		_, err := f.users.UpdateUser(ctx, 2, service.UserRequest{
			Name: "B", Email: "a@x.com", Password: "p", Role: "USER",
		})
		assert.True(t, domain.IsConflict(err))

		b, err := f.users.GetUser(ctx, 2)
		require.NoError(t, err)
		assert.Equal(t, "b@x.com", b.Email)
	})

	t.Run("every field is required", func(t *testing.T) {
		f := newFixture(t, service.Options{})
		f.createUser(t, "A", "a@x.com")

		_, err := f.users.UpdateUser(ctx, 1, service.UserRequest{Name: "A", Email: "a@x.com", Role: "USER"})
		assert.True(t, domain.IsValidation(err))
	})

	t.Run("missing user", func(t *testing.T) {
		f := newFixture(t, service.Options{})
		_, err := f.users.UpdateUser(ctx, 5, service.UserRequest{
			Name: "A", Email: "a@x.com", Password: "p", Role: "USER",
		})
		assert.True(t, domain.IsNotFound(err))
	})
}

func TestDeleteUser(t *testing.T) {
	ctx := context.Background()

	t.Run("missing user", func(t *testing.T) {
		f := newFixture(t, service.Options{})
		f.createUser(t, "A", "a@x.com")

		err := f.users.DeleteUser(ctx, 99)
		assert.True(t, domain.IsNotFound(err))

		users, err := f.users.ListUsers(ctx)
		require.NoError(t, err)
		assert.Len(t, users, 1)
	})

	t.Run("owner of an asset cannot be deleted", func(t *testing.T) {
		f := newFixture(t, service.Options{})
		f.seed(t)

		err := f.users.DeleteUser(ctx, 1)
		assert.True(t, domain.IsConflict(err))
	})

	t.Run("success", func(t *testing.T) {
		f := newFixture(t, service.Options{})
		f.createUser(t, "A", "a@x.com")

		require.NoError(t, f.users.DeleteUser(ctx, 1))
		_, err := f.users.GetUser(ctx, 1)
		assert.True(t, domain.IsNotFound(err))
	})
}

func TestUserServiceStoreFailures(t *testing.T) {
	ctx := context.Background()
	l, _ := logger.NewTestLogger()
	storeErr := errors.New("connection reset")

	t.Run("email lookup failure", func(t *testing.T) {
		users := new(mocks.TestifyMockUserStore)
		users.On("GetByEmail", mock.Anything, "a@x.com").Return(nil, storeErr)
		svc := service.NewUserService(users, &mocks.MockPasswordHasher{}, service.Options{}, l)

		_, err := svc.CreateUser(ctx, service.UserRequest{
			Name: "A", Email: "a@x.com", Password: "p", Role: "USER",
		})
		var serviceErr *service.ServiceError
		require.True(t, errors.As(err, &serviceErr))
		assert.ErrorIs(t, err, storeErr)
		users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("race on insert surfaces as conflict", func(t *testing.T) {
		users := new(mocks.TestifyMockUserStore)
		users.On("GetByEmail", mock.Anything, "a@x.com").Return(nil, store.ErrUserNotFound)
		users.On("Create", mock.Anything, mock.AnythingOfType("*domain.User")).Return(store.ErrEmailExists)
		svc := service.NewUserService(users, &mocks.MockPasswordHasher{}, service.Options{}, l)

		_, err := svc.CreateUser(ctx, service.UserRequest{
			Name: "A", Email: "a@x.com", Password: "p", Role: "USER",
		})
		assert.True(t, domain.IsConflict(err))
		users.AssertExpectations(t)
	})

	t.Run("list failure", func(t *testing.T) {
		users := new(mocks.TestifyMockUserStore)
		users.On("List", mock.Anything).Return(nil, storeErr)
		svc := service.NewUserService(users, &mocks.MockPasswordHasher{}, service.Options{}, l)

		_, err := svc.ListUsers(ctx)
		var serviceErr *service.ServiceError
		require.True(t, errors.As(err, &serviceErr))
		assert.Equal(t, "list", serviceErr.Op)
	})

	t.Run("exists failure on delete", func(t *testing.T) {
		users := new(mocks.TestifyMockUserStore)
		users.On("Exists", mock.Anything, int64(3)).Return(false, storeErr)
		svc := service.NewUserService(users, &mocks.MockPasswordHasher{}, service.Options{}, l)

		err := svc.DeleteUser(ctx, 3)
		assert.ErrorIs(t, err, storeErr)
		users.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}
