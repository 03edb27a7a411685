package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/juju/clock/testclock"
	"github.com/phrazzld/asset-registry/internal/mocks"
	"github.com/phrazzld/asset-registry/internal/platform/logger"
	"github.com/phrazzld/asset-registry/internal/service"
	"github.com/phrazzld/asset-registry/internal/store/memory"
	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2025, 3, 14, 15, 9, 26, 0, time.UTC)

// fixture wires all four services over one memory store.
type fixture struct {
	store        *memory.Store
	clock        *testclock.Clock
	hasher       *mocks.MockPasswordHasher
	logs         *logger.TestLogBuffer
	users        service.UserService
	categories   service.CategoryService
	assets       service.AssetService
	transactions service.TransactionService
}

func newFixture(t *testing.T, opts service.Options) *fixture {
	t.Helper()
	l, buf := logger.NewTestLogger()
	f := &fixture{
		store:  memory.New(),
		clock:  testclock.NewClock(t0),
		hasher: &mocks.MockPasswordHasher{},
		logs:   buf,
	}
	opts.Clock = f.clock

	f.users = service.NewUserService(f.store.Users(), f.hasher, opts, l)
	f.categories = service.NewCategoryService(f.store.Categories(), opts, l)
	f.assets = service.NewAssetService(f.store.Assets(), f.store.Users(), f.store.Categories(), opts, l)
	f.transactions = service.NewTransactionService(f.store.Transactions(), f.store.Assets(), opts, l)
	return f
}

func (f *fixture) createUser(t *testing.T, name, email string) *service.UserResponse {
	t.Helper()
	u, err := f.users.CreateUser(context.Background(), service.UserRequest{
		Name: name, Email: email, Password: "p", Role: "USER",
	})
	require.NoError(t, err)
	return u
}

func (f *fixture) createCategory(t *testing.T, name string) *service.CategoryResponse {
	t.Helper()
	c, err := f.categories.CreateCategory(context.Background(), service.CategoryRequest{
		Name: name, Description: name + " things",
	})
	require.NoError(t, err)
	return c
}

func (f *fixture) createAsset(t *testing.T, name, typ, value, ownerID, categoryID string) *service.AssetResponse {
	t.Helper()
	a, err := f.assets.CreateAsset(context.Background(), service.AssetRequest{
		Name: name, Type: typ, Value: value, OwnerID: ownerID, CategoryID: categoryID,
	})
	require.NoError(t, err)
	return a
}

// seed creates one user, one category and one laptop asset.
func (f *fixture) seed(t *testing.T) (*service.UserResponse, *service.CategoryResponse, *service.AssetResponse) {
	t.Helper()
	u := f.createUser(t, "Ada", "ada@example.com")
	c := f.createCategory(t, "Electronics")
	a := f.createAsset(t, "Laptop", "Computer", "999.99", u.ID, c.ID)
	return u, c, a
}
