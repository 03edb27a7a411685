package api_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/juju/clock/testclock"
	"github.com/phrazzld/asset-registry/internal/api"
	"github.com/phrazzld/asset-registry/internal/api/middleware"
	"github.com/phrazzld/asset-registry/internal/mocks"
	"github.com/phrazzld/asset-registry/internal/platform/logger"
	"github.com/phrazzld/asset-registry/internal/service"
	"github.com/phrazzld/asset-registry/internal/store/memory"
	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2025, 3, 14, 15, 9, 26, 0, time.UTC)

// newTestRouter mounts every handler on a chi router backed by a memory store.
func newTestRouter(t *testing.T) (http.Handler, *memory.Store) {
	t.Helper()
	l, _ := logger.NewTestLogger()
	mem := memory.New()
	opts := service.Options{Clock: testclock.NewClock(t0)}
	hasher := &mocks.MockPasswordHasher{}

	users := api.NewUserHandler(service.NewUserService(mem.Users(), hasher, opts, l), l)
	categories := api.NewCategoryHandler(service.NewCategoryService(mem.Categories(), opts, l), l)
	assets := api.NewAssetHandler(
		service.NewAssetService(mem.Assets(), mem.Users(), mem.Categories(), opts, l), l)
	transactions := api.NewTransactionHandler(
		service.NewTransactionService(mem.Transactions(), mem.Assets(), opts, l), l)

	r := chi.NewRouter()
	r.Use(middleware.TraceMiddleware(l))
	r.Get("/health", api.Health("memory"))
	r.Route("/api", func(r chi.Router) {
		mount := func(path string, create, list, get, update, del http.HandlerFunc) {
			r.Post(path, create)
			r.Get(path, list)
			r.Get(path+"/{id}", get)
			r.Put(path+"/{id}", update)
			r.Delete(path+"/{id}", del)
		}
		mount("/users", users.Create, users.List, users.Get, users.Update, users.Delete)
		mount("/categories", categories.Create, categories.List, categories.Get, categories.Update, categories.Delete)
		mount("/assets", assets.Create, assets.List, assets.Get, assets.Update, assets.Delete)
		mount("/transactions", transactions.Create, transactions.List, transactions.Get,
			transactions.Update, transactions.Delete)
	})
	return r, mem
}

// do sends a JSON request and returns the recorder.
func do(t *testing.T, h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if raw, ok := body.(string); ok {
			buf.WriteString(raw)
		} else {
			require.NoError(t, json.NewEncoder(&buf).Encode(body))
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

// seed creates Ada, Electronics and a laptop over HTTP.
func seed(t *testing.T, h http.Handler) {
	t.Helper()
	require.Equal(t, http.StatusCreated, do(t, h, http.MethodPost, "/api/users", map[string]string{
		"name": "Ada", "email": "ada@example.com", "password": "pw", "role": "admin",
	}).Code)
	require.Equal(t, http.StatusCreated, do(t, h, http.MethodPost, "/api/categories", map[string]string{
		"name": "Electronics", "description": "Gadgets",
	}).Code)
	require.Equal(t, http.StatusCreated, do(t, h, http.MethodPost, "/api/assets", map[string]string{
		"name": "Laptop", "type": "Computer", "value": "999.99", "ownerId": "1", "categoryId": "1",
	}).Code)
}
