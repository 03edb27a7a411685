package shared

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type loginPayload struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type selfValidating struct {
	called bool
}

func (s *selfValidating) Validate() error {
	s.called = true
	return nil
}

func TestDecodeJSON(t *testing.T) {
	t.Run("valid body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"email":"a@b.io","password":"x"}`))
		var p loginPayload
		require.NoError(t, DecodeJSON(req, &p))
		assert.Equal(t, "a@b.io", p.Email)
	})

	t.Run("empty body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(""))
		var p loginPayload
		assert.ErrorIs(t, DecodeJSON(req, &p), ErrEmptyBody)
	})

	t.Run("unknown field", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"email":"a@b.io","admin":true}`))
		var p loginPayload
		assert.Error(t, DecodeJSON(req, &p))
	})

	t.Run("malformed", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"email":`))
		var p loginPayload
		assert.Error(t, DecodeJSON(req, &p))
	})
}

func TestValidateRequest(t *testing.T) {
	assert.NoError(t, ValidateRequest(loginPayload{Email: "a@b.io", Password: "x"}))
	assert.Error(t, ValidateRequest(loginPayload{Email: "nope", Password: "x"}))
	assert.Error(t, ValidateRequest(loginPayload{Email: "a@b.io"}))

	s := &selfValidating{}
	assert.NoError(t, ValidateRequest(s))
	assert.True(t, s.called)
}
