package api

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/phrazzld/asset-registry/internal/api/shared"
	"github.com/phrazzld/asset-registry/internal/domain"
	"github.com/phrazzld/asset-registry/internal/service/auth"
	"github.com/phrazzld/asset-registry/internal/store"
)

// AuthHandler handles authentication-related API requests.
type AuthHandler struct {
	userStore        store.UserStore
	jwtService       auth.JWTService
	passwordVerifier auth.PasswordVerifier
	logger           *slog.Logger
}

// NewAuthHandler creates a new AuthHandler with the given dependencies.
func NewAuthHandler(
	userStore store.UserStore,
	jwtService auth.JWTService,
	passwordVerifier auth.PasswordVerifier,
	logger *slog.Logger,
) *AuthHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &AuthHandler{
		userStore:        userStore,
		jwtService:       jwtService,
		passwordVerifier: passwordVerifier,
		logger:           logger.With(slog.String("component", "auth_handler")),
	}
}

// Login handles POST /api/auth/login. Unknown emails and wrong passwords
// get the same 401 so callers cannot probe for accounts.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	log := requestLogger(r, h.logger)

	var req LoginRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		HandleAPIError(w, r, domain.NewValidationError("", domain.Message(domain.MsgInvalidLogin), nil), "")
		return
	}

	user, err := h.userStore.GetByEmail(r.Context(), req.Email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Debug("login for unknown email")
			HandleAPIError(w, r, auth.ErrInvalidCredentials, "")
			return
		}
		HandleAPIError(w, r, err, "")
		return
	}

	if err := h.passwordVerifier.Compare(user.PasswordDigest, req.Password); err != nil {
		log.Debug("password mismatch", slog.Int64("user_id", user.ID))
		HandleAPIError(w, r, auth.ErrInvalidCredentials, "")
		return
	}

	token, err := h.jwtService.GenerateToken(r.Context(), user.ID, string(user.Role))
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	log.Info("user logged in", slog.Int64("user_id", user.ID))
	shared.RespondWithJSON(w, r, http.StatusOK, AuthResponse{
		UserID: strconv.FormatInt(user.ID, 10),
		Role:   string(user.Role),
		Token:  token,
	})
}
