package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/asset-registry/internal/api/shared"
	"github.com/phrazzld/asset-registry/internal/service"
)

// UserHandler serves the /api/users routes.
type UserHandler struct {
	users  service.UserService
	logger *slog.Logger
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(users service.UserService, logger *slog.Logger) *UserHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &UserHandler{
		users:  users,
		logger: logger.With(slog.String("component", "user_handler")),
	}
}

// Create handles POST /api/users
func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req service.UserRequest
	if !decodeBody(w, r, &req) {
		return
	}

	resp, err := h.users.CreateUser(r.Context(), req)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	requestLogger(r, h.logger).Info("user created", slog.String("user_id", resp.ID))
	shared.RespondWithJSON(w, r, http.StatusCreated, resp)
}

// List handles GET /api/users
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	resp, err := h.users.ListUsers(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, resp)
}

// Get handles GET /api/users/{id}
func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := handlePathID(w, r, requestLogger(r, h.logger))
	if !ok {
		return
	}

	resp, err := h.users.GetUser(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, resp)
}

// Update handles PUT /api/users/{id}
func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	log := requestLogger(r, h.logger)
	id, ok := handlePathID(w, r, log)
	if !ok {
		return
	}

	var req service.UserRequest
	if !decodeBody(w, r, &req) {
		return
	}

	resp, err := h.users.UpdateUser(r.Context(), id, req)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	log.Info("user updated", slog.Int64("user_id", id))
	shared.RespondWithJSON(w, r, http.StatusOK, resp)
}

// Delete handles DELETE /api/users/{id}
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	log := requestLogger(r, h.logger)
	id, ok := handlePathID(w, r, log)
	if !ok {
		return
	}

	if err := h.users.DeleteUser(r.Context(), id); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	log.Info("user deleted", slog.Int64("user_id", id))
	shared.RespondNoContent(w)
}
