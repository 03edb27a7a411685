package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/asset-registry/internal/api/shared"
	"github.com/phrazzld/asset-registry/internal/service"
)

// CategoryHandler serves the /api/categories routes.
type CategoryHandler struct {
	categories service.CategoryService
	logger     *slog.Logger
}

// NewCategoryHandler creates a new CategoryHandler.
func NewCategoryHandler(categories service.CategoryService, logger *slog.Logger) *CategoryHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &CategoryHandler{
		categories: categories,
		logger:     logger.With(slog.String("component", "category_handler")),
	}
}

// Create handles POST /api/categories
func (h *CategoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req service.CategoryRequest
	if !decodeBody(w, r, &req) {
		return
	}

	resp, err := h.categories.CreateCategory(r.Context(), req)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	requestLogger(r, h.logger).Info("category created", slog.String("category_id", resp.ID))
	shared.RespondWithJSON(w, r, http.StatusCreated, resp)
}

// List handles GET /api/categories
func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	resp, err := h.categories.ListCategories(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, resp)
}

// Get handles GET /api/categories/{id}
func (h *CategoryHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := handlePathID(w, r, requestLogger(r, h.logger))
	if !ok {
		return
	}

	resp, err := h.categories.GetCategory(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, resp)
}

// Update handles PUT /api/categories/{id}
func (h *CategoryHandler) Update(w http.ResponseWriter, r *http.Request) {
	log := requestLogger(r, h.logger)
	id, ok := handlePathID(w, r, log)
	if !ok {
		return
	}

	var req service.CategoryRequest
	if !decodeBody(w, r, &req) {
		return
	}

	resp, err := h.categories.UpdateCategory(r.Context(), id, req)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	log.Info("category updated", slog.Int64("category_id", id))
	shared.RespondWithJSON(w, r, http.StatusOK, resp)
}

// Delete handles DELETE /api/categories/{id}
func (h *CategoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	log := requestLogger(r, h.logger)
	id, ok := handlePathID(w, r, log)
	if !ok {
		return
	}

	if err := h.categories.DeleteCategory(r.Context(), id); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	log.Info("category deleted", slog.Int64("category_id", id))
	shared.RespondNoContent(w)
}
