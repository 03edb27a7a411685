package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/asset-registry/internal/api/shared"
	"github.com/phrazzld/asset-registry/internal/service"
)

// AssetHandler serves the /api/assets routes.
type AssetHandler struct {
	assets service.AssetService
	logger *slog.Logger
}

// NewAssetHandler creates a new AssetHandler.
func NewAssetHandler(assets service.AssetService, logger *slog.Logger) *AssetHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &AssetHandler{
		assets: assets,
		logger: logger.With(slog.String("component", "asset_handler")),
	}
}

// Create handles POST /api/assets
func (h *AssetHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req service.AssetRequest
	if !decodeBody(w, r, &req) {
		return
	}

	resp, err := h.assets.CreateAsset(r.Context(), req)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	requestLogger(r, h.logger).Info("asset created", slog.String("asset_id", resp.ID))
	shared.RespondWithJSON(w, r, http.StatusCreated, resp)
}

// List handles GET /api/assets
func (h *AssetHandler) List(w http.ResponseWriter, r *http.Request) {
	resp, err := h.assets.ListAssets(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, resp)
}

// Get handles GET /api/assets/{id}
func (h *AssetHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := handlePathID(w, r, requestLogger(r, h.logger))
	if !ok {
		return
	}

	resp, err := h.assets.GetAsset(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, resp)
}

// Update handles PUT /api/assets/{id}
func (h *AssetHandler) Update(w http.ResponseWriter, r *http.Request) {
	log := requestLogger(r, h.logger)
	id, ok := handlePathID(w, r, log)
	if !ok {
		return
	}

	var req service.AssetRequest
	if !decodeBody(w, r, &req) {
		return
	}

	resp, err := h.assets.UpdateAsset(r.Context(), id, req)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	log.Info("asset updated", slog.Int64("asset_id", id))
	shared.RespondWithJSON(w, r, http.StatusOK, resp)
}

// Delete handles DELETE /api/assets/{id}
func (h *AssetHandler) Delete(w http.ResponseWriter, r *http.Request) {
	log := requestLogger(r, h.logger)
	id, ok := handlePathID(w, r, log)
	if !ok {
		return
	}

	if err := h.assets.DeleteAsset(r.Context(), id); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	log.Info("asset deleted", slog.Int64("asset_id", id))
	shared.RespondNoContent(w)
}
