package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/asset-registry/internal/api/shared"
	"github.com/phrazzld/asset-registry/internal/domain"
	"github.com/phrazzld/asset-registry/internal/platform/logger"
)

// idParam is the chi path parameter carrying an entity ID.
const idParam = "id"

// getPathID extracts a positive integer ID from the URL path parameters.
func getPathID(r *http.Request, paramName string) (int64, error) {
	return domain.ParseID(paramName, chi.URLParam(r, paramName))
}

// handlePathID extracts the {id} path parameter and writes a 400 if it is
// malformed. The boolean reports whether the caller may continue.
func handlePathID(w http.ResponseWriter, r *http.Request, log *slog.Logger) (int64, bool) {
	id, err := getPathID(r, idParam)
	if err != nil {
		log.Debug("invalid path id", slog.String("value", chi.URLParam(r, idParam)))
		HandleAPIError(w, r, err, "")
		return 0, false
	}
	return id, true
}

// decodeBody decodes the JSON body into v and writes a 400 on failure.
func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := shared.DecodeJSON(r, v); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest,
			domain.Message(domain.MsgInvalidRequest), err)
		return false
	}
	return true
}

// requestLogger returns the request-scoped logger, falling back to base.
// Authenticated requests also carry the caller's user id and role.
func requestLogger(r *http.Request, base *slog.Logger) *slog.Logger {
	log := logger.FromContextOrDefault(r.Context(), base)
	if userID, ok := shared.GetUserID(r.Context()); ok {
		log = log.With(slog.Int64("user_id", userID))
	}
	if role, ok := shared.GetUserRole(r.Context()); ok {
		log = log.With(slog.String("user_role", role))
	}
	return log
}
