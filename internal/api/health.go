package api

import (
	"net/http"

	"github.com/phrazzld/asset-registry/internal/api/shared"
)

// Health returns a liveness handler that reports which storage driver is in use.
func Health(storage string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		shared.RespondWithJSON(w, r, http.StatusOK, HealthResponse{Status: "ok", Storage: storage})
	}
}
