package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/asset-registry/internal/api/shared"
	"github.com/phrazzld/asset-registry/internal/service"
)

// TransactionHandler serves the /api/transactions routes.
type TransactionHandler struct {
	transactions service.TransactionService
	logger       *slog.Logger
}

// NewTransactionHandler creates a new TransactionHandler.
func NewTransactionHandler(transactions service.TransactionService, logger *slog.Logger) *TransactionHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &TransactionHandler{
		transactions: transactions,
		logger:       logger.With(slog.String("component", "transaction_handler")),
	}
}

// Create handles POST /api/transactions
func (h *TransactionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req service.TransactionRequest
	if !decodeBody(w, r, &req) {
		return
	}

	resp, err := h.transactions.CreateTransaction(r.Context(), req)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	requestLogger(r, h.logger).Info("transaction created", slog.String("transaction_id", resp.ID))
	shared.RespondWithJSON(w, r, http.StatusCreated, resp)
}

// List handles GET /api/transactions
func (h *TransactionHandler) List(w http.ResponseWriter, r *http.Request) {
	resp, err := h.transactions.ListTransactions(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, resp)
}

// Get handles GET /api/transactions/{id}
func (h *TransactionHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := handlePathID(w, r, requestLogger(r, h.logger))
	if !ok {
		return
	}

	resp, err := h.transactions.GetTransaction(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, resp)
}

// Update handles PUT /api/transactions/{id}
func (h *TransactionHandler) Update(w http.ResponseWriter, r *http.Request) {
	log := requestLogger(r, h.logger)
	id, ok := handlePathID(w, r, log)
	if !ok {
		return
	}

	var req service.TransactionRequest
	if !decodeBody(w, r, &req) {
		return
	}

	resp, err := h.transactions.UpdateTransaction(r.Context(), id, req)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	log.Info("transaction updated", slog.Int64("transaction_id", id))
	shared.RespondWithJSON(w, r, http.StatusOK, resp)
}

// Delete handles DELETE /api/transactions/{id}
func (h *TransactionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	log := requestLogger(r, h.logger)
	id, ok := handlePathID(w, r, log)
	if !ok {
		return
	}

	if err := h.transactions.DeleteTransaction(r.Context(), id); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	log.Info("transaction deleted", slog.Int64("transaction_id", id))
	shared.RespondNoContent(w)
}
