package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/trungle-dev/sheetbook/internal/dto"
	"github.com/trungle-dev/sheetbook/internal/errs"
	"github.com/trungle-dev/sheetbook/internal/models"
	"github.com/trungle-dev/sheetbook/internal/response"
)

type LedgerService interface {
	RecordTransaction(ctx context.Context, p dto.RecordTransactionParams) (*models.Transaction, error)
	Transfer(ctx context.Context, p dto.TransferParams) (dto.TransferResult, error)
}

type TransactionService interface {
	Feed(ctx context.Context, limit int) ([]*models.Transaction, error)
}

type transactionHandlers struct {
	ResponseHandler response.ResponseHandler
	LedgerSvc       LedgerService
	TransactionSvc  TransactionService
}

func NewTransactionHandlers(deps *Deps) *transactionHandlers {
	return &transactionHandlers{
		ResponseHandler: deps.ResponseHandler,
		LedgerSvc:       deps.LedgerSvc,
		TransactionSvc:  deps.TransactionSvc,
	}
}

func (h *transactionHandlers) TransactionRoutes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.Feed)
	r.Post("/", h.Record)
	r.Post("/transfer", h.Transfer)
	return r
}

func (h *transactionHandlers) Feed(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			h.ResponseHandler.HandleError(w, r, errs.NewValidationError("limit must be a number"))
			return
		}
		limit = n
	}

	txs, err := h.TransactionSvc.Feed(r.Context(), limit)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, http.StatusOK, txs)
}

func (h *transactionHandlers) Record(w http.ResponseWriter, r *http.Request) {
	var req dto.RecordTransactionParams
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ResponseHandler.HandleError(w, r, errs.NewValidationError("invalid request body"))
		return
	}

	tx, err := h.LedgerSvc.RecordTransaction(r.Context(), req)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, http.StatusCreated, tx)
}

func (h *transactionHandlers) Transfer(w http.ResponseWriter, r *http.Request) {
	var req dto.TransferParams
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ResponseHandler.HandleError(w, r, errs.NewValidationError("invalid request body"))
		return
	}

	result, err := h.LedgerSvc.Transfer(r.Context(), req)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, http.StatusCreated, result)
}
