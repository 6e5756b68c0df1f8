package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/trungle-dev/sheetbook/internal/dto"
	"github.com/trungle-dev/sheetbook/internal/errs"
	"github.com/trungle-dev/sheetbook/internal/models"
	"github.com/trungle-dev/sheetbook/internal/response"
)

type DebtService interface {
	List(ctx context.Context) ([]*models.Debt, error)
	Create(ctx context.Context, p dto.CreateDebtParams) (*models.Debt, error)
	Settle(ctx context.Context, p dto.SettleDebtParams) (*models.Transaction, error)
	Revert(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}

type debtHandlers struct {
	ResponseHandler response.ResponseHandler
	DebtSvc         DebtService
}

func NewDebtHandlers(deps *Deps) *debtHandlers {
	return &debtHandlers{
		ResponseHandler: deps.ResponseHandler,
		DebtSvc:         deps.DebtSvc,
	}
}

func (h *debtHandlers) DebtRoutes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Post("/{debtId}/settle", h.Settle)
	r.Post("/{debtId}/revert", h.Revert)
	r.Delete("/{debtId}", h.Delete)
	return r
}

func (h *debtHandlers) List(w http.ResponseWriter, r *http.Request) {
	debts, err := h.DebtSvc.List(r.Context())
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, http.StatusOK, debts)
}

func (h *debtHandlers) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateDebtParams
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ResponseHandler.HandleError(w, r, errs.NewValidationError("invalid request body"))
		return
	}

	debt, err := h.DebtSvc.Create(r.Context(), req)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, http.StatusCreated, debt)
}

func (h *debtHandlers) Settle(w http.ResponseWriter, r *http.Request) {
	var req dto.SettleDebtParams
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ResponseHandler.HandleError(w, r, errs.NewValidationError("invalid request body"))
		return
	}
	req.DebtID = chi.URLParam(r, "debtId")

	tx, err := h.DebtSvc.Settle(r.Context(), req)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, http.StatusOK, tx)
}

func (h *debtHandlers) Revert(w http.ResponseWriter, r *http.Request) {
	debtID := chi.URLParam(r, "debtId")
	if err := h.DebtSvc.Revert(r.Context(), debtID); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, http.StatusOK, nil)
}

func (h *debtHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	debtID := chi.URLParam(r, "debtId")
	if err := h.DebtSvc.Delete(r.Context(), debtID); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, http.StatusOK, nil)
}
