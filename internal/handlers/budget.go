package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/trungle-dev/sheetbook/internal/dto"
	"github.com/trungle-dev/sheetbook/internal/errs"
	"github.com/trungle-dev/sheetbook/internal/models"
	"github.com/trungle-dev/sheetbook/internal/response"
)

type BudgetService interface {
	List(ctx context.Context) ([]*models.Budget, error)
	Set(ctx context.Context, categoryID string, amount decimal.Decimal, period string) error
}

type budgetHandlers struct {
	ResponseHandler response.ResponseHandler
	BudgetSvc       BudgetService
}

func NewBudgetHandlers(deps *Deps) *budgetHandlers {
	return &budgetHandlers{
		ResponseHandler: deps.ResponseHandler,
		BudgetSvc:       deps.BudgetSvc,
	}
}

func (h *budgetHandlers) BudgetRoutes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.List)
	r.Put("/", h.Set)
	return r
}

func (h *budgetHandlers) List(w http.ResponseWriter, r *http.Request) {
	budgets, err := h.BudgetSvc.List(r.Context())
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, http.StatusOK, budgets)
}

func (h *budgetHandlers) Set(w http.ResponseWriter, r *http.Request) {
	var req dto.SetBudgetParams
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ResponseHandler.HandleError(w, r, errs.NewValidationError("invalid request body"))
		return
	}

	if err := h.BudgetSvc.Set(r.Context(), req.CategoryID, req.Amount, req.Period); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, http.StatusOK, nil)
}
