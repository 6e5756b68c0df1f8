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

type AccountService interface {
	List(ctx context.Context) ([]*models.Account, error)
	Create(ctx context.Context, name string, initialBalance decimal.Decimal) (*models.Account, error)
	Rename(ctx context.Context, id, name string) error
	Delete(ctx context.Context, id string) error
}

type accountHandlers struct {
	ResponseHandler response.ResponseHandler
	AccountSvc      AccountService
}

func NewAccountHandlers(deps *Deps) *accountHandlers {
	return &accountHandlers{
		ResponseHandler: deps.ResponseHandler,
		AccountSvc:      deps.AccountSvc,
	}
}

func (h *accountHandlers) AccountRoutes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Put("/{accountId}", h.Rename)
	r.Delete("/{accountId}", h.Delete)
	return r
}

func (h *accountHandlers) List(w http.ResponseWriter, r *http.Request) {
	accounts, err := h.AccountSvc.List(r.Context())
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, http.StatusOK, accounts)
}

func (h *accountHandlers) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateAccountParams
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ResponseHandler.HandleError(w, r, errs.NewValidationError("invalid request body"))
		return
	}

	account, err := h.AccountSvc.Create(r.Context(), req.Name, req.InitialBalance)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, http.StatusCreated, account)
}

func (h *accountHandlers) Rename(w http.ResponseWriter, r *http.Request) {
	accountID := chi.URLParam(r, "accountId")
	var req dto.RenameAccountParams
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ResponseHandler.HandleError(w, r, errs.NewValidationError("invalid request body"))
		return
	}

	if err := h.AccountSvc.Rename(r.Context(), accountID, req.Name); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, http.StatusOK, nil)
}

func (h *accountHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	accountID := chi.URLParam(r, "accountId")
	if err := h.AccountSvc.Delete(r.Context(), accountID); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, http.StatusOK, nil)
}
