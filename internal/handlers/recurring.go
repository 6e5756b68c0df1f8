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

type RecurringService interface {
	List(ctx context.Context) ([]*models.RecurringTransaction, error)
	Create(ctx context.Context, p dto.CreateRecurringParams) (*models.RecurringTransaction, error)
	ProcessDue(ctx context.Context) (dto.ProcessDueResult, error)
	Delete(ctx context.Context, id string) error
}

type recurringHandlers struct {
	ResponseHandler response.ResponseHandler
	RecurringSvc    RecurringService
}

func NewRecurringHandlers(deps *Deps) *recurringHandlers {
	return &recurringHandlers{
		ResponseHandler: deps.ResponseHandler,
		RecurringSvc:    deps.RecurringSvc,
	}
}

func (h *recurringHandlers) RecurringRoutes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Post("/process", h.Process)
	r.Delete("/{recurringId}", h.Delete)
	return r
}

func (h *recurringHandlers) List(w http.ResponseWriter, r *http.Request) {
	recs, err := h.RecurringSvc.List(r.Context())
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, http.StatusOK, recs)
}

func (h *recurringHandlers) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateRecurringParams
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ResponseHandler.HandleError(w, r, errs.NewValidationError("invalid request body"))
		return
	}

	rec, err := h.RecurringSvc.Create(r.Context(), req)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, http.StatusCreated, rec)
}

// Process runs one scheduler pass. Idempotent within a period: a second call
// right after the first finds nothing due.
func (h *recurringHandlers) Process(w http.ResponseWriter, r *http.Request) {
	result, err := h.RecurringSvc.ProcessDue(r.Context())
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, http.StatusOK, result)
}

func (h *recurringHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	recurringID := chi.URLParam(r, "recurringId")
	if err := h.RecurringSvc.Delete(r.Context(), recurringID); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, http.StatusOK, nil)
}
