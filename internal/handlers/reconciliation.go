package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/trungle-dev/sheetbook/internal/dto"
	"github.com/trungle-dev/sheetbook/internal/response"
)

type ReconcileService interface {
	Summary(ctx context.Context) (dto.ReconciliationSummary, error)
}

type reconciliationHandlers struct {
	ResponseHandler response.ResponseHandler
	ReconcileSvc    ReconcileService
}

func NewReconciliationHandlers(deps *Deps) *reconciliationHandlers {
	return &reconciliationHandlers{
		ResponseHandler: deps.ResponseHandler,
		ReconcileSvc:    deps.ReconcileSvc,
	}
}

func (h *reconciliationHandlers) ReconciliationRoutes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.Summary)
	return r
}

func (h *reconciliationHandlers) Summary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.ReconcileSvc.Summary(r.Context())
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, http.StatusOK, summary)
}
