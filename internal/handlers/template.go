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

type TemplateService interface {
	List(ctx context.Context) ([]*models.TransactionTemplate, error)
	Create(ctx context.Context, name string, amount decimal.Decimal, categoryID string, owner models.Owner) (*models.TransactionTemplate, error)
	Delete(ctx context.Context, id string) error
}

type templateHandlers struct {
	ResponseHandler response.ResponseHandler
	TemplateSvc     TemplateService
}

func NewTemplateHandlers(deps *Deps) *templateHandlers {
	return &templateHandlers{
		ResponseHandler: deps.ResponseHandler,
		TemplateSvc:     deps.TemplateSvc,
	}
}

func (h *templateHandlers) TemplateRoutes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Delete("/{templateId}", h.Delete)
	return r
}

func (h *templateHandlers) List(w http.ResponseWriter, r *http.Request) {
	templates, err := h.TemplateSvc.List(r.Context())
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, http.StatusOK, templates)
}

func (h *templateHandlers) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateTemplateParams
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ResponseHandler.HandleError(w, r, errs.NewValidationError("invalid request body"))
		return
	}

	tpl, err := h.TemplateSvc.Create(r.Context(), req.Name, req.Amount, req.CategoryID, req.Owner)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, http.StatusCreated, tpl)
}

func (h *templateHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	templateID := chi.URLParam(r, "templateId")
	if err := h.TemplateSvc.Delete(r.Context(), templateID); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, http.StatusOK, nil)
}
