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

type CategoryService interface {
	List(ctx context.Context) ([]*models.Category, error)
	Create(ctx context.Context, name string, ctype models.CategoryType, owner models.Owner) (*models.Category, error)
	Update(ctx context.Context, id, name string, ctype models.CategoryType, owner models.Owner) error
	Delete(ctx context.Context, id string) error
}

type categoryHandlers struct {
	ResponseHandler response.ResponseHandler
	CategorySvc     CategoryService
}

func NewCategoryHandlers(deps *Deps) *categoryHandlers {
	return &categoryHandlers{
		ResponseHandler: deps.ResponseHandler,
		CategorySvc:     deps.CategorySvc,
	}
}

func (h *categoryHandlers) CategoryRoutes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Put("/{categoryId}", h.Update)
	r.Delete("/{categoryId}", h.Delete)
	return r
}

func (h *categoryHandlers) List(w http.ResponseWriter, r *http.Request) {
	categories, err := h.CategorySvc.List(r.Context())
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, http.StatusOK, categories)
}

func (h *categoryHandlers) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CategoryParams
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ResponseHandler.HandleError(w, r, errs.NewValidationError("invalid request body"))
		return
	}

	category, err := h.CategorySvc.Create(r.Context(), req.Name, req.Type, req.OwnerTag)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, http.StatusCreated, category)
}

func (h *categoryHandlers) Update(w http.ResponseWriter, r *http.Request) {
	categoryID := chi.URLParam(r, "categoryId")
	var req dto.CategoryParams
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ResponseHandler.HandleError(w, r, errs.NewValidationError("invalid request body"))
		return
	}

	if err := h.CategorySvc.Update(r.Context(), categoryID, req.Name, req.Type, req.OwnerTag); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, http.StatusOK, nil)
}

func (h *categoryHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	categoryID := chi.URLParam(r, "categoryId")
	if err := h.CategorySvc.Delete(r.Context(), categoryID); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, http.StatusOK, nil)
}
