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

type GoalService interface {
	List(ctx context.Context) ([]*models.Goal, error)
	Create(ctx context.Context, p dto.CreateGoalParams) (*models.Goal, error)
	Contribute(ctx context.Context, p dto.ContributeParams) (*models.Transaction, error)
	Delete(ctx context.Context, id string) error
}

type goalHandlers struct {
	ResponseHandler response.ResponseHandler
	GoalSvc         GoalService
}

func NewGoalHandlers(deps *Deps) *goalHandlers {
	return &goalHandlers{
		ResponseHandler: deps.ResponseHandler,
		GoalSvc:         deps.GoalSvc,
	}
}

func (h *goalHandlers) GoalRoutes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Post("/{goalId}/contribute", h.Contribute)
	r.Delete("/{goalId}", h.Delete)
	return r
}

func (h *goalHandlers) List(w http.ResponseWriter, r *http.Request) {
	goals, err := h.GoalSvc.List(r.Context())
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, http.StatusOK, goals)
}

func (h *goalHandlers) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateGoalParams
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ResponseHandler.HandleError(w, r, errs.NewValidationError("invalid request body"))
		return
	}

	goal, err := h.GoalSvc.Create(r.Context(), req)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, http.StatusCreated, goal)
}

func (h *goalHandlers) Contribute(w http.ResponseWriter, r *http.Request) {
	var req dto.ContributeParams
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ResponseHandler.HandleError(w, r, errs.NewValidationError("invalid request body"))
		return
	}
	req.GoalID = chi.URLParam(r, "goalId")

	tx, err := h.GoalSvc.Contribute(r.Context(), req)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, http.StatusOK, tx)
}

func (h *goalHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	goalID := chi.URLParam(r, "goalId")
	if err := h.GoalSvc.Delete(r.Context(), goalID); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, http.StatusOK, nil)
}
