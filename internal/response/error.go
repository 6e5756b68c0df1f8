package response

import (
	"fmt"
	"net/http"

	"encoding/json"

	"github.com/trungle-dev/sheetbook/internal/errs"
	"github.com/trungle-dev/sheetbook/pkg/logger"
)

// ErrorEnvelope is the failure half of the discriminated result every public
// operation returns. Callers branch on Success, then Code.
type ErrorEnvelope struct {
	Success bool   `json:"success"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (h *responseHandler) WriteError(w http.ResponseWriter, r *http.Request, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(ErrorEnvelope{
		Code:    code,
		Message: message,
	}); err != nil {
		log := logger.FromContext(r.Context())
		log.Error("failed to encode error response", "error", err, "status", status, "code", code)
	}
}

func (h *responseHandler) HandleError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromContext(r.Context())

	switch e := err.(type) {
	case *errs.ValidationError:
		log.Warn("validation failed", "error", e.Message)
		h.WriteError(w, r, http.StatusBadRequest, "invalid_input", e.Message)

	case *errs.NotFoundError:
		log.Warn("resource not found", "error", e.Message)
		h.WriteError(w, r, http.StatusNotFound, "not_found", e.Message)

	case *errs.InsufficientFundsError:
		log.Warn("insufficient funds", "error", e.Message)
		h.WriteError(w, r, http.StatusUnprocessableEntity, "insufficient_funds", e.Message)

	case *errs.StoreError:
		// Step tells the operator whether anything was applied before the
		// failure. Never suggest a blind retry for multi-step operations.
		log.Error("store error",
			"operation", e.Op,
			"step_reached", e.Step,
			"transient", e.Transient,
			"error", e.Message)

		status := http.StatusBadGateway
		if e.Transient {
			status = http.StatusServiceUnavailable
		}
		msg := "Storage temporarily unavailable"
		if e.Step != "" {
			msg = fmt.Sprintf("Storage error after step: %s. Review before retrying.", e.Step)
		}
		h.WriteError(w, r, status, "store_error", msg)

	default:
		log.Error("unexpected error",
			"error", err,
			"type", fmt.Sprintf("%T", err))
		h.WriteError(w, r, http.StatusInternalServerError, "internal_error",
			"An unexpected error occurred")
	}
}
