package response

import (
	"encoding/json"
	"net/http"
)

// SuccessEnvelope is the success half of the discriminated result every
// public operation returns; Data carries the operation's payload.
type SuccessEnvelope struct {
	Success bool `json:"success"`
	Data    any  `json:"data,omitempty"`
}

func (h *responseHandler) WriteSuccess(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	envelope := SuccessEnvelope{
		Success: true,
		Data:    data,
	}
	if err := json.NewEncoder(w).Encode(envelope); err != nil {
		// The status line is already out; all that's left is to log.
		h.Log.Error("failed to encode success response", "error", err, "status", status)
	}
}
