package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/okarpov/exercise-tracker/internal/logger"
	"github.com/okarpov/exercise-tracker/internal/services"
)

// ErrorResponse represents an error response payload
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// default: server error
	Error string `json:"error"`
}

// writeError maps service errors to HTTP responses: validation failures become
// 400 with their short message, anything else becomes a generic 500 with the
// detail kept server-side.
func writeError(w http.ResponseWriter, err error) {
	w.Header().Set("Content-Type", "application/json")

	switch {
	case errors.Is(err, services.ErrUsernameRequired),
		errors.Is(err, services.ErrDescriptionRequired),
		errors.Is(err, services.ErrInvalidDuration),
		errors.Is(err, services.ErrUnknownUser):
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(ErrorResponse{Error: err.Error()})
	default:
		logger.Log.Errorw("internal server error", "err", err)
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(ErrorResponse{Error: "server error"})
	}
}
