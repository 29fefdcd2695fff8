package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/okarpov/exercise-tracker/internal/models"
)

// ExerciseAdder defines the interface that the service must implement.
type ExerciseAdder interface {
	Add(ctx context.Context, userID, description string, duration float64, date time.Time) (*models.ExerciseDB, *models.UserDB, error)
}

// AddExerciseRequest represents the JSON body for adding an exercise.
// Duration is kept raw so both a JSON number and a numeric string are
// accepted, the way HTML form clients send it.
// swagger:model AddExerciseRequest
type AddExerciseRequest struct {
	// Description
	// required: true
	// default: run
	Description string `json:"description"`

	// Duration in minutes
	// required: true
	// default: 30
	Duration json.RawMessage `json:"duration"`

	// Date (YYYY-MM-DD), defaults to today when absent or invalid
	Date string `json:"date"`
}

// AddExerciseResponse represents a stored exercise echoed back to the caller
// swagger:model AddExerciseResponse
type AddExerciseResponse struct {
	// Owning user id
	ID string `json:"id"`

	// Username
	// default: alice
	Username string `json:"username"`

	// Day string, e.g. Mon Jan 01 2024
	Date string `json:"date"`

	// Duration in minutes
	// default: 30
	Duration float64 `json:"duration"`

	// Description
	// default: run
	Description string `json:"description"`
}

// parseDuration accepts a JSON number or a quoted numeric string. Anything
// unparseable comes back as 0, which fails the positive-duration check.
func parseDuration(raw json.RawMessage) float64 {
	s := strings.Trim(strings.TrimSpace(string(raw)), `"`)
	if s == "" {
		return 0
	}
	d, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return d
}

// NewAddExerciseHandler returns an HTTP handler that records an exercise for
// a user.
// @Summary Add an exercise
// @Description Persists one exercise for the given user. An absent or invalid date is silently replaced with the current date.
// @Tags exercises
// @Accept json
// @Produce json
// @Param id path string true "User id"
// @Param addExerciseRequest body handlers.AddExerciseRequest true "Exercise to add"
// @Success 200 {object} handlers.AddExerciseResponse "Stored exercise"
// @Failure 400 {object} handlers.ErrorResponse "Validation failure or unknown userId"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /api/users/{id}/exercises [post]
func NewAddExerciseHandler(svc ExerciseAdder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := chi.URLParam(r, "id")

		var req AddExerciseRequest
		_ = json.NewDecoder(r.Body).Decode(&req)

		duration := parseDuration(req.Duration)

		// Invalid dates are replaced, not rejected.
		date, ok := parseDate(req.Date)
		if !ok {
			date = time.Now()
		}

		exercise, user, err := svc.Add(r.Context(), userID, req.Description, duration, date)
		if err != nil {
			writeError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(AddExerciseResponse{
			ID:          user.UserID.String(),
			Username:    user.Username,
			Date:        dayString(exercise.Date),
			Duration:    exercise.Duration,
			Description: exercise.Description,
		})
	}
}
