package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/okarpov/exercise-tracker/internal/models"
)

// ExerciseLogGetter defines the interface that the service must implement.
type ExerciseLogGetter interface {
	Log(ctx context.Context, userID string, from, to *time.Time, limit *int) (*models.UserDB, []models.ExerciseDB, error)
}

// LogEntry represents one exercise in a user's log
// swagger:model LogEntry
type LogEntry struct {
	// Description
	// default: run
	Description string `json:"description"`

	// Duration in minutes
	// default: 30
	Duration float64 `json:"duration"`

	// Day string, e.g. Mon Jan 01 2024
	Date string `json:"date"`
}

// LogsResponse represents a user's date-filtered exercise log
// swagger:model LogsResponse
type LogsResponse struct {
	// Username
	// default: alice
	Username string `json:"username"`

	// Number of entries returned, after the limit is applied
	Count int `json:"count"`

	// User id
	ID string `json:"id"`

	// Exercises sorted by date ascending
	Log []LogEntry `json:"log"`
}

// NewGetLogsHandler returns an HTTP handler that retrieves a user's exercise
// log. Unparseable from/to/limit query values are omitted from the filter
// rather than rejected.
// @Summary Get a user's exercise log
// @Description Returns the user's exercises sorted by date ascending, optionally bounded by from/to (inclusive) and truncated to limit entries.
// @Tags exercises
// @Produce json
// @Param id path string true "User id"
// @Param from query string false "Lower date bound (YYYY-MM-DD)"
// @Param to query string false "Upper date bound (YYYY-MM-DD)"
// @Param limit query int false "Maximum number of entries"
// @Success 200 {object} handlers.LogsResponse "Exercise log"
// @Failure 400 {object} handlers.ErrorResponse "Unknown userId"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /api/users/{id}/logs [get]
func NewGetLogsHandler(svc ExerciseLogGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := chi.URLParam(r, "id")
		query := r.URL.Query()

		var from, to *time.Time
		if t, ok := parseDate(query.Get("from")); ok {
			from = &t
		}
		if t, ok := parseDate(query.Get("to")); ok {
			to = &t
		}

		var limit *int
		if n, err := strconv.Atoi(query.Get("limit")); err == nil && n > 0 {
			limit = &n
		}

		user, exercises, err := svc.Log(r.Context(), userID, from, to, limit)
		if err != nil {
			writeError(w, err)
			return
		}

		log := make([]LogEntry, 0, len(exercises))
		for _, ex := range exercises {
			log = append(log, LogEntry{
				Description: ex.Description,
				Duration:    ex.Duration,
				Date:        dayString(ex.Date),
			})
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(LogsResponse{
			Username: user.Username,
			Count:    len(log),
			ID:       user.UserID.String(),
			Log:      log,
		})
	}
}
