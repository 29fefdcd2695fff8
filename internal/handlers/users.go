package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/okarpov/exercise-tracker/internal/logger"
	"github.com/okarpov/exercise-tracker/internal/models"
	"github.com/okarpov/exercise-tracker/internal/services"
)

// UserCreator defines the interface that the service must implement.
type UserCreator interface {
	Create(ctx context.Context, username string) (*models.UserDB, services.CreateOutcome, error)
}

// UserLister defines the interface that the service must implement.
type UserLister interface {
	List(ctx context.Context) ([]models.UserDB, error)
}

// CreateUserRequest represents the JSON body for user creation
// swagger:model CreateUserRequest
type CreateUserRequest struct {
	// Username
	// required: true
	// default: alice
	Username string `json:"username"`
}

// UserResponse represents a user projection returned by the API
// swagger:model UserResponse
type UserResponse struct {
	// Username
	// default: alice
	Username string `json:"username"`

	// User id
	ID string `json:"id"`
}

// NewCreateUserHandler returns an HTTP handler that creates a user, or returns
// the existing one when the username is already taken.
// @Summary Create or fetch a user
// @Description Creates a user with the given username. Repeating the call with the same username returns the existing record unchanged.
// @Tags users
// @Accept json
// @Produce json
// @Param createUserRequest body handlers.CreateUserRequest true "User creation request"
// @Success 200 {object} handlers.UserResponse "Created or pre-existing user"
// @Failure 400 {object} handlers.ErrorResponse "Empty or missing username"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /api/users [post]
func NewCreateUserHandler(svc UserCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateUserRequest

		// A malformed body leaves the username empty and fails validation
		// below, matching the absent-username case.
		_ = json.NewDecoder(r.Body).Decode(&req)

		user, outcome, err := svc.Create(r.Context(), req.Username)
		if err != nil {
			writeError(w, err)
			return
		}

		if outcome == services.OutcomeCreated {
			logger.Log.Infow("user created", "username", user.Username, "id", user.UserID)
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(UserResponse{
			Username: user.Username,
			ID:       user.UserID.String(),
		})
	}
}

// NewListUsersHandler returns an HTTP handler that lists all users.
// @Summary List users
// @Description Returns all users projected to username and id, in store order.
// @Tags users
// @Produce json
// @Success 200 {array} handlers.UserResponse "All users"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /api/users [get]
func NewListUsersHandler(svc UserLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		users, err := svc.List(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}

		resp := make([]UserResponse, 0, len(users))
		for _, u := range users {
			resp = append(resp, UserResponse{
				Username: u.Username,
				ID:       u.UserID.String(),
			})
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(resp)
	}
}
