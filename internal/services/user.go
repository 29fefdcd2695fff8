package services

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/okarpov/exercise-tracker/internal/logger"
	"github.com/okarpov/exercise-tracker/internal/models"
	"github.com/okarpov/exercise-tracker/internal/repositories"
)

// Error variables
var (
	ErrUsernameRequired    = errors.New("username required")
	ErrDescriptionRequired = errors.New("description required")
	ErrInvalidDuration     = errors.New("duration required and must be a positive number")
	ErrUnknownUser         = errors.New("unknown userId")
)

// CreateOutcome tells callers how a create-or-fetch resolved, so they can
// branch on the result without inspecting error internals.
type CreateOutcome int

const (
	// OutcomeFailed means the operation errored; the user is nil.
	OutcomeFailed CreateOutcome = iota
	// OutcomeCreated means a new user record was inserted.
	OutcomeCreated
	// OutcomeAlreadyExisted means an existing record was returned, either
	// found up front or re-fetched after a concurrent-create conflict.
	OutcomeAlreadyExisted
)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByUsername(ctx context.Context, username string) (*models.UserDB, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.UserDB, error)
	List(ctx context.Context) ([]models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, username string) (uuid.UUID, error)
}

// UserService handles user creation and listing.
type UserService struct {
	reader UserReader
	writer UserWriter
}

// NewUserService creates a new UserService instance.
func NewUserService(reader UserReader, writer UserWriter) *UserService {
	return &UserService{
		reader: reader,
		writer: writer,
	}
}

// Create returns the user with the given username, creating it first when it
// does not exist yet. The call is idempotent: repeating it with the same
// username yields the same record.
//
// Lookup-then-insert is not atomic. When a concurrent creation wins the race,
// the insert fails with a uniqueness conflict and the now-existing record is
// re-fetched once instead of failing the request.
func (svc *UserService) Create(ctx context.Context, username string) (*models.UserDB, CreateOutcome, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, OutcomeFailed, ErrUsernameRequired
	}

	user, err := svc.reader.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to look up user", "username", username, "err", err)
		return nil, OutcomeFailed, err
	}
	if user != nil {
		return user, OutcomeAlreadyExisted, nil
	}

	id, err := svc.writer.Save(ctx, username)
	if errors.Is(err, repositories.ErrUsernameTaken) {
		user, err = svc.reader.GetByUsername(ctx, username)
		if err != nil || user == nil {
			logger.Log.Errorw("failed to re-fetch user after conflict", "username", username, "err", err)
			if err == nil {
				err = repositories.ErrUsernameTaken
			}
			return nil, OutcomeFailed, err
		}
		return user, OutcomeAlreadyExisted, nil
	}
	if err != nil {
		logger.Log.Errorw("failed to save user", "username", username, "err", err)
		return nil, OutcomeFailed, err
	}

	return &models.UserDB{UserID: id, Username: username}, OutcomeCreated, nil
}

// List returns all users in store order.
func (svc *UserService) List(ctx context.Context) ([]models.UserDB, error) {
	users, err := svc.reader.List(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list users", "err", err)
		return nil, err
	}
	return users, nil
}
