package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/okarpov/exercise-tracker/internal/logger"
	"github.com/okarpov/exercise-tracker/internal/models"
)

// ExerciseWriter defines write operations for exercises.
type ExerciseWriter interface {
	Save(ctx context.Context, userID uuid.UUID, description string, duration float64, date time.Time) (uuid.UUID, error)
}

// ExerciseReader defines read operations for exercises.
type ExerciseReader interface {
	ListByUserID(ctx context.Context, userID uuid.UUID, from, to *time.Time, limit *int) ([]models.ExerciseDB, error)
}

// ExerciseService handles adding exercises and retrieving a user's log.
type ExerciseService struct {
	users  UserReader
	reader ExerciseReader
	writer ExerciseWriter
}

// NewExerciseService creates a new ExerciseService instance.
func NewExerciseService(users UserReader, reader ExerciseReader, writer ExerciseWriter) *ExerciseService {
	return &ExerciseService{
		users:  users,
		reader: reader,
		writer: writer,
	}
}

// resolveUser maps any id that does not resolve to an existing user, including
// an unparseable one, to ErrUnknownUser.
func (svc *ExerciseService) resolveUser(ctx context.Context, userID string) (*models.UserDB, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return nil, ErrUnknownUser
	}
	user, err := svc.users.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to look up user", "userID", userID, "err", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUnknownUser
	}
	return user, nil
}

// Add validates and persists one exercise for the given user, returning the
// stored exercise and its owner. Validation happens before the store mutation.
func (svc *ExerciseService) Add(ctx context.Context, userID, description string, duration float64, date time.Time) (*models.ExerciseDB, *models.UserDB, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return nil, nil, ErrDescriptionRequired
	}
	if duration <= 0 {
		return nil, nil, ErrInvalidDuration
	}

	user, err := svc.resolveUser(ctx, userID)
	if err != nil {
		return nil, nil, err
	}

	id, err := svc.writer.Save(ctx, user.UserID, description, duration, date)
	if err != nil {
		logger.Log.Errorw("failed to save exercise", "userID", user.UserID, "err", err)
		return nil, nil, err
	}

	exercise := &models.ExerciseDB{
		ExerciseID:  id,
		UserID:      user.UserID,
		Description: description,
		Duration:    duration,
		Date:        date,
	}
	return exercise, user, nil
}

// Log returns the user's exercises sorted by date ascending, filtered by the
// optional inclusive bounds and truncated to the optional limit.
func (svc *ExerciseService) Log(ctx context.Context, userID string, from, to *time.Time, limit *int) (*models.UserDB, []models.ExerciseDB, error) {
	user, err := svc.resolveUser(ctx, userID)
	if err != nil {
		return nil, nil, err
	}

	exercises, err := svc.reader.ListByUserID(ctx, user.UserID, from, to, limit)
	if err != nil {
		logger.Log.Errorw("failed to list exercises", "userID", user.UserID, "err", err)
		return nil, nil, err
	}
	return user, exercises, nil
}
