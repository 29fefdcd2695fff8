package repositories

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/okarpov/exercise-tracker/internal/logger"
	"github.com/okarpov/exercise-tracker/internal/models"
)

// ExerciseWriteRepository handles exercise write operations
type ExerciseWriteRepository struct {
	db *sqlx.DB
}

func NewExerciseWriteRepository(db *sqlx.DB) *ExerciseWriteRepository {
	return &ExerciseWriteRepository{db: db}
}

// Save inserts a new exercise for the given user and returns the
// store-generated id.
func (r *ExerciseWriteRepository) Save(ctx context.Context, userID uuid.UUID, description string, duration float64, date time.Time) (uuid.UUID, error) {
	const query = `
		INSERT INTO exercises (user_id, description, duration, date)
		VALUES ($1, $2, $3, $4)
		RETURNING exercise_id
	`
	args := []any{userID, description, duration, date}

	var id uuid.UUID
	err := r.db.GetContext(ctx, &id, query, args...)

	logger.Log.Infow("exercise insert",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", id,
		"error", err,
	)

	if err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

// ExerciseReadRepository handles exercise read operations
type ExerciseReadRepository struct {
	db *sqlx.DB
}

func NewExerciseReadRepository(db *sqlx.DB) *ExerciseReadRepository {
	return &ExerciseReadRepository{db: db}
}

// ListByUserID returns a user's exercises sorted by date ascending.
// Nil bounds are omitted from the filter; both bounds are inclusive.
// A nil limit means no truncation (LIMIT NULL is LIMIT ALL in Postgres).
func (r *ExerciseReadRepository) ListByUserID(ctx context.Context, userID uuid.UUID, from, to *time.Time, limit *int) ([]models.ExerciseDB, error) {
	const query = `
		SELECT exercise_id, user_id, description, duration, date, created_at
		FROM exercises
		WHERE user_id = $1
		  AND ($2::DATE IS NULL OR date >= $2)
		  AND ($3::DATE IS NULL OR date <= $3)
		ORDER BY date ASC
		LIMIT $4
	`
	args := []any{userID, from, to, limit}

	var exercises []models.ExerciseDB
	err := r.db.SelectContext(ctx, &exercises, query, args...)

	logger.Log.Infow("exercise select",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", len(exercises),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return exercises, nil
}
