package models

import (
	"time"

	"github.com/google/uuid"
)

// ExerciseDB represents an exercise record in the database.
// Date is a calendar date (DATE column), independent of time of day.
type ExerciseDB struct {
	ExerciseID  uuid.UUID `db:"exercise_id"` // Primary key, generated by the store
	UserID      uuid.UUID `db:"user_id"`     // Owning user
	Description string    `db:"description"`
	Duration    float64   `db:"duration"` // Minutes
	Date        time.Time `db:"date"`
	CreatedAt   time.Time `db:"created_at"`
}
