package models

import (
	"time"

	"github.com/google/uuid"
)

// UserDB represents a user record in the database
type UserDB struct {
	UserID    uuid.UUID `db:"user_id"`    // Primary key, generated by the store
	Username  string    `db:"username"`   // Unique username
	CreatedAt time.Time `db:"created_at"` // Creation timestamp
}
