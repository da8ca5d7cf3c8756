package models

import (
	"time"

	"github.com/google/uuid"
)

// User roles
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// UserDB represents a user record in the database
type UserDB struct {
	UserID       uuid.UUID `json:"id" db:"user_id"`            // Primary key
	Email        string    `json:"email" db:"email"`           // Unique email, used as login
	PasswordHash string    `json:"-" db:"password_hash"`       // Hashed password
	Role         string    `json:"role" db:"role"`             // Role: user or admin
	IsBlocked    bool      `json:"is_blocked" db:"is_blocked"` // Blocked users cannot log in
	CreatedAt    time.Time `json:"created_at" db:"created_at"` // Creation timestamp
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"` // Last update timestamp
}
