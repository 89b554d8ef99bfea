package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// User is a learner account together with its profile fields.
type User struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	FirstName    string
	LastName     string
	PhoneNumber  string
	ProfileImage string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// DisplayName joins first and last name, skipping empty parts.
func (u *User) DisplayName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

// ProfileUpdate holds the profile fields a learner may change.
// Nil fields are left untouched.
type ProfileUpdate struct {
	FirstName    *string
	LastName     *string
	PhoneNumber  *string
	ProfileImage *string
}

// RefreshToken represents a hashed refresh token stored in the database.
type RefreshToken struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	TokenHash string
	ExpiresAt time.Time
	CreatedAt time.Time
	RevokedAt *time.Time
}

// IsRevoked returns true if the token has been revoked.
func (t *RefreshToken) IsRevoked() bool {
	return t.RevokedAt != nil
}

// IsExpired returns true if the token has expired relative to now.
func (t *RefreshToken) IsExpired(now time.Time) bool {
	return t.ExpiresAt.Before(now)
}
