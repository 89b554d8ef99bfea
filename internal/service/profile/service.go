// Package profile serves the learner's own profile document.
package profile

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/speakup-backend/internal/domain"
)

// profileStore defines the profile persistence needed by the service.
type profileStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	UpdateProfile(ctx context.Context, id uuid.UUID, upd domain.ProfileUpdate) (*domain.User, error)
}

// Service implements profile operations.
type Service struct {
	log   *slog.Logger
	users profileStore
}

// NewService creates a new profile service instance.
func NewService(logger *slog.Logger, users profileStore) *Service {
	return &Service{
		log:   logger.With("service", "profile"),
		users: users,
	}
}
