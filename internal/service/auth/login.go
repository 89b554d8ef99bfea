package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/speakup-backend/internal/auth"
	"github.com/heartmarshall/speakup-backend/internal/domain"
)

// Login authenticates a learner with email and password.
// Returns ErrUnauthorized if the email is unknown or the password is wrong.
func (s *Service) Login(ctx context.Context, input LoginInput) (*AuthResult, error) {
	input.Email = domain.NormalizeText(input.Email)

	if err := input.Validate(); err != nil {
		return nil, err
	}

	user, err := s.users.GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("auth.Login get user: %w", err)
	}

	if err := auth.ComparePassword(user.PasswordHash, input.Password); err != nil {
		if !errors.Is(err, auth.ErrPasswordMismatch) {
			s.log.WarnContext(ctx, "stored password hash unusable",
				slog.String("user_id", user.ID.String()),
				slog.String("error", err.Error()))
		}
		return nil, domain.ErrUnauthorized
	}

	result, err := s.issueTokens(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("auth.Login issue tokens: %w", err)
	}

	s.log.InfoContext(ctx, "user logged in", slog.String("user_id", user.ID.String()))
	return result, nil
}
