package auth

import (
	"strings"
	"unicode/utf8"

	"github.com/heartmarshall/speakup-backend/internal/domain"
)

const (
	minPasswordLen = 6
	// bcrypt ignores bytes past 72.
	maxPasswordBytes = 72
	maxEmailLen      = 254
	maxNameLen       = 100
	maxPhoneLen      = 32
	maxURLLen        = 2048
)

// RegisterInput holds parameters for the sign-up operation.
type RegisterInput struct {
	Email        string
	Password     string
	FirstName    string
	LastName     string
	PhoneNumber  string
	ProfileImage string
}

func (i *RegisterInput) normalize() {
	i.Email = domain.NormalizeText(i.Email)
	i.FirstName = strings.TrimSpace(i.FirstName)
	i.LastName = strings.TrimSpace(i.LastName)
	i.PhoneNumber = strings.TrimSpace(i.PhoneNumber)
	i.ProfileImage = strings.TrimSpace(i.ProfileImage)
}

// Validate validates the register input.
func (i RegisterInput) Validate() error {
	var errs []domain.FieldError

	errs = appendEmailErrors(errs, i.Email)

	if i.Password == "" {
		errs = append(errs, domain.FieldError{Field: "password", Message: "required"})
	} else if utf8.RuneCountInString(i.Password) < minPasswordLen {
		errs = append(errs, domain.FieldError{Field: "password", Message: "must be at least 6 characters"})
	} else if len(i.Password) > maxPasswordBytes {
		errs = append(errs, domain.FieldError{Field: "password", Message: "too long"})
	}

	errs = appendRequired(errs, "first_name", i.FirstName, maxNameLen)
	errs = appendRequired(errs, "last_name", i.LastName, maxNameLen)
	errs = appendRequired(errs, "phone_number", i.PhoneNumber, maxPhoneLen)

	if len(i.ProfileImage) > maxURLLen {
		errs = append(errs, domain.FieldError{Field: "profile_image", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// LoginInput holds parameters for the sign-in operation.
type LoginInput struct {
	Email    string
	Password string
}

// Validate validates the login input.
func (i LoginInput) Validate() error {
	var errs []domain.FieldError

	errs = appendEmailErrors(errs, i.Email)
	if i.Password == "" {
		errs = append(errs, domain.FieldError{Field: "password", Message: "required"})
	} else if len(i.Password) > maxPasswordBytes {
		errs = append(errs, domain.FieldError{Field: "password", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// RefreshInput holds parameters for token refresh operation.
type RefreshInput struct {
	RefreshToken string
}

// Validate validates the refresh input.
func (i RefreshInput) Validate() error {
	var errs []domain.FieldError

	if i.RefreshToken == "" {
		errs = append(errs, domain.FieldError{Field: "refresh_token", Message: "required"})
	} else if len(i.RefreshToken) > 512 {
		errs = append(errs, domain.FieldError{Field: "refresh_token", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func appendEmailErrors(errs []domain.FieldError, email string) []domain.FieldError {
	switch {
	case email == "":
		return append(errs, domain.FieldError{Field: "email", Message: "required"})
	case len(email) > maxEmailLen:
		return append(errs, domain.FieldError{Field: "email", Message: "too long"})
	case !looksLikeEmail(email):
		return append(errs, domain.FieldError{Field: "email", Message: "invalid email"})
	}
	return errs
}

func appendRequired(errs []domain.FieldError, field, value string, maxLen int) []domain.FieldError {
	switch {
	case value == "":
		return append(errs, domain.FieldError{Field: field, Message: "required"})
	case utf8.RuneCountInString(value) > maxLen:
		return append(errs, domain.FieldError{Field: field, Message: "too long"})
	}
	return errs
}

// looksLikeEmail checks for a single @ with a non-empty local part and a
// dotted domain.
func looksLikeEmail(s string) bool {
	at := strings.IndexByte(s, '@')
	if at <= 0 || at != strings.LastIndexByte(s, '@') || strings.ContainsAny(s, " \t") {
		return false
	}
	host := s[at+1:]
	dot := strings.LastIndexByte(host, '.')
	return dot > 0 && dot < len(host)-1
}
