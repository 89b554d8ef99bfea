package profile

import (
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/heartmarshall/speakup-backend/internal/domain"
)

// UpdateProfileInput holds the profile fields to change.
// Nil fields are left untouched.
type UpdateProfileInput struct {
	FirstName    *string
	LastName     *string
	PhoneNumber  *string
	ProfileImage *string
}

func (i *UpdateProfileInput) normalize() {
	for _, p := range []*string{i.FirstName, i.LastName, i.PhoneNumber, i.ProfileImage} {
		if p != nil {
			*p = strings.TrimSpace(*p)
		}
	}
}

// Validate validates the update profile input. Names and phone number may
// not be cleared; the profile image may be cleared with "".
func (i UpdateProfileInput) Validate() error {
	var errs []domain.FieldError

	errs = checkRequired(errs, "first_name", i.FirstName, 100)
	errs = checkRequired(errs, "last_name", i.LastName, 100)
	errs = checkRequired(errs, "phone_number", i.PhoneNumber, 32)

	if i.ProfileImage != nil && *i.ProfileImage != "" {
		if len(*i.ProfileImage) > 2048 {
			errs = append(errs, domain.FieldError{Field: "profile_image", Message: "too long"})
		} else if u, err := url.Parse(*i.ProfileImage); err != nil || u.Scheme == "" {
			errs = append(errs, domain.FieldError{Field: "profile_image", Message: "must be an absolute URL"})
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func checkRequired(errs []domain.FieldError, field string, v *string, maxLen int) []domain.FieldError {
	if v == nil {
		return errs
	}
	switch {
	case *v == "":
		return append(errs, domain.FieldError{Field: field, Message: "cannot be empty"})
	case utf8.RuneCountInString(*v) > maxLen:
		return append(errs, domain.FieldError{Field: field, Message: "too long"})
	}
	return errs
}
