package practice

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/heartmarshall/speakup-backend/internal/domain"
)

const (
	maxWordLen  = 100
	maxTypedLen = 256

	defaultSessionLimit = 20
	maxSessionLimit     = 100
)

// CheckAnswerInput is one typed attempt at a word.
type CheckAnswerInput struct {
	Word  string
	Typed string
}

// Validate validates the check input. Blank attempts are rejected.
func (i CheckAnswerInput) Validate() error {
	var errs []domain.FieldError
	errs = checkText(errs, "word", i.Word, maxWordLen)
	errs = checkText(errs, "typed", i.Typed, maxTypedLen)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// AnswerInput is one answer of a finished game. Typed is empty for games
// that do not collect text, such as matching.
type AnswerInput struct {
	Word    string
	Typed   string
	Correct bool
}

// SaveSessionInput holds a finished game.
type SaveSessionInput struct {
	GameType domain.GameType
	Answers  []AnswerInput
}

// Validate validates the session input against maxAnswers.
func (i SaveSessionInput) Validate(maxAnswers int) error {
	var errs []domain.FieldError

	if i.GameType == "" {
		errs = append(errs, domain.FieldError{Field: "game_type", Message: "required"})
	} else if !i.GameType.IsValid() {
		errs = append(errs, domain.FieldError{Field: "game_type", Message: "unknown game type"})
	}

	switch {
	case len(i.Answers) == 0:
		errs = append(errs, domain.FieldError{Field: "answers", Message: "at least one answer is required"})
	case len(i.Answers) > maxAnswers:
		errs = append(errs, domain.FieldError{Field: "answers", Message: fmt.Sprintf("at most %d answers", maxAnswers)})
	default:
		for idx, a := range i.Answers {
			errs = checkText(errs, fmt.Sprintf("answers[%d].word", idx), a.Word, maxWordLen)
			if utf8.RuneCountInString(a.Typed) > maxTypedLen {
				errs = append(errs, domain.FieldError{Field: fmt.Sprintf("answers[%d].typed", idx), Message: "too long"})
			}
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ListSessionsInput pages through saved sessions.
type ListSessionsInput struct {
	Limit  int
	Offset int
}

func (i ListSessionsInput) normalized() ListSessionsInput {
	if i.Limit <= 0 {
		i.Limit = defaultSessionLimit
	}
	if i.Limit > maxSessionLimit {
		i.Limit = maxSessionLimit
	}
	if i.Offset < 0 {
		i.Offset = 0
	}
	return i
}

func checkText(errs []domain.FieldError, field, v string, maxLen int) []domain.FieldError {
	switch {
	case strings.TrimSpace(v) == "":
		return append(errs, domain.FieldError{Field: field, Message: "required"})
	case utf8.RuneCountInString(v) > maxLen:
		return append(errs, domain.FieldError{Field: field, Message: "too long"})
	}
	return errs
}
