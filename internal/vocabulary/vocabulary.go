// Package vocabulary reads practice word lists from YAML. A default list is
// embedded in the binary.
package vocabulary

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/heartmarshall/speakup-backend/internal/domain"
)

//go:embed words.yaml
var defaultWords []byte

type file struct {
	Words []entry `yaml:"words"`
}

type entry struct {
	Word       string `yaml:"word"`
	Display    string `yaml:"display"`
	Difficulty string `yaml:"difficulty"`
	Phonetic   string `yaml:"phonetic"`
	Hint       string `yaml:"hint"`
	Image      string `yaml:"image"`
	Audio      string `yaml:"audio"`
}

// Default returns the embedded word list.
func Default() ([]domain.Word, error) {
	return Parse(bytes.NewReader(defaultWords))
}

// LoadFile parses the word list at path.
func LoadFile(path string) ([]domain.Word, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("vocabulary: open %s: %w", path, err)
	}
	defer f.Close()

	words, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return words, nil
}

// Parse decodes a word list. Words are normalized, missing display text
// defaults to the word itself, a missing difficulty defaults to easy, and
// Position follows file order. Invalid or duplicate entries are reported
// together as a *domain.ValidationError.
func Parse(r io.Reader) ([]domain.Word, error) {
	var f file
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, domain.NewValidationError("words", "list is empty")
		}
		return nil, fmt.Errorf("vocabulary: decode yaml: %w", err)
	}
	if len(f.Words) == 0 {
		return nil, domain.NewValidationError("words", "list is empty")
	}

	var errs []domain.FieldError
	seen := make(map[string]int, len(f.Words))
	words := make([]domain.Word, 0, len(f.Words))

	for i, e := range f.Words {
		field := fmt.Sprintf("words[%d]", i)

		text := domain.NormalizeText(e.Word)
		if text == "" {
			errs = append(errs, domain.FieldError{Field: field + ".word", Message: "required"})
			continue
		}
		if prev, dup := seen[text]; dup {
			errs = append(errs, domain.FieldError{
				Field:   field + ".word",
				Message: fmt.Sprintf("duplicate of words[%d]", prev),
			})
			continue
		}
		seen[text] = i

		difficulty := domain.DifficultyEasy
		if e.Difficulty != "" {
			difficulty = domain.Difficulty(strings.ToLower(strings.TrimSpace(e.Difficulty)))
		}
		if !difficulty.IsValid() {
			errs = append(errs, domain.FieldError{
				Field:   field + ".difficulty",
				Message: fmt.Sprintf("unknown difficulty %q", e.Difficulty),
			})
			continue
		}

		display := strings.TrimSpace(e.Display)
		if display == "" {
			display = text
		}

		words = append(words, domain.Word{
			Text:       text,
			Display:    display,
			Difficulty: difficulty,
			Phonetic:   strings.TrimSpace(e.Phonetic),
			Hint:       strings.TrimSpace(e.Hint),
			ImageURL:   optional(e.Image),
			AudioURL:   optional(e.Audio),
			Position:   len(words),
		})
	}

	if len(errs) > 0 {
		return nil, domain.NewValidationErrors(errs)
	}
	return words, nil
}

func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
