package recording

import (
	"fmt"
	"io"
	"mime"
	"path"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/speakup-backend/internal/domain"
)

const defaultExt = ".wav"

// SubmitInput is one uploaded recording.
type SubmitInput struct {
	Word        string
	Filename    string
	ContentType string
	Size        int64
	Body        io.Reader
}

// Validate checks the upload against maxBytes.
func (i SubmitInput) Validate(maxBytes int64) error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.Word) == "" {
		errs = append(errs, domain.FieldError{Field: "word", Message: "required"})
	}
	if i.Body == nil || i.Size <= 0 {
		errs = append(errs, domain.FieldError{Field: "file", Message: "required"})
	} else if maxBytes > 0 && i.Size > maxBytes {
		errs = append(errs, domain.FieldError{Field: "file", Message: fmt.Sprintf("must be at most %d bytes", maxBytes)})
	}
	if !isAudio(i.ContentType) {
		errs = append(errs, domain.FieldError{Field: "file", Message: "must be an audio file"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// AnalyzeInput selects recordings by history entry ID.
type AnalyzeInput struct {
	EntryIDs []uuid.UUID
}

// Validate checks the batch against maxBatch.
func (i AnalyzeInput) Validate(maxBatch int) error {
	switch {
	case len(i.EntryIDs) == 0:
		return domain.NewValidationError("entry_ids", "at least one recording is required")
	case maxBatch > 0 && len(i.EntryIDs) > maxBatch:
		return domain.NewValidationError("entry_ids", fmt.Sprintf("at most %d recordings", maxBatch))
	}

	seen := make(map[uuid.UUID]struct{}, len(i.EntryIDs))
	for _, id := range i.EntryIDs {
		if _, dup := seen[id]; dup {
			return domain.NewValidationError("entry_ids", "duplicate id "+id.String())
		}
		seen[id] = struct{}{}
	}
	return nil
}

func isAudio(contentType string) bool {
	mt, _, err := mime.ParseMediaType(contentType)
	return err == nil && strings.HasPrefix(mt, "audio/")
}

// extension returns the lowercased extension of filename, or the default
// when it has none.
func extension(filename string) string {
	ext := strings.ToLower(path.Ext(filename))
	if ext == "" || len(ext) > 8 {
		return defaultExt
	}
	return ext
}

func objectKey(userID, entryID uuid.UUID, ext string) string {
	return "recordings/" + userID.String() + "/" + entryID.String() + ext
}
