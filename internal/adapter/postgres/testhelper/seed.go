package testhelper

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/speakup-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

func now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

// SeedUser creates a learner with a throwaway password hash.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()

	suffix := uniqueSuffix()
	ts := now()
	user := domain.User{
		ID:           uuid.New(),
		Email:        "kid-" + suffix + "@example.com",
		PasswordHash: "$2a$04$seeded.hash." + suffix,
		FirstName:    "Test",
		LastName:     "Kid " + suffix,
		CreatedAt:    ts,
		UpdatedAt:    ts,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO users (id, email, password_hash, first_name, last_name, phone_number, profile_image, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		user.ID, user.Email, user.PasswordHash, user.FirstName, user.LastName,
		user.PhoneNumber, user.ProfileImage, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser: %v", err)
	}

	return user
}

// SeedWord creates a vocabulary word with a unique text derived from base.
func SeedWord(t *testing.T, pool *pgxpool.Pool, base string, difficulty domain.Difficulty) domain.Word {
	t.Helper()

	ts := now()
	text := domain.NormalizeText(base) + "-" + uniqueSuffix()
	w := domain.Word{
		ID:         uuid.New(),
		Text:       text,
		Display:    text,
		Difficulty: difficulty,
		Phonetic:   "/" + base + "/",
		Hint:       "say " + base,
		CreatedAt:  ts,
		UpdatedAt:  ts,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO words (id, text, display, difficulty, phonetic, hint, position, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		w.ID, w.Text, w.Display, string(w.Difficulty), w.Phonetic, w.Hint, w.Position, w.CreatedAt, w.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedWord: %v", err)
	}

	return w
}

// SeedHistory inserts a history entry for userID. A nil score leaves the
// entry unscored; a non-empty audioKey marks it as a recording.
func SeedHistory(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, word string, score *float64, audioKey string, createdAt time.Time) domain.HistoryEntry {
	t.Helper()

	e := domain.HistoryEntry{
		ID:         uuid.New(),
		UserID:     userID,
		Word:       word,
		Recognized: word,
		Score:      score,
		Source:     domain.AttemptTyped,
		CreatedAt:  createdAt.UTC().Truncate(time.Microsecond),
	}
	if audioKey != "" {
		e.AudioKey = &audioKey
		e.Source = domain.AttemptRecording
		e.Recognized = ""
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO history_entries (id, user_id, word, recognized, score, source, audio_key, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		e.ID, e.UserID, e.Word, e.Recognized, e.Score, string(e.Source), e.AudioKey, e.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedHistory: %v", err)
	}

	return e
}

// SeedSession inserts a finished practice session for userID.
func SeedSession(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, answers []domain.Answer, createdAt time.Time) domain.PracticeSession {
	t.Helper()

	s := domain.NewPracticeSession(userID, domain.GameTypePronunciationPractice, answers, createdAt.UTC().Truncate(time.Microsecond))

	type answerJSON struct {
		Word    string  `json:"word"`
		Typed   string  `json:"typed"`
		Correct bool    `json:"correct"`
		Score   float64 `json:"score"`
	}
	rows := make([]answerJSON, len(s.Answers))
	for i, a := range s.Answers {
		rows[i] = answerJSON{Word: a.Word, Typed: a.Typed, Correct: a.Correct, Score: a.Score}
	}

	raw, err := json.Marshal(rows)
	if err != nil {
		t.Fatalf("testhelper: SeedSession marshal: %v", err)
	}

	_, err = pool.Exec(context.Background(),
		`INSERT INTO practice_sessions (id, user_id, game_type, answers, correct, total, percentage, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		s.ID, s.UserID, string(s.GameType), raw, s.Correct, s.Total, s.Percentage, s.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedSession: %v", err)
	}

	return s
}
