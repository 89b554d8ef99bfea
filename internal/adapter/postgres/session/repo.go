// Package session implements the PracticeSession repository using PostgreSQL.
// Answers are stored as a JSONB array.
package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/speakup-backend/internal/adapter/postgres"
	"github.com/heartmarshall/speakup-backend/internal/domain"
)

// Repo provides practice session persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new session repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const sessionColumns = `id, user_id, game_type, answers, correct, total, percentage, created_at`

const createSQL = `
INSERT INTO practice_sessions (id, user_id, game_type, answers, correct, total, percentage, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING ` + sessionColumns

const countByUserIDSQL = `
SELECT count(*) FROM practice_sessions WHERE user_id = $1`

const listByUserIDSQL = `
SELECT ` + sessionColumns + `
FROM practice_sessions
WHERE user_id = $1
ORDER BY created_at DESC, id
LIMIT $2 OFFSET $3`

// Create inserts a finished practice session and returns the stored row.
func (r *Repo) Create(ctx context.Context, s domain.PracticeSession) (*domain.PracticeSession, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	answers, err := marshalAnswers(s.Answers)
	if err != nil {
		return nil, fmt.Errorf("session %s: marshal answers: %w", s.ID, err)
	}

	row := querier.QueryRow(ctx, createSQL,
		s.ID,
		s.UserID,
		string(s.GameType),
		answers,
		s.Correct,
		s.Total,
		s.Percentage,
		s.CreatedAt.UTC().Truncate(time.Microsecond),
	)

	created, err := scanSession(row)
	if err != nil {
		return nil, postgres.MapError(err, "session", s.ID)
	}
	return created, nil
}

// ListByUser returns a page of sessions, newest first, and the total count.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]domain.PracticeSession, int, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var total int
	if err := querier.QueryRow(ctx, countByUserIDSQL, userID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count sessions by user_id: %w", err)
	}

	rows, err := querier.Query(ctx, listByUserIDSQL, userID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list sessions by user_id: %w", err)
	}
	defer rows.Close()

	sessions := []domain.PracticeSession{}
	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("list sessions by user_id: %w", err)
		}
		sessions = append(sessions, *s)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("list sessions by user_id: %w", err)
	}

	return sessions, total, nil
}

func scanSession(row pgx.Row) (*domain.PracticeSession, error) {
	var (
		s           domain.PracticeSession
		gameType    string
		answersJSON []byte
	)

	if err := row.Scan(&s.ID, &s.UserID, &gameType, &answersJSON, &s.Correct, &s.Total, &s.Percentage, &s.CreatedAt); err != nil {
		return nil, err
	}
	s.GameType = domain.GameType(gameType)

	answers, err := unmarshalAnswers(answersJSON)
	if err != nil {
		return nil, fmt.Errorf("session %s: %w", s.ID, err)
	}
	s.Answers = answers

	return &s, nil
}

// answerJSON is the stored shape of domain.Answer. Domain types carry no
// json tags, so the repo layer owns the serialization.
type answerJSON struct {
	Word    string  `json:"word"`
	Typed   string  `json:"typed"`
	Correct bool    `json:"correct"`
	Score   float64 `json:"score"`
}

func marshalAnswers(answers []domain.Answer) ([]byte, error) {
	out := make([]answerJSON, len(answers))
	for i, a := range answers {
		out[i] = answerJSON{Word: a.Word, Typed: a.Typed, Correct: a.Correct, Score: a.Score}
	}
	return json.Marshal(out)
}

func unmarshalAnswers(data []byte) ([]domain.Answer, error) {
	if len(data) == 0 {
		return []domain.Answer{}, nil
	}

	var in []answerJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return nil, fmt.Errorf("unmarshal answers: %w", err)
	}

	out := make([]domain.Answer, len(in))
	for i, a := range in {
		out[i] = domain.Answer{Word: a.Word, Typed: a.Typed, Correct: a.Correct, Score: a.Score}
	}
	return out, nil
}
