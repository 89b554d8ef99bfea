// Package word implements the vocabulary repository using PostgreSQL.
package word

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/speakup-backend/internal/adapter/postgres"
	"github.com/heartmarshall/speakup-backend/internal/domain"
)

const columns = `id, text, display, difficulty, phonetic, hint, image_url, audio_url, position, created_at, updated_at`

const getByTextSQL = `SELECT ` + columns + ` FROM words WHERE text = $1`

// upsertSQL keeps the original id and created_at of an existing word.
const upsertSQL = `
INSERT INTO words (id, text, display, difficulty, phonetic, hint, image_url, audio_url, position, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $10)
ON CONFLICT (text) DO UPDATE SET
    display    = EXCLUDED.display,
    difficulty = EXCLUDED.difficulty,
    phonetic   = EXCLUDED.phonetic,
    hint       = EXCLUDED.hint,
    image_url  = EXCLUDED.image_url,
    audio_url  = EXCLUDED.audio_url,
    position   = EXCLUDED.position,
    updated_at = EXCLUDED.updated_at`

// Repo provides vocabulary persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new word repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// List returns words ordered by position then text. An empty difficulty
// returns every word.
func (r *Repo) List(ctx context.Context, difficulty domain.Difficulty) ([]domain.Word, error) {
	b := postgres.Builder().
		Select(columns).
		From("words").
		OrderBy("position", "text")
	if difficulty != "" {
		b = b.Where("difficulty = ?", string(difficulty))
	}

	sql, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list words: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, "word", nil)
	}
	defer rows.Close()

	words := []domain.Word{}
	for rows.Next() {
		w, err := scanWord(rows)
		if err != nil {
			return nil, postgres.MapError(err, "word", nil)
		}
		words = append(words, *w)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "word", nil)
	}

	return words, nil
}

// GetByText returns a word by its normalized text.
func (r *Repo) GetByText(ctx context.Context, text string) (*domain.Word, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	w, err := scanWord(q.QueryRow(ctx, getByTextSQL, text))
	if err != nil {
		return nil, postgres.MapError(err, "word", text)
	}
	return w, nil
}

// Upsert inserts or updates words keyed by text using pgx.Batch and returns
// the number of rows written.
func (r *Repo) Upsert(ctx context.Context, words []domain.Word) (int, error) {
	if len(words) == 0 {
		return 0, nil
	}

	batch := &pgx.Batch{}
	for _, w := range words {
		batch.Queue(upsertSQL,
			w.ID, w.Text, w.Display, string(w.Difficulty), w.Phonetic, w.Hint,
			w.ImageURL, w.AudioURL, w.Position, w.UpdatedAt,
		)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	results := q.SendBatch(ctx, batch)
	defer results.Close()

	var written int
	for i := range batch.Len() {
		tag, err := results.Exec()
		if err != nil {
			return written, postgres.MapError(err, "word", words[i].Text)
		}
		written += int(tag.RowsAffected())
	}

	return written, nil
}

func scanWord(row pgx.Row) (*domain.Word, error) {
	var (
		w          domain.Word
		difficulty string
	)
	err := row.Scan(
		&w.ID, &w.Text, &w.Display, &difficulty, &w.Phonetic, &w.Hint,
		&w.ImageURL, &w.AudioURL, &w.Position, &w.CreatedAt, &w.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	w.Difficulty = domain.Difficulty(difficulty)
	return &w, nil
}
