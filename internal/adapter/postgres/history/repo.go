// Package history implements the practice history repository using PostgreSQL.
// Listing filters are composed with squirrel; aggregates are computed in SQL.
package history

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/speakup-backend/internal/adapter/postgres"
	"github.com/heartmarshall/speakup-backend/internal/domain"
)

const (
	table   = "history_entries"
	columns = `id, user_id, word, recognized, score, source, audio_key, created_at`

	insertSQL = `
INSERT INTO history_entries (id, user_id, word, recognized, score, source, audio_key, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING ` + columns

	getByIDSQL = `
SELECT ` + columns + `
FROM history_entries
WHERE id = $1 AND user_id = $2`

	getByIDsSQL = `
SELECT ` + columns + `
FROM history_entries
WHERE user_id = $1 AND id = ANY($2)
ORDER BY created_at DESC, id`

	// Correct counts every entry with a positive score, not only passes.
	statsSQL = `
SELECT
    count(*),
    count(*) FILTER (WHERE score > 0),
    count(*) FILTER (WHERE audio_key IS NOT NULL AND audio_key <> '')
FROM history_entries
WHERE user_id = $1`

	updateScoreSQL = `
UPDATE history_entries SET score = $3
WHERE id = $1 AND user_id = $2`

	deleteByUserSQL = `
DELETE FROM history_entries
WHERE user_id = $1
RETURNING audio_key`

	deleteOlderThanSQL = `
DELETE FROM history_entries
WHERE created_at < $1
RETURNING audio_key`
)

// Repo provides history persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new history repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create inserts an attempt and returns the stored row.
func (r *Repo) Create(ctx context.Context, e domain.HistoryEntry) (*domain.HistoryEntry, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	created, err := scanEntry(q.QueryRow(ctx, insertSQL,
		e.ID, e.UserID, e.Word, e.Recognized, e.Score, string(e.Source), e.AudioKey,
		e.CreatedAt.UTC().Truncate(time.Microsecond),
	))
	if err != nil {
		return nil, postgres.MapError(err, "history_entry", e.ID)
	}
	return created, nil
}

// GetByID returns one of the user's entries.
// Entries of other users are reported as domain.ErrNotFound.
func (r *Repo) GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.HistoryEntry, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	e, err := scanEntry(q.QueryRow(ctx, getByIDSQL, id, userID))
	if err != nil {
		return nil, postgres.MapError(err, "history_entry", id)
	}
	return e, nil
}

// GetByIDs returns the user's entries among ids, newest first. Unknown or
// foreign ids are silently skipped.
func (r *Repo) GetByIDs(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) ([]domain.HistoryEntry, error) {
	if len(ids) == 0 {
		return []domain.HistoryEntry{}, nil
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	rows, err := q.Query(ctx, getByIDsSQL, userID, ids)
	if err != nil {
		return nil, postgres.MapError(err, "history_entry", nil)
	}
	return collectEntries(rows)
}

// List returns a page of the user's entries matching f, newest first, and
// the total number of matching entries. f is expected to be normalized.
func (r *Repo) List(ctx context.Context, userID uuid.UUID, f domain.HistoryFilter) ([]domain.HistoryEntry, int, error) {
	where := squirrel.And{squirrel.Eq{"user_id": userID}}
	if f.Word != "" {
		where = append(where, squirrel.Eq{"word": f.Word})
	}
	if f.Source != "" {
		where = append(where, squirrel.Eq{"source": string(f.Source)})
	}
	if f.Since != nil {
		where = append(where, squirrel.GtOrEq{"created_at": *f.Since})
	}

	countSQL, countArgs, err := postgres.Builder().
		Select("count(*)").From(table).Where(where).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count history: %w", err)
	}

	listSQL, listArgs, err := postgres.Builder().
		Select(columns).From(table).Where(where).
		OrderBy("created_at DESC", "id").
		Limit(uint64(f.Limit)).
		Offset(uint64(f.Offset)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list history: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)

	var total int
	if err := q.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, postgres.MapError(err, "history_entry", nil)
	}

	rows, err := q.Query(ctx, listSQL, listArgs...)
	if err != nil {
		return nil, 0, postgres.MapError(err, "history_entry", nil)
	}
	entries, err := collectEntries(rows)
	if err != nil {
		return nil, 0, err
	}

	return entries, total, nil
}

// Stats aggregates the user's history. Any positive score counts as a
// correct answer.
func (r *Repo) Stats(ctx context.Context, userID uuid.UUID) (domain.HistoryStats, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var s domain.HistoryStats
	if err := q.QueryRow(ctx, statsSQL, userID).Scan(&s.Total, &s.Correct, &s.Voice); err != nil {
		return domain.HistoryStats{}, postgres.MapError(err, "history_stats", userID)
	}
	return s, nil
}

// UpdateScore sets the score of one of the user's entries.
func (r *Repo) UpdateScore(ctx context.Context, userID, id uuid.UUID, score float64) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, updateScoreSQL, id, userID, score)
	if err != nil {
		return postgres.MapError(err, "history_entry", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("history_entry %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// DeleteByUser removes all of the user's entries. It returns the number of
// deleted rows and the audio keys they referenced.
func (r *Repo) DeleteByUser(ctx context.Context, userID uuid.UUID) (int, []string, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, deleteByUserSQL, userID)
	if err != nil {
		return 0, nil, postgres.MapError(err, "history_entry", nil)
	}
	return collectAudioKeys(rows)
}

// DeleteOlderThan removes every entry created before cutoff. It returns the
// number of deleted rows and the audio keys they referenced.
func (r *Repo) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int, []string, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, deleteOlderThanSQL, cutoff)
	if err != nil {
		return 0, nil, postgres.MapError(err, "history_entry", nil)
	}
	return collectAudioKeys(rows)
}

func collectEntries(rows pgx.Rows) ([]domain.HistoryEntry, error) {
	defer rows.Close()

	entries := []domain.HistoryEntry{}
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, postgres.MapError(err, "history_entry", nil)
		}
		entries = append(entries, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "history_entry", nil)
	}
	return entries, nil
}

func collectAudioKeys(rows pgx.Rows) (int, []string, error) {
	defer rows.Close()

	var (
		deleted int
		keys    []string
	)
	for rows.Next() {
		var key *string
		if err := rows.Scan(&key); err != nil {
			return deleted, keys, postgres.MapError(err, "history_entry", nil)
		}
		deleted++
		if key != nil && *key != "" {
			keys = append(keys, *key)
		}
	}
	if err := rows.Err(); err != nil {
		return deleted, keys, postgres.MapError(err, "history_entry", nil)
	}
	return deleted, keys, nil
}

func scanEntry(row pgx.Row) (*domain.HistoryEntry, error) {
	var (
		e      domain.HistoryEntry
		source string
	)
	if err := row.Scan(&e.ID, &e.UserID, &e.Word, &e.Recognized, &e.Score, &source, &e.AudioKey, &e.CreatedAt); err != nil {
		return nil, err
	}
	e.Source = domain.AttemptSource(source)
	return &e, nil
}
