package seeder

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/speakup-backend/internal/domain"
	"github.com/heartmarshall/speakup-backend/internal/vocabulary"
)

const defaultBatchSize = 200

// Result holds the outcome of a seeding run.
type Result struct {
	Parsed   int
	Written  int
	Batches  int
	Duration time.Duration
}

// Pipeline reads a word list and writes it in batches.
type Pipeline struct {
	log  *slog.Logger
	repo WordRepo
	cfg  Config
	now  func() time.Time
}

// NewPipeline creates a new Pipeline.
func NewPipeline(log *slog.Logger, repo WordRepo, cfg Config) *Pipeline {
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = defaultBatchSize
	}
	return &Pipeline{
		log:  log.With("component", "seeder"),
		repo: repo,
		cfg:  cfg,
		now:  time.Now,
	}
}

// Run loads the configured word list and upserts it. In dry-run mode the list
// is only parsed and validated. A failing batch stops the run; batches
// already written stay written.
func (p *Pipeline) Run(ctx context.Context) (Result, error) {
	start := time.Now()

	words, err := p.load()
	if err != nil {
		return Result{}, err
	}

	res := Result{Parsed: len(words)}
	p.log.InfoContext(ctx, "vocabulary parsed",
		slog.Int("words", len(words)),
		slog.String("source", p.source()),
	)

	if p.cfg.DryRun {
		res.Duration = time.Since(start)
		p.log.InfoContext(ctx, "dry run, skipping writes")
		return res, nil
	}

	now := p.now()
	for i := range words {
		words[i].ID = uuid.New()
		words[i].CreatedAt = now
		words[i].UpdatedAt = now
	}

	for lo := 0; lo < len(words); lo += p.cfg.BatchSize {
		if err := ctx.Err(); err != nil {
			return res, err
		}

		hi := min(lo+p.cfg.BatchSize, len(words))
		n, err := p.repo.Upsert(ctx, words[lo:hi])
		res.Written += n
		if err != nil {
			return res, fmt.Errorf("seeder: upsert batch %d: %w", res.Batches+1, err)
		}
		res.Batches++

		p.log.DebugContext(ctx, "batch written", slog.Int("batch", res.Batches), slog.Int("rows", n))
	}

	res.Duration = time.Since(start)
	p.log.InfoContext(ctx, "vocabulary seeded",
		slog.Int("written", res.Written),
		slog.Int("batches", res.Batches),
		slog.Duration("duration", res.Duration),
	)
	return res, nil
}

func (p *Pipeline) load() ([]domain.Word, error) {
	if p.cfg.WordsPath == "" {
		return vocabulary.Default()
	}
	return vocabulary.LoadFile(p.cfg.WordsPath)
}

func (p *Pipeline) source() string {
	if p.cfg.WordsPath == "" {
		return "embedded"
	}
	return p.cfg.WordsPath
}
