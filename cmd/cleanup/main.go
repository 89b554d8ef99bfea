// Command cleanup deletes expired refresh tokens and practice history older
// than the retention period, together with the recordings those entries
// reference. It is intended to be invoked by an external cron job, not as an
// in-process goroutine.
//
// Flags:
//
//	--retention-days  history retention override (default: PRACTICE_RETENTION_DAYS)
//	--tokens-only     skip history cleanup
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/speakup-backend/internal/adapter/postgres"
	"github.com/heartmarshall/speakup-backend/internal/adapter/postgres/history"
	"github.com/heartmarshall/speakup-backend/internal/adapter/postgres/token"
	"github.com/heartmarshall/speakup-backend/internal/adapter/storage"
	"github.com/heartmarshall/speakup-backend/internal/app"
	"github.com/heartmarshall/speakup-backend/internal/config"
)

func main() {
	retentionFlag := flag.Int("retention-days", 0, "delete history older than this many days")
	tokensOnlyFlag := flag.Bool("tokens-only", false, "only delete expired refresh tokens")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	tokens, err := token.New(pool).DeleteExpired(ctx)
	if err != nil {
		logger.Error("token cleanup failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("token cleanup completed", slog.Int("deleted", tokens))

	if *tokensOnlyFlag {
		return
	}

	retention := cfg.Practice.RetentionDays
	if *retentionFlag > 0 {
		retention = *retentionFlag
	}
	if retention <= 0 {
		logger.Info("history retention disabled")
		return
	}
	cutoff := time.Now().AddDate(0, 0, -retention)

	deleted, keys, err := history.New(pool).DeleteOlderThan(ctx, cutoff)
	if err != nil {
		logger.Error("history cleanup failed",
			slog.String("error", err.Error()),
			slog.Time("cutoff", cutoff),
		)
		os.Exit(1)
	}
	logger.Info("history cleanup completed",
		slog.Int("deleted", deleted),
		slog.Int("recordings", len(keys)),
		slog.Time("cutoff", cutoff),
	)

	if len(keys) == 0 || !cfg.Storage.Enabled {
		return
	}

	store, err := storage.New(ctx, cfg.Storage)
	if err != nil {
		logger.Error("init storage", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if err := store.Delete(ctx, keys...); err != nil {
		// Rows are already gone; orphaned objects are only wasted space.
		logger.Warn("recording cleanup failed",
			slog.String("error", err.Error()),
			slog.Int("keys", len(keys)),
		)
		return
	}
	logger.Info("recording cleanup completed", slog.Int("deleted", len(keys)))
}
