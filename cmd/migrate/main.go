// Command migrate applies the embedded SQL migrations.
//
// Usage:
//
//	migrate [up|down|status]
//
// The default command is up. Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver for database/sql
	_ "github.com/joho/godotenv/autoload"
	"github.com/pressly/goose/v3"

	"github.com/heartmarshall/speakup-backend/internal/app"
	"github.com/heartmarshall/speakup-backend/internal/config"
	"github.com/heartmarshall/speakup-backend/migrations"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	command := "up"
	if len(os.Args) > 1 {
		command = os.Args[1]
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	// goose requires *sql.DB.
	db, err := sql.Open("pgx", cfg.Database.DSN)
	if err != nil {
		logger.Error("open database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer db.Close()

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	if err != nil {
		logger.Error("goose new provider", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if err := run(ctx, provider, command, logger); err != nil {
		logger.Error("migrate failed", slog.String("command", command), slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(ctx context.Context, p *goose.Provider, command string, logger *slog.Logger) error {
	switch command {
	case "up":
		results, err := p.Up(ctx)
		for _, r := range results {
			logger.Info("applied", slog.String("source", r.Source.Path), slog.Duration("duration", r.Duration))
		}
		return err
	case "down":
		r, err := p.Down(ctx)
		if r != nil {
			logger.Info("rolled back", slog.String("source", r.Source.Path))
		}
		return err
	case "status":
		statuses, err := p.Status(ctx)
		if err != nil {
			return err
		}
		for _, s := range statuses {
			logger.Info("migration",
				slog.String("source", s.Source.Path),
				slog.String("state", string(s.State)),
			)
		}
		return nil
	default:
		return fmt.Errorf("unknown command %q, expected up, down or status", command)
	}
}
