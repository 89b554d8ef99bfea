// Command seeder loads the practice vocabulary into the words table. Without
// --words it seeds the embedded default list.
//
// Flags:
//
//	--words          path to a YAML word list (overrides SEEDER_WORDS_PATH)
//	--dry-run        parse and validate the list without writing to DB
//	--seeder-config  path to seeder YAML config file
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
	"github.com/heartmarshall/speakup-backend/internal/adapter/postgres/word"
	"github.com/heartmarshall/speakup-backend/internal/app"
	"github.com/heartmarshall/speakup-backend/internal/app/seeder"
	"github.com/heartmarshall/speakup-backend/internal/config"
)

var _ seeder.WordRepo = (*word.Repo)(nil)

func main() {
	wordsFlag := flag.String("words", "", "path to a YAML word list (default: embedded list)")
	dryRunFlag := flag.Bool("dry-run", false, "parse the word list without writing to DB")
	seederConfigFlag := flag.String("seeder-config", "", "path to seeder YAML config file")
	flag.Parse()

	appCfg, err := config.Load()
	if err != nil {
		log.Fatalf("load app config: %v", err)
	}

	logger := app.NewLogger(appCfg.Log)

	seederCfg, err := seeder.LoadConfig(*seederConfigFlag)
	if err != nil {
		logger.Error("load seeder config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// CLI flags override config.
	if *wordsFlag != "" {
		seederCfg.WordsPath = *wordsFlag
	}
	if *dryRunFlag {
		seederCfg.DryRun = true
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	var repo seeder.WordRepo
	if !seederCfg.DryRun {
		pool, err := postgres.NewPool(ctx, appCfg.Database)
		if err != nil {
			logger.Error("connect to database", slog.String("error", err.Error()))
			os.Exit(1)
		}
		defer pool.Close()
		repo = word.New(pool)
	}

	res, err := seeder.NewPipeline(logger, repo, *seederCfg).Run(ctx)
	if err != nil {
		logger.Error("seeding failed",
			slog.String("error", err.Error()),
			slog.Int("written", res.Written),
		)
		os.Exit(1)
	}

	logger.Info("seeding completed",
		slog.Int("parsed", res.Parsed),
		slog.Int("written", res.Written),
		slog.Bool("dry_run", seederCfg.DryRun),
	)
}
