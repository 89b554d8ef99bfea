package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/speakup-backend/internal/adapter/postgres"
	historyrepo "github.com/heartmarshall/speakup-backend/internal/adapter/postgres/history"
	sessionrepo "github.com/heartmarshall/speakup-backend/internal/adapter/postgres/session"
	tokenrepo "github.com/heartmarshall/speakup-backend/internal/adapter/postgres/token"
	userrepo "github.com/heartmarshall/speakup-backend/internal/adapter/postgres/user"
	wordrepo "github.com/heartmarshall/speakup-backend/internal/adapter/postgres/word"
	"github.com/heartmarshall/speakup-backend/internal/adapter/provider/predict"
	"github.com/heartmarshall/speakup-backend/internal/adapter/storage"
	"github.com/heartmarshall/speakup-backend/internal/auth"
	"github.com/heartmarshall/speakup-backend/internal/config"
	"github.com/heartmarshall/speakup-backend/internal/domain"
	"github.com/heartmarshall/speakup-backend/internal/observe"
	authsvc "github.com/heartmarshall/speakup-backend/internal/service/auth"
	"github.com/heartmarshall/speakup-backend/internal/service/practice"
	"github.com/heartmarshall/speakup-backend/internal/service/profile"
	"github.com/heartmarshall/speakup-backend/internal/service/recording"
	"github.com/heartmarshall/speakup-backend/internal/service/vocabulary"
	"github.com/heartmarshall/speakup-backend/internal/transport/middleware"
	"github.com/heartmarshall/speakup-backend/internal/transport/rest"
)

// recordingStore is the object storage surface the services and health
// checks share. It stays a nil interface when storage is disabled.
type recordingStore interface {
	Put(ctx context.Context, key, contentType string, r io.Reader, size int64) error
	Get(ctx context.Context, key string) ([]byte, string, error)
	Delete(ctx context.Context, keys ...string) error
	PresignedURL(ctx context.Context, key string) (string, error)
	Ping(ctx context.Context) error
}

type predictionClient interface {
	Predict(ctx context.Context, clips []domain.AudioClip) (*domain.PredictionBatch, error)
	Ping(ctx context.Context) error
}

// Run is the application entry point. It loads configuration, connects the
// database and optional integrations, and serves HTTP until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	var metricsHandler http.Handler
	if cfg.Telemetry.MetricsEnabled {
		shutdownTelemetry, err := observe.InitProvider(ctx, observe.ProviderConfig{
			ServiceName:    cfg.Telemetry.ServiceName,
			ServiceVersion: Version,
		})
		if err != nil {
			return fmt.Errorf("init telemetry: %w", err)
		}
		defer func() {
			sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := shutdownTelemetry(sctx); err != nil {
				logger.Warn("telemetry shutdown", slog.String("error", err.Error()))
			}
		}()
		metricsHandler = promhttp.Handler()
	}
	metrics := observe.DefaultMetrics()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer pool.Close()

	audio, err := newRecordingStore(ctx, cfg.Storage, logger)
	if err != nil {
		return err
	}
	predictor := newPredictionClient(cfg.Prediction, logger)

	users := userrepo.New(pool)
	tokens := tokenrepo.New(pool)
	words := wordrepo.New(pool)
	history := historyrepo.New(pool)
	sessions := sessionrepo.New(pool)
	txm := postgres.NewTxManager(pool)
	jwtMgr := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	authService := authsvc.NewService(logger, users, tokens, txm, jwtMgr, cfg.Auth)
	profileService := profile.NewService(logger, users)
	vocabularyService := vocabulary.NewService(logger, words)
	practiceService := practice.NewService(logger, history, sessions, audio, metrics, cfg.Practice)
	recordingService := recording.NewService(logger, history, txm, audio, predictor, metrics, cfg.Storage, cfg.Practice)

	health := rest.NewHealthHandler(pool, BuildVersion())
	if audio != nil {
		health.WithOptional("storage", audio)
	}
	if predictor != nil {
		health.WithOptional("prediction", predictor)
	}

	limiter := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
	defer limiter.Stop()

	handler := rest.NewRouter(rest.Handlers{
		Auth:      rest.NewAuthHandler(authService, logger),
		Profile:   rest.NewProfileHandler(profileService, logger),
		Words:     rest.NewWordHandler(vocabularyService, logger),
		Practice:  rest.NewPracticeHandler(practiceService, logger),
		Recording: rest.NewRecordingHandler(recordingService, logger, cfg.Storage.MaxUploadBytes, cfg.Practice.PassThreshold),
		Health:    health,
		Metrics:   metricsHandler,
	}, rest.RouterDeps{
		Logger:        logger,
		Validator:     authService,
		Limiter:       limiter,
		Telemetry:     metrics,
		CORS:          cfg.CORS,
		AuthPerMinute: cfg.RateLimit.AuthPerMinute,
	})

	logger.Info("dependencies ready", slog.Any("health_components", health.ComponentNames()))

	srv := &http.Server{
		Addr:              net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:           handler,
		ReadTimeout:       cfg.Server.ReadTimeout,
		ReadHeaderTimeout: cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	return serve(ctx, srv, cfg.Server.ShutdownTimeout, logger)
}

// serve runs srv until ctx is done, then shuts it down within timeout.
func serve(ctx context.Context, srv *http.Server, timeout time.Duration, logger *slog.Logger) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down http server", slog.Duration("timeout", timeout))

		sctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		if err := srv.Shutdown(sctx); err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}
	logger.Info("server stopped")
	return nil
}

func newRecordingStore(ctx context.Context, cfg config.StorageConfig, logger *slog.Logger) (recordingStore, error) {
	if !cfg.Enabled {
		logger.Info("object storage disabled, voice recordings unavailable")
		return nil, nil
	}
	s, err := storage.New(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("init storage: %w", err)
	}
	logger.Info("object storage ready", slog.String("endpoint", cfg.Endpoint), slog.String("bucket", cfg.Bucket))
	return s, nil
}

func newPredictionClient(cfg config.PredictionConfig, logger *slog.Logger) predictionClient {
	if !cfg.Enabled {
		logger.Info("prediction service disabled")
		return nil
	}
	logger.Info("prediction service configured", slog.String("url", cfg.URL))
	return predict.NewClient(cfg.URL, cfg.Timeout, logger)
}
