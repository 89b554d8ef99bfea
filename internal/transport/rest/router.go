package rest

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/heartmarshall/speakup-backend/internal/config"
	"github.com/heartmarshall/speakup-backend/internal/observe"
	"github.com/heartmarshall/speakup-backend/internal/transport/middleware"
)

// Handlers groups every REST handler mounted by NewRouter.
type Handlers struct {
	Auth      *AuthHandler
	Profile   *ProfileHandler
	Words     *WordHandler
	Practice  *PracticeHandler
	Recording *RecordingHandler
	Health    *HealthHandler
	// Metrics serves the Prometheus scrape endpoint. Nil disables /metrics.
	Metrics http.Handler
}

// RouterDeps carries the cross-cutting pieces the router wraps handlers in.
type RouterDeps struct {
	Logger        *slog.Logger
	Validator     middleware.TokenValidator
	Limiter       *middleware.RateLimiter
	Telemetry     *observe.Metrics
	CORS          config.CORSConfig
	AuthPerMinute int
}

// NewRouter builds the HTTP handler. Request ID, panic recovery and CORS wrap
// everything; token resolution, tracing and request logs run per matched
// route so they can see the route template.
func NewRouter(h Handlers, deps RouterDeps) http.Handler {
	r := mux.NewRouter()
	r.Use(
		mux.MiddlewareFunc(middleware.Auth(deps.Validator)),
		observe.Middleware(deps.Telemetry, routeTemplate),
		mux.MiddlewareFunc(middleware.Logger(deps.Logger)),
	)

	r.HandleFunc("/live", h.Health.Live).Methods(http.MethodGet)
	r.HandleFunc("/ready", h.Health.Ready).Methods(http.MethodGet)
	r.HandleFunc("/health", h.Health.Health).Methods(http.MethodGet)
	if h.Metrics != nil {
		r.Handle("/metrics", h.Metrics).Methods(http.MethodGet)
	}

	authLimited := func(fn http.HandlerFunc) http.Handler {
		if deps.Limiter == nil || deps.AuthPerMinute <= 0 {
			return fn
		}
		return deps.Limiter.Limit(deps.AuthPerMinute)(fn)
	}
	ar := r.PathPrefix("/auth").Subrouter()
	ar.Handle("/register", authLimited(h.Auth.Register)).Methods(http.MethodPost)
	ar.Handle("/login", authLimited(h.Auth.Login)).Methods(http.MethodPost)
	ar.Handle("/refresh", authLimited(h.Auth.Refresh)).Methods(http.MethodPost)
	ar.Handle("/logout", middleware.RequireUser(http.HandlerFunc(h.Auth.Logout))).Methods(http.MethodPost)

	api := r.PathPrefix("/api").Subrouter()
	api.Use(middleware.RequireUser)

	api.HandleFunc("/profile", h.Profile.Get).Methods(http.MethodGet)
	api.HandleFunc("/profile", h.Profile.Update).Methods(http.MethodPatch)

	api.HandleFunc("/words", h.Words.List).Methods(http.MethodGet)
	api.HandleFunc("/words/{word}", h.Words.Get).Methods(http.MethodGet)

	api.HandleFunc("/practice/check", h.Practice.Check).Methods(http.MethodPost)
	api.HandleFunc("/history", h.Practice.ListHistory).Methods(http.MethodGet)
	api.HandleFunc("/history", h.Practice.ClearHistory).Methods(http.MethodDelete)
	api.HandleFunc("/sessions", h.Practice.SaveSession).Methods(http.MethodPost)
	api.HandleFunc("/sessions", h.Practice.ListSessions).Methods(http.MethodGet)
	api.HandleFunc("/progress", h.Practice.Progress).Methods(http.MethodGet)

	api.HandleFunc("/recordings", h.Recording.Upload).Methods(http.MethodPost)
	api.HandleFunc("/recordings/analyze", h.Recording.Analyze).Methods(http.MethodPost)
	api.HandleFunc("/recordings/{id}/audio", h.Recording.Audio).Methods(http.MethodGet)

	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, "not found")
	})
	r.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	})

	return middleware.Edge(deps.Logger, deps.CORS)(r)
}

func routeTemplate(r *http.Request) string {
	if route := mux.CurrentRoute(r); route != nil {
		if tpl, err := route.GetPathTemplate(); err == nil {
			return tpl
		}
	}
	return "unmatched"
}
