package rest

import (
	"context"
	"net/http"
	"sort"
	"time"
)

const pingTimeout = 3 * time.Second

// pinger is anything the health endpoints can check.
type pinger interface {
	Ping(ctx context.Context) error
}

type component struct {
	name     string
	p        pinger
	critical bool
}

// HealthHandler serves health check endpoints.
type HealthHandler struct {
	components []component
	version    string
}

// NewHealthHandler creates a HealthHandler with the database as its only
// critical component.
func NewHealthHandler(db pinger, version string) *HealthHandler {
	return &HealthHandler{
		components: []component{{name: "database", p: db, critical: true}},
		version:    version,
	}
}

// WithOptional adds a component whose failure degrades /health without
// failing readiness (object storage, prediction service).
func (h *HealthHandler) WithOptional(name string, p pinger) *HealthHandler {
	h.components = append(h.components, component{name: name, p: p})
	return h
}

// HealthResponse is the JSON response for /health and /ready.
type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

// CompStatus is the status of an individual component.
type CompStatus struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Live is the liveness check. Always returns 200.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "ok",
		Timestamp: time.Now(),
	})
}

// Ready is the readiness check: 200 when every critical component answers.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), pingTimeout)
	defer cancel()

	for _, c := range h.components {
		if !c.critical {
			continue
		}
		if err := c.p.Ping(ctx); err != nil {
			writeJSON(w, http.StatusServiceUnavailable, HealthResponse{
				Status:    "down",
				Timestamp: time.Now(),
			})
			return
		}
	}

	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "ok",
		Timestamp: time.Now(),
	})
}

// Health checks every component with latency. A failing critical component
// answers 503 "down"; a failing optional one answers 200 "degraded".
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), pingTimeout)
	defer cancel()

	components := make(map[string]CompStatus, len(h.components))
	overall := "ok"

	for _, c := range h.components {
		start := time.Now()
		err := c.p.Ping(ctx)
		latency := time.Since(start)

		if err == nil {
			components[c.name] = CompStatus{Status: "ok", Latency: latency.String()}
			continue
		}

		components[c.name] = CompStatus{Status: "down", Error: err.Error()}
		switch {
		case c.critical:
			overall = "down"
		case overall == "ok":
			overall = "degraded"
		}
	}

	status := http.StatusOK
	if overall == "down" {
		status = http.StatusServiceUnavailable
	}

	writeJSON(w, status, HealthResponse{
		Status:     overall,
		Version:    h.version,
		Components: components,
		Timestamp:  time.Now(),
	})
}

// ComponentNames lists the checked components, sorted.
func (h *HealthHandler) ComponentNames() []string {
	names := make([]string, 0, len(h.components))
	for _, c := range h.components {
		names = append(names, c.name)
	}
	sort.Strings(names)
	return names
}
