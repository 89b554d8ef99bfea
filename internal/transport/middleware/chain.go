package middleware

import (
	"log/slog"
	"net/http"

	"github.com/heartmarshall/speakup-backend/internal/config"
)

// Middleware is a function that wraps an http.Handler.
type Middleware func(http.Handler) http.Handler

// Chain composes mws so that the first one runs outermost. Nil entries are
// skipped, which lets callers leave out optional middleware inline.
func Chain(mws ...Middleware) Middleware {
	return func(final http.Handler) http.Handler {
		for i := len(mws) - 1; i >= 0; i-- {
			if mws[i] == nil {
				continue
			}
			final = mws[i](final)
		}
		return final
	}
}

// Edge is the stack every request passes through before routing. The request
// ID comes first so a recovered panic is logged with it, and recovery wraps
// CORS so even a panicking request keeps its CORS headers.
func Edge(logger *slog.Logger, cors config.CORSConfig) Middleware {
	return Chain(
		RequestID(),
		Recovery(logger),
		CORS(cors),
	)
}
