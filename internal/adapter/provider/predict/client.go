// Package predict talks to the remote pronunciation prediction service, which
// accepts a batch of audio clips and returns a verdict per clip.
package predict

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strconv"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/heartmarshall/speakup-backend/internal/domain"
	"github.com/heartmarshall/speakup-backend/internal/observe"
)

const (
	defaultTimeout = 30 * time.Second
	filesField     = "files"
	maxErrorBody   = 512
)

// ErrTimeout is returned when the service does not answer within the timeout.
var ErrTimeout = errors.New("prediction request timed out")

// Client posts audio batches to the prediction endpoint.
type Client struct {
	url        string
	httpClient *http.Client
	log        *slog.Logger
}

// NewClient creates a Client for the endpoint at url. A non-positive timeout
// falls back to 30s.
func NewClient(url string, timeout time.Duration, logger *slog.Logger) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		url:        url,
		httpClient: &http.Client{Timeout: timeout},
		log:        logger.With("adapter", "predict"),
	}
}

// Ping checks that the endpoint is reachable with an OPTIONS request.
// A 405 still proves the server is up.
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodOptions, c.url, nil)
	if err != nil {
		return fmt.Errorf("predict: create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("predict: server is not reachable: %w: %w", domain.ErrUnavailable, err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode >= 200 && resp.StatusCode < 300 || resp.StatusCode == http.StatusMethodNotAllowed {
		return nil
	}
	return fmt.Errorf("predict: server is not reachable: %w: status %d", domain.ErrUnavailable, resp.StatusCode)
}

// Predict checks the endpoint is reachable and uploads clips as one multipart request.
func (c *Client) Predict(ctx context.Context, clips []domain.AudioClip) (_ *domain.PredictionBatch, err error) {
	ctx, span := observe.StartSpan(ctx, "predict.Predict",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(attribute.Int("predict.files", len(clips))),
	)
	defer func() { observe.EndSpan(span, err) }()

	if len(clips) == 0 {
		return nil, domain.NewValidationError("files", "at least one recording is required")
	}

	if err := c.Ping(ctx); err != nil {
		return nil, err
	}

	body, contentType, err := encodeClips(clips)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, body)
	if err != nil {
		return nil, fmt.Errorf("predict: create request: %w", err)
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Accept", "application/json")

	c.log.DebugContext(ctx, "predict request", slog.Int("files", len(clips)), slog.Int("bytes", body.Len()))

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		if isTimeout(ctx, err) {
			return nil, fmt.Errorf("predict: %w: %w", domain.ErrUnavailable, ErrTimeout)
		}
		return nil, fmt.Errorf("predict: request failed: %w: %w", domain.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	span.SetAttributes(attribute.Int("http.response.status_code", resp.StatusCode))

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		c.log.WarnContext(ctx, "predict unexpected status",
			slog.Int("status", resp.StatusCode),
			slog.String("body", string(snippet)),
		)
		return nil, fmt.Errorf("predict: server responded with status %d: %w", resp.StatusCode, domain.ErrUnavailable)
	}

	var raw apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("predict: decode json: %w", err)
	}

	batch := mapResponse(raw)

	c.log.InfoContext(ctx, "predict response",
		slog.Int("files", batch.TotalFiles),
		slog.Int("successful", batch.SuccessfulPredictions),
		slog.Duration("elapsed", time.Since(start)),
	)

	return batch, nil
}

func encodeClips(clips []domain.AudioClip) (*bytes.Buffer, string, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	for _, clip := range clips {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, filesField, clip.Filename))
		ct := clip.ContentType
		if ct == "" {
			ct = "application/octet-stream"
		}
		h.Set("Content-Type", ct)

		part, err := mw.CreatePart(h)
		if err != nil {
			return nil, "", fmt.Errorf("predict: create part %s: %w", clip.Filename, err)
		}
		if _, err := part.Write(clip.Data); err != nil {
			return nil, "", fmt.Errorf("predict: write part %s: %w", clip.Filename, err)
		}
	}

	if err := mw.Close(); err != nil {
		return nil, "", fmt.Errorf("predict: close multipart: %w", err)
	}
	return &buf, mw.FormDataContentType(), nil
}

func isTimeout(ctx context.Context, err error) bool {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return true
	}
	var te interface{ Timeout() bool }
	return errors.As(err, &te) && te.Timeout()
}

func formatPercent(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64) + "%"
}
