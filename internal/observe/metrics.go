// Package observe holds the OpenTelemetry metrics and tracing used across the
// service. Metrics are exported to Prometheus through [InitProvider]; tests
// build their own [Metrics] with [NewMetrics] and a manual reader.
package observe

import (
	"context"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const meterName = "github.com/heartmarshall/speakup-backend"

// Metrics holds all instruments. The OTel types are safe for concurrent use.
type Metrics struct {
	// AnswerChecks counts scored answers. Attributes: source, result (passed|failed).
	AnswerChecks metric.Int64Counter

	// AnswerScore tracks the distribution of similarity scores in [0,1].
	AnswerScore metric.Float64Histogram

	// RecordingUploads counts stored recordings. Attribute: status.
	RecordingUploads metric.Int64Counter

	// PredictionDuration tracks latency of prediction service calls. Attribute: status.
	PredictionDuration metric.Float64Histogram

	// PredictionFiles counts clips sent for prediction. Attribute: result (succeeded|failed).
	PredictionFiles metric.Int64Counter

	// HTTPRequestDuration tracks request handling time. Attributes: method, route, status.
	HTTPRequestDuration metric.Float64Histogram
}

var (
	latencyBuckets = []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30}
	scoreBuckets   = []float64{0, 0.2, 0.4, 0.6, 0.8, 0.9, 1}
)

// NewMetrics creates all instruments on mp.
func NewMetrics(mp metric.MeterProvider) (*Metrics, error) {
	m := mp.Meter(meterName)
	var err error
	met := &Metrics{}

	if met.AnswerChecks, err = m.Int64Counter("speakup.answer.checks",
		metric.WithDescription("Number of scored practice answers."),
	); err != nil {
		return nil, err
	}
	if met.AnswerScore, err = m.Float64Histogram("speakup.answer.score",
		metric.WithDescription("Similarity score of practice answers."),
		metric.WithExplicitBucketBoundaries(scoreBuckets...),
	); err != nil {
		return nil, err
	}
	if met.RecordingUploads, err = m.Int64Counter("speakup.recording.uploads",
		metric.WithDescription("Number of recording uploads."),
	); err != nil {
		return nil, err
	}
	if met.PredictionDuration, err = m.Float64Histogram("speakup.prediction.duration",
		metric.WithDescription("Latency of prediction service requests."),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(latencyBuckets...),
	); err != nil {
		return nil, err
	}
	if met.PredictionFiles, err = m.Int64Counter("speakup.prediction.files",
		metric.WithDescription("Number of clips sent to the prediction service."),
	); err != nil {
		return nil, err
	}
	if met.HTTPRequestDuration, err = m.Float64Histogram("speakup.http.request.duration",
		metric.WithDescription("Duration of HTTP request handling."),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(latencyBuckets...),
	); err != nil {
		return nil, err
	}

	return met, nil
}

var (
	defaultOnce    sync.Once
	defaultMetrics *Metrics
)

// DefaultMetrics returns instruments bound to the global MeterProvider.
// Call it after InitProvider so they reach the Prometheus exporter.
func DefaultMetrics() *Metrics {
	defaultOnce.Do(func() {
		m, err := NewMetrics(otel.GetMeterProvider())
		if err != nil {
			panic("observe: create default metrics: " + err.Error())
		}
		defaultMetrics = m
	})
	return defaultMetrics
}

// RecordAnswer records one scored answer.
func (m *Metrics) RecordAnswer(ctx context.Context, source string, score float64, passed bool) {
	result := "failed"
	if passed {
		result = "passed"
	}
	m.AnswerChecks.Add(ctx, 1, metric.WithAttributes(
		attribute.String("source", source),
		attribute.String("result", result),
	))
	m.AnswerScore.Record(ctx, score, metric.WithAttributes(attribute.String("source", source)))
}

// RecordUpload records one recording upload attempt.
func (m *Metrics) RecordUpload(ctx context.Context, err error) {
	m.RecordingUploads.Add(ctx, 1, metric.WithAttributes(attribute.String("status", status(err))))
}

// RecordPrediction records a prediction call and its per-file outcome.
func (m *Metrics) RecordPrediction(ctx context.Context, elapsed time.Duration, succeeded, failed int, err error) {
	m.PredictionDuration.Record(ctx, elapsed.Seconds(), metric.WithAttributes(attribute.String("status", status(err))))
	if succeeded > 0 {
		m.PredictionFiles.Add(ctx, int64(succeeded), metric.WithAttributes(attribute.String("result", "succeeded")))
	}
	if failed > 0 {
		m.PredictionFiles.Add(ctx, int64(failed), metric.WithAttributes(attribute.String("result", "failed")))
	}
}

func status(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}
