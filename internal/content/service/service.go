// Package service is the content and moderation model. Every operation
// absorbs storage failures: reads yield empty slices, creates yield nil and
// mutations yield false. Failures go to the operator log, the gateway failure
// counter and the active span; callers never see them.
package service

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"strata/internal/content/metrics"
	"strata/internal/platform/logger"
	"strata/pkg/requestcontext"
)

const tracerName = "strata/internal/content/service"

// Entity labels used in logs, spans and metrics.
const (
	entityEvent   = "event"
	entityThought = "thought"
	entityComment = "comment"
)

type deps struct {
	logger  *slog.Logger
	metrics *metrics.Metrics
	tracer  trace.Tracer
	float01 func() float64
}

type Option func(d *deps)

func WithLogger(logger *slog.Logger) Option {
	return func(d *deps) {
		d.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(d *deps) {
		d.metrics = m
	}
}

func WithTracer(t trace.Tracer) Option {
	return func(d *deps) {
		d.tracer = t
	}
}

// WithRandom replaces the [0,1) source used for thought placement.
func WithRandom(float01 func() float64) Option {
	return func(d *deps) {
		d.float01 = float01
	}
}

func newDeps(opts []Option) deps {
	d := deps{
		logger:  logger.Discard(),
		tracer:  otel.Tracer(tracerName),
		float01: rand.Float64,
	}
	for _, opt := range opts {
		opt(&d)
	}
	return d
}

type op struct {
	d      *deps
	entity string
	name   string
	span   trace.Span
	start  time.Time
}

func (d *deps) begin(ctx context.Context, entity, name string, attrs ...attribute.KeyValue) (context.Context, *op) {
	ctx, span := d.tracer.Start(ctx, entity+"."+name, trace.WithAttributes(attrs...))
	return ctx, &op{d: d, entity: entity, name: name, span: span, start: time.Now()}
}

func (o *op) end() {
	o.d.metrics.ObserveOperation(o.entity, o.name, o.start)
	o.span.End()
}

// degrade records a swallowed storage failure.
func (o *op) degrade(ctx context.Context, err error, args ...any) {
	o.span.RecordError(err)
	o.span.SetStatus(codes.Error, "storage gateway failure")
	o.d.metrics.IncrementGatewayFailure(o.entity, o.name)

	fields := append([]any{
		"request_id", requestcontext.RequestID(ctx),
		"entity", o.entity,
		"operation", o.name,
		"error", err.Error(),
	}, args...)
	o.d.logger.ErrorContext(ctx, "content operation failed", fields...)
}
