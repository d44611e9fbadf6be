package services

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"petconnect-api/internal/application/ports"
	"petconnect-api/internal/domain/errs"
	"petconnect-api/internal/infrastructure/mq"
)

var tracer = otel.Tracer("petconnect-api/internal/application/services")

func startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return tracer.Start(ctx, name)
}

// endSpan marks the span failed only for errors outside the domain taxonomy.
func endSpan(span trace.Span, err error) {
	if err != nil && errs.Kind(err) == nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

// observer publishes audit events and bumps the general counter vec.
type observer struct {
	events   ports.EventPublisher
	mCounter *prometheus.CounterVec
}

func (o observer) emit(ctx context.Context, entity, action, entityID, actorID string) {
	o.events.Publish(ctx, mq.NewEvent(entity, action, entityID, actorID))
}

func (o observer) count(result string) {
	o.mCounter.WithLabelValues(result).Inc()
}

// countDenied records guard denials so they show up next to other outcomes.
func (o observer) countDenied(err error) {
	if errs.Kind(err) == errs.ErrForbidden {
		o.count("forbidden_total")
	}
}
