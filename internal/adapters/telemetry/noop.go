package telemetry

import (
	"context"

	"go.trai.ch/depcache/internal/core/ports"
)

var (
	_ ports.Tracer = NoOpTracer{}
	_ ports.Span   = noopSpan{}
)

// NoOpTracer discards every span. Engines built without tracing use it.
type NoOpTracer struct{}

// NewNoOpTracer returns a NoOpTracer.
func NewNoOpTracer() NoOpTracer { return NoOpTracer{} }

// Start returns ctx unchanged with a span that records nothing.
func (NoOpTracer) Start(ctx context.Context, _ string, _ ...ports.SpanOption) (context.Context, ports.Span) {
	return ctx, noopSpan{}
}

// EmitPlan does nothing.
func (NoOpTracer) EmitPlan(context.Context, []string) {}

type noopSpan struct{}

func (noopSpan) End()                     {}
func (noopSpan) RecordError(error)        {}
func (noopSpan) SetAttribute(string, any) {}
