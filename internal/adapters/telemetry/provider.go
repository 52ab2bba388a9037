// Package telemetry implements ports.Tracer over OpenTelemetry.
package telemetry

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.trai.ch/depcache/internal/core/ports"
)

// InstrumentationName is the tracer name used for every depcache span.
const InstrumentationName = "go.trai.ch/depcache"

var (
	_ ports.Tracer = (*OTelTracer)(nil)
	_ ports.Span   = (*OTelSpan)(nil)
)

// OTelTracer implements ports.Tracer with an OpenTelemetry tracer.
type OTelTracer struct {
	tracer trace.Tracer
}

// Option configures an OTelTracer.
type Option func(*tracerOptions)

type tracerOptions struct {
	provider trace.TracerProvider
}

// WithTracerProvider uses tp instead of the global provider.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(o *tracerOptions) {
		o.provider = tp
	}
}

// NewOTelTracer returns a tracer named name, taken from the global provider unless
// WithTracerProvider is given.
func NewOTelTracer(name string, opts ...Option) *OTelTracer {
	var o tracerOptions
	for _, opt := range opts {
		opt(&o)
	}
	tp := o.provider
	if tp == nil {
		tp = otel.GetTracerProvider()
	}
	return &OTelTracer{tracer: tp.Tracer(name)}
}

// Start opens a span named name. Attributes from opts are attached at creation.
func (t *OTelTracer) Start(ctx context.Context, name string, opts ...ports.SpanOption) (context.Context, ports.Span) {
	var cfg ports.SpanConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	attrs := make([]attribute.KeyValue, 0, len(cfg.Attributes))
	for k, v := range cfg.Attributes {
		attrs = append(attrs, toAttribute(k, v))
	}
	ctx, span := t.tracer.Start(ctx, name, trace.WithAttributes(attrs...))
	return ctx, &OTelSpan{span: span}
}

// EmitPlan attaches the dependencies about to be materialized to the span in ctx.
func (t *OTelTracer) EmitPlan(ctx context.Context, dependencies []string) {
	span := trace.SpanFromContext(ctx)
	if !span.IsRecording() {
		return
	}
	span.AddEvent("plan_emitted", trace.WithAttributes(attribute.StringSlice("dependencies", dependencies)))
}

// OTelSpan adapts a trace.Span to ports.Span.
type OTelSpan struct {
	span trace.Span
}

func (s *OTelSpan) End() { s.span.End() }

// RecordError marks the span failed. A nil err is ignored.
func (s *OTelSpan) RecordError(err error) {
	if err == nil {
		return
	}
	s.span.RecordError(err)
	s.span.SetStatus(codes.Error, err.Error())
}

func (s *OTelSpan) SetAttribute(key string, value any) {
	s.span.SetAttributes(toAttribute(key, value))
}

// toAttribute converts the value kinds depcache records. Anything else is formatted with %v.
func toAttribute(key string, value any) attribute.KeyValue {
	switch v := value.(type) {
	case string:
		return attribute.String(key, v)
	case bool:
		return attribute.Bool(key, v)
	case int:
		return attribute.Int(key, v)
	case int64:
		return attribute.Int64(key, v)
	case float64:
		return attribute.Float64(key, v)
	case []string:
		return attribute.StringSlice(key, v)
	default:
		return attribute.String(key, fmt.Sprint(v))
	}
}
