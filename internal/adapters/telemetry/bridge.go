package telemetry

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/depcache/internal/core/ports"
)

// Bridge implements sdktrace.SpanProcessor by reporting finished spans through a Logger.
type Bridge struct {
	logger ports.Logger
}

// NewBridge returns a new Bridge.
func NewBridge(logger ports.Logger) *Bridge {
	return &Bridge{logger: logger}
}

// NewTracerProvider returns an SDK provider whose spans are reported by a Bridge over logger.
// Callers shut it down when the traced work is done.
func NewTracerProvider(logger ports.Logger) *sdktrace.TracerProvider {
	return sdktrace.NewTracerProvider(
		sdktrace.WithSpanProcessor(NewBridge(logger)),
	)
}

// OnStart does nothing.
func (b *Bridge) OnStart(_ context.Context, _ sdktrace.ReadWriteSpan) {}

// OnEnd logs the span name, its duration, and its attributes.
func (b *Bridge) OnEnd(s sdktrace.ReadOnlySpan) {
	if b.logger == nil || !s.SpanContext().IsValid() {
		return
	}

	msg := formatSpan(s)
	if s.Status().Code == codes.Error {
		desc := s.Status().Description
		if desc == "" {
			desc = "span failed"
		}
		b.logger.Warn(msg + ": " + desc)
		return
	}
	b.logger.Info(msg)
}

// ForceFlush does nothing.
func (b *Bridge) ForceFlush(_ context.Context) error {
	return nil
}

// Shutdown does nothing.
func (b *Bridge) Shutdown(_ context.Context) error {
	return nil
}

func formatSpan(s sdktrace.ReadOnlySpan) string {
	var sb strings.Builder
	sb.WriteString("trace ")
	sb.WriteString(s.Name())
	sb.WriteString(" ")
	sb.WriteString(s.EndTime().Sub(s.StartTime()).Round(time.Microsecond).String())
	for _, kv := range s.Attributes() {
		fmt.Fprintf(&sb, " %s=%s", kv.Key, kv.Value.Emit())
	}
	return sb.String()
}
