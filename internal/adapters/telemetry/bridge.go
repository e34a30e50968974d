package telemetry

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/string16/internal/core/ports"
)

// Bridge implements sdktrace.SpanProcessor by logging every finished span.
type Bridge struct {
	log ports.Logger
}

// NewBridge returns a new Bridge.
func NewBridge(log ports.Logger) *Bridge {
	return &Bridge{log: log}
}

// OnStart is called when a span starts.
func (b *Bridge) OnStart(_ context.Context, _ sdktrace.ReadWriteSpan) {}

// OnEnd logs the span name, duration and attributes. Failed spans are
// logged as warnings with their status description.
func (b *Bridge) OnEnd(s sdktrace.ReadOnlySpan) {
	if b.log == nil || !s.SpanContext().IsValid() {
		return
	}

	elapsed := s.EndTime().Sub(s.StartTime()).Round(time.Microsecond)
	attrs := formatAttributes(s.Attributes())

	if s.Status().Code == codes.Error {
		desc := s.Status().Description
		if desc == "" {
			desc = "operation failed"
		}
		b.log.Warn(fmt.Sprintf("%s failed after %s%s: %s", s.Name(), elapsed, attrs, desc))
		return
	}
	b.log.Info(fmt.Sprintf("%s finished in %s%s", s.Name(), elapsed, attrs))
}

// Shutdown is called when the SDK shuts down.
func (b *Bridge) Shutdown(_ context.Context) error {
	return nil
}

// ForceFlush exports all ended spans that have not yet been exported.
func (b *Bridge) ForceFlush(_ context.Context) error {
	return nil
}

// formatAttributes renders attributes as " (k=v, ...)" sorted by key.
func formatAttributes(kvs []attribute.KeyValue) string {
	if len(kvs) == 0 {
		return ""
	}
	sorted := slices.Clone(kvs)
	slices.SortFunc(sorted, func(a, b attribute.KeyValue) int {
		return strings.Compare(string(a.Key), string(b.Key))
	})

	parts := make([]string, len(sorted))
	for i, kv := range sorted {
		parts[i] = string(kv.Key) + "=" + kv.Value.Emit()
	}
	return " (" + strings.Join(parts, ", ") + ")"
}
