package logger

import (
	"context"
	"log/slog"
	"maps"

	"go.opentelemetry.io/otel/trace"
)

// pipelineKeys are attached from the context so ingestion logs written with
// the plain Logger still correlate to their run and source.
var pipelineKeys = []ContextKey{RunIDKey, SourceIDKey}

// TraceContextHandler adds trace_id and span_id when the context carries a
// valid span, and run_id and source_id unless the logger already bound them.
type TraceContextHandler struct {
	inner slog.Handler
	bound map[string]bool
}

func NewTraceContextHandler(inner slog.Handler) *TraceContextHandler {
	return &TraceContextHandler{inner: inner}
}

func (h *TraceContextHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.inner.Enabled(ctx, level)
}

func (h *TraceContextHandler) Handle(ctx context.Context, r slog.Record) error {
	if sc := trace.SpanContextFromContext(ctx); sc.IsValid() {
		r.AddAttrs(
			slog.String("trace_id", sc.TraceID().String()),
			slog.String("span_id", sc.SpanID().String()),
		)
	}
	if ctx != nil {
		for _, key := range pipelineKeys {
			if h.bound[string(key)] {
				continue
			}
			if v, ok := ctx.Value(key).(string); ok && v != "" {
				r.AddAttrs(slog.String(string(key), v))
			}
		}
	}
	return h.inner.Handle(ctx, r)
}

func (h *TraceContextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	bound := maps.Clone(h.bound)
	if bound == nil {
		bound = make(map[string]bool, len(attrs))
	}
	for _, a := range attrs {
		bound[a.Key] = true
	}
	return &TraceContextHandler{inner: h.inner.WithAttrs(attrs), bound: bound}
}

func (h *TraceContextHandler) WithGroup(name string) slog.Handler {
	return &TraceContextHandler{inner: h.inner.WithGroup(name), bound: h.bound}
}
