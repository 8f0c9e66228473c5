package logging

import (
	"context"
	"log/slog"
)

// MultiHandler forwards each record to every sink that accepts its level. It
// pairs the stdout JSON handler with the DBHandler, which only takes ERROR
// and above.
type MultiHandler struct {
	sinks []slog.Handler
}

func NewMultiHandler(sinks ...slog.Handler) *MultiHandler {
	return &MultiHandler{sinks: sinks}
}

func (m *MultiHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, sink := range m.sinks {
		if sink.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (m *MultiHandler) Handle(ctx context.Context, record slog.Record) error {
	for _, sink := range m.sinks {
		if sink.Enabled(ctx, record.Level) {
			if err := sink.Handle(ctx, record); err != nil {
				return err
			}
		}
	}
	return nil
}

func (m *MultiHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	sinks := make([]slog.Handler, len(m.sinks))
	for i, sink := range m.sinks {
		sinks[i] = sink.WithAttrs(attrs)
	}
	return &MultiHandler{sinks: sinks}
}

func (m *MultiHandler) WithGroup(name string) slog.Handler {
	sinks := make([]slog.Handler, len(m.sinks))
	for i, sink := range m.sinks {
		sinks[i] = sink.WithGroup(name)
	}
	return &MultiHandler{sinks: sinks}
}
