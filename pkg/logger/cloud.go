package logger

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"time"
)

// CloudHandler is a slog.Handler emitting one JSON line per record with a
// Cloud Logging "severity" field, so structured payloads survive the log
// collector unmangled.
type CloudHandler struct {
	level slog.Level
}

func NewCloudHandler(level slog.Level) *CloudHandler {
	return &CloudHandler{level: level}
}

func (h *CloudHandler) Enabled(_ context.Context, l slog.Level) bool {
	return l >= h.level
}

func (h *CloudHandler) Handle(_ context.Context, r slog.Record) error {
	event := map[string]any{
		"severity": severity(r.Level),
		"message":  r.Message,
		"time":     r.Time.Format(time.RFC3339Nano),
	}

	if r.NumAttrs() > 0 {
		data := make(map[string]any)
		r.Attrs(func(a slog.Attr) bool {
			data[a.Key] = a.Value.Any()
			return true
		})
		event["data"] = data
	}

	b, err := json.Marshal(event)
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(append(b, '\n'))
	return err
}

func (h *CloudHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &attrsHandler{handler: h, attrs: attrs}
}

func (h *CloudHandler) WithGroup(_ string) slog.Handler {
	// groups are flattened in this format
	return h
}

func severity(level slog.Level) string {
	switch level {
	case slog.LevelDebug:
		return "DEBUG"
	case slog.LevelInfo:
		return "INFO"
	case slog.LevelWarn:
		return "WARNING"
	case slog.LevelError:
		return "ERROR"
	default:
		return "DEFAULT"
	}
}

type attrsHandler struct {
	handler *CloudHandler
	attrs   []slog.Attr
}

func (h *attrsHandler) Enabled(ctx context.Context, l slog.Level) bool {
	return h.handler.Enabled(ctx, l)
}

func (h *attrsHandler) Handle(ctx context.Context, r slog.Record) error {
	for _, a := range h.attrs {
		r.AddAttrs(a)
	}
	return h.handler.Handle(ctx, r)
}

func (h *attrsHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	all := append(append([]slog.Attr{}, h.attrs...), attrs...)
	return &attrsHandler{handler: h.handler, attrs: all}
}

func (h *attrsHandler) WithGroup(_ string) slog.Handler {
	return h
}
