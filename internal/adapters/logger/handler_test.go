package logger_test

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/reify/internal/adapters/logger"
)

func TestPrettyHandler_Handle_Levels(t *testing.T) {
	tests := []struct {
		name         string
		handlerLevel slog.Level
		level        slog.Level
		msg          string
		goldenName   string
	}{
		{
			name:         "info level",
			handlerLevel: slog.LevelInfo,
			level:        slog.LevelInfo,
			msg:          "information message",
			goldenName:   "handler_info",
		},
		{
			name:         "warn level",
			handlerLevel: slog.LevelInfo,
			level:        slog.LevelWarn,
			msg:          "warning message",
			goldenName:   "handler_warn",
		},
		{
			name:         "error level",
			handlerLevel: slog.LevelInfo,
			level:        slog.LevelError,
			msg:          "error message",
			goldenName:   "handler_error",
		},
		{
			name:         "debug level filtered",
			handlerLevel: slog.LevelInfo,
			level:        slog.LevelDebug,
			msg:          "debug message",
			goldenName:   "handler_debug_filtered",
		},
		{
			name:         "debug level enabled",
			handlerLevel: slog.LevelDebug,
			level:        slog.LevelDebug,
			msg:          "debug message",
			goldenName:   "handler_debug",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("NO_COLOR", "1")

			buf := &bytes.Buffer{}
			handler := logger.NewPrettyHandler(buf, &slog.HandlerOptions{
				Level: tt.handlerLevel,
			})
			lg := slog.New(handler)

			lg.Log(t.Context(), tt.level, tt.msg)

			g := goldie.New(t)
			g.Assert(t, tt.goldenName, buf.Bytes())
		})
	}
}

func TestPrettyHandler_Attrs(t *testing.T) {
	tests := []struct {
		name       string
		setup      func(h slog.Handler) slog.Handler
		msg        string
		attrs      []any
		goldenName string
	}{
		{
			name: "handler attributes",
			setup: func(h slog.Handler) slog.Handler {
				return h.WithAttrs([]slog.Attr{slog.String("a", "1"), slog.Int("b", 2)})
			},
			msg:        "multi attr message",
			goldenName: "handler_attrs_multi",
		},
		{
			name: "group attribute",
			setup: func(h slog.Handler) slog.Handler {
				return h.WithAttrs([]slog.Attr{slog.Group("g", slog.String("k", "v"))})
			},
			msg:        "group attr message",
			goldenName: "handler_attrs_group",
		},
		{
			name: "nested groups",
			setup: func(h slog.Handler) slog.Handler {
				return h.WithGroup("a").WithGroup("").WithGroup("b")
			},
			msg:        "nested group message",
			attrs:      []any{"key", "val"},
			goldenName: "handler_group_nested",
		},
		{
			name: "group with handler and record attrs",
			setup: func(h slog.Handler) slog.Handler {
				return h.WithGroup("req").WithAttrs([]slog.Attr{slog.String("id", "123")})
			},
			msg:        "grouped message",
			attrs:      []any{"extra", "data"},
			goldenName: "handler_combined_group",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("NO_COLOR", "1")

			buf := &bytes.Buffer{}
			baseHandler := logger.NewPrettyHandler(buf, &slog.HandlerOptions{
				Level: slog.LevelInfo,
			})

			lg := slog.New(tt.setup(baseHandler))
			lg.Info(tt.msg, tt.attrs...)

			g := goldie.New(t)
			g.Assert(t, tt.goldenName, buf.Bytes())
		})
	}
}

func TestPrettyHandler_LevelVar(t *testing.T) {
	level := &slog.LevelVar{}
	handler := logger.NewPrettyHandler(&bytes.Buffer{}, &slog.HandlerOptions{Level: level})

	assert.False(t, handler.Enabled(t.Context(), slog.LevelDebug))

	level.Set(slog.LevelDebug)
	assert.True(t, handler.Enabled(t.Context(), slog.LevelDebug))
}

func TestPrettyHandler_NilWriter(t *testing.T) {
	require.NotPanics(t, func() {
		_ = logger.NewPrettyHandler(nil, nil)
	})
}

func TestPrettyHandler_Handle_ReturnsError(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	handler := logger.NewPrettyHandler(brokenWriter{}, nil)
	lg := slog.New(handler)

	err := handler.Handle(t.Context(), slog.NewRecord(time.Time{}, slog.LevelInfo, "msg", 0))
	require.Error(t, err)

	require.NotPanics(t, func() { lg.Info("ignored") })
}

type brokenWriter struct{}

func (brokenWriter) Write([]byte) (int, error) {
	return 0, errors.New("broken")
}
