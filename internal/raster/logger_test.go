package raster

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNopHandler(t *testing.T) {
	h := nopHandler{}
	for _, level := range []slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelWarn, slog.LevelError} {
		assert.False(t, h.Enabled(context.Background(), level))
	}
	assert.NoError(t, h.Handle(context.Background(), slog.Record{}))
	assert.IsType(t, nopHandler{}, h.WithAttrs([]slog.Attr{slog.String("k", "v")}))
	assert.IsType(t, nopHandler{}, h.WithGroup("g"))
}

func TestLoggerDefaultSilent(t *testing.T) {
	l := Logger()
	require.NotNil(t, l)
	assert.False(t, l.Enabled(context.Background(), slog.LevelDebug))
}

func TestSetLogger(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	New(NewRecorder()).LineDDA(Pt(1, 1), Pt(1, 1))
	assert.Contains(t, buf.String(), "degenerate line")
	assert.Contains(t, buf.String(), "algorithm=dda")

	buf.Reset()
	New(NewRecorder()).ClipLine(Rect{0, 0, 1, 1}, Pt(5, 5), Pt(6, 6))
	assert.Contains(t, buf.String(), "clip: rejected")

	SetLogger(nil)
	assert.False(t, Logger().Enabled(context.Background(), slog.LevelError))
}
