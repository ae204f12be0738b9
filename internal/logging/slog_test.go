package logging

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func newBufferLogger(level slog.Level) (*SlogLogger, *bytes.Buffer) {
	var buf bytes.Buffer
	h := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: level})
	return NewSlogLogger(slog.New(h)), &buf
}

func TestSlogLogger_Levels(t *testing.T) {
	log, buf := newBufferLogger(slog.LevelInfo)
	ctx := context.Background()

	log.Debug(ctx, "ignored at info level")
	require.Empty(t, buf.String())

	log.Info(ctx, "file uploaded", "file_id", "abc123")
	out := buf.String()
	require.Contains(t, out, "file uploaded")
	require.Contains(t, out, "file_id=abc123")

	buf.Reset()
	log.Warn(ctx, "sidecar missing")
	require.Contains(t, buf.String(), "level=WARN")

	buf.Reset()
	log.Error(ctx, "upload failed")
	require.Contains(t, buf.String(), "level=ERROR")
}

func TestSlogLogger_With(t *testing.T) {
	log, buf := newBufferLogger(slog.LevelDebug)

	child := log.With("component", "drive")
	child.Debug(context.Background(), "searching folder")

	out := buf.String()
	require.Contains(t, out, "component=drive")
	require.Contains(t, out, "searching folder")
}

func TestNewDefault_LevelParsing(t *testing.T) {
	// NewDefault writes to stderr so only construction is checked here.
	for _, level := range []string{"debug", "info", "warn", "error", "INFO", "bogus"} {
		require.NotNil(t, NewDefault(level))
	}
}
