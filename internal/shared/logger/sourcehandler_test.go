package logger

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSourceHandler(t *testing.T) {
	tests := []struct {
		name       string
		logLevel   slog.Level
		minLevel   slog.Level
		wantSource bool
	}{
		{"info below warn threshold", slog.LevelInfo, slog.LevelWarn, false},
		{"warn at threshold", slog.LevelWarn, slog.LevelWarn, true},
		{"error above threshold", slog.LevelError, slog.LevelWarn, true},
		{"info with debug threshold", slog.LevelInfo, slog.LevelDebug, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			base := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
			log := slog.New(NewSourceHandler(base, tt.minLevel))

			log.Log(context.Background(), tt.logLevel, "menu resolved")

			assert.Equal(t, tt.wantSource, bytes.Contains(buf.Bytes(), []byte("source=")), buf.String())
		})
	}
}

func TestSourceHandlerKeepsAttrsAndGroups(t *testing.T) {
	var buf bytes.Buffer
	base := slog.NewTextHandler(&buf, nil)
	log := slog.New(NewSourceHandler(base, slog.LevelWarn)).
		With("tenant_id", "t1").
		WithGroup("req")

	log.Warn("bulk toggle skipped", "count", 3)

	out := buf.String()
	assert.Contains(t, out, "tenant_id=t1")
	assert.Contains(t, out, "req.count=3")
	assert.Contains(t, out, "source=")
}
