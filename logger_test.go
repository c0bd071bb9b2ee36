package epicycle

import (
	"bytes"
	"context"
	"log/slog"
	"math"
	"strings"
	"testing"
)

func TestSetLogger(t *testing.T) {
	if Logger().Enabled(context.Background(), slog.LevelError) {
		t.Error("default logger is enabled")
	}

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	defer SetLogger(nil)

	Fit(0, 0, math.Pi/4, 2, 0, -math.Pi/4)
	if buf.Len() != 0 {
		t.Errorf("successful fit logged %q", buf.String())
	}
	Fit(1, 1, math.Pi, 1, 1, 0)
	if !strings.Contains(buf.String(), "angle fit fell back") {
		t.Errorf("fallback wasn't logged, got %q", buf.String())
	}

	SetLogger(nil)
	if Logger().Enabled(context.Background(), slog.LevelError) {
		t.Error("logger is still enabled after reset")
	}
}
