package huecurve

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelWarn})))
	defer SetLogger(nil)

	c := mustNew(t, 400, 300)
	_ = c.UpdateSize(-1, 5)
	if !strings.Contains(buf.String(), "rejecting curve resize") {
		t.Errorf("rejected resize wasn't logged, got %q", buf.String())
	}
	if strings.Contains(buf.String(), "recomputed curve") {
		t.Error("debug record logged at warn level")
	}

	SetLogger(nil)
	if Logger().Enabled(t.Context(), slog.LevelError) {
		t.Error("default logger is enabled")
	}
}
