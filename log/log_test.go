package log

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestMake_FiltersByLevel(t *testing.T) {
	var buf bytes.Buffer

	logger := Make(&buf, WithLevel(LevelInfo))

	logger.Debug("hidden")

	if buf.Len() != 0 {
		t.Fatalf("debug record written at info level: %q", buf.String())
	}

	logger.Info("shown")

	if !strings.Contains(buf.String(), "shown") {
		t.Errorf("info record missing: %q", buf.String())
	}
}

func TestMake_TraceLevelName(t *testing.T) {
	var buf bytes.Buffer

	logger := Make(&buf, WithLevel(LevelTrace), WithFormat(FormatJSON))
	logger.Trace("deep", slog.String("key", "libdir"))

	var rec map[string]any
	if err := json.Unmarshal(buf.Bytes(), &rec); err != nil {
		t.Fatalf("invalid JSON %q: %v", buf.String(), err)
	}

	if rec["level"] != "TRACE" {
		t.Errorf("level = %v, want TRACE", rec["level"])
	}

	if rec["key"] != "libdir" {
		t.Errorf("key = %v, want libdir", rec["key"])
	}
}

func TestMake_CallerNamesTestFile(t *testing.T) {
	var buf bytes.Buffer

	logger := Make(&buf, WithFormat(FormatJSON), WithCaller(true), WithLevel(LevelInfo))
	logger.Info("where")

	if !strings.Contains(buf.String(), "log_test.go") {
		t.Errorf("source does not name the caller: %s", buf.String())
	}
}

func TestMake_NoTimestamp(t *testing.T) {
	var buf bytes.Buffer

	logger := Make(&buf, WithFormat(FormatJSON), WithTimeLayout("none"), WithLevel(LevelInfo))
	logger.Info("untimed")

	if strings.Contains(buf.String(), `"time"`) {
		t.Errorf("timestamp present: %s", buf.String())
	}
}

func TestLogger_With(t *testing.T) {
	var buf bytes.Buffer

	logger := Make(&buf, WithFormat(FormatJSON), WithLevel(LevelInfo)).
		With(slog.String("table", "baked"))
	logger.Info("loaded")

	if !strings.Contains(buf.String(), `"table":"baked"`) {
		t.Errorf("attribute missing: %s", buf.String())
	}
}

func TestLogger_Wrap(t *testing.T) {
	var first, second bytes.Buffer

	logger := Make(&first, WithLevel(LevelError))
	wrapped := logger.Wrap(WithOutput(&second), WithLevel(LevelDebug))

	wrapped.Debug("wrapped")
	logger.Debug("original")

	if first.Len() != 0 {
		t.Errorf("original logger wrote: %q", first.String())
	}

	if !strings.Contains(second.String(), "wrapped") {
		t.Errorf("wrapped logger missing record: %q", second.String())
	}

	if logger.Level() != LevelError || wrapped.Level() != LevelDebug {
		t.Errorf("levels = %v, %v", logger.Level(), wrapped.Level())
	}
}

func TestLogger_ZeroValue(t *testing.T) {
	var logger Logger

	logger.Error("dropped")

	if logger.Level() != DefaultLevel || logger.Format() != DefaultFormat {
		t.Errorf("zero logger reports %v %v", logger.Level(), logger.Format())
	}

	if logger.With(slog.Int("n", 1)).Logger != nil {
		t.Error("With on zero logger allocated a handler")
	}
}

func TestPrettyHandler(t *testing.T) {
	var buf bytes.Buffer

	logger := Make(&buf,
		WithPretty(true),
		WithLevel(LevelDebug),
		WithTimeLayout("none"),
	).With(slog.String("pkg", "conf"))

	logger.Debug("expanded",
		slog.String("key", "libdir"),
		slog.String("value", "a b"),
		slog.Int("depth", 2),
		slog.Group("memo", slog.Int("size", 3)),
	)

	out := buf.String()

	for _, want := range []string{
		"DEBUG", "expanded", "pkg=", "conf", "key=", "libdir",
		"value=", `"a b"`, "depth=", "2", "memo.size=", "3",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q missing %q", out, want)
		}
	}

	if strings.Count(out, "\n") != 1 {
		t.Errorf("expected one line, got %q", out)
	}
}

func TestDiscard(t *testing.T) {
	logger := Discard()

	if logger.Enabled(t.Context(), LevelError) {
		t.Error("Discard logger enabled at error level")
	}
}
