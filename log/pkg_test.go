package log

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestPackageFunctions(t *testing.T) {
	saved := Default()
	t.Cleanup(func() {
		defaultMu.Lock()
		defaultLog = saved
		defaultMu.Unlock()
	})

	var buf bytes.Buffer

	Config(WithOutput(&buf), WithLevel(LevelTrace), WithFormat(FormatJSON))

	tests := []struct {
		name  string
		fn    func(string, ...slog.Attr)
		level string
	}{
		{"Trace", Trace, "TRACE"},
		{"Debug", Debug, "DEBUG"},
		{"Info", Info, "INFO"},
		{"Warn", Warn, "WARN"},
		{"Error", Error, "ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf.Reset()
			tt.fn("message", slog.String("key", "value"))

			out := buf.String()
			if !strings.Contains(out, `"level":"`+tt.level+`"`) {
				t.Errorf("level %s missing: %s", tt.level, out)
			}

			if !strings.Contains(out, `"key":"value"`) {
				t.Errorf("attribute missing: %s", out)
			}
		})
	}

	buf.Reset()
	InfoContext(t.Context(), "ctx")
	With(slog.Bool("scoped", true)).Warn("with")

	if !strings.Contains(buf.String(), `"scoped":true`) {
		t.Errorf("With attribute missing: %s", buf.String())
	}
}
