package log

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"
)

var (
	styleKey    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	styleString = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	styleNumber = lipgloss.NewStyle().Foreground(lipgloss.Color("4"))
	styleTime   = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	styleSource = lipgloss.NewStyle().Foreground(lipgloss.Color("5"))
	styleMsg    = lipgloss.NewStyle().Bold(true)

	styleLevel = map[Level]lipgloss.Style{
		LevelTrace: lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		LevelDebug: lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
		LevelInfo:  lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
		LevelWarn:  lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
		LevelError: lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
	}
)

// prettyHandler renders records as colorized "key=value" lines.
// Values are printed without quoting unless they contain spaces.
type prettyHandler struct {
	mu     *sync.Mutex
	w      io.Writer
	stamp  func(time.Time) string
	opts   slog.HandlerOptions
	prefix string
	attrs  []slog.Attr
}

func newPrettyHandler(
	w io.Writer,
	opts *slog.HandlerOptions,
	stamp func(time.Time) string,
) *prettyHandler {
	return &prettyHandler{mu: &sync.Mutex{}, w: w, stamp: stamp, opts: *opts}
}

func (h *prettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	minLevel := slog.LevelInfo
	if h.opts.Level != nil {
		minLevel = h.opts.Level.Level()
	}

	return level >= minLevel
}

func (h *prettyHandler) Handle(_ context.Context, r slog.Record) error {
	var buf bytes.Buffer

	if !r.Time.IsZero() {
		if s := h.stamp(r.Time); s != "" {
			buf.WriteString(styleTime.Render(s))
			buf.WriteByte(' ')
		}
	}

	level := Level(r.Level)
	name := fmt.Sprintf("%-5s", strings.ToUpper(level.String()))

	if style, ok := styleLevel[level]; ok {
		name = style.Render(name)
	}

	buf.WriteString(name)

	if h.opts.AddSource {
		if src := r.Source(); src != nil && src.File != "" {
			buf.WriteByte(' ')
			buf.WriteString(styleSource.Render(src.File + ":" + strconv.Itoa(src.Line)))
		}
	}

	buf.WriteByte(' ')
	buf.WriteString(styleMsg.Render(r.Message))

	for _, a := range h.attrs {
		h.writeAttr(&buf, "", a)
	}

	r.Attrs(func(a slog.Attr) bool {
		h.writeAttr(&buf, h.prefix, a)

		return true
	})

	buf.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()

	_, err := h.w.Write(buf.Bytes())

	return err
}

func (h *prettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	c := *h
	c.attrs = make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	c.attrs = append(c.attrs, h.attrs...)

	for _, a := range attrs {
		if h.prefix != "" {
			a.Key = h.prefix + a.Key
		}

		c.attrs = append(c.attrs, a)
	}

	return &c
}

func (h *prettyHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}

	c := *h
	c.prefix = h.prefix + name + "."

	return &c
}

func (h *prettyHandler) writeAttr(buf *bytes.Buffer, prefix string, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}

	if a.Value.Kind() == slog.KindGroup {
		if a.Key != "" {
			prefix += a.Key + "."
		}

		for _, g := range a.Value.Group() {
			h.writeAttr(buf, prefix, g)
		}

		return
	}

	buf.WriteByte(' ')
	buf.WriteString(styleKey.Render(prefix + a.Key + "="))

	switch a.Value.Kind() {
	case slog.KindInt64, slog.KindUint64, slog.KindFloat64, slog.KindBool,
		slog.KindDuration:
		buf.WriteString(styleNumber.Render(a.Value.String()))

	case slog.KindTime:
		buf.WriteString(styleTime.Render(h.stamp(a.Value.Time())))

	default:
		s := a.Value.String()
		if s == "" || strings.ContainsAny(s, " \t\n\"=") {
			s = strconv.Quote(s)
		}

		buf.WriteString(styleString.Render(s))
	}
}
