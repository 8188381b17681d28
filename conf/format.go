package conf

//go:generate go tool stringer --linecomment --type Format --output format_string.go

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
)

// Format is a serialization of a table.
type Format int

const (
	FormatYAML  Format = iota // yaml
	FormatJSON                // json
	FormatJSONC               // jsonc
	FormatMake                // make
)

// FormatNames lists the names accepted by [ParseFormat].
func FormatNames() []string {
	return []string{
		FormatYAML.String(),
		FormatJSON.String(),
		FormatJSONC.String(),
		FormatMake.String(),
	}
}

// ParseFormat returns the format named by s, case-insensitively. "yml" is
// accepted for YAML and "mk" for Makefile output.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yaml", "yml":
		return FormatYAML, nil
	case "json":
		return FormatJSON, nil
	case "jsonc":
		return FormatJSONC, nil
	case "make", "mk", "makefile":
		return FormatMake, nil
	}

	return 0, ErrInvalidFormat.With(slog.String("format", s))
}

// FormatOf infers the format from the extension of path.
func FormatOf(path string) (Format, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return 0, ErrInvalidFormat.With(slog.String("path", path))
	}

	return ParseFormat(ext)
}

// Output selects how a table is written.
type Output struct {
	Format Format
	// Indent is the indentation width for YAML and JSON. Zero selects
	// compact output: flow style for YAML and a single line for JSON.
	Indent int
	// Raw writes the recorded values instead of the expanded ones.
	Raw bool
}

// DefaultIndent is the indentation used by [Config.FormatYAML] and
// [Config.FormatJSON].
const DefaultIndent = 2

// Write serializes the configuration to w.
func (c *Config) Write(ctx context.Context, w io.Writer, out Output) error {
	t := c.expanded
	if out.Raw {
		t = c.raw
	}

	return WriteTable(ctx, w, t, out)
}

// FormatYAML writes the configuration as a YAML mapping.
func (c *Config) FormatYAML(ctx context.Context, w io.Writer, raw bool) error {
	return c.Write(ctx, w, Output{Format: FormatYAML, Indent: DefaultIndent, Raw: raw})
}

// FormatJSON writes the configuration as a JSON object.
func (c *Config) FormatJSON(ctx context.Context, w io.Writer, raw bool) error {
	return c.Write(ctx, w, Output{Format: FormatJSON, Indent: DefaultIndent, Raw: raw})
}

// FormatMake writes the configuration as Makefile variable assignments.
func (c *Config) FormatMake(ctx context.Context, w io.Writer, raw bool) error {
	return c.Write(ctx, w, Output{Format: FormatMake, Raw: raw})
}

// WriteTable serializes t to w in key order. Out.Raw is ignored.
func WriteTable(ctx context.Context, w io.Writer, t *Table, out Output) error {
	switch out.Format {
	case FormatYAML:
		return writeYAML(ctx, w, t, out.Indent)
	case FormatJSON, FormatJSONC:
		return writeJSON(w, t, out.Indent)
	case FormatMake:
		return writeMake(w, t)
	}

	return ErrInvalidFormat.With(slog.String("format", out.Format.String()))
}

func writeYAML(ctx context.Context, w io.Writer, t *Table, indent int) error {
	ms := make(yaml.MapSlice, 0, t.Len())

	for k, v := range t.All() {
		ms = append(ms, yaml.MapItem{Key: k, Value: v})
	}

	var opts []yaml.EncodeOption
	if indent > 0 {
		opts = append(opts, yaml.Indent(indent))
	} else {
		opts = append(opts, yaml.Flow(true))
	}

	data, err := yaml.MarshalContext(ctx, ms, opts...)
	if err != nil {
		return err
	}

	_, err = w.Write(data)

	return err
}

// writeJSON emits the object by hand so keys keep their order.
func writeJSON(w io.Writer, t *Table, indent int) error {
	var b strings.Builder

	pad := strings.Repeat(" ", indent)
	sep, colon := ",", ":"

	if indent > 0 {
		sep, colon = ",\n"+pad, ": "
	}

	b.WriteByte('{')

	if indent > 0 && t.Len() > 0 {
		b.WriteString("\n" + pad)
	}

	i := 0

	for k, v := range t.All() {
		if i > 0 {
			b.WriteString(sep)
		}

		key, err := json.Marshal(k)
		if err != nil {
			return err
		}

		val, err := json.Marshal(v)
		if err != nil {
			return err
		}

		b.Write(key)
		b.WriteString(colon)
		b.Write(val)

		i++
	}

	if indent > 0 && t.Len() > 0 {
		b.WriteByte('\n')
	}

	b.WriteString("}\n")

	_, err := io.WriteString(w, b.String())

	return err
}

var makeEscaper = strings.NewReplacer(
	"#", `\#`,
	"\n", "\\\n\t",
)

func writeMake(w io.Writer, t *Table) error {
	for k, v := range t.All() {
		if _, err := fmt.Fprintf(w, "%s = %s\n", k, makeEscaper.Replace(v)); err != nil {
			return err
		}
	}

	return nil
}
