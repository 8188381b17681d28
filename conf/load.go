package conf

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/klauspost/readahead"
	"github.com/tidwall/jsonc"
)

// LoadFile reads a table from path. The format is chosen by the file
// extension: .yaml/.yml, .json, or .jsonc.
func LoadFile(ctx context.Context, path string) (*Table, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, ErrReadInput.Wrap(err).With(slog.String("path", path))
	}
	defer f.Close()

	t, err := Load(ctx, f, format)
	if err != nil {
		var e *Error
		if errors.As(err, &e) {
			return nil, e.With(slog.String("path", path))
		}

		return nil, err
	}

	return t, nil
}

// Load reads a table from r. The document must be a single flat mapping of
// keys to scalar values; entries keep their document order. Numbers and
// booleans are stored in their textual form and null as "".
func Load(ctx context.Context, r io.Reader, format Format) (*Table, error) {
	ra := readahead.NewReader(r)
	defer ra.Close()

	data, err := io.ReadAll(ra)
	if err != nil {
		return nil, ErrReadInput.Wrap(err)
	}

	switch format {
	case FormatYAML:
		return decodeYAML(ctx, data)
	case FormatJSON, FormatJSONC:
		return decodeJSON(jsonc.ToJSON(data))
	}

	return nil, ErrInvalidFormat.With(slog.String("format", format.String()))
}

func decodeYAML(ctx context.Context, data []byte) (*Table, error) {
	var ms yaml.MapSlice

	if err := yaml.UnmarshalContext(ctx, data, &ms); err != nil {
		return nil, ErrDecode.Wrap(err)
	}

	t := NewTable(len(ms))

	for _, item := range ms {
		key := fmt.Sprint(item.Key)

		value, err := scalarText(item.Value)
		if err != nil {
			return nil, ErrDecode.Wrap(err).With(slog.String("key", key))
		}

		t.Set(key, value)
	}

	return t, nil
}

func decodeJSON(data []byte) (*Table, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return nil, ErrDecode.Wrap(err)
	}

	if tok != json.Delim('{') {
		return nil, ErrDecode.Wrap(fmt.Errorf("expected object, found %v", tok))
	}

	t := NewTable(0)

	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, ErrDecode.Wrap(err)
		}

		key, _ := tok.(string)

		tok, err = dec.Token()
		if err != nil {
			return nil, ErrDecode.Wrap(err).With(slog.String("key", key))
		}

		value, err := scalarText(tok)
		if err != nil {
			return nil, ErrDecode.Wrap(err).With(slog.String("key", key))
		}

		t.Set(key, value)
	}

	if _, err := dec.Token(); err != nil {
		return nil, ErrDecode.Wrap(err)
	}

	return t, nil
}

func scalarText(v any) (string, error) {
	switch v := v.(type) {
	case nil:
		return "", nil
	case string:
		return v, nil
	case json.Delim, yaml.MapSlice, map[string]any, map[any]any, []any:
		return "", fmt.Errorf("value is not a scalar: %v", v)
	}

	return fmt.Sprint(v), nil
}
