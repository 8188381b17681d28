package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/ardnew/rbconf/log"
)

// Eval evaluates an expression over the configuration.
//
// The expression language is expr-lang. CONFIG and RAW are maps of the
// expanded and recorded values, and get, has, expand, and path are
// available as functions. Strings, numbers, and booleans are printed as
// is; other results are printed as YAML.
type Eval struct {
	Expr []string `arg:"" help:"Expression; words are joined by spaces" name:"expr"`
}

// Run executes the eval command.
func (e *Eval) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	source := strings.TrimSpace(strings.Join(e.Expr, " "))
	if source == "" {
		return ErrEmptyQuery
	}

	c, err := configFrom(ctx)
	if err != nil {
		return err
	}

	result, err := c.Query(ctx, source)
	if err != nil {
		return err
	}

	log.TraceContext(ctx, "eval", slog.String("source", source))

	text, err := formatResult(ctx, result)
	if err != nil {
		return err
	}

	return write(ctx, text)
}

// formatResult renders an evaluation result followed by a newline.
func formatResult(ctx context.Context, result any) (string, error) {
	switch v := result.(type) {
	case nil:
		return "\n", nil

	case string:
		return v + "\n", nil

	case bool, int, int64, uint64, float64:
		return fmt.Sprintln(v), nil

	case []string:
		return strings.Join(v, "\n") + "\n", nil
	}

	b, err := yaml.MarshalContext(ctx, result)
	if err != nil {
		return "", ErrYAMLMarshal.
			With(slog.String("type", fmt.Sprintf("%T", result))).
			Wrap(err)
	}

	return string(b), nil
}
