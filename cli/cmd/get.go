package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/ardnew/rbconf/conf"
)

// maxSuggestions limits the keys offered for a mistyped key.
const maxSuggestions = 3

// Get prints the values of configuration keys.
type Get struct {
	Raw  bool     `help:"Print recorded values without expanding references" short:"r"`
	Keys []string `arg:""                                                    help:"Configuration key(s)" name:"key"`
}

// Run executes the get command.
func (g *Get) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	c, err := configFrom(ctx)
	if err != nil {
		return err
	}

	lookup := c.Get
	if g.Raw {
		lookup = c.Raw
	}

	var b strings.Builder

	for _, key := range g.Keys {
		val, ok := lookup(key)
		if !ok {
			return unknownKey(c, key)
		}

		b.WriteString(val)
		b.WriteByte('\n')
	}

	return write(ctx, b.String())
}

// unknownKey returns an [ErrUnknownKey] naming the closest keys of c.
func unknownKey(c *conf.Config, key string) error {
	suggest := suggestKeys(c.Keys(), key)

	err := ErrUnknownKey.With(
		slog.String("key", key),
		slog.Any("suggest", suggest),
	)

	if len(suggest) == 0 {
		return err.Wrap(fmt.Errorf("%q", key))
	}

	return err.Wrap(fmt.Errorf("%q (did you mean %s?)", key, strings.Join(suggest, ", ")))
}

// suggestKeys returns up to [maxSuggestions] keys that fuzzy-match key,
// best first.
func suggestKeys(keys []string, key string) []string {
	matches := fuzzy.Find(key, keys)

	suggest := make([]string, 0, min(len(matches), maxSuggestions))
	for _, m := range matches {
		if len(suggest) == maxSuggestions {
			break
		}

		suggest = append(suggest, m.Str)
	}

	return suggest
}

// write writes s to the command output.
func write(ctx context.Context, s string) error {
	_, err := fmt.Fprint(outputFrom(ctx), s)
	if err != nil {
		return ErrWriteOutput.Wrap(err)
	}

	return nil
}
