package cmd

import (
	"context"
	"strings"
)

// Expand resolves configuration references in text.
type Expand struct {
	Text []string `arg:"" help:"Text containing $(KEY) references; words are joined by spaces" name:"text"`
}

// Run executes the expand command.
func (e *Expand) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	c, err := configFrom(ctx)
	if err != nil {
		return err
	}

	return write(ctx, c.Expand(strings.Join(e.Text, " "))+"\n")
}
