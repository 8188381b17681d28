package cmd

import (
	"context"
	"io"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/ardnew/rbconf/cli/cmd/browse"
	"github.com/ardnew/rbconf/log"
)

// Browse opens an interactive, fuzzy-filtered view of the configuration.
// The entry selected with enter is printed on exit.
type Browse struct {
	Query string `arg:"" help:"Initial filter" optional:""`
}

// Run executes the browse command.
func (b *Browse) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	c, err := configFrom(ctx)
	if err != nil {
		return err
	}

	key, err := browse.Run(ctx, screenFor(outputFrom(ctx)), c, log.Default(), b.Query)
	if err != nil || key == "" {
		return err
	}

	val, _ := c.Get(key)

	return write(ctx, key+" = "+val+"\n")
}

// screenFor returns the writer the browser draws on. Output that is a
// terminal, or not a file at all, is drawn on directly. Redirected standard
// output is kept for the selection and the browser draws on standard error.
func screenFor(w io.Writer) io.Writer {
	f, ok := w.(*os.File)
	if !ok || isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()) {
		return w
	}

	return os.Stderr
}
