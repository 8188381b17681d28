package cmd

import (
	"context"
	"log/slog"

	"github.com/ardnew/rbconf/conf"
	"github.com/ardnew/rbconf/log"
)

// FormatEnumIdentifier is the kong variable identifier listing the names
// accepted by the dump --format flag.
const FormatEnumIdentifier = "dumpFormatEnum"

// Dump writes the whole configuration in a machine-readable format.
type Dump struct {
	Format string `default:"yaml" enum:"${dumpFormatEnum}" help:"Output format (${enum})" short:"f"`
	Raw    bool   `help:"Write recorded values without expanding references" short:"r"`
	Indent int    `default:"2" help:"Indentation width for YAML and JSON; 0 is compact" short:"i"`
}

// Run executes the dump command.
func (d *Dump) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	format, err := conf.ParseFormat(d.Format)
	if err != nil {
		return err
	}

	c, err := configFrom(ctx)
	if err != nil {
		return err
	}

	log.DebugContext(ctx, "dump",
		slog.String("format", format.String()),
		slog.Bool("raw", d.Raw),
		slog.Int("indent", d.Indent),
	)

	err = c.Write(ctx, outputFrom(ctx), conf.Output{
		Format: format,
		Indent: max(d.Indent, 0),
		Raw:    d.Raw,
	})
	if err != nil {
		return ErrWriteOutput.Wrap(err)
	}

	return nil
}
