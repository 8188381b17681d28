package cmd

import (
	"context"
	"os"
)

// Exe prints the path of the runtime executable.
type Exe struct{}

// Run executes the exe command.
func (Exe) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	c, err := configFrom(ctx)
	if err != nil {
		return err
	}

	return write(ctx, c.Executable()+"\n")
}

// GemHome prints the directory bundled gems are installed in.
type GemHome struct{}

// Run executes the gem-home command.
func (GemHome) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	c, err := configFrom(ctx)
	if err != nil {
		return err
	}

	return write(ctx, c.GemHome()+"\n")
}

// Env prints an assignment of the dynamic library search path with the
// runtime's library directory in front.
type Env struct {
	Current string `help:"Search path to extend (default: the variable's current value)" placeholder:"PATH"`
	Export  bool   `help:"Prefix the assignment with 'export'"                            short:"e"`
}

// Run executes the env command.
func (e *Env) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	c, err := configFrom(ctx)
	if err != nil {
		return err
	}

	current := e.Current
	if current == "" {
		if name, ok := c.Get("LIBPATHENV"); ok && name != "" {
			current = os.Getenv(name)
		}
	}

	name, value := c.LibPathEnv(current)

	line := name + "=" + value + "\n"
	if e.Export {
		line = "export " + line
	}

	return write(ctx, line)
}
