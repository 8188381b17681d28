package cmd

import (
	"context"
	"fmt"

	"github.com/ardnew/rbconf/pkg"
)

// Version prints the program version and identifies the table in use.
type Version struct {
	Short bool `help:"Print only the program version" short:"s"`
}

// Run executes the version command.
func (v *Version) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	if v.Short {
		return write(ctx, pkg.Version()+"\n")
	}

	c, err := configFrom(ctx)
	if err != nil {
		return err
	}

	recorded := c.RawTable().RecordedVersion()
	arch, _ := c.Get("arch")

	return write(ctx, fmt.Sprintf(
		"%s %s\ntable %s (%s) digest %s\n",
		pkg.Name, pkg.Version(), recorded, arch, c.DigestString(),
	))
}

