package conf

import (
	"os"

	"github.com/ardnew/mung"
)

// LibPathEnv returns the name of the dynamic library search variable
// ("LIBPATHENV") and its value with "libdir" placed in front of current.
// Items are separated by "PATH_SEPARATOR".
func (c *Config) LibPathEnv(current string) (name, value string) {
	sep := c.value("PATH_SEPARATOR")
	if sep == "" {
		sep = string(os.PathListSeparator)
	}

	value = mung.Make(
		mung.WithSubjectItems(current),
		mung.WithDelim(sep),
		mung.WithPrefixItems(c.value("libdir")),
	).String()

	return c.value("LIBPATHENV"), value
}
