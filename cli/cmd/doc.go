// Package cmd implements the rbconf subcommands.
//
// Commands read the configuration and output writer from their
// [context.Context]; see [WithTable], [WithConfig], and [WithOutput].
package cmd

var (
	// CacheIdentifier is the kong variable identifier containing the path to
	// the runtime cache directory.
	CacheIdentifier = "cache"

	// ConfigIdentifier is the kong variable identifier containing the path of
	// the configuration file, and the name of the mapping within it that
	// holds flag values.
	ConfigIdentifier = "config"
)
