// Package cli contains the command line interface for rbconf.
//
// # Usage
//
// With no command, every configuration entry is listed:
//
//	rbconf
//	rbconf get CC CFLAGS
//	rbconf expand '$(CC) -I$(rubyhdrdir)'
//	rbconf dump --format=json --raw
//	rbconf eval 'get("MAJOR") + "." + get("MINOR")'
//	rbconf --table=./darwin.yaml --expect-version=2.3.8 exe
//
// # Configuration
//
// Default flag values are read from the "config" mapping of a YAML file in
// the user configuration directory, and from the same path with a ".json"
// extension. The init command writes the current flag values to that file:
//
//	rbconf --log-level=debug --lib-dir=/opt/ruby/lib/ruby/2.3.0/universal-darwin17 init
//
// Logging and profiling flags are grouped under the "log-" and "pprof-"
// prefixes. Profiling flags exist only in binaries built with the pprof tag.
package cli
