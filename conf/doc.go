// Package conf holds a runtime's recorded build configuration and expands
// the Makefile-style references inside it.
//
// # Tables
//
// A [Table] is an ordered mapping from key to value. Values may refer to
// other keys:
//
//	$(name)          value of name
//	${name}          same, with braces
//	$(name:pat=sub)  value of name with each pat that ends a word replaced
//	$$               a literal "$"
//
// A reference to a key that is not in the table is left as written, as is
// a reference whose name contains ':' without a following "pat=sub".
//
// # Expansion
//
// An [Expander] resolves references recursively in one left-to-right pass
// over each value. Text produced by a substitution is not scanned again.
// Each key is expanded once and remembered. A key that refers back to itself,
// directly or through other keys, sees the empty string for the reference
// that closes the cycle. Expansion never fails.
//
//	t := conf.TableOf(
//		"prefix", "/usr",
//		"bindir", "$(prefix)/bin",
//	)
//	conf.Expand("$(bindir)/ruby", t) // "/usr/bin/ruby"
//
// [Expand] and [Table.ExpandAll] write expanded values back into the table.
//
// # Configurations
//
// [New] builds the recorded table for the host, keeps a copy of it, expands
// it, and returns a read-only [Config]. A handful of keys depend on the
// host: DESTDIR, prefix, ARCH_FLAG, includedir, SDKROOT and topdir. They are
// computed from [WithLibDir], [WithDestDir], the ARCHFLAGS, RC_ARCHS and
// SDKROOT environment variables, and, as a last resort, a query for the
// platform SDK path.
//
// When a running version is given with [WithRuntimeVersion], [New] refuses
// to build a configuration for a different release series and returns an
// error matching [ErrVersionMismatch].
//
// Tables can also be read from YAML, JSON or JSONC files with [LoadFile],
// written with [Config.Write], and queried with expr-lang expressions using
// [Config.Query].
package conf
