// Package log provides a small structured logging interface over [log/slog].
//
// A [Logger] is configured once with functional options and then used with
// typed [slog.Attr] values:
//
//	logger := log.Make(os.Stderr,
//		log.WithLevel(log.LevelDebug),
//		log.WithFormat(log.FormatText))
//	logger.Debug("expanded", slog.String("key", "libdir"))
//
// Levels are [LevelTrace], [LevelDebug], [LevelInfo], [LevelWarn], and
// [LevelError]. Trace sits below debug and is used by the conf package to
// report every reference it resolves.
//
// The package also keeps a process-wide default logger used by the CLI.
// [Config] replaces its options and the package-level functions ([Debug],
// [InfoContext], and so on) write through it.
//
// With [WithPretty] enabled, text output is colorized with lipgloss. JSON
// output is never colorized.
package log
