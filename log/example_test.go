package log_test

import (
	"log/slog"
	"os"

	"github.com/ardnew/rbconf/log"
)

func Example() {
	logger := log.Make(os.Stdout,
		log.WithFormat(log.FormatText),
		log.WithLevel(log.LevelDebug),
		log.WithTimeLayout("none"))

	logger.Debug("expanded", slog.String("key", "bindir"))
	logger.Trace("not written")
	// Output: level=DEBUG msg=expanded key=bindir
}

func ExampleParseLevel() {
	logger := log.Make(os.Stdout,
		log.WithFormat(log.FormatJSON),
		log.WithLevel(log.ParseLevel("warn")),
		log.WithTimeLayout("none"))

	logger.Info("not written")
	logger.Warn("mismatch", slog.String("want", "2.3"))
	// Output: {"level":"WARN","msg":"mismatch","want":"2.3"}
}
