package conf

import (
	"fmt"
	"log/slog"
	"strings"
)

// RecordedVersion returns the runtime version the table was generated for,
// or "" if the table does not record one.
func (t *Table) RecordedVersion() string {
	if v, ok := t.Get("RUBY_PROGRAM_VERSION"); ok && v != "" {
		return v
	}

	major, okMajor := t.Get("MAJOR")
	minor, okMinor := t.Get("MINOR")

	if !okMajor || !okMinor {
		return ""
	}

	if teeny, ok := t.Get("TEENY"); ok {
		return major + "." + minor + "." + teeny
	}

	return major + "." + minor
}

// seriesPrefix returns "MAJOR.MINOR." for the table.
func (t *Table) seriesPrefix() string {
	major, okMajor := t.Get("MAJOR")
	minor, okMinor := t.Get("MINOR")

	if okMajor && okMinor {
		return major + "." + minor + "."
	}

	parts := strings.SplitN(t.RecordedVersion(), ".", 3)
	if len(parts) < 2 {
		return ""
	}

	return parts[0] + "." + parts[1] + "."
}

// CheckVersion reports whether running belongs to the release series the
// table was generated for: it must begin with "MAJOR.MINOR.". A recorded
// version too short to name a series must match exactly or as a prefix
// followed by ".". The returned error wraps [ErrVersionMismatch]. A table
// without version keys accepts any running version.
func (t *Table) CheckVersion(running string) error {
	recorded := t.RecordedVersion()
	if recorded == "" {
		return nil
	}

	if series := t.seriesPrefix(); series != "" {
		if strings.HasPrefix(running, series) {
			return nil
		}
	} else if running == recorded || strings.HasPrefix(running, recorded+".") {
		return nil
	}

	return ErrVersionMismatch.Wrap(fmt.Errorf(
		"lib version (%s) doesn't match executable version (%s)",
		recorded, running,
	)).With(
		slog.String("recorded", recorded),
		slog.String("running", running),
	)
}
