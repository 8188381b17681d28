package conf

import (
	"context"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"slices"
	"strings"
)

// Baked returns the recorded table as built with opts, without expanding
// it. The environment and platform query are consulted for the handful of
// keys that depend on the host.
func Baked(ctx context.Context, opts ...Option) *Table {
	return buildTable(ctx, makeSettings(opts...))
}

func buildTable(ctx context.Context, s settings) *Table {
	top, hasTop := topDir(s.libDir)

	prefix := s.destDir + FrameworkPrefix
	if hasTop {
		prefix = top
	}

	t := NewTable(len(baked))

	for _, kv := range baked {
		key, value := kv[0], kv[1]

		switch key {
		case keyDestDir:
			value = s.destDir
		case keyPrefix:
			value = prefix
		case keyArchFlag:
			value = archFlag(s.lookupEnv)
		case keyIncludeDir:
			value = sdkRoot(ctx, s, prefix) + includeDirSuffix
		case keySDKRoot:
			value, _ = s.lookupEnv(keySDKRoot)
		case keyTopDir:
			value = s.libDir
		}

		t.Set(key, value)
	}

	s.logger.DebugContext(ctx, "table built",
		slog.Int("keys", t.Len()),
		slog.String("prefix", prefix),
		slog.Bool("topdir", hasTop),
	)

	return t
}

// topDir strips the standard library suffix from libDir.
func topDir(libDir string) (string, bool) {
	return strings.CutSuffix(libDir, libDirSuffix)
}

// archFlag prefers ARCHFLAGS verbatim, then the unique words of RC_ARCHS,
// then the recorded universal flags. A variable that is set but empty still
// takes precedence.
func archFlag(lookup LookupEnv) string {
	if v, ok := lookup("ARCHFLAGS"); ok {
		return v
	}

	v, ok := lookup("RC_ARCHS")
	if !ok {
		return defaultArchFlag
	}

	var flags []string

	seen := make(map[string]struct{})

	for arch := range strings.FieldsSeq(v) {
		if _, dup := seen[arch]; dup {
			continue
		}

		seen[arch] = struct{}{}
		flags = append(flags, "-arch "+arch)
	}

	return strings.Join(flags, " ")
}

// sdkRoot returns the text placed before "$(prefix)/include".
func sdkRoot(ctx context.Context, s settings, prefix string) string {
	if v, ok := s.lookupEnv(keySDKRoot); ok {
		return v
	}

	if _, err := os.Stat(filepath.Join(prefix, "include")); err == nil {
		return ""
	}

	path, err := s.query(ctx)
	if err != nil {
		s.logger.DebugContext(ctx, "sdk query failed", slog.Any("error", err))

		return ""
	}

	return chomp(path)
}

// chomp removes one trailing line ending: "\r\n", "\n" or "\r".
func chomp(s string) string {
	if t, ok := strings.CutSuffix(s, "\r\n"); ok {
		return t
	}

	return strings.TrimSuffix(strings.TrimSuffix(s, "\n"), "\r")
}

// querySDKPath asks the developer tools for the macOS SDK path.
func querySDKPath(ctx context.Context) (string, error) {
	if err := exec.CommandContext(ctx, "xcode-select", "--print-path").Run(); err != nil {
		return "", err
	}

	out, err := exec.CommandContext(ctx,
		"xcrun", "--sdk", "macosx", "--show-sdk-path").Output()
	if err != nil {
		return "", err
	}

	return string(out), nil
}

// archNames returns the unique architectures named in flags ("-arch a").
func archNames(flags string) []string {
	var names []string

	fields := strings.Fields(flags)

	for i := 0; i+1 < len(fields); i++ {
		if fields[i] == "-arch" && !slices.Contains(names, fields[i+1]) {
			names = append(names, fields[i+1])
		}
	}

	return names
}
