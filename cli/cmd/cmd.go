package cmd

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"syscall"

	"github.com/alecthomas/kong"

	"github.com/ardnew/rbconf/conf"
	"github.com/ardnew/rbconf/log"
)

// contextKey is used to store a [kong.Context] value in [context.Context].
type contextKey struct{}

// WithContext returns a new context.Context containing the given kong.Context.
func WithContext(ctx context.Context, ktx *kong.Context) context.Context {
	return context.WithValue(ctx, contextKey{}, ktx)
}

func kongContextFrom(ctx context.Context) *kong.Context {
	ktx, ok := ctx.Value(contextKey{}).(*kong.Context)
	if !ok || ktx == nil {
		return nil
	}

	return ktx
}

type (
	configKey struct{}
	outputKey struct{}
)

// WithConfig returns a new context.Context whose commands operate on c.
func WithConfig(ctx context.Context, c *conf.Config) context.Context {
	return context.WithValue(ctx, configKey{}, func() (*conf.Config, error) {
		return c, nil
	})
}

// WithTable returns a new context.Context whose commands operate on the
// configuration described by t. The configuration is built once, on first
// use, so commands that never read it never pay for it.
func WithTable(ctx context.Context, t Table) context.Context {
	return context.WithValue(ctx, configKey{}, sync.OnceValues(
		func() (*conf.Config, error) { return t.open(ctx) },
	))
}

// configFrom returns the configuration stored by [WithConfig] or
// [WithTable].
func configFrom(ctx context.Context) (*conf.Config, error) {
	load, ok := ctx.Value(configKey{}).(func() (*conf.Config, error))
	if !ok || load == nil {
		return nil, ErrNoConfig
	}

	return load()
}

// WithOutput returns a new context.Context whose commands write to w.
func WithOutput(ctx context.Context, w io.Writer) context.Context {
	return context.WithValue(ctx, outputKey{}, w)
}

// outputFrom returns the writer stored by [WithOutput], or os.Stdout.
func outputFrom(ctx context.Context) io.Writer {
	if w, ok := ctx.Value(outputKey{}).(io.Writer); ok && w != nil {
		return w
	}

	return os.Stdout
}

// Table selects the configuration table commands operate on.
//
// With no files the recorded table is used. Otherwise each file is read in
// order and its entries are layered over the ones before it. A file named
// "-" is read from stdin as YAML, after all regular files.
type Table struct {
	Files         []string `help:"Table file(s) (YAML, JSON, JSONC) or '-' for stdin"      name:"table"          placeholder:"FILE"    short:"t" type:"path"`
	LibDir        string   `help:"Directory the table is installed in"                     name:"lib-dir"        placeholder:"DIR"               type:"path"`
	DestDir       string   `help:"Staging root prepended to installation paths (DESTDIR)" name:"dest-dir"       placeholder:"DIR"`
	ExpectVersion string   `help:"Fail unless the table matches this runtime version"     name:"expect-version" placeholder:"VERSION"`
}

// options returns the construction options selected by the flags.
func (t Table) options() []conf.Option {
	return []conf.Option{
		conf.WithLibDir(t.LibDir),
		conf.WithDestDir(t.DestDir),
		conf.WithRuntimeVersion(t.ExpectVersion),
		conf.WithLogger(log.Default()),
	}
}

func (t Table) open(ctx context.Context) (*conf.Config, error) {
	if len(t.Files) == 0 {
		return conf.New(ctx, t.options()...)
	}

	tab, err := t.load(ctx)
	if err != nil {
		return nil, err
	}

	return conf.FromTable(ctx, tab, t.options()...)
}

// load reads and layers the table files.
func (t Table) load(ctx context.Context) (*conf.Table, error) {
	paths, stdin := uniqueSources(t.Files)

	var merged *conf.Table

	layer := func(tab *conf.Table) {
		if merged == nil {
			merged = tab

			return
		}

		for k, v := range tab.All() {
			merged.Set(k, v)
		}
	}

	for _, path := range paths {
		tab, err := conf.LoadFile(ctx, path)
		if err != nil {
			return nil, ErrLoadTable.With(slog.String("file", path)).Wrap(err)
		}

		log.DebugContext(ctx, "table loaded",
			slog.String("file", path),
			slog.Int("keys", tab.Len()),
		)

		layer(tab)
	}

	if stdin {
		tab, err := conf.Load(ctx, os.Stdin, conf.FormatYAML)
		if err != nil {
			return nil, ErrLoadTable.With(slog.String("file", stdinSource)).Wrap(err)
		}

		layer(tab)
	}

	if merged == nil {
		return nil, ErrLoadTable.Wrap(ErrNoSource)
	}

	return merged, nil
}

// fileKey uniquely identifies a file by its device and inode numbers.
// This handles deduplication across symlinks, absolute/relative paths, and
// special device files.
type fileKey struct {
	dev uint64
	ino uint64
}

// stdinSource is the special source indicator for reading from stdin.
const stdinSource = "-"

// uniqueSources resolves sources to a list of distinct regular paths in
// their given order, and reports whether stdin was named. Stdin is named by
// "-" or by a path that resolves to the same file as stdin.
//
// Paths that cannot be resolved are kept so that loading reports them.
func uniqueSources(sources []string) (paths []string, stdin bool) {
	seen := make(map[fileKey]struct{})

	var stdinKey fileKey

	stdinInfo, err := os.Stdin.Stat()
	if err == nil {
		stdinKey, _ = makeFileKey(stdinInfo)
	}

	for _, src := range sources {
		if src == stdinSource {
			stdin = true

			continue
		}

		key, ok := resolveFileKey(src)
		if !ok {
			paths = append(paths, src)

			continue
		}

		if stdinInfo != nil && key == stdinKey {
			stdin = true

			continue
		}

		if _, exists := seen[key]; exists {
			continue
		}

		seen[key] = struct{}{}
		paths = append(paths, src)
	}

	return paths, stdin
}

// resolveFileKey resolves symlinks in path and returns the identity of the
// file it names.
func resolveFileKey(path string) (fileKey, bool) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return fileKey{}, false
	}

	resolved, err := filepath.EvalSymlinks(absPath)
	if err != nil {
		return fileKey{}, false
	}

	info, err := os.Stat(resolved)
	if err != nil {
		return fileKey{}, false
	}

	return makeFileKey(info)
}

// makeFileKey creates a fileKey from os.FileInfo.
// Returns false if the underlying Sys() data is not of type *syscall.Stat_t.
func makeFileKey(info os.FileInfo) (key fileKey, ok bool) {
	stat, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return key, false
	}

	return fileKey{dev: uint64(stat.Dev), ino: stat.Ino}, true //nolint:unconvert
}
