package conf

import (
	"context"
	"fmt"
	"iter"
	"log/slog"
	"strings"

	"github.com/zeebo/xxh3"

	"github.com/ardnew/rbconf/log"
)

// Config is an expanded configuration table. It is read-only and safe for
// concurrent use.
type Config struct {
	raw      *Table
	expanded *Table
	logger   log.Logger
	digest   uint64
}

// New builds the recorded table, expands it, and checks the running version
// when one is given with [WithRuntimeVersion].
func New(ctx context.Context, opts ...Option) (*Config, error) {
	s := makeSettings(opts...)

	return fromTable(ctx, buildTable(ctx, s), s)
}

// FromTable expands a copy of t into a [Config]. Only [WithRuntimeVersion]
// and [WithLogger] apply.
func FromTable(ctx context.Context, t *Table, opts ...Option) (*Config, error) {
	return fromTable(ctx, t.Clone(), makeSettings(opts...))
}

func fromTable(ctx context.Context, t *Table, s settings) (*Config, error) {
	if s.running != "" {
		if err := t.CheckVersion(s.running); err != nil {
			s.logger.ErrorContext(ctx, "version check", slog.Any("error", err))

			return nil, err
		}
	}

	raw := t.Clone()

	NewExpander(t, s.logger).ExpandAll()

	c := &Config{
		raw:      raw,
		expanded: t,
		logger:   s.logger,
		digest:   digest(raw),
	}

	s.logger.DebugContext(ctx, "configuration expanded",
		slog.Int("keys", t.Len()),
		slog.String("digest", c.DigestString()),
	)

	return c, nil
}

// Get returns the expanded value of key.
func (c *Config) Get(key string) (string, bool) { return c.expanded.Get(key) }

// Raw returns the value of key as recorded, before expansion.
func (c *Config) Raw(key string) (string, bool) { return c.raw.Get(key) }

// MustGet returns the expanded value of key, or an error wrapping
// [ErrKeyNotFound].
func (c *Config) MustGet(key string) (string, error) {
	if v, ok := c.expanded.Get(key); ok {
		return v, nil
	}

	return "", ErrKeyNotFound.With(slog.String("key", key))
}

// Keys returns the keys in recorded order.
func (c *Config) Keys() []string { return c.expanded.Keys() }

// Len returns the number of keys.
func (c *Config) Len() int { return c.expanded.Len() }

// All iterates over the expanded entries in recorded order.
func (c *Config) All() iter.Seq2[string, string] { return c.expanded.All() }

// RawAll iterates over the recorded entries in order.
func (c *Config) RawAll() iter.Seq2[string, string] { return c.raw.All() }

// Table returns a copy of the expanded table.
func (c *Config) Table() *Table { return c.expanded.Clone() }

// RawTable returns a copy of the recorded table.
func (c *Config) RawTable() *Table { return c.raw.Clone() }

// Expand resolves references in text against the expanded values. The
// configuration is not modified and expanded values are not scanned again.
func (c *Config) Expand(text string) string {
	return expandWith(text, func(name string) (string, lookup) {
		v, ok := c.expanded.Get(name)
		if !ok {
			return "", lookupMissing
		}

		return v, lookupFound
	})
}

// TopDir returns the installation root derived from "topdir", and false if
// that directory is not in the standard layout.
func (c *Config) TopDir() (string, bool) { return topDir(c.value(keyTopDir)) }

// Executable returns the path of the runtime executable: "bindir" joined
// with "ruby_install_name" and "EXEEXT".
func (c *Config) Executable() string {
	return joinPath(c.value("bindir"), c.value("ruby_install_name")+c.value("EXEEXT"))
}

// FrameworkVersion returns the library ABI version ("ruby_version").
func (c *Config) FrameworkVersion() string { return c.value("ruby_version") }

// GemHome returns the directory bundled gems are installed in.
func (c *Config) GemHome() string {
	return joinPath(c.value("libdir"), BaseName, "gems", c.value("ruby_version"))
}

// joinPath joins elem with single slashes between them. Unlike [path.Join]
// it keeps "." segments and gives an empty first element a leading slash.
func joinPath(elem ...string) string {
	if len(elem) == 0 {
		return ""
	}

	p := elem[0]
	for _, e := range elem[1:] {
		p = strings.TrimRight(p, "/") + "/" + strings.TrimLeft(e, "/")
	}

	return p
}

// Archs returns the architectures named by "ARCH_FLAG".
func (c *Config) Archs() []string { return archNames(c.value("ARCH_FLAG")) }

// Digest returns a fingerprint of the recorded table. Tables with the same
// keys and values in the same order have the same digest.
func (c *Config) Digest() uint64 { return c.digest }

// DigestString returns [Config.Digest] as 16 hex digits.
func (c *Config) DigestString() string { return fmt.Sprintf("%016x", c.digest) }

func (c *Config) value(key string) string {
	v, _ := c.expanded.Get(key)

	return v
}

func digest(t *Table) uint64 {
	h := xxh3.New()

	for k, v := range t.All() {
		_, _ = h.WriteString(k)
		_, _ = h.Write([]byte{0})
		_, _ = h.WriteString(v)
		_, _ = h.Write([]byte{0})
	}

	return h.Sum64()
}
