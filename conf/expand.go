package conf

import (
	"log/slog"
	"maps"
	"strings"

	"github.com/ardnew/rbconf/log"
)

// lookup is the outcome of resolving a reference name.
type lookup int

const (
	lookupMissing lookup = iota
	lookupFound
	lookupCyclic
)

// resolveFunc returns the expanded value for a referenced name.
type resolveFunc func(name string) (string, lookup)

// expandWith rewrites every token in s in a single left-to-right pass.
// Substituted text is not scanned again.
func expandWith(s string, resolve resolveFunc) string {
	if strings.IndexByte(s, '$') < 0 {
		return s
	}

	var b strings.Builder

	b.Grow(len(s))

	for i := 0; i < len(s); {
		if s[i] != '$' {
			j := strings.IndexByte(s[i:], '$')
			if j < 0 {
				b.WriteString(s[i:])

				break
			}

			b.WriteString(s[i : i+j])
			i += j

			continue
		}

		r, ok := scanRef(s, i)
		if !ok {
			b.WriteByte('$')
			i++

			continue
		}

		b.WriteString(r.expand(s[i:r.end], resolve))
		i = r.end
	}

	return b.String()
}

// expand returns the replacement text for token, the source text of r.
func (r ref) expand(token string, resolve resolveFunc) string {
	if r.escape {
		return "$"
	}

	if r.malformed {
		return token
	}

	v, res := resolve(r.name)

	switch res {
	case lookupMissing:
		return token
	case lookupCyclic:
		return ""
	}

	if r.patterned {
		v = replaceTrailing(v, r.pattern, r.subst)
	}

	return v
}

// Expander resolves references against a [Table].
//
// Each key is expanded at most once; the result is kept in a memo that later
// references reuse. A key that is referenced while its own expansion is in
// progress resolves to the empty string, which breaks cycles without error.
//
// An Expander created with [NewExpander] writes every expanded key back into
// its table. An Expander is not safe for concurrent use.
type Expander struct {
	table  *Table
	memo   map[string]string
	active map[string]struct{}
	logger log.Logger
}

// NewExpander returns an Expander over t. Resolution events are written to
// logger at trace level; the zero [log.Logger] discards them.
func NewExpander(t *Table, logger log.Logger) *Expander {
	if t == nil {
		t = NewTable(0)
	}

	return &Expander{
		table:  t,
		memo:   make(map[string]string, t.Len()),
		active: make(map[string]struct{}),
		logger: logger,
	}
}

// Expand returns s with every reference resolved.
// Keys reached through s are expanded in place in the table.
func (e *Expander) Expand(s string) string {
	return expandWith(s, e.resolve)
}

// ExpandKey expands the value stored under key, stores the result back into
// the table, and returns it. It reports false if key is absent.
func (e *Expander) ExpandKey(key string) (string, bool) {
	v, res := e.resolve(key)

	return v, res != lookupMissing
}

// ExpandAll expands every key of the table in insertion order.
func (e *Expander) ExpandAll() {
	for _, key := range e.table.Keys() {
		e.resolve(key)
	}
}

// Memo returns a copy of the expanded values computed so far.
func (e *Expander) Memo() map[string]string {
	return maps.Clone(e.memo)
}

func (e *Expander) resolve(key string) (string, lookup) {
	if v, ok := e.memo[key]; ok {
		return v, lookupFound
	}

	raw, ok := e.table.Get(key)
	if !ok {
		e.logger.Trace("undefined reference", slog.String("key", key))

		return "", lookupMissing
	}

	if _, busy := e.active[key]; busy {
		e.logger.Trace("cyclic reference", slog.String("key", key))

		return "", lookupCyclic
	}

	e.active[key] = struct{}{}
	v := expandWith(raw, e.resolve)
	delete(e.active, key)

	e.memo[key] = v
	e.table.Set(key, v)

	if v != raw {
		e.logger.Trace("expanded",
			slog.String("key", key),
			slog.String("raw", raw),
			slog.String("value", v),
		)
	}

	return v, lookupFound
}

// Expand returns value with its references resolved against t. Every key
// reached during resolution is replaced in t by its expanded value.
func Expand(value string, t *Table) string {
	return NewExpander(t, log.Logger{}).Expand(value)
}

// ExpandAll expands every value of t in place, in insertion order.
func (t *Table) ExpandAll() {
	NewExpander(t, log.Logger{}).ExpandAll()
}
