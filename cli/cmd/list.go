package cmd

import (
	"context"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"
)

// List prints every configuration entry as "KEY = value".
type List struct {
	Raw   bool   `help:"Print recorded values without expanding references" short:"r"`
	Match string `help:"Only print keys that fuzzy-match this pattern"      short:"m" placeholder:"PATTERN"`
}

// Run executes the list command.
func (l *List) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	c, err := configFrom(ctx)
	if err != nil {
		return err
	}

	keys := c.Keys()
	if l.Match != "" {
		keys = matchKeys(keys, l.Match)
	}

	lookup := c.Get
	if l.Raw {
		lookup = c.Raw
	}

	w := outputFrom(ctx)
	keyStyle := lipgloss.NewRenderer(w).NewStyle().
		Foreground(lipgloss.Color("6")).
		Bold(true)

	var b strings.Builder

	for _, key := range keys {
		val, _ := lookup(key)

		b.WriteString(keyStyle.Render(key))
		b.WriteString(" = ")
		b.WriteString(val)
		b.WriteByte('\n')
	}

	return write(ctx, b.String())
}

// matchKeys returns the keys that fuzzy-match pattern, in their original
// order.
func matchKeys(keys []string, pattern string) []string {
	matches := fuzzy.Find(pattern, keys)

	idx := make([]int, len(matches))
	for i, m := range matches {
		idx[i] = m.Index
	}

	slices.Sort(idx)

	out := make([]string, len(idx))
	for i, n := range idx {
		out[i] = keys[n]
	}

	return out
}
