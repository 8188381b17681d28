package conf

import (
	"iter"
	"slices"
)

// Table is an ordered mapping from configuration key to value.
//
// Setting a key that already exists replaces its value and keeps its
// position. The zero value is an empty table ready to use. A Table is not
// safe for concurrent mutation.
type Table struct {
	keys []string
	vals map[string]string
}

// NewTable returns an empty table with room for n keys.
func NewTable(n int) *Table {
	return &Table{
		keys: make([]string, 0, n),
		vals: make(map[string]string, n),
	}
}

// TableOf returns a table holding the given key/value pairs in order.
// A trailing key with no value is ignored.
func TableOf(pairs ...string) *Table {
	t := NewTable(len(pairs) / 2)

	for i := 0; i+1 < len(pairs); i += 2 {
		t.Set(pairs[i], pairs[i+1])
	}

	return t
}

// Set stores value under key.
func (t *Table) Set(key, value string) {
	if t.vals == nil {
		t.vals = make(map[string]string)
	}

	if _, ok := t.vals[key]; !ok {
		t.keys = append(t.keys, key)
	}

	t.vals[key] = value
}

// Get returns the value stored under key.
func (t *Table) Get(key string) (string, bool) {
	if t == nil {
		return "", false
	}

	v, ok := t.vals[key]

	return v, ok
}

// Has reports whether key is present.
func (t *Table) Has(key string) bool {
	_, ok := t.Get(key)

	return ok
}

// Len returns the number of keys.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}

	return len(t.keys)
}

// Keys returns the keys in insertion order.
func (t *Table) Keys() []string {
	if t == nil {
		return nil
	}

	return slices.Clone(t.keys)
}

// All iterates over the entries in insertion order.
func (t *Table) All() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		if t == nil {
			return
		}

		for _, k := range t.keys {
			if !yield(k, t.vals[k]) {
				return
			}
		}
	}
}

// Clone returns an independent copy of t.
func (t *Table) Clone() *Table {
	c := NewTable(t.Len())

	for k, v := range t.All() {
		c.Set(k, v)
	}

	return c
}
