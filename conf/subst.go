package conf

import "strings"

// replaceTrailing replaces every occurrence of pat in s that is followed by
// whitespace or the end of s. Matches are found left to right and do not
// overlap. An empty pat inserts sub before each whitespace byte and at the
// end of s.
func replaceTrailing(s, pat, sub string) string {
	var b strings.Builder

	b.Grow(len(s) + len(sub))

	for i := 0; i <= len(s); {
		if strings.HasPrefix(s[i:], pat) && atWordEnd(s, i+len(pat)) {
			b.WriteString(sub)

			if pat != "" {
				i += len(pat)

				continue
			}
		}

		if i < len(s) {
			b.WriteByte(s[i])
		}

		i++
	}

	return b.String()
}

func atWordEnd(s string, i int) bool {
	if i >= len(s) {
		return true
	}

	switch s[i] {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}

	return false
}
