package conf

import "strings"

// ref is one token recognized at a '$' in a value.
//
//	$$                  escape, expands to "$"
//	$(name) ${name}     simple reference
//	$(name:pat=sub)     pattern reference, same for braces
//
// The text inside $(...) may not contain parentheses and the text inside
// ${...} may not contain braces. Any other '$' is literal text.
type ref struct {
	name    string
	pattern string
	subst   string
	// end is the offset just past the token in the scanned string.
	end int

	escape    bool
	patterned bool
	// malformed is set when the name has a ':' that is not followed by
	// "pat=sub". Such a token never resolves.
	malformed bool
}

// scanRef recognizes the token starting at s[i]. It reports false when the
// '$' at s[i] does not start a token.
func scanRef(s string, i int) (ref, bool) {
	if i+1 >= len(s) || s[i] != '$' {
		return ref{}, false
	}

	var open, shut byte

	switch s[i+1] {
	case '$':
		return ref{escape: true, end: i + 2}, true
	case '(':
		open, shut = '(', ')'
	case '{':
		open, shut = '{', '}'
	default:
		return ref{}, false
	}

	body := s[i+2:]

	n := strings.IndexAny(body, string([]byte{open, shut}))
	if n <= 0 || body[n] != shut {
		return ref{}, false
	}

	r := parseRefBody(body[:n])
	r.end = i + 2 + n + 1

	return r, true
}

// parseRefBody splits the text between the delimiters into a name and an
// optional pattern and substitution.
func parseRefBody(body string) ref {
	name, rest, hasColon := strings.Cut(body, ":")
	if name == "" {
		return ref{malformed: true}
	}

	if !hasColon {
		return ref{name: name}
	}

	pat, sub, ok := strings.Cut(rest, "=")
	if !ok {
		return ref{name: name, malformed: true}
	}

	return ref{name: name, pattern: pat, subst: sub, patterned: true}
}
