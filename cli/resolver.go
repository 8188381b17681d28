package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/goccy/go-yaml"
)

// resolve returns a [kong.ConfigurationLoader] that reads flag values from
// the mapping called name in a YAML document.
//
// It can be used with [kong.Configuration] like this:
//
//	kong.Configuration(resolve("config"), "/path/to/config")
//
// The document is converted as follows:
//   - Keys are flag names; hyphens may be written as underscores
//     ("log-level" or "log_level")
//   - Scalars are passed to kong as text, so numbers need no quoting
//   - Sequences are passed as lists, for repeatable flags like --table
//
// Example config file:
//
//	config:
//	  log-level: debug
//	  log_pretty: false
//	  table:
//	    - ~/tables/darwin.yaml
//
// Command-line flags override config file values. A document that does not
// parse, or has no mapping called name, resolves nothing.
func resolve(name string) kong.ConfigurationLoader {
	return func(r io.Reader) (kong.Resolver, error) {
		var doc map[string]any

		err := yaml.NewDecoder(r).Decode(&doc)
		if err != nil {
			return config{}, nil //nolint:nilerr
		}

		section, ok := doc[name].(map[string]any)
		if !ok {
			return config{}, nil
		}

		cfg := make(config, len(section))
		for key, val := range section {
			cfg[key] = flagText(val)
		}

		return cfg, nil
	}
}

// config implements [kong.Resolver] over a flat map of flag values.
type config map[string]any

// Validate implements [kong.Resolver].
func (r config) Validate(*kong.Application) error {
	return nil
}

// Resolve implements [kong.Resolver].
func (r config) Resolve(
	_ *kong.Context,
	_ *kong.Path,
	flag *kong.Flag,
) (any, error) {
	if value, ok := r[flag.Name]; ok {
		return value, nil
	}

	if value, ok := r[strings.ReplaceAll(flag.Name, "-", "_")]; ok {
		return value, nil
	}

	// Not found - return nil to let Kong use defaults
	return nil, nil
}

// flagText converts a decoded YAML value into a form kong can parse. Kong
// requires numbers as strings for parsing.
func flagText(val any) any {
	switch v := val.(type) {
	case nil, bool, string:
		return v

	case []any:
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = flagText(item)
		}

		return out
	}

	return fmt.Sprint(val)
}
