package conf

import (
	"context"
	"log/slog"
	"maps"
	"path"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// Query evaluates an expr-lang expression over the configuration.
//
// The environment provides:
//
//	CONFIG       map of expanded values
//	RAW          map of recorded values
//	get(key)     expanded value of key, or ""
//	has(key)     whether key is defined
//	expand(s)    s with references resolved
//	path(a, ...) slash-separated path join
//	exe          runtime executable path
//	archs        architectures named by ARCH_FLAG
//
// For example: `get("CC") + " " + CONFIG.CFLAGS`.
func (c *Config) Query(ctx context.Context, source string) (any, error) {
	env := c.queryEnv()

	program, err := expr.Compile(source, expr.Env(env))
	if err != nil {
		return nil, ErrQueryCompile.Wrap(err).With(slog.String("source", source))
	}

	if err := ctx.Err(); err != nil {
		return nil, ErrQueryEvaluate.Wrap(err).With(slog.String("source", source))
	}

	result, err := vm.Run(program, env)
	if err != nil {
		return nil, ErrQueryEvaluate.Wrap(err).With(slog.String("source", source))
	}

	c.logger.TraceContext(ctx, "query", slog.String("source", source), slog.Any("result", result))

	return result, nil
}

func (c *Config) queryEnv() map[string]any {
	return map[string]any{
		"CONFIG": maps.Collect(c.expanded.All()),
		"RAW":    maps.Collect(c.raw.All()),
		"get":    c.value,
		"has":    c.expanded.Has,
		"expand": c.Expand,
		"path":   func(elem ...string) string { return path.Join(elem...) },
		"exe":    c.Executable(),
		"archs":  c.Archs(),
	}
}
