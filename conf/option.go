package conf

import (
	"context"
	"os"

	"github.com/ardnew/rbconf/log"
)

// LookupEnv reports the value of an environment variable and whether it is
// set. [os.LookupEnv] is the default.
type LookupEnv func(key string) (string, bool)

// PlatformQuery returns the path of the platform SDK. It is consulted only
// when SDKROOT is unset and the prefix has no include directory. An error
// is treated as an empty path.
type PlatformQuery func(ctx context.Context) (string, error)

// Option configures construction of a [Config].
type Option func(settings) settings

type settings struct {
	lookupEnv LookupEnv
	query     PlatformQuery
	logger    log.Logger
	libDir    string
	destDir   string
	running   string
}

func makeSettings(opts ...Option) settings {
	s := settings{
		lookupEnv: os.LookupEnv,
		query:     querySDKPath,
	}

	for _, opt := range opts {
		if opt != nil {
			s = opt(s)
		}
	}

	if s.libDir == "" {
		s.libDir = DefaultLibDir(s.destDir)
	}

	return s
}

// DefaultLibDir returns the directory the table is installed in below
// destDir.
func DefaultLibDir(destDir string) string {
	return destDir + FrameworkPrefix + libDirSuffix
}

// WithLibDir sets the directory the table is considered installed in. It
// determines "topdir" and, when it ends in the standard suffix, "prefix".
func WithLibDir(dir string) Option {
	return func(s settings) settings {
		s.libDir = dir

		return s
	}
}

// WithDestDir sets the staging root ("DESTDIR").
func WithDestDir(dir string) Option {
	return func(s settings) settings {
		s.destDir = dir

		return s
	}
}

// WithLookupEnv replaces the environment lookup. A nil function behaves as
// an empty environment.
func WithLookupEnv(fn LookupEnv) Option {
	return func(s settings) settings {
		if fn == nil {
			fn = func(string) (string, bool) { return "", false }
		}

		s.lookupEnv = fn

		return s
	}
}

// WithEnv uses env as the entire environment.
func WithEnv(env map[string]string) Option {
	return WithLookupEnv(func(key string) (string, bool) {
		v, ok := env[key]

		return v, ok
	})
}

// WithPlatformQuery replaces the SDK path query. A nil function always
// yields an empty path.
func WithPlatformQuery(fn PlatformQuery) Option {
	return func(s settings) settings {
		if fn == nil {
			fn = func(context.Context) (string, error) { return "", nil }
		}

		s.query = fn

		return s
	}
}

// WithRuntimeVersion enables the version check against the given running
// version. An empty version disables the check.
func WithRuntimeVersion(version string) Option {
	return func(s settings) settings {
		s.running = version

		return s
	}
}

// WithLogger sets the logger used for construction and expansion events.
func WithLogger(logger log.Logger) Option {
	return func(s settings) settings {
		s.logger = logger

		return s
	}
}
