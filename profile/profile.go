package profile

// Stopper ends a profiling session and flushes its output.
type Stopper interface{ Stop() }

// Session describes one profiling run.
type Session struct {
	Mode  string
	Path  string
	Quiet bool
}

// Option modifies a [Session].
type Option func(Session) Session

// New returns a [Session] configured by opts.
func New(opts ...Option) Session {
	var s Session

	for _, opt := range opts {
		if opt != nil {
			s = opt(s)
		}
	}

	return s
}

// WithMode selects the profile kind. See [Modes].
func WithMode(mode string) Option {
	return func(s Session) Session {
		s.Mode = mode

		return s
	}
}

// WithPath sets the output directory.
func WithPath(path string) Option {
	return func(s Session) Session {
		s.Path = path

		return s
	}
}

// WithQuiet suppresses the profiler's own log lines.
func WithQuiet(quiet bool) Option {
	return func(s Session) Session {
		s.Quiet = quiet

		return s
	}
}

// Start begins profiling. An empty or unsupported mode, or a binary built
// without the pprof tag, yields a stopper that does nothing.
func (s Session) Start() Stopper {
	if s.Mode == "" {
		return ignore{}
	}

	return start(s)
}

type ignore struct{}

func (ignore) Stop() {}
