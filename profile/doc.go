// Package profile starts and stops runtime profiling through
// [github.com/pkg/profile].
//
// Profiling is compiled in only with the "pprof" build tag. Without the tag
// [Modes] is empty and [Session.Start] returns a no-op stopper, so callers can
// wire profiling unconditionally:
//
//	stop := profile.New(
//		profile.WithMode("cpu"),
//		profile.WithPath(dir),
//	).Start()
//	defer stop.Stop()
//
// Analyze the written profile with "go tool pprof".
package profile

// Tag is the build tag that enables profiling.
const Tag = `pprof`
