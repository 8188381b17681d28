package conf

import (
	"log/slog"
	"strings"
)

// Sentinel errors. Match them with [errors.Is]; values returned by this
// package are derived from these with [Error.Wrap] or [Error.With].
var (
	ErrVersionMismatch = NewError("version mismatch")
	ErrKeyNotFound     = NewError("key not found")
	ErrReadInput       = NewError("failed to read input")
	ErrDecode          = NewError("failed to decode table")
	ErrInvalidFormat   = NewError("invalid format")
	ErrQueryCompile    = NewError("query compilation failed")
	ErrQueryEvaluate   = NewError("query evaluation failed")
)

// Error is an error with structured logging attributes.
// It implements both error and [slog.LogValuer].
type Error struct {
	kind  *Error
	msg   string
	err   error
	attrs []slog.Attr
}

// NewError returns a new sentinel with message msg.
func NewError(msg string) *Error {
	e := &Error{msg: msg}
	e.kind = e

	return e
}

func (e *Error) Error() string {
	part := make([]string, 0, 2)

	if e.msg != "" {
		part = append(part, e.msg)
	}

	if e.err != nil {
		part = append(part, e.err.Error())
	}

	return strings.Join(part, ": ")
}

func (e *Error) Unwrap() error { return e.err }

// Is reports whether target is the sentinel e was derived from.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)

	return ok && t.kind != nil && e.kind == t.kind
}

func (e *Error) LogValue() slog.Value {
	attrs := make([]slog.Attr, 0, len(e.attrs)+2)

	if e.msg != "" {
		attrs = append(attrs, slog.String("error", e.msg))
	}

	if e.err != nil {
		attrs = append(attrs, slog.String("cause", e.err.Error()))
	}

	return slog.GroupValue(append(attrs, e.attrs...)...)
}

// Wrap returns a copy of e with err as its cause.
func (e *Error) Wrap(err error) *Error {
	return &Error{kind: e.kind, msg: e.msg, err: err, attrs: e.attrs}
}

// With returns a copy of e with attrs appended.
func (e *Error) With(attrs ...slog.Attr) *Error {
	merged := make([]slog.Attr, 0, len(e.attrs)+len(attrs))
	merged = append(merged, e.attrs...)
	merged = append(merged, attrs...)

	return &Error{kind: e.kind, msg: e.msg, err: e.err, attrs: merged}
}
