package ber

import (
	"errors"
	"fmt"
	"strings"
)

const resumableDefault = false

var (
	// ErrNoMatch is the single failure reported by the cursor, the length
	// decoder and every extractor. It covers a tag mismatch, a truncated
	// header, a long-form length that is too wide, and a declared length that
	// exceeds the remaining bytes. The cursor it was reported for is left
	// unmodified, so another extractor may be tried at the same position.
	ErrNoMatch error = errNoMatch{}

	// ErrMaxDepthExceeded is returned when a traversal nests deeper than its
	// configured limit. This should only be seen on adversarial data.
	ErrMaxDepthExceeded error = errors.New("ber: max depth exceeded")
)

// Error is the interface satisfied
// by all of the errors that originate
// from this package.
type Error interface {
	error

	// Resumable returns whether the caller can keep decoding from the
	// position the error was reported for, for instance by probing it with
	// a different extractor.
	Resumable() bool
}

type errNoMatch struct{}

func (errNoMatch) Error() string   { return "ber: no match or malformed element" }
func (errNoMatch) Resumable() bool { return true }

// Cause returns the underlying cause of an error that has been wrapped
// with additional context.
func Cause(e error) error {
	out := e
	if e, ok := e.(errWrapped); ok && e.cause != nil {
		out = e.cause
	}
	return out
}

// Resumable returns whether or not the error means that decoding may continue
// at the failing position.
func Resumable(e error) bool {
	if e, ok := e.(Error); ok {
		return e.Resumable()
	}
	return resumableDefault
}

// WrapError wraps an error with the path of the element it was reported for.
// Path components are joined with '/', outermost first. The extractors never
// wrap their errors; only the traversals built on top of them do.
func WrapError(err error, ctx ...any) error {
	if err == nil {
		return nil
	}
	if e, ok := err.(errWrapped); ok {
		return errWrapped{cause: e.cause, ctx: addCtx(e.ctx, ctxString(ctx))}
	}
	return errWrapped{cause: err, ctx: ctxString(ctx)}
}

func addCtx(ctx, add string) string {
	if ctx != "" {
		return add + "/" + ctx
	}
	return add
}

func ctxString(ctx []any) string {
	parts := make([]string, 0, len(ctx))
	for _, c := range ctx {
		parts = append(parts, fmt.Sprint(c))
	}
	return strings.Join(parts, "/")
}

// errWrapped allows errors passed to WrapError to be enhanced with
// context and unwrapped with Cause()
type errWrapped struct {
	cause error
	ctx   string
}

func (e errWrapped) Error() string {
	if e.ctx != "" {
		return e.cause.Error() + " at " + e.ctx
	}
	return e.cause.Error()
}

func (e errWrapped) Resumable() bool {
	if e, ok := e.cause.(Error); ok {
		return e.Resumable()
	}
	return resumableDefault
}

// Unwrap returns the cause.
func (e errWrapped) Unwrap() error { return e.cause }
