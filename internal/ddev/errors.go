package ddev

import "fmt"

// ErrorKind is the closed set of failure categories for ddev
// invocations. Internally code matches on the kind; the UI only ever
// sees the rendered string.
type ErrorKind int

const (
	// KindCommandFailed means the process ran and exited non-zero.
	KindCommandFailed ErrorKind = iota
	// KindParseError means ddev produced output we could not decode.
	KindParseError
	// KindNotInstalled means the ddev binary could not be found.
	KindNotInstalled
	// KindIOError covers spawn and pipe failures.
	KindIOError
)

// Error is the failure type for all ddev operations.
type Error struct {
	Kind    ErrorKind
	Message string
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindCommandFailed:
		return "ddev command failed: " + e.Message
	case KindParseError:
		return "failed to parse ddev output: " + e.Message
	case KindNotInstalled:
		return "ddev is not installed or not in PATH"
	default:
		return "io error: " + e.Message
	}
}

func commandFailed(format string, args ...any) *Error {
	return &Error{Kind: KindCommandFailed, Message: fmt.Sprintf(format, args...)}
}

func parseError(format string, args ...any) *Error {
	return &Error{Kind: KindParseError, Message: fmt.Sprintf(format, args...)}
}

func notInstalled() *Error {
	return &Error{Kind: KindNotInstalled}
}

func ioError(format string, args ...any) *Error {
	return &Error{Kind: KindIOError, Message: fmt.Sprintf(format, args...)}
}
