package diag

import (
	"errors"
	"fmt"
	"strings"
)

// KnownError is a failure that has already been explained to the user in its
// message. Callers must not wrap it or attach further diagnosis: display the
// message and halt. Any other error leaving this layer is unexpected and
// propagates unmodified so its context survives for debugging.
type KnownError struct {
	Msg string
}

func (e *KnownError) Error() string {
	return e.Msg
}

// Known wraps a pre-rendered message into a KnownError.
func Known(msg string) *KnownError {
	return &KnownError{Msg: msg}
}

// Knownf formats a message into a KnownError.
func Knownf(format string, args ...any) *KnownError {
	return &KnownError{Msg: fmt.Sprintf(format, args...)}
}

// KnownJoin renders every message, newline-separated and in the given order,
// into one KnownError. Callers fixing a project need the full list at once.
func KnownJoin(msgs []string) *KnownError {
	return &KnownError{Msg: strings.Join(msgs, "\n")}
}

// IsKnown reports whether err is (or wraps) a KnownError.
func IsKnown(err error) bool {
	var ke *KnownError
	return errors.As(err, &ke)
}
