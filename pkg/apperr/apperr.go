// Package apperr defines the structured error kinds shared by services and
// handlers. Handlers translate a Kind into an HTTP status and a stable machine
// code, so callers never have to pattern-match error message text to tell a
// duplicate slot apart from bad input or a missing record.
package apperr

import (
	"errors"
	"fmt"
)

type Kind string

const (
	// KindValidation covers bad input: missing fields, malformed IDs,
	// inverted date ranges, empty time sets.
	KindValidation Kind = "VALIDATION"

	// KindNotFound is returned when a referenced entity does not resolve.
	KindNotFound Kind = "NOT_FOUND"

	// KindDuplicateShowtime signals that a (room, date, time) slot is
	// already occupied.
	KindDuplicateShowtime Kind = "DUPLICATE_SHOWTIME"

	// KindPastShowtime is returned for edits on showtimes that have
	// already played.
	KindPastShowtime Kind = "PAST_SHOWTIME"

	// KindNoSeatData means the room behind a showtime has no seats
	// configured, which is distinct from every seat being available.
	KindNoSeatData Kind = "NO_SEAT_DATA"

	// KindConflict covers other state conflicts, e.g. deleting a showtime
	// that still has active tickets or reusing a unique name.
	KindConflict Kind = "CONFLICT"

	KindInternal Kind = "INTERNAL"
)

type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func New(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

func Wrap(kind Kind, err error, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...), Err: err}
}

// KindOf extracts the Kind from err, or KindInternal when err is not an
// *Error. A nil err has no kind and returns "".
func KindOf(err error) Kind {
	if err == nil {
		return ""
	}
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

// Is reports whether err carries the given kind anywhere in its chain.
func Is(err error, kind Kind) bool {
	return KindOf(err) == kind
}
