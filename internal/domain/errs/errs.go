package errs

import "errors"

// Kinds callers branch on. The message of an error built with New is meant for
// humans only.
var (
	ErrNotFound        = errors.New("not found")
	ErrForbidden       = errors.New("forbidden")
	ErrConflict        = errors.New("conflict")
	ErrInvalidArgument = errors.New("invalid argument")
	ErrUnauthorized    = errors.New("unauthorized")
)

type Error struct {
	kind error
	msg  string
}

func New(kind error, msg string) error {
	return &Error{kind: kind, msg: msg}
}

func (e *Error) Error() string { return e.msg }
func (e *Error) Unwrap() error { return e.kind }

func NotFound(msg string) error        { return New(ErrNotFound, msg) }
func Forbidden(msg string) error       { return New(ErrForbidden, msg) }
func Conflict(msg string) error        { return New(ErrConflict, msg) }
func InvalidArgument(msg string) error { return New(ErrInvalidArgument, msg) }
func Unauthorized(msg string) error    { return New(ErrUnauthorized, msg) }

// Kind returns the sentinel err wraps, or nil for errors outside the taxonomy.
func Kind(err error) error {
	for _, k := range []error{ErrNotFound, ErrForbidden, ErrConflict, ErrInvalidArgument, ErrUnauthorized} {
		if errors.Is(err, k) {
			return k
		}
	}
	return nil
}
