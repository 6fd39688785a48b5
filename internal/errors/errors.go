package errors

import (
	"errors"
	"fmt"
)

// Err carries a stable message plus an optional cause so callers can keep
// matching with errors.Is / errors.As across wrap chains.
type Err struct {
	Message string
	Cause   error
}

func (e *Err) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s", e.Message, e.Cause)
	}
	return e.Message
}

func (e *Err) Unwrap() error { return e.Cause }

func New(msg string) *Err {
	return &Err{Message: msg}
}

func Newf(format string, args ...interface{}) *Err {
	return &Err{Message: fmt.Sprintf(format, args...)}
}

func Wrap(err error, msg string) *Err {
	return &Err{Message: msg, Cause: err}
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool { return errors.Is(err, target) }

func InvalidArg(name string) *Err {
	return Newf("invalid arg: %s", name)
}

func DBFileNotFound(path string) *Err {
	return Newf("db file not found: %s", path)
}

func QueryFailed(query string, cause error) *Err {
	return &Err{Message: fmt.Sprintf("query failed: %s", query), Cause: cause}
}
