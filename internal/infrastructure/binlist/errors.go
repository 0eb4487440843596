package binlist

import (
	"errors"
	"fmt"
)

type ErrorKind string

const (
	KindNotFound       ErrorKind = "not_found"
	KindUpstreamStatus ErrorKind = "upstream_status"
	KindBadPayload     ErrorKind = "bad_payload"
	KindTransport      ErrorKind = "transport"
)

type LookupError struct {
	Kind       ErrorKind
	StatusCode int
	Message    string
	Err        error
}

func (e *LookupError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("bin lookup [%s]: %s (status: %d)", e.Kind, e.Message, e.StatusCode)
	}
	return fmt.Sprintf("bin lookup [%s]: %s", e.Kind, e.Message)
}

func (e *LookupError) Unwrap() error {
	return e.Err
}

func IsLookupError(err error) (*LookupError, bool) {
	var lookupErr *LookupError
	ok := errors.As(err, &lookupErr)
	return lookupErr, ok
}
