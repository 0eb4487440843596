package application

import (
	"errors"
	"net/http"
)

// APPLICATION-LEVEL ERRORS (Orchestration)

type ServiceError struct {
	Code       string
	Message    string
	HTTPStatus int
	Err        error
}

func (e *ServiceError) Error() string {
	return e.Message
}

func (e *ServiceError) Unwrap() error {
	return e.Err
}

const (
	ErrCodeChecksumInvalid = "CHECKSUM_INVALID"
	ErrCodeExpiryInvalid   = "EXPIRY_INVALID"
	ErrCodeInternal        = "INTERNAL_ERROR"
)

func NewChecksumInvalidError() *ServiceError {
	return &ServiceError{
		Code:       ErrCodeChecksumInvalid,
		Message:    "card number failed checksum validation",
		HTTPStatus: http.StatusBadRequest,
	}
}

func NewExpiryInvalidError() *ServiceError {
	return &ServiceError{
		Code:       ErrCodeExpiryInvalid,
		Message:    "card expiry month/year is invalid or in the past",
		HTTPStatus: http.StatusBadRequest,
	}
}

func NewInternalError(err error) *ServiceError {
	return &ServiceError{
		Code:       ErrCodeInternal,
		Message:    "an internal error occurred",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

func IsServiceError(err error) (*ServiceError, bool) {
	var svcErr *ServiceError
	ok := errors.As(err, &svcErr)
	return svcErr, ok
}
