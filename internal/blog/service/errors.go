package service

import (
	"errors"
	"fmt"
)

// Sentinels returned by the services. Handlers translate them into HTTP
// status codes with errors.Is.
var (
	ErrUnauthorized      = errors.New("unauthorized")
	ErrInvalidCredential = errors.New("invalid_credentials")
	ErrConflict          = errors.New("conflict")
	ErrNotFound          = errors.New("not_found")
	ErrBadRequest        = errors.New("bad_request")
	ErrStorage           = errors.New("storage_error")
)

var (
	ErrInvalidUserID = fmt.Errorf("%w: invalid user id", ErrBadRequest)
	ErrInvalidPostID = fmt.Errorf("%w: invalid blog id", ErrBadRequest)
)

func storageError(op string, err error) error {
	return fmt.Errorf("%w: %s: %v", ErrStorage, op, err)
}
