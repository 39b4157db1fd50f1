package domain

import "errors"

var (
	// ErrUnsupportedFormat means the upload's extension matches no parser.
	ErrUnsupportedFormat = errors.New("unsupported file format")

	// ErrMalformedInput means the upload could not be decoded.
	ErrMalformedInput = errors.New("malformed input")

	// ErrPersistenceFailure means a batch write failed and was rolled back.
	ErrPersistenceFailure = errors.New("persistence failure")

	// ErrInvalidInput wraps payload validation failures.
	ErrInvalidInput = errors.New("invalid input")

	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")

	// ErrConflict means the record is still referenced by other rows.
	ErrConflict = errors.New("still in use")

	ErrUnauthorized       = errors.New("not authenticated")
	ErrInvalidCredentials = errors.New("incorrect email or password")
	ErrForbidden          = errors.New("admin access required")
)
