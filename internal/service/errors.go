package service

import "errors"

// Error kinds. Handlers map these to HTTP status codes with errors.Is.
var (
	ErrValidation   = errors.New("validation error")
	ErrDuplicateKey = errors.New("duplicate key")
	ErrNotFound     = errors.New("not found")
	ErrUnauthorized = errors.New("unauthorized")
)

var (
	ErrSKUExists          = newError(ErrDuplicateKey, "Product with this SKU already exists")
	ErrInvalidQuantity    = newError(ErrValidation, "Quantity must be an integer.")
	ErrProductNotFound    = newError(ErrNotFound, "Product not found")
	ErrUserExists         = newError(ErrDuplicateKey, "User already exists")
	ErrInvalidCredentials = newError(ErrUnauthorized, "Invalid credentials")
)

// kindError is a client-safe message tagged with one of the kinds above.
type kindError struct {
	kind error
	msg  string
}

func newError(kind error, msg string) error {
	return &kindError{kind: kind, msg: msg}
}

func (e *kindError) Error() string { return e.msg }

func (e *kindError) Unwrap() error { return e.kind }

func validationError(msg string) error {
	return newError(ErrValidation, msg)
}
