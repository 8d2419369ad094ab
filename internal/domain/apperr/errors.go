package apperr

import "errors"

// Sentinel errors for every caller-visible failure. Handlers select HTTP
// status codes with errors.Is, so services must return these unwrapped or
// wrapped with %w.
var (
	ErrDuplicateEmail     = errors.New("email is already registered")
	ErrInvalidCredentials = errors.New("incorrect email or password")
	ErrExpiredToken       = errors.New("token has expired")
	ErrMalformedToken     = errors.New("token is malformed")
	ErrWrongTokenType     = errors.New("wrong token type")
	ErrUnknownSubject     = errors.New("user not found")
	ErrTaskNotFound       = errors.New("task not found")
	ErrForbidden          = errors.New("task belongs to another user")
	ErrNoFieldsProvided   = errors.New("no fields provided to update")
	ErrEmptyBatch         = errors.New("at least one task is required")
	ErrInvalidPeriod      = errors.New("month must be 1-12 and year 2000-2100")
)
