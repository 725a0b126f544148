package service

import "errors"

// Error taxonomy of the quiz core. The API layer maps these onto HTTP status
// codes; nothing in this package knows about transport.
var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrNotFound        = errors.New("not found")
	ErrNotAuthorized   = errors.New("not authorized")
	ErrNotActive       = errors.New("quiz session is not active")
	ErrInvalidState    = errors.New("operation not allowed in current state")
	ErrEmptyFolder     = errors.New("folder has no vocabulary items")
	ErrEmptyAnswer     = errors.New("answer cannot be empty")
)

// errNoMoreQuestions signals an exhausted candidate pool. It never leaves the
// package: the caller turns it into the force-complete path.
var errNoMoreQuestions = errors.New("no more questions available")
