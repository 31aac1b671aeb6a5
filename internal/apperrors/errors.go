package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrForbidden indicates that the caller is not allowed to perform the operation.
var ErrForbidden = errors.New("operation not allowed")

// ErrConflict indicates that the resource is in a state that conflicts with the request.
var ErrConflict = errors.New("resource state conflict")

// ErrInternal indicates an unexpected internal failure.
var ErrInternal = errors.New("internal error")

// ErrConfiguration indicates a structurally invalid configuration, such as a
// recurrence plan with no end bound. These are never retried automatically.
var ErrConfiguration = errors.New("invalid configuration")

// ErrInvariantViolation indicates an operation that would break a structural
// invariant of an aggregate (e.g. dropping a journal draft below two lines).
// Callers are expected to prevent these via pre-checks; the domain still
// refuses them.
var ErrInvariantViolation = errors.New("invariant violation")
