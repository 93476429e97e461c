package apperr

import "errors"

// ErrInvalid is returned when the input fails domain validation.
var ErrInvalid = errors.New("invalid input")

// ErrConflict indicates a uniqueness or state conflict (HTTP 409).
var ErrConflict = errors.New("conflict")

// ErrNotFound indicates that the requested resource does not exist.
var ErrNotFound = errors.New("not found")

// ErrForbidden is returned when the caller does not own the resource it acts on.
var ErrForbidden = errors.New("forbidden")

// ErrNoEligibleContractors means a distribution run found nobody to offer the order to.
// It is an expected outcome: the order stays created and nothing is retried.
var ErrNoEligibleContractors = errors.New("no eligible contractors")
