package domain

import "errors"

var (
	ErrEventNotFound    = errors.New("event not found")
	ErrVenueNotFound    = errors.New("venue not found")
	ErrUserNotFound     = errors.New("user not found")
	ErrCategoryNotFound = errors.New("category not found")
)

var (
	ErrCapacityExceeded = errors.New("event is full")
	ErrAlreadyEnrolled  = errors.New("user is already enrolled in this event")
	ErrNotEnrolled      = errors.New("user is not enrolled in this event")
)

var (
	ErrUnauthenticated = errors.New("authentication required")
	ErrForbidden       = errors.New("operation not permitted")
	ErrInvalidState    = errors.New("operation not valid for current event status")
)

var (
	ErrEmailTaken = errors.New("email is already registered")
)

var (
	ErrValidation = errors.New("validation error")
)
