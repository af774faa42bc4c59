package services

import "errors"

// Every operation recovers storage and policy failures into one of these
// sentinels so handlers can map them to HTTP statuses with errors.Is.
var (
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAccountDisabled    = errors.New("account is disabled")
	ErrUnauthenticated    = errors.New("authentication required")
	ErrForbidden          = errors.New("forbidden")
	ErrNotFound           = errors.New("not found")
	ErrInvalidTransition  = errors.New("invalid status transition")
	ErrDuplicateRating    = errors.New("order already rated")
	ErrInvalidScore       = errors.New("score must be between 1 and 5")
	ErrOrderNotOwned      = errors.New("order does not belong to this user")
	ErrAdminProtected     = errors.New("admin accounts cannot be disabled or deleted")
	ErrStorageConflict    = errors.New("storage conflict")
	ErrValidation         = errors.New("invalid request")
)
