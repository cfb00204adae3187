package repository

import "errors"

// Sentinel kinds for directory errors.
var (
	ErrNotFound          = errors.New("activity not found")
	ErrAlreadyRegistered = errors.New("already signed up")
	ErrNotRegistered     = errors.New("not signed up")
	ErrActivityFull      = errors.New("activity is full")
	ErrEmptyEmail        = errors.New("missing email")
	ErrDuplicateActivity = errors.New("duplicate activity name")
)
