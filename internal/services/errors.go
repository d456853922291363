package services

import "errors"

var (
	// ErrValidation wraps all bad-input failures; handlers map it to 400.
	ErrValidation = errors.New("validation failed")

	ErrEventNotFound = errors.New("event not found")
	// ErrNotOwner covers both "no such event" and "not yours" so the API
	// does not reveal which ids exist.
	ErrNotOwner      = errors.New("event not found or not owned by caller")
	ErrAlreadyJoined = errors.New("already joined this event")
	ErrUserNotFound  = errors.New("user not found")
)
