// Package usecase implements the business logic for the user feature.
package usecase

import "errors"

var (
	// ErrUserNotFound is returned when no user exists with the requested ID.
	// Callers wrap it with the ID so the message reads "user not found with id: <id>".
	ErrUserNotFound = errors.New("user not found")

	// ErrFieldAlreadyExists is returned when an email or username is already taken.
	ErrFieldAlreadyExists = errors.New("field already exists")

	// ErrInvalidArgument is returned when a required input is missing.
	ErrInvalidArgument = errors.New("invalid argument")
)
